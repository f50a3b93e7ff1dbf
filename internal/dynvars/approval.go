package dynvars

import (
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

// Categorias críticas exigem dois admins ou um super admin
var criticalCategories = map[string]bool{
	"pricing": true,
	"deposit": true,
}

func IsCritical(category string) bool {
	return criticalCategories[category]
}

// IsApproved diz se a variável já pode entrar em vigor
func IsApproved(v *models.DynamicVariable) bool {
	if !IsCritical(v.Category) {
		return true
	}
	return v.ApprovedAt != nil
}

// Approve registra uma aprovação. Super admin aprova sozinho; admins
// comuns precisam ser dois distintos.
func Approve(v *models.DynamicVariable, approver *models.User) error {
	if !IsCritical(v.Category) {
		return httperr.ErrBusiness("approval_not_required")
	}
	if v.ApprovedAt != nil {
		return httperr.ErrBusiness("already_approved")
	}

	if approver.IsSuperAdmin() {
		v.FirstApprovedBy = &approver.ID
		return nil
	}

	if v.FirstApprovedBy == nil {
		v.FirstApprovedBy = &approver.ID
		return nil
	}
	if *v.FirstApprovedBy == approver.ID {
		return httperr.ErrBusiness("duplicate_approver")
	}

	v.SecondApprovedBy = &approver.ID
	return nil
}

// FullyApproved: chamador seta ApprovedAt quando isto vira true
func FullyApproved(v *models.DynamicVariable, lastApprover *models.User) bool {
	if lastApprover.IsSuperAdmin() {
		return true
	}
	return v.FirstApprovedBy != nil && v.SecondApprovedBy != nil
}
