package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
)

// mensagens por código de negócio
var businessMessages = map[string]string{
	httperr.CodeSlotConflict:             "Slot has just been taken by another request.",
	httperr.CodeSlotFull:                 "No remaining capacity for this slot.",
	httperr.CodeDeadlineExceeded:         "The deadline for this action has passed.",
	httperr.CodePreferredChefUnavailable: "The requested chef is not available for this slot.",
	httperr.CodeConfigMissing:            "A required configuration value is missing.",
	httperr.CodeInvalidTransition:        "This action is not allowed in the current state.",

	"station_not_found":        "Station not found.",
	"invalid_slot":             "Invalid slot time.",
	"invalid_date":             "Invalid date.",
	"date_in_past":             "The event date is in the past.",
	"invalid_shift":            "Only 30 or 60 minute shifts are offered.",
	"no_chef_available":        "No chef is available for this slot.",
	"booking_already_assigned": "This booking already has a chef assigned.",
	"negotiation_already_open": "This booking already has an open negotiation.",
	"approval_not_required":    "This category does not require approval.",
	"already_approved":         "This variable is already approved.",
	"duplicate_approver":       "A second distinct admin must approve.",
}

// writeBusinessError traduz o erro de negócio para o status HTTP certo.
// Devolve false quando o erro não é de negócio (cai no Internal do
// chamador).
func writeBusinessError(c *gin.Context, err error) bool {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "Resource not found.")
		return true
	}

	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Business rule violation."
	}

	switch code {
	case httperr.CodeSlotConflict:
		httperr.Conflict(c, code, msg)
	case httperr.CodeConfigMissing:
		httperr.Internal(c, code, msg)
	case "station_not_found":
		httperr.NotFound(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
	return true
}
