package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

type DynVarGormRepository struct {
	db *gorm.DB
}

func NewDynVarGormRepository(db *gorm.DB) *DynVarGormRepository {
	return &DynVarGormRepository{db: db}
}

// GetEffective resolve a variável vigente em `at`: janela effective
// aberta ou cobrindo o instante, e aprovada quando a categoria é
// crítica.
func (r *DynVarGormRepository) GetEffective(
	ctx context.Context,
	category string,
	key string,
	at time.Time,
) (*models.DynamicVariable, error) {

	var v models.DynamicVariable
	if err := r.db.WithContext(ctx).
		Where("category = ? AND key = ?", category, key).
		Where("effective_from IS NULL OR effective_from <= ?", at).
		Where("effective_to IS NULL OR effective_to > ?", at).
		First(&v).Error; err != nil {
		return nil, err
	}

	if !dynvars.IsApproved(&v) {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (r *DynVarGormRepository) List(
	ctx context.Context,
	category string,
) ([]models.DynamicVariable, error) {

	q := r.db.WithContext(ctx).Order("category ASC, key ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var list []models.DynamicVariable
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *DynVarGormRepository) GetByCategoryAndKey(
	ctx context.Context,
	category string,
	key string,
) (*models.DynamicVariable, error) {

	var v models.DynamicVariable
	if err := r.db.WithContext(ctx).
		Where("category = ? AND key = ?", category, key).
		First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// Upsert grava o valor. Mudança em categoria crítica zera as
// aprovações: o novo valor só vige depois de reaprovado.
func (r *DynVarGormRepository) Upsert(
	ctx context.Context,
	v *models.DynamicVariable,
) error {

	var existing models.DynamicVariable
	err := r.db.WithContext(ctx).
		Where("category = ? AND key = ?", v.Category, v.Key).
		First(&existing).Error

	if err == gorm.ErrRecordNotFound {
		if dynvars.IsCritical(v.Category) {
			v.FirstApprovedBy = nil
			v.SecondApprovedBy = nil
			v.ApprovedAt = nil
		}
		return r.db.WithContext(ctx).Create(v).Error
	}
	if err != nil {
		return err
	}

	existing.Value = v.Value
	existing.EffectiveFrom = v.EffectiveFrom
	existing.EffectiveTo = v.EffectiveTo
	existing.UpdatedBy = v.UpdatedBy
	if dynvars.IsCritical(existing.Category) {
		existing.FirstApprovedBy = nil
		existing.SecondApprovedBy = nil
		existing.ApprovedAt = nil
	}

	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*v = existing
	return nil
}

func (r *DynVarGormRepository) Save(
	ctx context.Context,
	v *models.DynamicVariable,
) error {
	return r.db.WithContext(ctx).Save(v).Error
}

var _ dynvars.Store = (*DynVarGormRepository)(nil)
