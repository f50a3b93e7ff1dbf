package models

import "time"

// Variável de negócio configurável: single source of truth,
// sem fallback hardcoded no código
type DynamicVariable struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Category string `gorm:"size:50;not null;uniqueIndex:idx_var_cat_key" json:"category"`
	Key      string `gorm:"size:100;not null;uniqueIndex:idx_var_cat_key" json:"key"`

	// JSON cru; o accessor tipado em internal/dynvars faz o decode
	Value string `gorm:"type:jsonb;not null" json:"value"`

	EffectiveFrom *time.Time `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to"`

	// categorias críticas (pricing, deposit) exigem aprovação dupla
	FirstApprovedBy  *uint      `json:"first_approved_by"`
	SecondApprovedBy *uint      `json:"second_approved_by"`
	ApprovedAt       *time.Time `json:"approved_at"`

	UpdatedBy *uint `json:"updated_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
