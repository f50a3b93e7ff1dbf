package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Registro legal de assinatura: write-once, nunca atualizado
// (retenção legal; o guard fica no repository)
type SignedAgreement struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HoldID uint     `gorm:"uniqueIndex" json:"hold_id"`
	Hold   SlotHold `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	SignatureName string `gorm:"size:100;not null" json:"signature_name"`

	AgreementVersion string `gorm:"size:20;not null" json:"agreement_version"`
	ContentHash      string `gorm:"size:64" json:"content_hash"`

	SignedAt  time.Time `json:"signed_at"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrAgreementImmutable = errors.New("agreement_immutable")

// BeforeUpdate bloqueia qualquer update: retenção legal
func (SignedAgreement) BeforeUpdate(_ *gorm.DB) error {
	return ErrAgreementImmutable
}

// BeforeDelete idem
func (SignedAgreement) BeforeDelete(_ *gorm.DB) error {
	return ErrAgreementImmutable
}
