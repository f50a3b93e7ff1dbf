package notify

import (
	"context"
	"log"
)

// Canais suportados
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

// Templates usados pelo scheduler
const (
	TemplateSigningWarning   = "signing_deadline_warning"
	TemplatePaymentWarning   = "payment_deadline_warning"
	TemplateHoldExpired      = "hold_expired"
	TemplateNegotiationOffer = "negotiation_offer"
	TemplateBookingConfirmed = "booking_confirmed"
)

// Notifier é colaborador externo. Falha de envio é logada, nunca
// re-tentada de forma síncrona, e não bloqueia a transição que a gerou.
type Notifier interface {
	Send(ctx context.Context, channel, recipient, template string, data map[string]any) error
}

// ===============================
// LogNotifier: implementação default (dev / fallback)
// ===============================

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(_ context.Context, channel, recipient, template string, data map[string]any) error {
	log.Printf("notify [%s] to=%s template=%s data=%v", channel, recipient, template, data)
	return nil
}
