package booking

import (
	"time"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

// ===============================
// Domain Actions: cancelamento em duas etapas
// ===============================

// RequestCancellation guarda o previous_status e NÃO libera o slot.
func RequestCancellation(b *models.Booking, now time.Time, requestedBy, reason string) error {
	if err := CanRequestCancellation(Status(b.Status)); err != nil {
		return err
	}

	prev := b.Status
	b.PreviousStatus = &prev
	b.Status = string(StatusCancellationRequested)
	b.CancellationRequestedAt = &now
	b.CancellationRequestedBy = &requestedBy
	b.CancellationReason = &reason
	return nil
}

// ApproveCancellation libera o slot.
func ApproveCancellation(b *models.Booking, now time.Time, resolvedBy, note string) error {
	if err := CanResolveCancellation(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancellationResolvedAt = &now
	b.CancellationResolvedBy = &resolvedBy
	b.CancellationResolution = &note
	return nil
}

// RejectCancellation restaura exatamente o previous_status salvo.
func RejectCancellation(b *models.Booking, now time.Time, resolvedBy, note string) error {
	if err := CanResolveCancellation(Status(b.Status)); err != nil {
		return err
	}
	if b.PreviousStatus == nil {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	b.Status = *b.PreviousStatus
	b.PreviousStatus = nil
	b.CancellationResolvedAt = &now
	b.CancellationResolvedBy = &resolvedBy
	b.CancellationResolution = &note
	return nil
}

// ===============================
// Urgência (sweep)
// ===============================

const (
	WindowLastMinute  = "last_minute"  // <= 2 dias
	WindowSameWeek    = "same_week"    // <= 7 dias
	WindowStandard    = "standard"     // <= 30 dias
	WindowLongAdvance = "long_advance" // > 30 dias
)

func BookingWindowFor(daysUntil int) string {
	switch {
	case daysUntil <= 2:
		return WindowLastMinute
	case daysUntil <= 7:
		return WindowSameWeek
	case daysUntil <= 30:
		return WindowStandard
	default:
		return WindowLongAdvance
	}
}

// DaysUntil conta dias de calendário entre hoje e a data do evento.
func DaysUntil(eventDate, now time.Time) int {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := eventDate.Date()
	today := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	event := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(event.Sub(today).Hours() / 24)
}

// RefreshUrgency recalcula os flags; devolve true se algo mudou.
func RefreshUrgency(b *models.Booking, now time.Time, urgentThresholdDays int) bool {
	days := DaysUntil(b.EventDate, now)
	urgent := days <= urgentThresholdDays && days >= 0
	window := BookingWindowFor(days)

	if b.DaysUntilEvent == days && b.IsUrgent == urgent && b.BookingWindow == window {
		return false
	}

	b.DaysUntilEvent = days
	b.IsUrgent = urgent
	b.BookingWindow = window
	return true
}
