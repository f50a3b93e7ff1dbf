package hold

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/audit"
	bookingDomain "github.com/suryadizhang/mh-scheduler/internal/domain/booking"
	domain "github.com/suryadizhang/mh-scheduler/internal/domain/hold"
	"github.com/suryadizhang/mh-scheduler/internal/domain/scheduling"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/geo"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/notify"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

type PayDeposit struct {
	repo     domain.Repository
	vars     *dynvars.Service
	geocoder geo.Geocoder
	notifier notify.Notifier
	audit    *audit.Dispatcher
}

func NewPayDeposit(
	repo domain.Repository,
	vars *dynvars.Service,
	geocoder geo.Geocoder,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
) *PayDeposit {
	return &PayDeposit{
		repo:     repo,
		vars:     vars,
		geocoder: geocoder,
		notifier: notifier,
		audit:    audit,
	}
}

// Execute converte o hold em booking confirmado. O geocode roda antes
// da transação: falha dele deixa geocode_status=pending e não bloqueia
// a conversão.
func (uc *PayDeposit) Execute(
	ctx context.Context,
	holdPublicID uuid.UUID,
) (*models.Booking, error) {

	urgentThreshold, err := uc.vars.UrgentThresholdDays(ctx)
	if err != nil {
		return nil, err
	}

	// leitura fora da tx só para geocodificar o endereço
	peek, err := uc.repo.GetHoldByPublicID(ctx, holdPublicID)
	if err != nil {
		return nil, err
	}

	var venueLat, venueLng *float64
	geocodeStatus := "pending"
	if peek.VenueAddress != "" {
		if res, err := uc.geocoder.Geocode(ctx, peek.VenueAddress); err == nil {
			venueLat = &res.Lat
			venueLng = &res.Lng
			geocodeStatus = "ok"
		} else {
			log.Printf("geocode falhou para hold %s: %v", holdPublicID, err)
		}
	}

	var b *models.Booking

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		h, err := tx.GetHoldByPublicID(ctx, holdPublicID)
		if err != nil {
			return err
		}

		loc := timezone.Location(h.Station.Timezone)
		now := timezone.NowIn(h.Station.Timezone)

		if err := domain.Pay(h, now); err != nil {
			return err
		}

		daysUntil := bookingDomain.DaysUntil(h.EventDate, now)
		bookingAt, err := scheduling.SlotDatetime(h.EventDate, h.SlotTime, loc)
		if err != nil {
			return err
		}

		b = &models.Booking{
			PublicID:        uuid.New(),
			StationID:       h.StationID,
			HoldID:          &h.ID,
			EventDate:       h.EventDate,
			SlotTime:        h.SlotTime,
			BookingDatetime: bookingAt,
			CustomerName:    h.CustomerName,
			CustomerPhone:   h.CustomerPhone,
			CustomerEmail:   h.CustomerEmail,
			VenueAddress:    h.VenueAddress,
			VenueLat:        venueLat,
			VenueLng:        venueLng,
			GeocodeStatus:   geocodeStatus,
			Adults:          h.Adults,
			Children:        h.Children,
			Toddlers:        h.Toddlers,
			Status:          string(bookingDomain.StatusConfirmed),
			DaysUntilEvent:  daysUntil,
			BookingWindow:   bookingDomain.BookingWindowFor(daysUntil),
			IsUrgent:        daysUntil <= urgentThreshold,
		}
		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		h.BookingID = &b.ID
		return tx.UpdateHold(ctx, h)
	})
	if err != nil {
		// corrida no índice único parcial de bookings
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return nil, err
	}

	// confirmação é best-effort: falha só é logada
	if err := uc.notifier.Send(ctx, notify.ChannelSMS, b.CustomerPhone,
		notify.TemplateBookingConfirmed, map[string]any{
			"booking_id": b.PublicID.String(),
			"event_date": b.EventDate.Format("2006-01-02"),
			"slot_time":  b.SlotTime,
		}); err != nil {
		log.Printf("notificação de confirmação falhou para booking %s: %v", b.PublicID, err)
	}

	uc.audit.Dispatch(audit.Event{
		StationID: b.StationID,
		Action:    "hold_converted",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return b, nil
}
