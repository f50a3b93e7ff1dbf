package hold

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/audit"
	bookingDomain "github.com/suryadizhang/mh-scheduler/internal/domain/booking"
	domain "github.com/suryadizhang/mh-scheduler/internal/domain/hold"
	"github.com/suryadizhang/mh-scheduler/internal/domain/scheduling"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateHoldInput struct {
	StationSlug string

	Date string // YYYY-MM-DD
	Slot string // HH:mm

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	VenueAddress  string

	Adults   int
	Children int
	Toddlers int
}

// ======================================================
// USE CASE
// ======================================================

type CreateHold struct {
	repo  domain.Repository
	vars  *dynvars.Service
	audit *audit.Dispatcher
}

func NewCreateHold(
	repo domain.Repository,
	vars *dynvars.Service,
	audit *audit.Dispatcher,
) *CreateHold {
	return &CreateHold{
		repo:  repo,
		vars:  vars,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateHold) Execute(
	ctx context.Context,
	in CreateHoldInput,
) (*models.SlotHold, error) {

	// --------------------------------------------------
	// 1) Station
	// --------------------------------------------------
	station, err := uc.repo.GetStationBySlug(ctx, in.StationSlug)
	if err != nil {
		return nil, httperr.ErrBusiness("station_not_found")
	}

	// --------------------------------------------------
	// 2) Slot + data no timezone da station
	// --------------------------------------------------
	if !scheduling.IsValidSlot(in.Slot) {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	loc := timezone.Location(station.Timezone)
	eventDate, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	now := timezone.NowIn(station.Timezone)
	daysUntil := bookingDomain.DaysUntil(eventDate, now)
	if daysUntil < 0 {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	// --------------------------------------------------
	// 3) Configuração (fail-loud)
	// --------------------------------------------------
	signingWindow, err := uc.vars.SigningWindow(ctx)
	if err != nil {
		return nil, err
	}
	windowDays, err := uc.vars.ChefAvailabilityWindowDays(ctx)
	if err != nil {
		return nil, err
	}
	longAdvanceCap, err := uc.vars.LongAdvanceSlotCapacity(ctx)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4) Capacidade + insert na mesma transação
	// --------------------------------------------------
	h := &models.SlotHold{
		PublicID:        uuid.New(),
		StationID:       station.ID,
		EventDate:       eventDate,
		SlotTime:        in.Slot,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		VenueAddress:    in.VenueAddress,
		Adults:          in.Adults,
		Children:        in.Children,
		Toddlers:        in.Toddlers,
		Status:          string(domain.InitialStatus()),
		SigningDeadline: now.Add(signingWindow),
	}

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {

		holds, err := tx.ListActiveHoldsForSlot(ctx, station.ID, eventDate, in.Slot)
		if err != nil {
			return err
		}
		bookings, err := tx.ListActiveBookingsForSlot(ctx, station.ID, eventDate, in.Slot)
		if err != nil {
			return err
		}

		// no máximo um hold/booking ativo por (station, date, slot),
		// independente de quantos chefs estejam disponíveis
		if len(holds)+len(bookings) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}

		availableChefs, err := tx.CountAvailableChefs(
			ctx, station.ID, int(eventDate.Weekday()), in.Slot,
		)
		if err != nil {
			return err
		}

		result := scheduling.Evaluate(scheduling.CapacityInput{
			DaysUntilEvent: daysUntil,
			WindowDays:     windowDays,
			AvailableChefs: availableChefs,
			LongAdvanceCap: longAdvanceCap,
			ExistingCount:  0,
		})
		if !result.Accepts() {
			return httperr.ErrBusiness(httperr.CodeSlotFull)
		}

		return tx.CreateHold(ctx, h)
	})

	if err != nil {
		// perdedor da corrida no índice único parcial
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StationID: station.ID,
		Action:    "hold_created",
		Entity:    "slot_hold",
		EntityID:  &h.ID,
	})

	return h, nil
}
