package assignment

import (
	"context"

	"github.com/suryadizhang/mh-scheduler/internal/domain/scheduling"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

// Recompute refaz viagem e score de uma atribuição existente depois de
// o horário do booking mudar (aceite de negociação). Booking sem
// atribuição não é erro: não há nada a refazer.
func (uc *AssignChef) Recompute(
	ctx context.Context,
	b *models.Booking,
) error {

	a, err := uc.repo.GetAssignmentByBookingID(ctx, b.ID)
	if err != nil {
		return err
	}
	if a == nil {
		return nil
	}

	chef, err := uc.repo.GetChefByID(ctx, a.ChefID)
	if err != nil {
		return err
	}

	venueLat, venueLng := b.Station.Lat, b.Station.Lng
	if b.VenueLat != nil && b.VenueLng != nil {
		venueLat, venueLng = *b.VenueLat, *b.VenueLng
	}

	est, err := uc.travel.Travel(
		ctx, chef.HomeLat, chef.HomeLng, venueLat, venueLng, b.BookingDatetime,
	)
	if err != nil {
		return err
	}

	sameDay, err := uc.repo.ListChefBookingsForDate(ctx, chef.ID, b.EventDate)
	if err != nil {
		return err
	}
	var chainID *uint
	workload := 0
	for i := range sameDay {
		if sameDay[i].ID == b.ID {
			continue
		}
		workload++
		if chainID == nil && scheduling.AdjacentSlots(sameDay[i].SlotTime, b.SlotTime) {
			chainID = &sameDay[i].ID
		}
	}

	a.TravelMinutes = est.Minutes
	a.TravelKm = est.Km
	a.ChainBookingID = chainID
	a.EfficiencyScore = scheduling.Score(scheduling.Candidate{
		ChefID:            chef.ID,
		TravelMinutes:     est.Minutes,
		TravelKm:          est.Km,
		SameDayBookings:   workload,
		ChainAdjacent:     chainID != nil,
		CustomerRequested: a.AssignmentType == TypeCustomerRequested,
	})

	return uc.repo.UpdateAssignment(ctx, a)
}
