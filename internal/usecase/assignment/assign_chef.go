package assignment

import (
	"context"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/audit"
	"github.com/suryadizhang/mh-scheduler/internal/domain/scheduling"
	"github.com/suryadizhang/mh-scheduler/internal/geo"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

// ======================================================
// OTIMIZADOR DE ATRIBUIÇÃO DE CHEF
// ======================================================

const (
	TypeAuto              = "auto"
	TypeManual            = "manual"
	TypeCustomerRequested = "customer_requested"
)

type AssignChefInput struct {
	BookingPublicID uuid.UUID

	// preferência nomeada pelo cliente
	PreferredChefID *uint
	// se true, a indisponibilidade do preferido falha a atribuição inteira
	PreferredRequired bool
}

type AssignChef struct {
	repo   Repository
	travel *geo.TravelService
	audit  *audit.Dispatcher
}

func NewAssignChef(
	repo Repository,
	travel *geo.TravelService,
	audit *audit.Dispatcher,
) *AssignChef {
	return &AssignChef{
		repo:   repo,
		travel: travel,
		audit:  audit,
	}
}

// Execute escolhe o chef de maior score para o booking. Sem candidato
// nenhum devolve no_chef_available; o handler cai então para a
// negociação de slot via NegotiationFallback.
func (uc *AssignChef) Execute(
	ctx context.Context,
	in AssignChefInput,
) (*models.ChefAssignment, error) {

	b, err := uc.repo.GetBookingByPublicID(ctx, in.BookingPublicID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetAssignmentByBookingID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("booking_already_assigned")
	}

	// venue sem geocode cai para as coordenadas da station
	venueLat, venueLng := b.Station.Lat, b.Station.Lng
	if b.VenueLat != nil && b.VenueLng != nil {
		venueLat, venueLng = *b.VenueLat, *b.VenueLng
	}

	chefs, err := uc.repo.ListAvailableChefs(
		ctx, b.StationID, int(b.EventDate.Weekday()), b.SlotTime,
	)
	if err != nil {
		return nil, err
	}

	type scored struct {
		chef     models.Chef
		estimate geo.TravelEstimate
		score    float64
		chainID  *uint
	}

	var best *scored
	preferredSeen := false

	for i := range chefs {
		chef := chefs[i]

		est, err := uc.travel.Travel(
			ctx, chef.HomeLat, chef.HomeLng, venueLat, venueLng, b.BookingDatetime,
		)
		if err != nil {
			return nil, err
		}

		radius := chef.ServiceRadiusKm
		if radius == 0 {
			radius = b.Station.ServiceRadiusKm
		}
		if est.Km > radius {
			continue
		}

		sameDay, err := uc.repo.ListChefBookingsForDate(ctx, chef.ID, b.EventDate)
		if err != nil {
			return nil, err
		}
		var chainID *uint
		for j := range sameDay {
			if scheduling.AdjacentSlots(sameDay[j].SlotTime, b.SlotTime) {
				chainID = &sameDay[j].ID
				break
			}
		}

		requested := in.PreferredChefID != nil && *in.PreferredChefID == chef.ID
		if requested {
			preferredSeen = true
		}

		score := scheduling.Score(scheduling.Candidate{
			ChefID:            chef.ID,
			TravelMinutes:     est.Minutes,
			TravelKm:          est.Km,
			SameDayBookings:   len(sameDay),
			ChainAdjacent:     chainID != nil,
			CustomerRequested: requested,
		})

		c := scored{chef: chef, estimate: est, score: score, chainID: chainID}
		if best == nil ||
			c.score > best.score ||
			(c.score == best.score && c.chef.ID < best.chef.ID) {
			best = &c
		}
	}

	if in.PreferredChefID != nil && in.PreferredRequired && !preferredSeen {
		return nil, httperr.ErrBusiness(httperr.CodePreferredChefUnavailable)
	}

	if best == nil {
		return nil, httperr.ErrBusiness("no_chef_available")
	}

	assignmentType := TypeAuto
	if in.PreferredChefID != nil && *in.PreferredChefID == best.chef.ID {
		assignmentType = TypeCustomerRequested
	}

	a := &models.ChefAssignment{
		BookingID:       b.ID,
		ChefID:          best.chef.ID,
		AssignmentType:  assignmentType,
		TravelMinutes:   best.estimate.Minutes,
		TravelKm:        best.estimate.Km,
		EfficiencyScore: best.score,
		ChainBookingID:  best.chainID,
	}
	if err := uc.repo.CreateAssignment(ctx, a); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("booking_already_assigned")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StationID: b.StationID,
		Action:    "chef_assigned",
		Entity:    "chef_assignment",
		EntityID:  &a.ID,
	})

	return a, nil
}
