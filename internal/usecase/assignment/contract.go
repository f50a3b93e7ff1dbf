package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/models"
)

type Repository interface {
	GetBookingByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.Booking, error)

	GetChefByID(
		ctx context.Context,
		chefID uint,
	) (*models.Chef, error)

	// chefs ativos com ChefAvailability cobrindo weekday+slot
	ListAvailableChefs(
		ctx context.Context,
		stationID uint,
		weekday int,
		slotTime string,
	) ([]models.Chef, error)

	// bookings ativos já atribuídos ao chef na data (carga + cadeia)
	ListChefBookingsForDate(
		ctx context.Context,
		chefID uint,
		eventDate time.Time,
	) ([]models.Booking, error)

	// bookings ativos no mesmo (station, date, slot): candidatos a
	// deslocamento quando nenhum chef atende o slot
	ListBookingsForSlot(
		ctx context.Context,
		stationID uint,
		eventDate time.Time,
		slotTime string,
	) ([]models.Booking, error)

	GetAssignmentByBookingID(
		ctx context.Context,
		bookingID uint,
	) (*models.ChefAssignment, error)

	CreateAssignment(
		ctx context.Context,
		a *models.ChefAssignment,
	) error

	UpdateAssignment(
		ctx context.Context,
		a *models.ChefAssignment,
	) error
}
