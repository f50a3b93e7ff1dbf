package scheduling

import (
	"context"
	"time"

	"github.com/suryadizhang/mh-scheduler/internal/models"
)

type Repository interface {
	CountAvailableChefs(
		ctx context.Context,
		stationID uint,
		weekday int,
		slotTime string,
	) (int, error)

	// listas com FOR UPDATE (mesmo padrão do conflito de horário):
	// quem conta segura o lock até o fim da transação
	ListActiveHoldsForSlot(
		ctx context.Context,
		stationID uint,
		eventDate time.Time,
		slotTime string,
	) ([]models.SlotHold, error)

	ListActiveBookingsForSlot(
		ctx context.Context,
		stationID uint,
		eventDate time.Time,
		slotTime string,
	) ([]models.Booking, error)
}
