package repository

import bookingDomain "github.com/suryadizhang/mh-scheduler/internal/domain/booking"

func bookingOccupyingStatuses() []string {
	return bookingDomain.OccupyingStatuses
}
