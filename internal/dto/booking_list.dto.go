package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/models"
)

type BookingListItem struct {
	PublicID        uuid.UUID `json:"public_id"`
	EventDate       string    `json:"event_date"`
	SlotTime        string    `json:"slot_time"`
	BookingDatetime time.Time `json:"booking_datetime"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customer_name"`
	VenueAddress    string    `json:"venue_address"`
	GuestCount      int       `json:"guest_count"`
	IsUrgent        bool      `json:"is_urgent"`
	BookingWindow   string    `json:"booking_window"`
}

func NewBookingListItem(b *models.Booking) BookingListItem {
	return BookingListItem{
		PublicID:        b.PublicID,
		EventDate:       b.EventDate.Format("2006-01-02"),
		SlotTime:        b.SlotTime,
		BookingDatetime: b.BookingDatetime,
		Status:          b.Status,
		CustomerName:    b.CustomerName,
		VenueAddress:    b.VenueAddress,
		GuestCount:      b.GuestCount(),
		IsUrgent:        b.IsUrgent,
		BookingWindow:   b.BookingWindow,
	}
}
