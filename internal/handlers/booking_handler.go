package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bookingDomain "github.com/suryadizhang/mh-scheduler/internal/domain/booking"
	"github.com/suryadizhang/mh-scheduler/internal/dto"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/httpresp"
	ucBooking "github.com/suryadizhang/mh-scheduler/internal/usecase/booking"
)

type BookingHandler struct {
	listUC *ucBooking.ListByDate
	repo   bookingDomain.Repository
}

func NewBookingHandler(
	listUC *ucBooking.ListByDate,
	repo bookingDomain.Repository,
) *BookingHandler {
	return &BookingHandler{listUC: listUC, repo: repo}
}

// GET /api/stations/:slug/bookings?date=YYYY-MM-DD
func (h *BookingHandler) ListByDate(c *gin.Context) {
	slug := c.Param("slug")
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query param date is required.")
		return
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), slug, date)
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "booking_list_failed", "Could not list bookings.")
		}
		return
	}

	out := make([]dto.BookingListItem, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.NewBookingListItem(&bookings[i]))
	}

	httpresp.List(c, out)
}

// GET /api/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	b, err := h.repo.GetByPublicID(c.Request.Context(), publicID)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	httpresp.OK(c, b)
}
