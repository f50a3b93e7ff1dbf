package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/httpresp"
	ucAvailability "github.com/suryadizhang/mh-scheduler/internal/usecase/availability"
)

type AvailabilityHandler struct {
	uc *ucAvailability.GetAvailability
}

func NewAvailabilityHandler(uc *ucAvailability.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// GET /api/public/stations/:slug/availability?date=YYYY-MM-DD
func (h *AvailabilityHandler) Get(c *gin.Context) {
	slug := c.Param("slug")
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query param date is required.")
		return
	}

	slots, err := h.uc.Execute(c.Request.Context(), slug, date)
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "availability_failed", "Could not compute availability.")
		}
		return
	}

	httpresp.List(c, slots)
}
