package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/httpresp"
	ucNegotiation "github.com/suryadizhang/mh-scheduler/internal/usecase/negotiation"
)

type NegotiationHandler struct {
	proposeUC *ucNegotiation.Propose
	respondUC *ucNegotiation.Respond
	repo      ucNegotiation.Repository
}

func NewNegotiationHandler(
	proposeUC *ucNegotiation.Propose,
	respondUC *ucNegotiation.Respond,
	repo ucNegotiation.Repository,
) *NegotiationHandler {
	return &NegotiationHandler{
		proposeUC: proposeUC,
		respondUC: respondUC,
		repo:      repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ProposeNegotiationRequest struct {
	BookingID    string `json:"booking_id" binding:"required"`
	ShiftMinutes int    `json:"shift_minutes" binding:"required"`
	Channel      string `json:"channel" binding:"required,oneof=sms email"`
}

type RespondNegotiationRequest struct {
	Accept bool `json:"accept"`
}

// ======================================================
// HANDLERS
// ======================================================

// POST /api/negotiations (ops)
func (h *NegotiationHandler) Propose(c *gin.Context) {
	var req ProposeNegotiationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	n, err := h.proposeUC.Execute(c.Request.Context(), ucNegotiation.ProposeInput{
		BookingPublicID: bookingID,
		ShiftMinutes:    req.ShiftMinutes,
		Channel:         req.Channel,
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "negotiation_propose_failed", "Could not propose negotiation.")
		}
		return
	}

	httpresp.Created(c, n)
}

// POST /api/public/negotiations/:id/respond (cliente, via link)
func (h *NegotiationHandler) Respond(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid negotiation id.")
		return
	}

	var req RespondNegotiationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	n, err := h.respondUC.Execute(c.Request.Context(), ucNegotiation.RespondInput{
		NegotiationPublicID: publicID,
		Accept:              req.Accept,
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "negotiation_respond_failed", "Could not record response.")
		}
		return
	}

	httpresp.OK(c, n)
}

// GET /api/negotiations/booking/:id (ops)
func (h *NegotiationHandler) ListByBooking(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	b, err := h.repo.GetBookingByPublicID(c.Request.Context(), publicID)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	list, err := h.repo.ListByBooking(c.Request.Context(), b.ID)
	if err != nil {
		httperr.Internal(c, "negotiation_list_failed", "Could not list negotiations.")
		return
	}

	httpresp.List(c, list)
}
