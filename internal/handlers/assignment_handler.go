package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/httpresp"
	"github.com/suryadizhang/mh-scheduler/internal/notify"
	ucAssignment "github.com/suryadizhang/mh-scheduler/internal/usecase/assignment"
	ucNegotiation "github.com/suryadizhang/mh-scheduler/internal/usecase/negotiation"
)

type AssignmentHandler struct {
	assignUC  *ucAssignment.AssignChef
	proposeUC *ucNegotiation.Propose
}

func NewAssignmentHandler(
	assignUC *ucAssignment.AssignChef,
	proposeUC *ucNegotiation.Propose,
) *AssignmentHandler {
	return &AssignmentHandler{assignUC: assignUC, proposeUC: proposeUC}
}

type AssignChefRequest struct {
	PreferredChefID   *uint `json:"preferred_chef_id"`
	PreferredRequired bool  `json:"preferred_required"`
}

// POST /api/bookings/:id/assign
func (h *AssignmentHandler) Assign(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	// corpo vazio = atribuição automática sem preferência
	var req AssignChefRequest
	_ = c.ShouldBindJSON(&req)

	a, err := h.assignUC.Execute(c.Request.Context(), ucAssignment.AssignChefInput{
		BookingPublicID:   publicID,
		PreferredChefID:   req.PreferredChefID,
		PreferredRequired: req.PreferredRequired,
	})
	if err != nil {
		if httperr.IsBusiness(err, "no_chef_available") && h.fallbackToNegotiation(c, publicID) {
			return
		}
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "assignment_failed", "Could not assign a chef.")
		}
		return
	}

	httpresp.Created(c, a)
}

// fallbackToNegotiation tenta a saída sem chef: outro booking ativo no
// mesmo slot recebe proposta de deslocamento com incentivo. Devolve
// false quando não há candidato (o erro original segue para o cliente).
func (h *AssignmentHandler) fallbackToNegotiation(c *gin.Context, bookingID uuid.UUID) bool {
	cand, err := h.assignUC.NegotiationFallback(c.Request.Context(), bookingID)
	if err != nil || cand == nil {
		return false
	}

	n, err := h.proposeUC.Execute(c.Request.Context(), ucNegotiation.ProposeInput{
		BookingPublicID: cand.BookingPublicID,
		ShiftMinutes:    cand.ShiftMinutes,
		Channel:         notify.ChannelSMS,
	})
	if err != nil {
		return false
	}

	httpresp.OK(c, gin.H{
		"fallback":    "negotiation",
		"negotiation": n,
	})
	return true
}
