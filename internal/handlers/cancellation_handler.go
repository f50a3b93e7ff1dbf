package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/httpresp"
	"github.com/suryadizhang/mh-scheduler/internal/middleware"
	ucCancellation "github.com/suryadizhang/mh-scheduler/internal/usecase/cancellation"
)

type CancellationHandler struct {
	requestUC *ucCancellation.Request
	resolveUC *ucCancellation.Resolve
}

func NewCancellationHandler(
	requestUC *ucCancellation.Request,
	resolveUC *ucCancellation.Resolve,
) *CancellationHandler {
	return &CancellationHandler{
		requestUC: requestUC,
		resolveUC: resolveUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RequestCancellationRequest struct {
	RequestedBy string `json:"requested_by" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

type ResolveCancellationRequest struct {
	Note string `json:"note"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *CancellationHandler) Request(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req RequestCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.requestUC.Execute(c.Request.Context(), ucCancellation.RequestInput{
		BookingPublicID: publicID,
		RequestedBy:     req.RequestedBy,
		Reason:          req.Reason,
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "cancellation_request_failed", "Could not request cancellation.")
		}
		return
	}

	httpresp.OK(c, b)
}

func (h *CancellationHandler) Approve(c *gin.Context) {
	h.resolve(c, true)
}

func (h *CancellationHandler) Reject(c *gin.Context) {
	h.resolve(c, false)
}

func (h *CancellationHandler) resolve(c *gin.Context, approve bool) {
	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req ResolveCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	in := ucCancellation.ResolveInput{
		BookingPublicID: publicID,
		ResolvedBy:      "user:" + strconv.FormatUint(uint64(userID), 10),
		Note:            req.Note,
	}

	var b any
	if approve {
		b, err = h.resolveUC.Approve(c.Request.Context(), in)
	} else {
		b, err = h.resolveUC.Reject(c.Request.Context(), in)
	}
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "cancellation_resolve_failed", "Could not resolve cancellation.")
		}
		return
	}

	httpresp.OK(c, b)
}
