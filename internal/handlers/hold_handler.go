package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	holdDomain "github.com/suryadizhang/mh-scheduler/internal/domain/hold"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/httpresp"
	ucHold "github.com/suryadizhang/mh-scheduler/internal/usecase/hold"
	"github.com/suryadizhang/mh-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type HoldHandler struct {
	createUC *ucHold.CreateHold
	signUC   *ucHold.SignAgreement
	payUC    *ucHold.PayDeposit
	repo     holdDomain.Repository
}

func NewHoldHandler(
	createUC *ucHold.CreateHold,
	signUC *ucHold.SignAgreement,
	payUC *ucHold.PayDeposit,
	repo holdDomain.Repository,
) *HoldHandler {
	return &HoldHandler{
		createUC: createUC,
		signUC:   signUC,
		payUC:    payUC,
		repo:     repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateHoldRequest struct {
	StationSlug string `json:"station_slug" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Slot        string `json:"slot" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	VenueAddress  string `json:"venue_address" binding:"required"`

	Adults   int `json:"adults" binding:"required,min=1"`
	Children int `json:"children"`
	Toddlers int `json:"toddlers"`
}

type SignAgreementRequest struct {
	SignatureName    string `json:"signature_name" binding:"required"`
	AgreementVersion string `json:"agreement_version" binding:"required"`
	ContentHash      string `json:"content_hash"`
}

// ======================================================
// CREATE
// ======================================================

func (h *HoldHandler) Create(c *gin.Context) {
	var req CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	phone := validators.NormalizePhone(req.CustomerPhone)
	if !validators.IsPhoneValid(phone) {
		httperr.BadRequest(c, "invalid_phone", "Invalid phone number.")
		return
	}

	hold, err := h.createUC.Execute(c.Request.Context(), ucHold.CreateHoldInput{
		StationSlug:   req.StationSlug,
		Date:          req.Date,
		Slot:          req.Slot,
		CustomerName:  req.CustomerName,
		CustomerPhone: phone,
		CustomerEmail: req.CustomerEmail,
		VenueAddress:  req.VenueAddress,
		Adults:        req.Adults,
		Children:      req.Children,
		Toddlers:      req.Toddlers,
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "hold_create_failed", "Could not create hold.")
		}
		return
	}

	httpresp.Created(c, hold)
}

// ======================================================
// SIGN / PAY
// ======================================================

func (h *HoldHandler) Sign(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid hold id.")
		return
	}

	var req SignAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	hold, err := h.signUC.Execute(c.Request.Context(), ucHold.SignAgreementInput{
		HoldPublicID:     publicID,
		SignatureName:    req.SignatureName,
		AgreementVersion: req.AgreementVersion,
		ContentHash:      req.ContentHash,
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "hold_sign_failed", "Could not record signature.")
		}
		return
	}

	httpresp.OK(c, hold)
}

func (h *HoldHandler) Pay(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid hold id.")
		return
	}

	booking, err := h.payUC.Execute(c.Request.Context(), publicID)
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "hold_pay_failed", "Could not record deposit.")
		}
		return
	}

	httpresp.OK(c, booking)
}

// ======================================================
// GET
// ======================================================

func (h *HoldHandler) Get(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid hold id.")
		return
	}

	hold, err := h.repo.GetHoldByPublicID(c.Request.Context(), publicID)
	if err != nil {
		httperr.NotFound(c, "hold_not_found", "Hold not found.")
		return
	}

	httpresp.OK(c, hold)
}
