package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/suryadizhang/mh-scheduler/internal/audit"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/httpresp"
	infraRepo "github.com/suryadizhang/mh-scheduler/internal/infra/repository"
	"github.com/suryadizhang/mh-scheduler/internal/middleware"
	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

// ======================================================
// DYNAMIC VARIABLES (single source of truth da configuração)
// ======================================================

type DynVarHandler struct {
	db    *gorm.DB
	repo  *infraRepo.DynVarGormRepository
	audit *audit.Dispatcher
}

func NewDynVarHandler(
	db *gorm.DB,
	repo *infraRepo.DynVarGormRepository,
	audit *audit.Dispatcher,
) *DynVarHandler {
	return &DynVarHandler{db: db, repo: repo, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type UpsertDynVarRequest struct {
	Category string          `json:"category" binding:"required"`
	Key      string          `json:"key" binding:"required"`
	Value    json.RawMessage `json:"value" binding:"required"`

	EffectiveFrom *string `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *DynVarHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		httperr.Internal(c, "dynvar_list_failed", "Could not list variables.")
		return
	}
	httpresp.List(c, list)
}

func (h *DynVarHandler) Upsert(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	stationID := c.MustGet(middleware.ContextStationID).(uint)

	var req UpsertDynVarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	v := models.DynamicVariable{
		Category:  req.Category,
		Key:       req.Key,
		Value:     string(req.Value),
		UpdatedBy: &userID,
	}

	if req.EffectiveFrom != nil {
		t, err := timezone.ParseRFC3339(*req.EffectiveFrom)
		if err != nil {
			httperr.BadRequest(c, "invalid_effective_from", "Invalid effective_from.")
			return
		}
		v.EffectiveFrom = &t
	}
	if req.EffectiveTo != nil {
		t, err := timezone.ParseRFC3339(*req.EffectiveTo)
		if err != nil {
			httperr.BadRequest(c, "invalid_effective_to", "Invalid effective_to.")
			return
		}
		v.EffectiveTo = &t
	}

	if err := h.repo.Upsert(c.Request.Context(), &v); err != nil {
		httperr.Internal(c, "dynvar_save_failed", "Could not save variable.")
		return
	}

	h.audit.Dispatch(audit.Event{
		StationID: stationID,
		UserID:    &userID,
		Action:    "dynvar_upserted",
		Entity:    "dynamic_variable",
		EntityID:  &v.ID,
		Metadata:  gin.H{"category": v.Category, "key": v.Key},
	})

	httpresp.OK(c, v)
}

// Approve registra uma aprovação em categoria crítica. Dois admins
// distintos, ou um super admin, destravam a vigência.
func (h *DynVarHandler) Approve(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	stationID := c.MustGet(middleware.ContextStationID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Unauthorized(c, "user_not_found", "User not found.")
		return
	}

	category := c.Param("category")
	key := c.Param("key")

	v, err := h.repo.GetByCategoryAndKey(c.Request.Context(), category, key)
	if err != nil {
		httperr.NotFound(c, "dynvar_not_found", "Variable not found.")
		return
	}

	if err := dynvars.Approve(v, &user); err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "dynvar_approve_failed", "Could not approve variable.")
		}
		return
	}

	if dynvars.FullyApproved(v, &user) {
		now := timezone.Now()
		v.ApprovedAt = &now
	}

	if err := h.repo.Save(c.Request.Context(), v); err != nil {
		httperr.Internal(c, "dynvar_approve_failed", "Could not approve variable.")
		return
	}

	h.audit.Dispatch(audit.Event{
		StationID: stationID,
		UserID:    &userID,
		Action:    "dynvar_approved",
		Entity:    "dynamic_variable",
		EntityID:  &v.ID,
		Metadata:  gin.H{"category": v.Category, "key": v.Key},
	})

	httpresp.OK(c, v)
}
