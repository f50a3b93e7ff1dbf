package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/suryadizhang/mh-scheduler/internal/domain/scheduling"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/httpresp"
	"github.com/suryadizhang/mh-scheduler/internal/middleware"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

// Roster de chefs e grade de disponibilidade: CRUD direto, sem use case
type ChefHandler struct {
	db *gorm.DB
}

func NewChefHandler(db *gorm.DB) *ChefHandler {
	return &ChefHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateChefRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	HomeLat float64 `json:"home_lat"`
	HomeLng float64 `json:"home_lng"`

	ServiceRadiusKm float64 `json:"service_radius_km"`
}

type UpsertAvailabilityRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Active    *bool  `json:"active"`
}

// ======================================================
// CHEFS
// ======================================================

func (h *ChefHandler) List(c *gin.Context) {
	stationID := c.MustGet(middleware.ContextStationID).(uint)

	var chefs []models.Chef
	if err := h.db.
		Where("station_id = ?", stationID).
		Order("name ASC").
		Find(&chefs).Error; err != nil {
		httperr.Internal(c, "chef_list_failed", "Could not list chefs.")
		return
	}

	httpresp.List(c, chefs)
}

func (h *ChefHandler) Create(c *gin.Context) {
	stationID := c.MustGet(middleware.ContextStationID).(uint)

	var req CreateChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	chef := models.Chef{
		StationID:       stationID,
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		HomeLat:         req.HomeLat,
		HomeLng:         req.HomeLng,
		ServiceRadiusKm: req.ServiceRadiusKm,
		Active:          true,
	}
	if err := h.db.Create(&chef).Error; err != nil {
		httperr.Internal(c, "chef_create_failed", "Could not create chef.")
		return
	}

	httpresp.Created(c, chef)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ChefHandler) UpsertAvailability(c *gin.Context) {
	stationID := c.MustGet(middleware.ContextStationID).(uint)
	chefID := c.Param("id")

	var chef models.Chef
	if err := h.db.
		Where("id = ? AND station_id = ?", chefID, stationID).
		First(&chef).Error; err != nil {
		httperr.NotFound(c, "chef_not_found", "Chef not found.")
		return
	}

	var req UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	// a grade usa os mesmos HH:mm dos slots
	if !scheduling.IsValidTimeOfDay(req.StartTime) || !scheduling.IsValidTimeOfDay(req.EndTime) {
		httperr.BadRequest(c, "invalid_time", "Times must be HH:mm.")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	var av models.ChefAvailability
	err := h.db.
		Where("chef_id = ? AND weekday = ?", chef.ID, req.Weekday).
		First(&av).Error

	if err == gorm.ErrRecordNotFound {
		av = models.ChefAvailability{
			ChefID:    chef.ID,
			Weekday:   req.Weekday,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Active:    active,
		}
		if err := h.db.Create(&av).Error; err != nil {
			httperr.Internal(c, "availability_save_failed", "Could not save availability.")
			return
		}
		httpresp.Created(c, av)
		return
	}
	if err != nil {
		httperr.Internal(c, "availability_save_failed", "Could not save availability.")
		return
	}

	av.StartTime = req.StartTime
	av.EndTime = req.EndTime
	av.Active = active
	if err := h.db.Save(&av).Error; err != nil {
		httperr.Internal(c, "availability_save_failed", "Could not save availability.")
		return
	}

	httpresp.OK(c, av)
}

func (h *ChefHandler) ListAvailability(c *gin.Context) {
	stationID := c.MustGet(middleware.ContextStationID).(uint)
	chefID := c.Param("id")

	var chef models.Chef
	if err := h.db.
		Where("id = ? AND station_id = ?", chefID, stationID).
		First(&chef).Error; err != nil {
		httperr.NotFound(c, "chef_not_found", "Chef not found.")
		return
	}

	var list []models.ChefAvailability
	if err := h.db.
		Where("chef_id = ?", chef.ID).
		Order("weekday ASC").
		Find(&list).Error; err != nil {
		httperr.Internal(c, "availability_list_failed", "Could not list availability.")
		return
	}

	httpresp.List(c, list)
}
