package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/httpresp"
	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

type StationHandler struct {
	db *gorm.DB
}

func NewStationHandler(db *gorm.DB) *StationHandler {
	return &StationHandler{db: db}
}

type CreateStationRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`

	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Timezone string  `json:"timezone"`

	ServiceRadiusKm float64 `json:"service_radius_km"`
}

func (h *StationHandler) List(c *gin.Context) {
	var stations []models.Station
	if err := h.db.
		Where("active = true").
		Order("name ASC").
		Find(&stations).Error; err != nil {
		httperr.Internal(c, "station_list_failed", "Could not list stations.")
		return
	}

	httpresp.List(c, stations)
}

func (h *StationHandler) Create(c *gin.Context) {
	var req CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var count int64
	h.db.Model(&models.Station{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", "Slug already in use.")
		return
	}

	tz := req.Timezone
	if tz == "" {
		tz = timezone.DefaultTimezone
	}
	if !timezone.IsValid(tz) {
		httperr.BadRequest(c, "invalid_timezone", "Invalid timezone.")
		return
	}

	radius := req.ServiceRadiusKm
	if radius <= 0 {
		radius = 80
	}

	station := models.Station{
		Name:            req.Name,
		Slug:            slug,
		Address:         req.Address,
		Lat:             req.Lat,
		Lng:             req.Lng,
		Timezone:        tz,
		ServiceRadiusKm: radius,
		Active:          true,
	}
	if err := h.db.Create(&station).Error; err != nil {
		httperr.Internal(c, "station_create_failed", "Could not create station.")
		return
	}

	httpresp.Created(c, station)
}
