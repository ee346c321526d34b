package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierops/atelier-scheduler/internal/httperr"
	"github.com/atelierops/atelier-scheduler/internal/middleware"
	"github.com/atelierops/atelier-scheduler/internal/models"
	"github.com/atelierops/atelier-scheduler/internal/timezone"
)

type WorkshopHandler struct {
	db *gorm.DB
}

func NewWorkshopHandler(db *gorm.DB) *WorkshopHandler {
	return &WorkshopHandler{db: db}
}

type UpdateWorkshopRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (h *WorkshopHandler) GetMeWorkshop(c *gin.Context) {
	workshopIDVal, _ := c.Get(middleware.ContextWorkshopID)
	workshopID := workshopIDVal.(uint)

	var shop models.Workshop
	if err := h.db.First(&shop, workshopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "workshop_not_found", "Taller no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_workshop", "Error al cargar el taller.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *WorkshopHandler) UpdateMeWorkshop(c *gin.Context) {
	workshopIDVal, _ := c.Get(middleware.ContextWorkshopID)
	workshopID := workshopIDVal.(uint)

	var shop models.Workshop
	if err := h.db.First(&shop, workshopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "workshop_not_found", "Taller no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_workshop", "Error al cargar el taller.")
		return
	}

	var req UpdateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Zona horaria desconocida.")
			return
		}
		shop.Timezone = *req.Timezone
	}
	if req.Notes != nil {
		shop.Notes = *req.Notes
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_workshop", "Error al guardar el taller.")
		return
	}

	c.JSON(http.StatusOK, shop)
}
