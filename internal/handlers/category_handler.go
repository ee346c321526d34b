package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierops/atelier-scheduler/internal/middleware"
	"github.com/atelierops/atelier-scheduler/internal/models"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

// --------- Requests ---------

type CreateCategoryRequest struct {
	Name                string  `json:"name" binding:"required"`
	Description         string  `json:"description"`
	EstimatedHours      float64 `json:"estimated_hours" binding:"min=0"`
	ToleranceDays       int     `json:"tolerance_days" binding:"min=0"`
	RequiresAppointment bool    `json:"requires_appointment"`
	BasePrice           float64 `json:"base_price"`
}

type UpdateCategoryRequest struct {
	Name                *string  `json:"name,omitempty"`
	Description         *string  `json:"description,omitempty"`
	EstimatedHours      *float64 `json:"estimated_hours,omitempty"`
	ToleranceDays       *int     `json:"tolerance_days,omitempty"`
	RequiresAppointment *bool    `json:"requires_appointment,omitempty"`
	BasePrice           *float64 `json:"base_price,omitempty"`
	Active              *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *CategoryHandler) List(c *gin.Context) {
	workshopIDVal, _ := c.Get(middleware.ContextWorkshopID)
	workshopID := workshopIDVal.(uint)

	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("workshop_id = ?", workshopID)

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var categories []models.WorkCategory
	if err := q.
		Order("id ASC").
		Find(&categories).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	workshopIDVal, _ := c.Get(middleware.ContextWorkshopID)
	workshopID := workshopIDVal.(uint)

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	category := models.WorkCategory{
		WorkshopID:          workshopID,
		Name:                req.Name,
		Description:         req.Description,
		EstimatedHours:      req.EstimatedHours,
		ToleranceDays:       req.ToleranceDays,
		RequiresAppointment: req.RequiresAppointment,
		BasePrice:           req.BasePrice,
		Active:              true,
	}

	if err := h.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	workshopIDVal, _ := c.Get(middleware.ContextWorkshopID)
	workshopID := workshopIDVal.(uint)

	id := c.Param("id")

	var category models.WorkCategory
	if err := h.db.
		Where("id = ? AND workshop_id = ?", id, workshopID).
		First(&category).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "category_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_category"})
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.EstimatedHours != nil && *req.EstimatedHours < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_parameter"})
		return
	}
	if req.ToleranceDays != nil && *req.ToleranceDays < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_parameter"})
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.EstimatedHours != nil {
		category.EstimatedHours = *req.EstimatedHours
	}
	if req.ToleranceDays != nil {
		category.ToleranceDays = *req.ToleranceDays
	}
	if req.RequiresAppointment != nil {
		category.RequiresAppointment = *req.RequiresAppointment
	}
	if req.BasePrice != nil {
		category.BasePrice = *req.BasePrice
	}
	if req.Active != nil {
		// Toggling active only hides the category from new-work pickers;
		// existing works keep referencing it.
		category.Active = *req.Active
	}

	if err := h.db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_category"})
		return
	}

	c.JSON(http.StatusOK, category)
}
