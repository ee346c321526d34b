package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	workdomain "github.com/atelierops/atelier-scheduler/internal/domain/work"
	"github.com/atelierops/atelier-scheduler/internal/httperr"
	"github.com/atelierops/atelier-scheduler/internal/middleware"
	"github.com/atelierops/atelier-scheduler/internal/models"
	ucwork "github.com/atelierops/atelier-scheduler/internal/usecase/work"
)

// ======================================================
// HANDLER
// ======================================================

type WorkHandler struct {
	db        *gorm.DB
	createUC  *ucwork.Create
	advanceUC *ucwork.Advance
}

func NewWorkHandler(
	db *gorm.DB,
	createUC *ucwork.Create,
	advanceUC *ucwork.Advance,
) *WorkHandler {
	return &WorkHandler{
		db:        db,
		createUC:  createUC,
		advanceUC: advanceUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateWorkRequest struct {
	ClientID   uint `json:"client_id" binding:"required"`
	CategoryID uint `json:"category_id" binding:"required"`

	Price         *float64 `json:"price,omitempty"`
	DepositAmount float64  `json:"deposit_amount"`
	PaymentMethod string   `json:"payment_method"`

	EntryDate string `json:"entry_date"`
	Notes     string `json:"notes"`

	AppointmentDate  string `json:"appointment_date"`
	AppointmentTime  string `json:"appointment_time"`
	AppointmentNotes string `json:"appointment_notes"`
}

type UpdateWorkRequest struct {
	Price                 *float64 `json:"price,omitempty"`
	DepositAmount         *float64 `json:"deposit_amount,omitempty"`
	DepositStatus         *string  `json:"deposit_status,omitempty"`
	AmountPaid            *float64 `json:"amount_paid,omitempty"`
	PaymentMethod         *string  `json:"payment_method,omitempty"`
	TentativeDeliveryDate *string  `json:"tentative_delivery_date,omitempty"`
	ActualDeliveryDate    *string  `json:"actual_delivery_date,omitempty"`
	Notes                 *string  `json:"notes,omitempty"`
}

type AdvanceWorkRequest struct {
	Target string `json:"target" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *WorkHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	var req CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	w, err := h.createUC.Execute(c.Request.Context(), ucwork.CreateInput{
		WorkshopID:       workshopID,
		UserID:           userID,
		ClientID:         req.ClientID,
		CategoryID:       req.CategoryID,
		Price:            req.Price,
		DepositAmount:    req.DepositAmount,
		PaymentMethod:    req.PaymentMethod,
		EntryDate:        req.EntryDate,
		Notes:            req.Notes,
		AppointmentDate:  req.AppointmentDate,
		AppointmentTime:  req.AppointmentTime,
		AppointmentNotes: req.AppointmentNotes,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "No se pudo crear el trabajo.")
		return
	}

	c.JSON(http.StatusCreated, w)
}

// ======================================================
// LIST
// ======================================================

func (h *WorkHandler) List(c *gin.Context) {
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	filters := workdomain.ListFilters{
		Status: c.Query("status"),
	}

	if clientStr := c.Query("client_id"); clientStr != "" {
		if id, err := strconv.Atoi(clientStr); err == nil && id > 0 {
			filters.ClientID = uint(id)
		}
	}
	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			filters.EntryFrom = from
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			filters.EntryTo = to.Add(24 * time.Hour)
		}
	}

	q := h.db.
		Preload("Client").
		Preload("Category").
		Where("workshop_id = ?", workshopID)

	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.ClientID != 0 {
		q = q.Where("client_id = ?", filters.ClientID)
	}
	if !filters.EntryFrom.IsZero() {
		q = q.Where("entry_date >= ?", filters.EntryFrom)
	}
	if !filters.EntryTo.IsZero() {
		q = q.Where("entry_date < ?", filters.EntryTo)
	}

	var works []models.Work
	if err := q.Order("entry_date DESC").Find(&works).Error; err != nil {
		httperr.Internal(c, "failed_to_list_works", "Error al listar trabajos.")
		return
	}

	c.JSON(http.StatusOK, works)
}

// ======================================================
// UPDATE (operator edits; status changes go through Advance)
// ======================================================

func (h *WorkHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)
	id := c.Param("id")

	var w models.Work
	if err := h.db.
		Where("id = ? AND workshop_id = ?", id, workshopID).
		First(&w).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "work_not_found", "Trabajo no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_work", "Error al cargar el trabajo.")
		return
	}

	var req UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var shop models.Workshop
	if err := h.db.First(&shop, workshopID).Error; err != nil {
		httperr.Internal(c, "workshop_not_found", "Taller no encontrado.")
		return
	}

	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_parameter", "El precio no puede ser negativo.")
			return
		}
		w.Price = *req.Price
	}
	if req.DepositAmount != nil {
		if *req.DepositAmount < 0 {
			httperr.BadRequest(c, "invalid_parameter", "La señal no puede ser negativa.")
			return
		}
		w.DepositAmount = *req.DepositAmount
	}
	if req.DepositStatus != nil {
		w.DepositStatus = *req.DepositStatus
	}
	if req.AmountPaid != nil {
		if *req.AmountPaid < 0 {
			httperr.BadRequest(c, "invalid_parameter", "El importe pagado no puede ser negativo.")
			return
		}
		w.AmountPaid = *req.AmountPaid
	}
	if req.PaymentMethod != nil {
		w.PaymentMethod = *req.PaymentMethod
	}
	if req.TentativeDeliveryDate != nil {
		d, err := parseDateInShop(&shop, *req.TentativeDeliveryDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_parameter", "Fecha de entrega inválida.")
			return
		}
		w.TentativeDeliveryDate = d
	}
	if req.ActualDeliveryDate != nil {
		if *req.ActualDeliveryDate == "" {
			w.ActualDeliveryDate = nil
		} else {
			d, err := parseDateInShop(&shop, *req.ActualDeliveryDate)
			if err != nil {
				httperr.BadRequest(c, "invalid_parameter", "Fecha de entrega inválida.")
				return
			}
			w.ActualDeliveryDate = &d
		}
	}
	if req.Notes != nil {
		w.Notes = *req.Notes
	}

	if err := h.db.Save(&w).Error; err != nil {
		httperr.Internal(c, "failed_to_update_work", "Error al guardar el trabajo.")
		return
	}

	writeAudit(h.db, workshopID, &userID, "work_updated", "work", &w.ID, nil)

	c.JSON(http.StatusOK, w)
}

// ======================================================
// ADVANCE (lifecycle)
// ======================================================

func (h *WorkHandler) Advance(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	workID, err := strconv.Atoi(c.Param("id"))
	if err != nil || workID <= 0 {
		httperr.BadRequest(c, "invalid_parameter", "Identificador inválido.")
		return
	}

	var req AdvanceWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	w, err := h.advanceUC.Execute(
		c.Request.Context(),
		workshopID,
		userID,
		uint(workID),
		req.Target,
	)
	if err != nil {
		httperr.WriteBusiness(c, err, "No se pudo cambiar el estado.")
		return
	}

	c.JSON(http.StatusOK, w)
}

// ======================================================
// DELETE
// ======================================================

func (h *WorkHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	workID, err := strconv.Atoi(c.Param("id"))
	if err != nil || workID <= 0 {
		httperr.BadRequest(c, "invalid_parameter", "Identificador inválido.")
		return
	}

	res := h.db.
		Where("id = ? AND workshop_id = ?", workID, workshopID).
		Delete(&models.Work{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_work", "Error al borrar el trabajo.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "work_not_found", "Trabajo no encontrado.")
		return
	}

	id := uint(workID)
	writeAudit(h.db, workshopID, &userID, "work_deleted", "work", &id, nil)

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
