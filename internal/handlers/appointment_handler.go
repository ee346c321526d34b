package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atelierops/atelier-scheduler/internal/httperr"
	"github.com/atelierops/atelier-scheduler/internal/httpresp"
	"github.com/atelierops/atelier-scheduler/internal/middleware"
	ucappointment "github.com/atelierops/atelier-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	scheduleUC    *ucappointment.Schedule
	setStatusUC   *ucappointment.SetStatus
	listByDateUC  *ucappointment.ListByDate
	listByMonthUC *ucappointment.ListByMonth
	dayAvailUC    *ucappointment.DayAvailability
	checkUC       *ucappointment.CheckAvailability
}

func NewAppointmentHandler(
	scheduleUC *ucappointment.Schedule,
	setStatusUC *ucappointment.SetStatus,
	listByDateUC *ucappointment.ListByDate,
	listByMonthUC *ucappointment.ListByMonth,
	dayAvailUC *ucappointment.DayAvailability,
	checkUC *ucappointment.CheckAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		scheduleUC:    scheduleUC,
		setStatusUC:   setStatusUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		dayAvailUC:    dayAvailUC,
		checkUC:       checkUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	WorkID   *uint  `json:"work_id"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Notes    string `json:"notes"`

	AllowBackfill bool `json:"allow_backfill"`
}

type SetAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.scheduleUC.Execute(c.Request.Context(), ucappointment.ScheduleInput{
		WorkshopID:    workshopID,
		UserID:        userID,
		WorkID:        req.WorkID,
		ClientID:      req.ClientID,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		AllowBackfill: req.AllowBackfill,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "No se pudo reservar la cita.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// SET STATUS
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	apID, err := strconv.Atoi(c.Param("id"))
	if err != nil || apID <= 0 {
		httperr.BadRequest(c, "invalid_parameter", "Identificador inválido.")
		return
	}

	var req SetAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.setStatusUC.Execute(
		c.Request.Context(),
		workshopID,
		userID,
		uint(apID),
		req.Status,
	)
	if err != nil {
		httperr.WriteBusiness(c, err, "No se pudo cambiar el estado de la cita.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_field", "Falta la fecha.")
		return
	}

	date, err := parseQueryDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_parameter", "Fecha inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), workshopID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar citas.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_parameter", "Mes o año inválido.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), workshopID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar citas.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_field", "Falta la fecha.")
		return
	}

	date, err := parseQueryDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_parameter", "Fecha inválida.")
		return
	}

	// Point check for a specific slot when time= is present.
	if hhmm := c.Query("time"); hhmm != "" {
		free, err := h.checkUC.Execute(c.Request.Context(), workshopID, date, hhmm)
		if err != nil {
			httperr.WriteBusiness(c, err, "No se pudo comprobar la disponibilidad.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"date": dateStr, "time": hhmm, "available": free})
		return
	}

	slots, err := h.dayAvailUC.Execute(c.Request.Context(), workshopID, date)
	if err != nil {
		httperr.WriteBusiness(c, err, "No se pudo calcular la disponibilidad.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
}
