package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbershop-pro/booking-api/internal/dto"
	"github.com/barbershop-pro/booking-api/internal/httperr"
	"github.com/barbershop-pro/booking-api/internal/httpresp"
	"github.com/barbershop-pro/booking-api/internal/middleware"
	ucappointment "github.com/barbershop-pro/booking-api/internal/usecase/appointment"
)

// AppointmentHandler is the admin appointment manager.
type AppointmentHandler struct {
	filter    *ucappointment.Filter
	setStatus *ucappointment.SetStatus
	delete    *ucappointment.Delete
}

func NewAppointmentHandler(
	filter *ucappointment.Filter,
	setStatus *ucappointment.SetStatus,
	deleteUC *ucappointment.Delete,
) *AppointmentHandler {
	return &AppointmentHandler{
		filter:    filter,
		setStatus: setStatus,
		delete:    deleteUC,
	}
}

// --------- Requests ---------

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type DeleteAppointmentRequest struct {
	Confirm bool `json:"confirm"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	search := c.Query("search")
	status := c.DefaultQuery("status", "all")

	aps, err := h.filter.Execute(c.Request.Context(), search, status)
	if err != nil {
		writeError(c, err, "failed_to_list_appointments", "could not list appointments")
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			PublicID:      ap.PublicID,
			CustomerName:  ap.CustomerName,
			CustomerPhone: ap.CustomerPhone,
			CustomerEmail: ap.CustomerEmail,
			Day:           ap.Day,
			TimeSlot:      ap.TimeSlot,
			ServiceName:   ap.Service.Name,
			Status:        ap.Status,
		})
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "appointment id must be numeric")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), userID, uint(id), req.Status)
	if err != nil {
		writeError(c, err, "failed_to_set_status", "could not change the status")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// Delete is permanent. The client must send confirm=true, mirroring the
// confirmation dialog in front of the destructive action.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "appointment id must be numeric")
		return
	}

	var req DeleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.delete.Execute(c.Request.Context(), userID, uint(id), req.Confirm); err != nil {
		writeError(c, err, "failed_to_delete_appointment", "could not delete the appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
