package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbershop-pro/booking-api/internal/audit"
	bookingdomain "github.com/barbershop-pro/booking-api/internal/domain/booking"
	"github.com/barbershop-pro/booking-api/internal/httperr"
	"github.com/barbershop-pro/booking-api/internal/metrics"
	ucbooking "github.com/barbershop-pro/booking-api/internal/usecase/booking"
)

// BookingHandler exposes the public three-step wizard. Every step works
// against a server-side draft so required-field gating cannot be
// bypassed by a crafted client.
type BookingHandler struct {
	wizard  *ucbooking.Wizard
	audit   *audit.Dispatcher
	metrics *metrics.HTTPMetrics
}

func NewBookingHandler(
	wizard *ucbooking.Wizard,
	dispatcher *audit.Dispatcher,
	m *metrics.HTTPMetrics,
) *BookingHandler {
	return &BookingHandler{
		wizard:  wizard,
		audit:   dispatcher,
		metrics: m,
	}
}

// --------- Requests ---------

type DraftServiceRequest struct {
	ServiceID uint `json:"service_id"`
}

type DraftDateTimeRequest struct {
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

type DraftContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// --------- Handlers ---------

func (h *BookingHandler) Start(c *gin.Context) {
	draft, err := h.wizard.Start(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_start_booking", "could not start booking")
		return
	}

	c.JSON(http.StatusCreated, draft)
}

func (h *BookingHandler) Get(c *gin.Context) {
	draft, err := h.wizard.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed_to_load_draft", "could not load booking draft")
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *BookingHandler) SetService(c *gin.Context) {
	var req DraftServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	draft, err := h.wizard.SetService(c.Request.Context(), c.Param("id"), req.ServiceID)
	if err != nil {
		h.writeStepError(c, draft, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *BookingHandler) SetDateTime(c *gin.Context) {
	var req DraftDateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	draft, err := h.wizard.SetDateTime(c.Request.Context(), c.Param("id"), req.Date, req.TimeSlot)
	if err != nil {
		h.writeStepError(c, draft, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *BookingHandler) SetContact(c *gin.Context) {
	var req DraftContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	draft, err := h.wizard.SetContact(c.Request.Context(), c.Param("id"), req.Name, req.Phone, req.Email)
	if err != nil {
		h.writeStepError(c, draft, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *BookingHandler) Back(c *gin.Context) {
	draft, err := h.wizard.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeStepError(c, draft, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *BookingHandler) Submit(c *gin.Context) {
	ap, err := h.wizard.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") || httperr.IsBusiness(err, "time_conflict") {
			h.metrics.ObserveBooking("conflict")
		} else {
			h.metrics.ObserveBooking("rejected")
		}
		writeError(c, err, "failed_to_book", "could not book the appointment")
		return
	}

	h.metrics.ObserveBooking("booked")

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"day": ap.Day, "time_slot": ap.TimeSlot},
	})

	c.JSON(http.StatusCreated, ap)
}

// writeStepError reports a field-level validation failure together with
// the fields the step still needs, leaving the draft where it was.
func (h *BookingHandler) writeStepError(c *gin.Context, draft *bookingdomain.Draft, err error) {
	if code, ok := httperr.BusinessCode(err); ok && code == "step_incomplete" && draft != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": code,
			"missing":    draft.Missing(),
		})
		return
	}

	writeError(c, err, "failed_to_update_draft", "could not update booking draft")
}
