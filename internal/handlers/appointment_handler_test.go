package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbershop-pro/booking-api/internal/audit"
	"github.com/barbershop-pro/booking-api/internal/dto"
	"github.com/barbershop-pro/booking-api/internal/httpresp"
	"github.com/barbershop-pro/booking-api/internal/middleware"
	"github.com/barbershop-pro/booking-api/internal/models"
	ucappointment "github.com/barbershop-pro/booking-api/internal/usecase/appointment"
)

type stubAppointmentRepo struct {
	appointments []models.Appointment
	deleted      []uint
}

func (s *stubAppointmentRepo) ListAll(_ context.Context) ([]models.Appointment, error) {
	return s.appointments, nil
}

func (s *stubAppointmentRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			ap := s.appointments[i]
			return &ap, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *stubAppointmentRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range s.appointments {
		if s.appointments[i].ID == ap.ID {
			s.appointments[i] = *ap
		}
	}
	return nil
}

func (s *stubAppointmentRepo) DeleteAppointment(_ context.Context, id uint) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func newAppointmentRouter(repo *stubAppointmentRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dispatcher := audit.NewDispatcher(nil)
	h := NewAppointmentHandler(
		ucappointment.NewFilter(repo),
		ucappointment.NewSetStatus(repo, dispatcher),
		ucappointment.NewDelete(repo, dispatcher),
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(7))
		c.Set(middleware.ContextUserRole, models.RoleAdmin)
	})
	r.GET("/appointments", h.List)
	r.PATCH("/appointments/:id/status", h.SetStatus)
	r.DELETE("/appointments/:id", h.Delete)
	return r
}

func seedAppointments() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: []models.Appointment{
		{ID: 1, CustomerName: "João Silva", CustomerEmail: "joao@example.com", Day: "2024-07-15", TimeSlot: "09:00", Status: "confirmed", Service: models.Service{Name: "Corte Clássico"}},
		{ID: 2, CustomerName: "Maria Souza", CustomerEmail: "maria@example.com", Day: "2024-07-15", TimeSlot: "10:00", Status: "pending", Service: models.Service{Name: "Barba Completa"}},
	}}
}

func TestAppointmentListFiltered(t *testing.T) {
	r := newAppointmentRouter(seedAppointments())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/appointments?search=maria&status=pending", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body httpresp.ListResponse[dto.AppointmentListDTO]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Equal(t, 1, body.Total)
	assert.Equal(t, "Maria Souza", body.Data[0].CustomerName)
	assert.Equal(t, "Barba Completa", body.Data[0].ServiceName)
}

func TestAppointmentListBadStatus(t *testing.T) {
	r := newAppointmentRouter(seedAppointments())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/appointments?status=finished", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_status")
}

func TestAppointmentSetStatus(t *testing.T) {
	repo := seedAppointments()
	r := newAppointmentRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/appointments/2/status",
		strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", repo.appointments[1].Status)
}

func TestAppointmentSetStatusMissing(t *testing.T) {
	r := newAppointmentRouter(seedAppointments())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/appointments/99/status",
		strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "appointment_not_found")
}

func TestAppointmentDeleteNeedsConfirm(t *testing.T) {
	repo := seedAppointments()
	r := newAppointmentRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/appointments/1",
		strings.NewReader(`{"confirm":false}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "confirmation_required")
	assert.Empty(t, repo.deleted)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/appointments/1",
		strings.NewReader(`{"confirm":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{1}, repo.deleted)
}
