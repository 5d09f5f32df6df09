package appointment

import (
	"context"

	"github.com/barbershop-pro/booking-api/internal/audit"
	domain "github.com/barbershop-pro/booking-api/internal/domain/appointment"
	"github.com/barbershop-pro/booking-api/internal/httperr"
	"github.com/barbershop-pro/booking-api/internal/models"
)

type SetStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetStatus {
	return &SetStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites the appointment status. Any status is reachable
// from any other; re-applying the current status is an idempotent no-op
// that skips the write.
func (uc *SetStatus) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	newStatus string,
) (*models.Appointment, error) {

	status, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.Status == string(status) {
		return ap, nil
	}

	ap.Status = string(status)
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": newStatus},
	})

	return ap, nil
}
