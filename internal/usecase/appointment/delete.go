package appointment

import (
	"context"

	"github.com/barbershop-pro/booking-api/internal/audit"
	domain "github.com/barbershop-pro/booking-api/internal/domain/appointment"
	"github.com/barbershop-pro/booking-api/internal/httperr"
)

type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Delete {
	return &Delete{
		repo:  repo,
		audit: audit,
	}
}

// Execute permanently deletes an appointment. The caller must pass the
// confirmation flag through from the interface; without it nothing is
// touched.
func (uc *Delete) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	confirmed bool,
) error {

	if !confirmed {
		return httperr.ErrBusiness("confirmation_required")
	}

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
