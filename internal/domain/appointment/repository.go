package appointment

import (
	"context"

	"github.com/barbershop-pro/booking-api/internal/models"
)

type Repository interface {
	// ListAll returns every appointment ordered by (day, time_slot)
	// ascending with the service preloaded. Admin filtering happens in
	// memory over this order, so the collection order is preserved.
	ListAll(ctx context.Context) ([]models.Appointment, error)

	GetByID(ctx context.Context, id uint) (*models.Appointment, error)

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// DeleteAppointment is permanent.
	DeleteAppointment(ctx context.Context, id uint) error
}
