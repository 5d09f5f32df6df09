package booking

import (
	"context"

	"github.com/barbershop-pro/booking-api/internal/models"
)

type Repository interface {
	GetService(ctx context.Context, id uint) (*models.Service, error)

	// BookSlot creates the appointment and consumes the availability
	// slot in one transaction. It fails with slot_unavailable when the
	// (day, time_slot) pair is no longer in the store, and with
	// time_conflict when a non-cancelled appointment already occupies
	// it. Booking a slot removes it, so at most one active appointment
	// can ever hold a (day, time_slot) pair.
	BookSlot(ctx context.Context, ap *models.Appointment) error
}
