package schedule

import (
	"context"

	"github.com/barbershop-pro/booking-api/internal/models"
)

// Repository is the availability store. (day, timeSlot) pairs are
// unique; the GORM implementation backs this with a composite unique
// index so concurrent adds of the same slot cannot both succeed.
type Repository interface {
	// CreateSlot inserts one slot. Returns the slot_already_exists
	// business error when the pair is already present.
	CreateSlot(ctx context.Context, day, timeSlot string) (*models.AvailabilitySlot, error)

	// DeleteSlot removes one slot. Removing an absent slot is a no-op
	// success; the reported bool says whether a row was deleted.
	DeleteSlot(ctx context.Context, day, timeSlot string) (bool, error)

	SlotExists(ctx context.Context, day, timeSlot string) (bool, error)

	// ListSlotsForDay returns the day's slots ordered by time_slot
	// ascending.
	ListSlotsForDay(ctx context.Context, day string) ([]models.AvailabilitySlot, error)

	ListSlotsForDays(ctx context.Context, days []string) ([]models.AvailabilitySlot, error)
}
