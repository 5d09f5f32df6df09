package schedule

import (
	"context"

	"github.com/barbershop-pro/booking-api/internal/audit"
	domain "github.com/barbershop-pro/booking-api/internal/domain/schedule"
	"github.com/barbershop-pro/booking-api/internal/models"
)

type AddSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddSlot {
	return &AddSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddSlot) Execute(
	ctx context.Context,
	userID uint,
	day string,
	timeSlot string,
) (*models.AvailabilitySlot, error) {

	if err := domain.ValidateSlot(day, timeSlot); err != nil {
		return nil, err
	}

	slot, err := uc.repo.CreateSlot(ctx, day, timeSlot)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "slot_added",
		Entity:   "availability_slot",
		EntityID: &slot.ID,
		Metadata: map[string]any{"day": day, "time_slot": timeSlot},
	})

	return slot, nil
}
