package schedule

import (
	"context"

	"github.com/barbershop-pro/booking-api/internal/audit"
	domain "github.com/barbershop-pro/booking-api/internal/domain/schedule"
)

type RemoveSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveSlot {
	return &RemoveSlot{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes one slot. Removing a slot that is not there is a
// no-op success, which makes retried deletes harmless.
func (uc *RemoveSlot) Execute(
	ctx context.Context,
	userID uint,
	day string,
	timeSlot string,
) error {

	if _, err := domain.ParseDay(day); err != nil {
		return err
	}

	removed, err := uc.repo.DeleteSlot(ctx, day, timeSlot)
	if err != nil {
		return err
	}

	if removed {
		uc.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   "slot_removed",
			Entity:   "availability_slot",
			Metadata: map[string]any{"day": day, "time_slot": timeSlot},
		})
	}

	return nil
}
