package schedule

import (
	"context"

	"github.com/barbershop-pro/booking-api/internal/audit"
	domain "github.com/barbershop-pro/booking-api/internal/domain/schedule"
	"github.com/barbershop-pro/booking-api/internal/httperr"
)

type AddSlotsBulk struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddSlotsBulk(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddSlotsBulk {
	return &AddSlotsBulk{
		repo:  repo,
		audit: audit,
	}
}

// Execute adds one time value across a set of days, skipping pairs that
// already exist. The returned count is how many were actually added;
// zero is a valid outcome, not an error.
func (uc *AddSlotsBulk) Execute(
	ctx context.Context,
	userID uint,
	days []string,
	timeSlot string,
) (int, error) {

	if len(days) == 0 {
		return 0, httperr.ErrBusiness("no_days_selected")
	}

	for _, day := range days {
		if err := domain.ValidateSlot(day, timeSlot); err != nil {
			return 0, err
		}
	}

	added := 0
	seen := make(map[string]bool, len(days))

	for _, day := range days {
		if seen[day] {
			continue
		}
		seen[day] = true

		_, err := uc.repo.CreateSlot(ctx, day, timeSlot)
		if err != nil {
			if httperr.IsBusiness(err, "slot_already_exists") {
				continue
			}
			return added, err
		}
		added++
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "slots_bulk_added",
		Entity: "availability_slot",
		Metadata: map[string]any{
			"days":      days,
			"time_slot": timeSlot,
			"added":     added,
		},
	})

	return added, nil
}
