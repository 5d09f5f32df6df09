package schedule

import (
	"context"

	domain "github.com/barbershop-pro/booking-api/internal/domain/schedule"
	"github.com/barbershop-pro/booking-api/internal/models"
)

type ListDay struct {
	repo domain.Repository
}

func NewListDay(repo domain.Repository) *ListDay {
	return &ListDay{repo: repo}
}

// Execute lists a day's slots in time order. Closed days report an
// empty list no matter what the store holds.
func (uc *ListDay) Execute(
	ctx context.Context,
	day string,
) ([]models.AvailabilitySlot, error) {

	if _, err := domain.ParseDay(day); err != nil {
		return nil, err
	}

	if domain.IsClosedDay(day) {
		return []models.AvailabilitySlot{}, nil
	}

	return uc.repo.ListSlotsForDay(ctx, day)
}
