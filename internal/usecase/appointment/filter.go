package appointment

import (
	"context"

	domain "github.com/barbershop-pro/booking-api/internal/domain/appointment"
	"github.com/barbershop-pro/booking-api/internal/httperr"
	"github.com/barbershop-pro/booking-api/internal/models"
)

type Filter struct {
	repo domain.Repository
}

func NewFilter(repo domain.Repository) *Filter {
	return &Filter{repo: repo}
}

// Execute lists appointments matching the admin search term and status
// filter. The store's (day, time_slot) order is preserved; no re-sort
// happens here.
func (uc *Filter) Execute(
	ctx context.Context,
	searchTerm string,
	statusFilter string,
) ([]models.Appointment, error) {

	if statusFilter == "" {
		statusFilter = domain.FilterAll
	}
	if !domain.ValidFilterStatus(statusFilter) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Appointment, 0, len(all))
	for i := range all {
		if domain.MatchesFilter(&all[i], searchTerm, statusFilter) {
			out = append(out, all[i])
		}
	}

	return out, nil
}
