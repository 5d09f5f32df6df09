package schedule

import (
	"context"
	"time"

	domain "github.com/barbershop-pro/booking-api/internal/domain/schedule"
	"github.com/barbershop-pro/booking-api/internal/models"
)

type WeekDay struct {
	Day    string                    `json:"day"`
	Closed bool                      `json:"closed"`
	Slots  []models.AvailabilitySlot `json:"slots"`
}

type WeekView struct {
	Offset int       `json:"offset"`
	Start  string    `json:"start"`
	End    string    `json:"end"`
	Days   []WeekDay `json:"days"`
}

type ListWeek struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListWeek(repo domain.Repository, now func() time.Time) *ListWeek {
	if now == nil {
		now = time.Now
	}
	return &ListWeek{repo: repo, now: now}
}

// Execute builds the Monday-start week window the schedule editor shows,
// shifted by offset weeks from the current one.
func (uc *ListWeek) Execute(
	ctx context.Context,
	offset int,
) (*WeekView, error) {

	days := domain.WeekDays(uc.now(), offset)

	slots, err := uc.repo.ListSlotsForDays(ctx, days)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.AvailabilitySlot, len(days))
	for _, s := range slots {
		byDay[s.Day] = append(byDay[s.Day], s)
	}

	view := &WeekView{
		Offset: offset,
		Start:  days[0],
		End:    days[len(days)-1],
		Days:   make([]WeekDay, 0, len(days)),
	}

	for _, day := range days {
		wd := WeekDay{
			Day:    day,
			Closed: domain.IsClosedDay(day),
			Slots:  byDay[day],
		}
		if wd.Slots == nil {
			wd.Slots = []models.AvailabilitySlot{}
		}
		if wd.Closed {
			wd.Slots = []models.AvailabilitySlot{}
		}
		view.Days = append(view.Days, wd)
	}

	return view, nil
}
