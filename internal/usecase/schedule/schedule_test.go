package schedule

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/barbershop-pro/booking-api/internal/audit"
	"github.com/barbershop-pro/booking-api/internal/httperr"
	"github.com/barbershop-pro/booking-api/internal/models"
)

// fakeSlotRepo keeps slots in a map keyed "day|time" and hands them
// back sorted by time, matching the ordering the real store guarantees.
type fakeSlotRepo struct {
	slots  map[string]models.AvailabilitySlot
	nextID uint
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]models.AvailabilitySlot)}
}

func (f *fakeSlotRepo) key(day, timeSlot string) string { return day + "|" + timeSlot }

func (f *fakeSlotRepo) CreateSlot(_ context.Context, day, timeSlot string) (*models.AvailabilitySlot, error) {
	k := f.key(day, timeSlot)
	if _, ok := f.slots[k]; ok {
		return nil, httperr.ErrBusiness("slot_already_exists")
	}
	f.nextID++
	s := models.AvailabilitySlot{ID: f.nextID, Day: day, TimeSlot: timeSlot}
	f.slots[k] = s
	return &s, nil
}

func (f *fakeSlotRepo) DeleteSlot(_ context.Context, day, timeSlot string) (bool, error) {
	k := f.key(day, timeSlot)
	if _, ok := f.slots[k]; !ok {
		return false, nil
	}
	delete(f.slots, k)
	return true, nil
}

func (f *fakeSlotRepo) SlotExists(_ context.Context, day, timeSlot string) (bool, error) {
	_, ok := f.slots[f.key(day, timeSlot)]
	return ok, nil
}

func (f *fakeSlotRepo) ListSlotsForDay(_ context.Context, day string) ([]models.AvailabilitySlot, error) {
	out := []models.AvailabilitySlot{}
	for _, s := range f.slots {
		if s.Day == day {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimeSlot < out[j].TimeSlot })
	return out, nil
}

func (f *fakeSlotRepo) ListSlotsForDays(_ context.Context, days []string) ([]models.AvailabilitySlot, error) {
	want := make(map[string]bool, len(days))
	for _, d := range days {
		want[d] = true
	}
	out := []models.AvailabilitySlot{}
	for _, s := range f.slots {
		if want[s.Day] {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].TimeSlot < out[j].TimeSlot
	})
	return out, nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

func TestAddSlotRejectsInvalidInput(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := NewAddSlot(repo, testDispatcher())

	cases := []struct {
		day, timeSlot, code string
	}{
		{"2024/07/15", "10:00", "invalid_day"},
		{"2024-07-15", "10:15", "invalid_time_slot"},
		{"2024-07-15", "19:30", "invalid_time_slot"},
		{"2024-07-14", "10:00", "closed_day"},
	}

	for _, tt := range cases {
		_, err := uc.Execute(context.Background(), 1, tt.day, tt.timeSlot)
		if !httperr.IsBusiness(err, tt.code) {
			t.Fatalf("AddSlot(%q, %q) err=%v, want %q", tt.day, tt.timeSlot, err, tt.code)
		}
	}

	if len(repo.slots) != 0 {
		t.Fatalf("invalid input reached the store: %v", repo.slots)
	}
}

func TestAddSlotDuplicate(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := NewAddSlot(repo, testDispatcher())

	if _, err := uc.Execute(context.Background(), 1, "2024-07-15", "10:00"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := uc.Execute(context.Background(), 1, "2024-07-15", "10:00")
	if !httperr.IsBusiness(err, "slot_already_exists") {
		t.Fatalf("duplicate add err=%v", err)
	}
}

func TestRemoveSlotLeavesOthers(t *testing.T) {
	repo := newFakeSlotRepo()
	add := NewAddSlot(repo, testDispatcher())
	rm := NewRemoveSlot(repo, testDispatcher())
	list := NewListDay(repo)

	ctx := context.Background()
	for _, ts := range []string{"09:00", "10:00"} {
		if _, err := add.Execute(ctx, 1, "2024-07-15", ts); err != nil {
			t.Fatalf("add %s: %v", ts, err)
		}
	}

	if err := rm.Execute(ctx, 1, "2024-07-15", "09:00"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	slots, err := list.Execute(ctx, "2024-07-15")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(slots) != 1 || slots[0].TimeSlot != "10:00" {
		t.Fatalf("slots after remove = %v", slots)
	}
}

func TestRemoveSlotAbsentIsNoOp(t *testing.T) {
	repo := newFakeSlotRepo()
	rm := NewRemoveSlot(repo, testDispatcher())

	if err := rm.Execute(context.Background(), 1, "2024-07-15", "09:00"); err != nil {
		t.Fatalf("removing an absent slot should succeed, got %v", err)
	}
}

func TestAddSlotsBulk(t *testing.T) {
	repo := newFakeSlotRepo()
	bulk := NewAddSlotsBulk(repo, testDispatcher())
	ctx := context.Background()

	// Monday already has 14:00; Wednesday does not.
	if _, err := repo.CreateSlot(ctx, "2024-07-15", "14:00"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	added, err := bulk.Execute(ctx, 1, []string{"2024-07-15", "2024-07-17"}, "14:00")
	if err != nil {
		t.Fatalf("bulk: %v", err)
	}
	if added != 1 {
		t.Fatalf("added = %d, want 1", added)
	}

	for _, day := range []string{"2024-07-15", "2024-07-17"} {
		ok, _ := repo.SlotExists(ctx, day, "14:00")
		if !ok {
			t.Fatalf("missing slot on %s", day)
		}
	}
}

func TestAddSlotsBulkDedupesDays(t *testing.T) {
	repo := newFakeSlotRepo()
	bulk := NewAddSlotsBulk(repo, testDispatcher())

	added, err := bulk.Execute(context.Background(), 1,
		[]string{"2024-07-16", "2024-07-16"}, "11:00")
	if err != nil {
		t.Fatalf("bulk: %v", err)
	}
	if added != 1 {
		t.Fatalf("added = %d, want 1", added)
	}
}

func TestAddSlotsBulkValidation(t *testing.T) {
	repo := newFakeSlotRepo()
	bulk := NewAddSlotsBulk(repo, testDispatcher())
	ctx := context.Background()

	if _, err := bulk.Execute(ctx, 1, nil, "14:00"); !httperr.IsBusiness(err, "no_days_selected") {
		t.Fatalf("empty days err=%v", err)
	}

	// one closed day poisons the whole request, nothing is written
	_, err := bulk.Execute(ctx, 1, []string{"2024-07-15", "2024-07-14"}, "14:00")
	if !httperr.IsBusiness(err, "closed_day") {
		t.Fatalf("closed day err=%v", err)
	}
	if len(repo.slots) != 0 {
		t.Fatalf("partial write on invalid request: %v", repo.slots)
	}
}

func TestListDayClosedIsEmpty(t *testing.T) {
	repo := newFakeSlotRepo()
	// stale row on a Sunday must never surface
	repo.slots[repo.key("2024-07-14", "10:00")] = models.AvailabilitySlot{ID: 1, Day: "2024-07-14", TimeSlot: "10:00"}

	list := NewListDay(repo)
	slots, err := list.Execute(context.Background(), "2024-07-14")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("closed day returned %v", slots)
	}
}

func TestListWeek(t *testing.T) {
	repo := newFakeSlotRepo()
	ctx := context.Background()
	if _, err := repo.CreateSlot(ctx, "2024-07-16", "09:00"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := repo.CreateSlot(ctx, "2024-07-16", "09:30"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Wednesday 2024-07-17
	now := func() time.Time { return time.Date(2024, 7, 17, 12, 0, 0, 0, time.UTC) }
	uc := NewListWeek(repo, now)

	view, err := uc.Execute(ctx, 0)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if view.Start != "2024-07-15" || view.End != "2024-07-21" {
		t.Fatalf("week window %s..%s", view.Start, view.End)
	}
	if len(view.Days) != 7 {
		t.Fatalf("days = %d", len(view.Days))
	}

	tuesday := view.Days[1]
	if tuesday.Day != "2024-07-16" || len(tuesday.Slots) != 2 {
		t.Fatalf("tuesday = %+v", tuesday)
	}
	if tuesday.Slots[0].TimeSlot != "09:00" {
		t.Fatalf("slots out of order: %+v", tuesday.Slots)
	}

	sunday := view.Days[6]
	if !sunday.Closed || len(sunday.Slots) != 0 {
		t.Fatalf("sunday = %+v", sunday)
	}

	next, err := uc.Execute(ctx, 1)
	if err != nil {
		t.Fatalf("Execute offset 1: %v", err)
	}
	if next.Start != "2024-07-22" {
		t.Fatalf("next week start = %s", next.Start)
	}
}
