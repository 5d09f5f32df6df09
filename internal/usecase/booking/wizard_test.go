package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/barbershop-pro/booking-api/internal/domain/booking"
	"github.com/barbershop-pro/booking-api/internal/httperr"
	"github.com/barbershop-pro/booking-api/internal/models"
)

type memDraftStore struct {
	drafts map[string]domain.Draft
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{drafts: make(map[string]domain.Draft)}
}

func (m *memDraftStore) Save(_ context.Context, d *domain.Draft) error {
	m.drafts[d.ID] = *d
	return nil
}

func (m *memDraftStore) Get(_ context.Context, id string) (*domain.Draft, error) {
	d, ok := m.drafts[id]
	if !ok {
		return nil, httperr.ErrBusiness("draft_not_found")
	}
	return &d, nil
}

func (m *memDraftStore) Delete(_ context.Context, id string) error {
	delete(m.drafts, id)
	return nil
}

// fakeBookingRepo shares the slot set with fakeSlots so booking can
// consume from the same availability the wizard validates against.
type fakeBookingRepo struct {
	services map[uint]models.Service
	slots    *fakeSlots
	booked   []models.Appointment
}

func (f *fakeBookingRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &svc, nil
}

func (f *fakeBookingRepo) BookSlot(_ context.Context, ap *models.Appointment) error {
	k := ap.Day + "|" + ap.TimeSlot
	if !f.slots.set[k] {
		return httperr.ErrBusiness("slot_unavailable")
	}
	for _, b := range f.booked {
		if b.Day == ap.Day && b.TimeSlot == ap.TimeSlot && b.Status != "cancelled" {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	ap.ID = uint(len(f.booked) + 1)
	f.booked = append(f.booked, *ap)
	delete(f.slots.set, k)
	return nil
}

type fakeSlots struct {
	set map[string]bool
}

func (f *fakeSlots) CreateSlot(_ context.Context, day, timeSlot string) (*models.AvailabilitySlot, error) {
	f.set[day+"|"+timeSlot] = true
	return &models.AvailabilitySlot{Day: day, TimeSlot: timeSlot}, nil
}

func (f *fakeSlots) DeleteSlot(_ context.Context, day, timeSlot string) (bool, error) {
	k := day + "|" + timeSlot
	if !f.set[k] {
		return false, nil
	}
	delete(f.set, k)
	return true, nil
}

func (f *fakeSlots) SlotExists(_ context.Context, day, timeSlot string) (bool, error) {
	return f.set[day+"|"+timeSlot], nil
}

func (f *fakeSlots) ListSlotsForDay(_ context.Context, _ string) ([]models.AvailabilitySlot, error) {
	return nil, nil
}

func (f *fakeSlots) ListSlotsForDays(_ context.Context, _ []string) ([]models.AvailabilitySlot, error) {
	return nil, nil
}

func newTestWizard(t *testing.T, defaultStatus string) (*Wizard, *memDraftStore, *fakeBookingRepo, *fakeSlots) {
	t.Helper()

	slots := &fakeSlots{set: map[string]bool{
		"2024-07-15|10:00": true,
		"2024-07-16|14:30": true,
	}}
	repo := &fakeBookingRepo{
		services: map[uint]models.Service{
			1: {ID: 1, Name: "Corte Clássico", Price: 45, DurationMin: 30, Active: true},
		},
		slots: slots,
	}
	drafts := newMemDraftStore()

	w := NewWizard(drafts, repo, slots, defaultStatus, "UTC")
	// Wednesday 2024-07-10, so the seeded days lie in the future
	w.now = func() time.Time { return time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC) }

	n := 0
	w.newID = func() string {
		n++
		return map[int]string{1: "draft-1", 2: "appt-1"}[n]
	}
	return w, drafts, repo, slots
}

func completeDraft(t *testing.T, w *Wizard) *domain.Draft {
	t.Helper()
	ctx := context.Background()

	d, err := w.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := w.SetService(ctx, d.ID, 1); err != nil {
		t.Fatalf("SetService: %v", err)
	}
	if _, err := w.SetDateTime(ctx, d.ID, "2024-07-15", "10:00"); err != nil {
		t.Fatalf("SetDateTime: %v", err)
	}
	d, err = w.SetContact(ctx, d.ID, " Ana Lima ", "11999990000", " Ana@Example.com ")
	if err != nil {
		t.Fatalf("SetContact: %v", err)
	}
	return d
}

func TestWizardHappyPath(t *testing.T) {
	w, drafts, repo, slots := newTestWizard(t, "pending")
	ctx := context.Background()

	d := completeDraft(t, w)
	if d.Name != "Ana Lima" || d.Email != "ana@example.com" {
		t.Fatalf("contact not normalized: %+v", d)
	}

	ap, err := w.Submit(ctx, d.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if ap.Status != "pending" {
		t.Fatalf("status = %q", ap.Status)
	}
	if ap.PublicID != "appt-1" {
		t.Fatalf("public id = %q", ap.PublicID)
	}
	if ap.Service.Name != "Corte Clássico" {
		t.Fatalf("service = %+v", ap.Service)
	}

	// booking consumed the slot and discarded the draft
	if slots.set["2024-07-15|10:00"] {
		t.Fatal("slot still available after booking")
	}
	if _, ok := drafts.drafts[d.ID]; ok {
		t.Fatal("draft survived submission")
	}
	if len(repo.booked) != 1 {
		t.Fatalf("booked = %d", len(repo.booked))
	}
}

func TestWizardConfiguredInitialStatus(t *testing.T) {
	w, _, _, _ := newTestWizard(t, "confirmed")

	d := completeDraft(t, w)
	ap, err := w.Submit(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if ap.Status != "confirmed" {
		t.Fatalf("status = %q", ap.Status)
	}
}

func TestSetServiceUnknown(t *testing.T) {
	w, _, _, _ := newTestWizard(t, "pending")
	ctx := context.Background()

	d, _ := w.Start(ctx)
	_, err := w.SetService(ctx, d.ID, 42)
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("err = %v", err)
	}
}

func TestSetDateTimeIncomplete(t *testing.T) {
	w, _, _, _ := newTestWizard(t, "pending")
	ctx := context.Background()

	d, _ := w.Start(ctx)
	if _, err := w.SetService(ctx, d.ID, 1); err != nil {
		t.Fatalf("SetService: %v", err)
	}

	got, err := w.SetDateTime(ctx, d.ID, "2024-07-15", "")
	if !httperr.IsBusiness(err, "step_incomplete") {
		t.Fatalf("err = %v", err)
	}
	if got.Step != domain.StepDateTime {
		t.Fatalf("step = %q", got.Step)
	}

	// the partial date is kept for the next attempt
	saved, err := w.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if saved.Day != "2024-07-15" {
		t.Fatalf("saved day = %q", saved.Day)
	}
}

func TestSetDateTimeValidation(t *testing.T) {
	cases := []struct {
		name, day, timeSlot, code string
	}{
		{"unpublished slot", "2024-07-15", "11:00", "slot_unavailable"},
		{"closed day", "2024-07-14", "10:00", "closed_day"},
		{"past day", "2024-07-01", "10:00", "day_in_past"},
		{"off-grid time", "2024-07-15", "10:10", "invalid_time_slot"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			w, _, _, slots := newTestWizard(t, "pending")
			ctx := context.Background()
			slots.set["2024-07-01|10:00"] = true

			d, _ := w.Start(ctx)
			if _, err := w.SetService(ctx, d.ID, 1); err != nil {
				t.Fatalf("SetService: %v", err)
			}
			_, err := w.SetDateTime(ctx, d.ID, tt.day, tt.timeSlot)
			if !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("err = %v, want %q", err, tt.code)
			}
		})
	}
}

func TestSetContactInvalidEmail(t *testing.T) {
	w, _, _, _ := newTestWizard(t, "pending")
	ctx := context.Background()

	d, _ := w.Start(ctx)
	if _, err := w.SetService(ctx, d.ID, 1); err != nil {
		t.Fatalf("SetService: %v", err)
	}
	if _, err := w.SetDateTime(ctx, d.ID, "2024-07-15", "10:00"); err != nil {
		t.Fatalf("SetDateTime: %v", err)
	}

	_, err := w.SetContact(ctx, d.ID, "Ana", "11999990000", "not-an-email")
	if !httperr.IsBusiness(err, "invalid_email") {
		t.Fatalf("err = %v", err)
	}
}

func TestWizardBackKeepsValues(t *testing.T) {
	w, _, _, _ := newTestWizard(t, "pending")
	ctx := context.Background()

	d, _ := w.Start(ctx)
	if _, err := w.SetService(ctx, d.ID, 1); err != nil {
		t.Fatalf("SetService: %v", err)
	}
	if _, err := w.SetDateTime(ctx, d.ID, "2024-07-15", "10:00"); err != nil {
		t.Fatalf("SetDateTime: %v", err)
	}

	back, err := w.Back(ctx, d.ID)
	if err != nil {
		t.Fatalf("Back: %v", err)
	}
	if back.Step != domain.StepDateTime {
		t.Fatalf("step = %q", back.Step)
	}
	if back.Day != "2024-07-15" || back.TimeSlot != "10:00" {
		t.Fatalf("values lost on back: %+v", back)
	}
}

func TestSubmitRequiresFinalStep(t *testing.T) {
	w, _, _, _ := newTestWizard(t, "pending")
	ctx := context.Background()

	d, _ := w.Start(ctx)
	_, err := w.Submit(ctx, d.ID)
	if !httperr.IsBusiness(err, "not_at_final_step") {
		t.Fatalf("err = %v", err)
	}
}

func TestSubmitStaleSlot(t *testing.T) {
	w, _, _, slots := newTestWizard(t, "pending")
	ctx := context.Background()

	d := completeDraft(t, w)

	// the slot vanished between the datetime step and submission
	delete(slots.set, "2024-07-15|10:00")

	_, err := w.Submit(ctx, d.ID)
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("err = %v", err)
	}
}

func TestSubmitTimeConflict(t *testing.T) {
	w, _, repo, _ := newTestWizard(t, "pending")
	ctx := context.Background()

	d := completeDraft(t, w)
	repo.booked = append(repo.booked, models.Appointment{
		Day: "2024-07-15", TimeSlot: "10:00", Status: "confirmed",
	})

	_, err := w.Submit(ctx, d.ID)
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("err = %v", err)
	}
}

func TestSubmitUnknownDraft(t *testing.T) {
	w, _, _, _ := newTestWizard(t, "pending")

	_, err := w.Submit(context.Background(), "nope")
	if !httperr.IsBusiness(err, "draft_not_found") {
		t.Fatalf("err = %v", err)
	}
}
