package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/barbershop-pro/booking-api/internal/domain/booking"
	scheduledomain "github.com/barbershop-pro/booking-api/internal/domain/schedule"
	"github.com/barbershop-pro/booking-api/internal/httperr"
	"github.com/barbershop-pro/booking-api/internal/timezone"
	"github.com/barbershop-pro/booking-api/internal/validators"
)

// Wizard drives the three-step booking flow. Drafts live in the draft
// store between requests; only Submit touches the appointment table.
type Wizard struct {
	drafts domain.DraftStore
	repo   domain.Repository
	slots  scheduledomain.Repository

	defaultStatus string
	tz            string

	now   func() time.Time
	newID func() string
}

func NewWizard(
	drafts domain.DraftStore,
	repo domain.Repository,
	slots scheduledomain.Repository,
	defaultStatus string,
	tz string,
) *Wizard {
	return &Wizard{
		drafts:        drafts,
		repo:          repo,
		slots:         slots,
		defaultStatus: defaultStatus,
		tz:            tz,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

func (w *Wizard) Start(ctx context.Context) (*domain.Draft, error) {
	d := domain.NewDraft(w.newID())
	if err := w.drafts.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (w *Wizard) Get(ctx context.Context, id string) (*domain.Draft, error) {
	return w.drafts.Get(ctx, id)
}

func (w *Wizard) SetService(
	ctx context.Context,
	id string,
	serviceID uint,
) (*domain.Draft, error) {

	d, err := w.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if d.Step != domain.StepService {
		return nil, httperr.ErrBusiness("wrong_step")
	}

	if serviceID != 0 {
		if _, err := w.repo.GetService(ctx, serviceID); err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
	}

	d.ServiceID = serviceID

	if err := d.Advance(); err != nil {
		// keep partial progress, stay on the step
		if saveErr := w.drafts.Save(ctx, d); saveErr != nil {
			return nil, saveErr
		}
		return d, err
	}

	if err := w.drafts.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (w *Wizard) SetDateTime(
	ctx context.Context,
	id string,
	day string,
	timeSlot string,
) (*domain.Draft, error) {

	d, err := w.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if d.Step != domain.StepDateTime {
		return nil, httperr.ErrBusiness("wrong_step")
	}

	d.Day = day
	d.TimeSlot = timeSlot

	if len(d.Missing()) > 0 {
		if saveErr := w.drafts.Save(ctx, d); saveErr != nil {
			return nil, saveErr
		}
		return d, httperr.ErrBusiness("step_incomplete")
	}

	if err := w.validateSlot(ctx, day, timeSlot); err != nil {
		return nil, err
	}

	if err := d.Advance(); err != nil {
		return d, err
	}

	if err := w.drafts.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (w *Wizard) SetContact(
	ctx context.Context,
	id string,
	name string,
	phone string,
	email string,
) (*domain.Draft, error) {

	d, err := w.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if d.Step != domain.StepContact {
		return nil, httperr.ErrBusiness("wrong_step")
	}

	d.Name = strings.TrimSpace(name)
	d.Phone = strings.TrimSpace(phone)
	d.Email = strings.ToLower(strings.TrimSpace(email))

	if len(d.Missing()) > 0 {
		if saveErr := w.drafts.Save(ctx, d); saveErr != nil {
			return nil, saveErr
		}
		return d, httperr.ErrBusiness("step_incomplete")
	}

	if !validators.IsEmailShapeValid(d.Email) {
		return d, httperr.ErrBusiness("invalid_email")
	}

	if err := w.drafts.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (w *Wizard) Back(ctx context.Context, id string) (*domain.Draft, error) {
	d, err := w.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.Back(); err != nil {
		return d, err
	}

	if err := w.drafts.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// validateSlot re-checks the chosen (day, time) against the grid, the
// closing day, the calendar, and the availability store. The store
// check can go stale before submission; BookSlot settles it for real.
func (w *Wizard) validateSlot(ctx context.Context, day, timeSlot string) error {
	if err := scheduledomain.ValidateSlot(day, timeSlot); err != nil {
		return err
	}

	today := w.now().In(timezone.Location(w.tz)).Format(scheduledomain.DayLayout)
	if day < today {
		return httperr.ErrBusiness("day_in_past")
	}

	exists, err := w.slots.SlotExists(ctx, day, timeSlot)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.ErrBusiness("slot_unavailable")
	}

	return nil
}
