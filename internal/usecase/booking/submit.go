package booking

import (
	"context"

	appointmentdomain "github.com/barbershop-pro/booking-api/internal/domain/appointment"
	"github.com/barbershop-pro/booking-api/internal/models"
)

// Submit turns a completed draft into a persisted appointment. The
// repository consumes the availability slot in the same transaction, so
// two customers racing for one slot cannot both book it. On success the
// draft is discarded and the customer starts from a clean wizard.
func (w *Wizard) Submit(ctx context.Context, id string) (*models.Appointment, error) {
	d, err := w.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.ValidateComplete(); err != nil {
		return nil, err
	}

	// availability may have gone stale since the datetime step
	if err := w.validateSlot(ctx, d.Day, d.TimeSlot); err != nil {
		return nil, err
	}

	svc, err := w.repo.GetService(ctx, d.ServiceID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		PublicID:      w.newID(),
		CustomerName:  d.Name,
		CustomerPhone: d.Phone,
		CustomerEmail: d.Email,
		Day:           d.Day,
		TimeSlot:      d.TimeSlot,
		ServiceID:     svc.ID,
		Status:        string(appointmentdomain.InitialStatus(w.defaultStatus)),
	}

	if err := w.repo.BookSlot(ctx, ap); err != nil {
		return nil, err
	}

	// best effort; an expired draft just disappears on its own
	_ = w.drafts.Delete(ctx, id)

	ap.Service = *svc
	return ap, nil
}
