package booking

import "github.com/barbershop-pro/booking-api/internal/httperr"

// ===============================
// Wizard steps
// ===============================

type Step string

const (
	StepService   Step = "service"
	StepDateTime  Step = "datetime"
	StepContact   Step = "contact"
	StepSubmitted Step = "submitted"
)

// Draft is one customer's in-progress booking. It lives server-side so
// step validation cannot be bypassed and availability is re-checked at
// submission, not trusted from the client.
type Draft struct {
	ID   string `json:"id"`
	Step Step   `json:"step"`

	ServiceID uint   `json:"service_id"`
	Day       string `json:"day"`
	TimeSlot  string `json:"time_slot"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func NewDraft(id string) *Draft {
	return &Draft{ID: id, Step: StepService}
}

// Missing lists the required fields the current step still lacks.
func (d *Draft) Missing() []string {
	var missing []string
	switch d.Step {
	case StepService:
		if d.ServiceID == 0 {
			missing = append(missing, "service")
		}
	case StepDateTime:
		if d.Day == "" {
			missing = append(missing, "date")
		}
		if d.TimeSlot == "" {
			missing = append(missing, "time_slot")
		}
	case StepContact:
		if d.Name == "" {
			missing = append(missing, "name")
		}
		if d.Phone == "" {
			missing = append(missing, "phone")
		}
		if d.Email == "" {
			missing = append(missing, "email")
		}
	}
	return missing
}

// Advance moves one step forward. The transition is gated by the
// current step's required fields; on failure the draft stays where it
// is. Steps cannot be skipped, and the contact step only leaves via
// submission.
func (d *Draft) Advance() error {
	if len(d.Missing()) > 0 {
		return httperr.ErrBusiness("step_incomplete")
	}

	switch d.Step {
	case StepService:
		d.Step = StepDateTime
	case StepDateTime:
		d.Step = StepContact
	default:
		return httperr.ErrBusiness("cannot_advance")
	}
	return nil
}

// Back moves one step backward, unconditionally. Entered values are
// kept so returning forward does not lose progress.
func (d *Draft) Back() error {
	switch d.Step {
	case StepDateTime:
		d.Step = StepService
	case StepContact:
		d.Step = StepDateTime
	default:
		return httperr.ErrBusiness("cannot_go_back")
	}
	return nil
}

// ValidateComplete re-checks every field across all three steps. Used
// at submission so a draft mutated out of order can never book.
func (d *Draft) ValidateComplete() error {
	if d.Step != StepContact {
		return httperr.ErrBusiness("not_at_final_step")
	}
	if d.ServiceID == 0 || d.Day == "" || d.TimeSlot == "" ||
		d.Name == "" || d.Phone == "" || d.Email == "" {
		return httperr.ErrBusiness("step_incomplete")
	}
	return nil
}
