package appointment

import "github.com/barbershop-pro/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// FilterAll matches every status in admin listings.
const FilterAll = "all"

// ParseStatus validates an admin-supplied status value. Any status is
// reachable from any other, so there is no transition table; only the
// enum itself is enforced. Setting the current status again is a no-op.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func ValidFilterStatus(s string) bool {
	if s == FilterAll {
		return true
	}
	_, err := ParseStatus(s)
	return err == nil
}

// InitialStatus resolves the status a freshly booked appointment gets.
// The choice is a deployment decision, not hard-coded.
func InitialStatus(configured string) Status {
	if st, err := ParseStatus(configured); err == nil && st != StatusCancelled {
		return st
	}
	return StatusPending
}
