package appointment

import (
	"strings"

	"github.com/barbershop-pro/booking-api/internal/models"
)

// MatchesFilter applies the admin listing filter: the search term must
// appear (case-insensitively) in the customer name or email, and the
// status filter must be "all" or the appointment's own status.
func MatchesFilter(ap *models.Appointment, searchTerm, statusFilter string) bool {
	if statusFilter != FilterAll && ap.Status != statusFilter {
		return false
	}

	if searchTerm == "" {
		return true
	}

	term := strings.ToLower(searchTerm)
	return strings.Contains(strings.ToLower(ap.CustomerName), term) ||
		strings.Contains(strings.ToLower(ap.CustomerEmail), term)
}
