package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbershop-pro/booking-api/internal/httperr"
)

// business-error codes mapped to HTTP statuses; everything else is a 500
var businessStatus = map[string]int{
	"invalid_day":           http.StatusBadRequest,
	"invalid_time_slot":     http.StatusBadRequest,
	"closed_day":            http.StatusBadRequest,
	"day_in_past":           http.StatusBadRequest,
	"no_days_selected":      http.StatusBadRequest,
	"invalid_status":        http.StatusBadRequest,
	"invalid_email":         http.StatusBadRequest,
	"step_incomplete":       http.StatusBadRequest,
	"wrong_step":            http.StatusBadRequest,
	"cannot_advance":        http.StatusBadRequest,
	"cannot_go_back":        http.StatusBadRequest,
	"not_at_final_step":     http.StatusBadRequest,
	"confirmation_required": http.StatusBadRequest,
	"service_not_found":     http.StatusBadRequest,
	"appointment_not_found": http.StatusNotFound,
	"draft_not_found":       http.StatusNotFound,
	"slot_already_exists":   http.StatusConflict,
	"slot_unavailable":      http.StatusConflict,
	"time_conflict":         http.StatusConflict,
}

// writeError turns a business error into its mapped JSON response and
// everything else into a 500 with the given fallback code.
func writeError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	if code, ok := httperr.BusinessCode(err); ok {
		status, mapped := businessStatus[code]
		if !mapped {
			status = http.StatusBadRequest
		}
		httperr.Write(c, status, code, code)
		return
	}

	httperr.Internal(c, fallbackCode, fallbackMessage)
}
