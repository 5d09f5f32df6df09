package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbershop-pro/booking-api/internal/httperr"
)

// ReportHandler aggregates booking data for the admin dashboard.
type ReportHandler struct {
	db *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db}
}

type DailyReportRow struct {
	Day          string  `json:"day"`
	Appointments int64   `json:"appointments"`
	Revenue      float64 `json:"revenue"`
}

type ServiceReportRow struct {
	ServiceName  string  `json:"service_name"`
	Appointments int64   `json:"appointments"`
	Revenue      float64 `json:"revenue"`
}

// Summary reports per-day counts and per-service revenue over a date
// range. Cancelled appointments are excluded from both.
func (h *ReportHandler) Summary(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")

	if fromStr == "" || toStr == "" {
		httperr.BadRequest(c, "missing_range", "from and to query parameters are required")
		return
	}

	if _, err := time.Parse("2006-01-02", fromStr); err != nil {
		httperr.BadRequest(c, "invalid_from", "from must be formatted as 2006-01-02")
		return
	}
	if _, err := time.Parse("2006-01-02", toStr); err != nil {
		httperr.BadRequest(c, "invalid_to", "to must be formatted as 2006-01-02")
		return
	}
	if toStr < fromStr {
		httperr.BadRequest(c, "invalid_range", "to must not precede from")
		return
	}

	var daily []DailyReportRow
	if err := h.db.
		Table("appointments").
		Select("appointments.day AS day, COUNT(*) AS appointments, COALESCE(SUM(services.price), 0) AS revenue").
		Joins("LEFT JOIN services ON services.id = appointments.service_id").
		Where("appointments.day BETWEEN ? AND ?", fromStr, toStr).
		Where("appointments.status <> ?", "cancelled").
		Group("appointments.day").
		Order("appointments.day ASC").
		Scan(&daily).Error; err != nil {

		httperr.Internal(c, "failed_to_build_report", "could not build the daily report")
		return
	}

	var byService []ServiceReportRow
	if err := h.db.
		Table("appointments").
		Select("services.name AS service_name, COUNT(*) AS appointments, COALESCE(SUM(services.price), 0) AS revenue").
		Joins("LEFT JOIN services ON services.id = appointments.service_id").
		Where("appointments.day BETWEEN ? AND ?", fromStr, toStr).
		Where("appointments.status <> ?", "cancelled").
		Group("services.name").
		Order("revenue DESC").
		Scan(&byService).Error; err != nil {

		httperr.Internal(c, "failed_to_build_report", "could not build the service report")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":         fromStr,
		"to":           toStr,
		"daily":        daily,
		"by_service":   byService,
		"generated_at": time.Now().UTC(),
	})
}
