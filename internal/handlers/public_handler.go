package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbershop-pro/booking-api/internal/httperr"
	"github.com/barbershop-pro/booking-api/internal/httpresp"
	"github.com/barbershop-pro/booking-api/internal/models"
	ucschedule "github.com/barbershop-pro/booking-api/internal/usecase/schedule"
)

// PublicHandler serves the unauthenticated marketing/booking reads.
type PublicHandler struct {
	db      *gorm.DB
	listDay *ucschedule.ListDay
}

func NewPublicHandler(db *gorm.DB, listDay *ucschedule.ListDay) *PublicHandler {
	return &PublicHandler{db: db, listDay: listDay}
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("id ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	httpresp.List(c, services)
}

// Availability lists what a customer may select for one day: exactly
// the store's slots, already time-ordered, empty on the closing day.
func (h *PublicHandler) Availability(c *gin.Context) {
	day := c.Query("date")
	if day == "" {
		httperr.BadRequest(c, "missing_date", "date query parameter is required")
		return
	}

	slots, err := h.listDay.Execute(c.Request.Context(), day)
	if err != nil {
		writeError(c, err, "failed_to_list_availability", "could not load availability")
		return
	}

	times := make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.TimeSlot)
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  day,
		"slots": times,
	})
}
