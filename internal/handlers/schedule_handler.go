package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbershop-pro/booking-api/internal/httperr"
	"github.com/barbershop-pro/booking-api/internal/middleware"
	ucschedule "github.com/barbershop-pro/booking-api/internal/usecase/schedule"
)

// ScheduleHandler is the admin schedule editor: week view plus slot
// add/remove, individually or in bulk.
type ScheduleHandler struct {
	addSlot      *ucschedule.AddSlot
	addSlotsBulk *ucschedule.AddSlotsBulk
	removeSlot   *ucschedule.RemoveSlot
	listDay      *ucschedule.ListDay
	listWeek     *ucschedule.ListWeek
}

func NewScheduleHandler(
	addSlot *ucschedule.AddSlot,
	addSlotsBulk *ucschedule.AddSlotsBulk,
	removeSlot *ucschedule.RemoveSlot,
	listDay *ucschedule.ListDay,
	listWeek *ucschedule.ListWeek,
) *ScheduleHandler {
	return &ScheduleHandler{
		addSlot:      addSlot,
		addSlotsBulk: addSlotsBulk,
		removeSlot:   removeSlot,
		listDay:      listDay,
		listWeek:     listWeek,
	}
}

// --------- Requests ---------

type AddSlotRequest struct {
	Day      string `json:"day" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
}

type AddSlotsBulkRequest struct {
	Days     []string `json:"days" binding:"required"`
	TimeSlot string   `json:"time_slot" binding:"required"`
}

type RemoveSlotRequest struct {
	Day      string `json:"day" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
}

// --------- Handlers ---------

func (h *ScheduleHandler) Week(c *gin.Context) {
	offset := 0
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_offset", "offset must be an integer")
			return
		}
		offset = n
	}

	view, err := h.listWeek.Execute(c.Request.Context(), offset)
	if err != nil {
		httperr.Internal(c, "failed_to_list_week", "could not load the week view")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *ScheduleHandler) Day(c *gin.Context) {
	day := c.Query("date")
	if day == "" {
		httperr.BadRequest(c, "missing_date", "date query parameter is required")
		return
	}

	slots, err := h.listDay.Execute(c.Request.Context(), day)
	if err != nil {
		writeError(c, err, "failed_to_list_day", "could not load the day")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  day,
		"slots": slots,
	})
}

func (h *ScheduleHandler) Add(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slot, err := h.addSlot.Execute(c.Request.Context(), userID, req.Day, req.TimeSlot)
	if err != nil {
		writeError(c, err, "failed_to_add_slot", "could not add the slot")
		return
	}

	c.JSON(http.StatusCreated, slot)
}

func (h *ScheduleHandler) AddBulk(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddSlotsBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	added, err := h.addSlotsBulk.Execute(c.Request.Context(), userID, req.Days, req.TimeSlot)
	if err != nil {
		writeError(c, err, "failed_to_add_slots", "could not add the slots")
		return
	}

	// zero added is reported, not treated as an error
	c.JSON(http.StatusOK, gin.H{"added": added})
}

func (h *ScheduleHandler) Remove(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req RemoveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.removeSlot.Execute(c.Request.Context(), userID, req.Day, req.TimeSlot); err != nil {
		writeError(c, err, "failed_to_remove_slot", "could not remove the slot")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
