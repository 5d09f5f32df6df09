package schedule

import (
	"fmt"
	"time"

	"github.com/barbershop-pro/booking-api/internal/httperr"
)

// ===============================
// Shop hours
// ===============================

const (
	OpeningHour = 9
	ClosingHour = 20
	SlotMinutes = 30

	DayLayout  = "2006-01-02"
	TimeLayout = "15:04"
)

// ClosedWeekday is the weekly closing day. Nothing is bookable on it,
// regardless of what the availability store contains.
const ClosedWeekday = time.Sunday

// TimeSlots returns every valid slot start between opening and closing,
// in 30-minute steps. The last start is 19:00: a 19:30 slot would run
// past closing time.
func TimeSlots() []string {
	var slots []string
	for hour := OpeningHour; hour < ClosingHour; hour++ {
		for min := 0; min < 60; min += SlotMinutes {
			if hour == ClosingHour-1 && min == SlotMinutes {
				continue
			}
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, min))
		}
	}
	return slots
}

// ValidTimeSlot reports whether ts is a zero-padded HH:MM value on the
// shop's slot grid. Zero-padding keeps lexicographic order equal to
// chronological order.
func ValidTimeSlot(ts string) bool {
	t, err := time.Parse(TimeLayout, ts)
	if err != nil || t.Format(TimeLayout) != ts {
		return false
	}
	if t.Minute()%SlotMinutes != 0 {
		return false
	}
	if t.Hour() < OpeningHour || t.Hour() >= ClosingHour {
		return false
	}
	if t.Hour() == ClosingHour-1 && t.Minute() == SlotMinutes {
		return false
	}
	return true
}

// ParseDay parses a calendar day in the canonical 2006-01-02 form.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(DayLayout, day)
	if err != nil || t.Format(DayLayout) != day {
		return time.Time{}, httperr.ErrBusiness("invalid_day")
	}
	return t, nil
}

// IsClosedDay reports whether day falls on the weekly closing day.
func IsClosedDay(day string) bool {
	t, err := ParseDay(day)
	if err != nil {
		return false
	}
	return t.Weekday() == ClosedWeekday
}

// ValidateSlot checks the (day, timeSlot) pair against the grid and the
// closing-day rule.
func ValidateSlot(day, timeSlot string) error {
	if _, err := ParseDay(day); err != nil {
		return err
	}
	if !ValidTimeSlot(timeSlot) {
		return httperr.ErrBusiness("invalid_time_slot")
	}
	if IsClosedDay(day) {
		return httperr.ErrBusiness("closed_day")
	}
	return nil
}

// WeekDays returns the seven days of the Monday-start week containing
// anchor, shifted by offset weeks.
func WeekDays(anchor time.Time, offset int) []string {
	monday := anchor.AddDate(0, 0, offset*7)
	for monday.Weekday() != time.Monday {
		monday = monday.AddDate(0, 0, -1)
	}

	days := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, monday.AddDate(0, 0, i).Format(DayLayout))
	}
	return days
}
