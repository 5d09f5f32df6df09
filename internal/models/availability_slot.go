package models

import "time"

// AvailabilitySlot is one bookable (day, time) pair published by an admin.
// Immutable once created; removal is the only mutation.
type AvailabilitySlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Day      string `gorm:"size:10;not null;uniqueIndex:idx_slot_day_time" json:"day"`
	TimeSlot string `gorm:"size:5;not null;uniqueIndex:idx_slot_day_time" json:"time_slot"`

	CreatedAt time.Time `json:"created_at"`
}
