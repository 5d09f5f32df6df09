package models

import "time"

const (
	RoleAdmin        = "admin"
	RoleBarber       = "barber"
	RoleReceptionist = "receptionist"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleBarber, RoleReceptionist:
		return true
	}
	return false
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'barber'" json:"role"`
	Active       bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
