package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbershop-pro/booking-api/internal/domain/booking"
	"github.com/barbershop-pro/booking-api/internal/httperr"
	"github.com/barbershop-pro/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		return nil, err
	}

	return &svc, nil
}

// BookSlot serializes all writes for one (day, time_slot) pair behind a
// row lock on the slot. Two concurrent submissions for the same slot
// cannot both succeed: the second one finds the slot gone.
func (r *BookingGormRepository) BookSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var slot models.AvailabilitySlot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("day = ? AND time_slot = ?", ap.Day, ap.TimeSlot).
			First(&slot).Error; err != nil {

			if err == gorm.ErrRecordNotFound {
				return httperr.ErrBusiness("slot_unavailable")
			}
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"day = ? AND time_slot = ? AND status <> ?",
				ap.Day, ap.TimeSlot, "cancelled",
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		// booking consumes the slot
		return tx.Delete(&slot).Error
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
