package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barbershop-pro/booking-api/internal/domain/schedule"
	"github.com/barbershop-pro/booking-api/internal/httperr"
	"github.com/barbershop-pro/booking-api/internal/models"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

func (r *SlotGormRepository) CreateSlot(
	ctx context.Context,
	day string,
	timeSlot string,
) (*models.AvailabilitySlot, error) {

	slot := models.AvailabilitySlot{
		Day:      day,
		TimeSlot: timeSlot,
	}

	if err := r.db.WithContext(ctx).Create(&slot).Error; err != nil {
		// the composite unique index is the real duplicate guard
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, httperr.ErrBusiness("slot_already_exists")
		}
		return nil, err
	}

	return &slot, nil
}

func (r *SlotGormRepository) DeleteSlot(
	ctx context.Context,
	day string,
	timeSlot string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("day = ? AND time_slot = ?", day, timeSlot).
		Delete(&models.AvailabilitySlot{})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *SlotGormRepository) SlotExists(
	ctx context.Context,
	day string,
	timeSlot string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AvailabilitySlot{}).
		Where("day = ? AND time_slot = ?", day, timeSlot).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SlotGormRepository) ListSlotsForDay(
	ctx context.Context,
	day string,
) ([]models.AvailabilitySlot, error) {

	var slots []models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where("day = ?", day).
		Order("time_slot ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *SlotGormRepository) ListSlotsForDays(
	ctx context.Context,
	days []string,
) ([]models.AvailabilitySlot, error) {

	var slots []models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where("day IN ?", days).
		Order("day ASC, time_slot ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// Compile-time check
var _ domain.Repository = (*SlotGormRepository)(nil)
