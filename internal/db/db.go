package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barbershop-pro/booking-api/internal/config"
	"github.com/barbershop-pro/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.AvailabilitySlot{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedServices(db)

	return db
}

// seedServices installs the static catalog on an empty database. The
// catalog is read-only at runtime; admins do not edit it.
func seedServices(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		log.Printf("service seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	catalog := []models.Service{
		{Name: "Corte Tradicional", Description: "Um corte clássico com técnicas tradicionais de barbearia.", Price: 40, DurationMin: 30, Active: true},
		{Name: "Barba Completa", Description: "Modelagem completa com toalha quente e produtos premium.", Price: 35, DurationMin: 30, Active: true},
		{Name: "Corte + Barba", Description: "Combinação de corte tradicional e barba completa.", Price: 65, DurationMin: 60, Active: true},
		{Name: "Acabamento", Description: "Manutenção rápida para manter seu visual em dia.", Price: 25, DurationMin: 15, Active: true},
	}

	if err := db.Create(&catalog).Error; err != nil {
		log.Printf("service seed failed: %v", err)
	}
}
