package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/atelierops/atelier-scheduler/internal/config"
	"github.com/atelierops/atelier-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
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
		&models.Workshop{},
		&models.User{},
		&models.WorkCategory{},
		&models.Client{},
		&models.Work{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// The slot-uniqueness invariant lives in the store: the application
	// pre-check is only fast feedback, this index is the guarantee. Each
	// workshop has its own calendar, so the slot key includes the tenant.
	db.Exec(`DROP INDEX IF EXISTS idx_appointments_active_slot`)
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_workshop_active_slot
        ON appointments (workshop_id, appointment_date, appointment_time)
        WHERE status <> 'cancelled'
    `)

	db.Exec(`
        UPDATE workshops
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, cfg.DefaultTimezone)

	return db
}
