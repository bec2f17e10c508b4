package db

import (
	"log"
	"time"

	"github.com/chateaupet/petshop-api/internal/config"
	"github.com/chateaupet/petshop-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
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
		&models.Store{},
		&models.Profile{},
		&models.Pet{},
		&models.Service{},
		&models.Product{},
		&models.CapacityRule{},
		&models.DayBlock{},
		&models.Appointment{},
		&models.CMSComponent{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE agendamentos
        SET status = 'pendente'
        WHERE status IS NULL OR status = ''
    `)

	return db
}
