package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sportivaid/arena-booking/internal/config"
	"github.com/sportivaid/arena-booking/internal/models"
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
		&models.Venue{},
		&models.User{},
		&models.Sport{},
		&models.Field{},
		&models.Customer{},
		&models.Booking{},
		&models.Product{},
		&models.Pemasukan{},
		&models.PemasukanItem{},
		&models.SystemPrompt{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaults(db)

	return db
}

// seedDefaults guarantees the single venue settings row and one active
// system prompt exist, so handlers never deal with an empty table.
func seedDefaults(db *gorm.DB) {
	var venues int64
	db.Model(&models.Venue{}).Count(&venues)
	if venues == 0 {
		db.Create(&models.Venue{
			Name:      "Arena Sportiva",
			Timezone:  "Asia/Jakarta",
			OpenHour:  7,
			CloseHour: 24,
		})
	}

	var active int64
	db.Model(&models.SystemPrompt{}).Where("is_active = ?", true).Count(&active)
	if active == 0 {
		db.Create(&models.SystemPrompt{
			Title:    "Default",
			Content:  "Halo! Saya asisten Arena Sportiva. Saya bisa bantu cek jadwal lapangan, info harga, dan booking.",
			IsActive: true,
		})
	}
}
