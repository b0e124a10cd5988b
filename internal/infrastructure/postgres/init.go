package postgres

import (
	"log"

	"github.com/fundunity/donation-service/internal/config"
	"github.com/fundunity/donation-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.DonationConfig) *gorm.DB {
	dsn := cfg.DonationDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.TransactionModel{})

	return db
}
