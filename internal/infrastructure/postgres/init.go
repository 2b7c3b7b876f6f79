package postgres

import (
	"log"

	"github.com/LavaJover/shvark-boost-service/internal/config"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.BoostConfig) *gorm.DB {
	dsn := cfg.BoostDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.OrderModel{}, &models.BoosterModel{}, &models.ProgressReportModel{})

	return db
}
