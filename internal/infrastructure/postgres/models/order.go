package models

import (
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
)

type OrderModel struct {
	ID               string             `gorm:"primaryKey"`
	ClientID         string             `gorm:"index:idx_client"`
	Game             domain.Game        `gorm:"index:idx_game"`
	BoostType        domain.BoostType
	CurrentRank      string
	DesiredRank      string
	Price            float64
	DiscountPercent  float64
	Deadline         time.Time          `gorm:"index:idx_status_deadline"`
	Status           domain.OrderStatus `gorm:"index:idx_status_deadline"`
	Progress         int32
	BoosterID        string             `gorm:"index:idx_booster"`
	RequirementsJSON string             `gorm:"type:jsonb"`
	AttachmentsJSON  string             `gorm:"type:jsonb"`
	AccountUsername  string
	AccountPassword  string
	AccountEmail     string
	CreatedAt        time.Time `gorm:"index:idx_created_at"`
	UpdatedAt        time.Time
}
