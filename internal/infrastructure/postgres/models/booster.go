package models

import (
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
)

type BoosterModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	Name                string
	Email               string `gorm:"index:idx_booster_email"`
	Phone               string
	Username            string
	Password            string
	JoinedAt            time.Time
	Status              domain.BoosterStatus `gorm:"index:idx_booster_status"`
	CompletedOrders     int32
	Rating              float64
	SpecializationsJSON string `gorm:"type:jsonb"`

	CanAccessChat          bool
	CanModifyOrders        bool
	CanAccessClientDetails bool
	IsAdmin                bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
