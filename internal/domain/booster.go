package domain

import "time"

type BoosterStatus string

const (
	BoosterOnline  BoosterStatus = "ONLINE"
	BoosterOffline BoosterStatus = "OFFLINE"
	BoosterAway    BoosterStatus = "AWAY"
	BoosterBanned  BoosterStatus = "BANNED"
)

// Any status is reachable from any other; there is no transition graph.
func ValidBoosterStatus(s BoosterStatus) bool {
	switch s {
	case BoosterOnline, BoosterOffline, BoosterAway, BoosterBanned:
		return true
	}
	return false
}

// Permissions is the booster capability set. IsAdmin implies all three base
// capabilities; the cascade is enforced by usecase.NormalizePermissions and
// every write goes through it as a single atomic update.
type Permissions struct {
	CanAccessChat          bool
	CanModifyOrders        bool
	CanAccessClientDetails bool
	IsAdmin                bool
}

type Booster struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Username        string
	Password        string
	JoinedAt        time.Time
	Status          BoosterStatus
	CompletedOrders int32
	Rating          float64
	Specializations []string
	Permissions     Permissions
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BoosterFilters struct {
	Status BoosterStatus
	Search string
}

type BoosterRepository interface {
	CreateBooster(booster *Booster) error
	GetBoosterByID(boosterID string) (*Booster, error)
	UpdateBooster(booster *Booster) error
	DeleteBooster(boosterID string) error
	GetBoosters(filters BoosterFilters, sortBy, sortOrder string, page, limit int64) ([]*Booster, int64, error)
	IncrementCompletedOrders(boosterID string) error
}
