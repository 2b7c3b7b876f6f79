package domain

import "time"

type OrderStatus string

const (
	StatusAwaitingAccount OrderStatus = "AWAITING_ACCOUNT_DETAILS"
	StatusAvailable       OrderStatus = "AVAILABLE"
	StatusClaimed         OrderStatus = "CLAIMED"
	StatusInProgress      OrderStatus = "IN_PROGRESS"
	StatusCompleted       OrderStatus = "COMPLETED"
	StatusCancelled       OrderStatus = "CANCELLED"
	StatusDeclined        OrderStatus = "DECLINED"
)

// Terminal statuses never change again: orders are not deleted, only
// terminally stated.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusDeclined
}

type Game string

const (
	GameLoL      Game = "LOL"
	GameValorant Game = "VALORANT"
	GameWildRift Game = "WILD_RIFT"
)

func ValidGame(g Game) bool {
	return g == GameLoL || g == GameValorant || g == GameWildRift
}

type BoostType string

const (
	BoostSolo BoostType = "SOLO"
	BoostDuo  BoostType = "DUO"
)

func ValidBoostType(t BoostType) bool {
	return t == BoostSolo || t == BoostDuo
}

// AccountDetails are the client's game credentials for solo boosts. The
// service treats them as opaque strings.
type AccountDetails struct {
	Username string
	Password string
	Email    string
}

type Order struct {
	ID              string
	ClientID        string
	Game            Game
	BoostType       BoostType
	CurrentRank     string
	DesiredRank     string
	Price           float64
	DiscountPercent float64
	Deadline        time.Time
	Status          OrderStatus
	Progress        int32
	BoosterID       string
	Requirements    []string
	Attachments     []string
	AccountDetails  *AccountDetails
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PayableAmount applies the discount for payment display only; the stored
// price is never mutated.
func (o *Order) PayableAmount() float64 {
	if o.DiscountPercent <= 0 {
		return o.Price
	}
	return o.Price * (1 - o.DiscountPercent/100)
}

type OrderFilters struct {
	Statuses  []OrderStatus
	Game      Game
	BoostType BoostType
	BoosterID string
	ClientID  string
	Search    string
	DateFrom  time.Time
	DateTo    time.Time
}

type OrderStatistics struct {
	TotalOrders     int64
	CompletedOrders int64
	CancelledOrders int64
	CompletedAmount float64
}
