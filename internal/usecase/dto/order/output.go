package orderdto

import (
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
)

type OrderOutput struct {
	ID              string
	ClientID        string
	Game            domain.Game
	BoostType       domain.BoostType
	CurrentRank     string
	DesiredRank     string
	Price           float64
	DiscountPercent float64
	PayableAmount   float64
	Deadline        time.Time
	Status          domain.OrderStatus
	Progress        int32
	BoosterID       string
	Requirements    []string
	Attachments     []string
	CreatedAt       time.Time
}

func ToOrderOutput(order *domain.Order) *OrderOutput {
	return &OrderOutput{
		ID:              order.ID,
		ClientID:        order.ClientID,
		Game:            order.Game,
		BoostType:       order.BoostType,
		CurrentRank:     order.CurrentRank,
		DesiredRank:     order.DesiredRank,
		Price:           order.Price,
		DiscountPercent: order.DiscountPercent,
		PayableAmount:   order.PayableAmount(),
		Deadline:        order.Deadline,
		Status:          order.Status,
		Progress:        order.Progress,
		BoosterID:       order.BoosterID,
		Requirements:    order.Requirements,
		Attachments:     order.Attachments,
		CreatedAt:       order.CreatedAt,
	}
}
