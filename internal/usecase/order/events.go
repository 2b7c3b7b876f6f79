package usecase

import (
	"log/slog"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	publisher "github.com/LavaJover/shvark-boost-service/internal/infrastructure/kafka"
)

// publishOrderEvent fires and forgets: event delivery is not part of the
// operation's critical path.
func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order) {
	if uc.Publisher == nil {
		return
	}
	go func(event publisher.OrderEvent) {
		if err := publisher.PublishOrderEvent(uc.Publisher, event); err != nil {
			slog.Error("failed to publish kafka OrderEvent", "order_id", event.OrderID, "error", err.Error())
		}
	}(publisher.OrderEvent{
		OrderID:   order.ID,
		ClientID:  order.ClientID,
		BoosterID: order.BoosterID,
		Status:    string(order.Status),
		Game:      string(order.Game),
		BoostType: string(order.BoostType),
		Price:     order.Price,
		Progress:  order.Progress,
	})
}
