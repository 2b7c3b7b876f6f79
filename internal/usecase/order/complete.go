package usecase

import (
	"log/slog"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
)

// CompleteOrder finishes an order. Without force the order must be at 100%
// progress; force is the operator's administrative override.
func (uc *DefaultOrderUsecase) CompleteOrder(orderID string, force bool) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}

	if order.Status.Terminal() || order.Status == domain.StatusAwaitingAccount {
		return domain.ErrInvalidTransition
	}
	if !force {
		if order.Status != domain.StatusClaimed && order.Status != domain.StatusInProgress {
			return domain.ErrInvalidTransition
		}
		if order.Progress < 100 {
			return domain.ErrIncompleteProgress
		}
	}

	if err := uc.OrderRepo.UpdateOrderStatus(orderID, domain.StatusCompleted); err != nil {
		return err
	}

	if order.BoosterID != "" {
		if err := uc.BoosterRepo.IncrementCompletedOrders(order.BoosterID); err != nil {
			slog.Error("failed to increment booster completed orders",
				"order_id", orderID, "booster_id", order.BoosterID, "error", err.Error())
		}
	}

	order.Status = domain.StatusCompleted
	uc.recordOrderCompleted(order, force)
	uc.publishOrderEvent(order)

	return nil
}
