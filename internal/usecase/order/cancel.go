package usecase

import (
	"context"
	"log"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
)

func (uc *DefaultOrderUsecase) CancelOrder(orderID string) error {
	return uc.terminateOrder(orderID, domain.StatusCancelled)
}

func (uc *DefaultOrderUsecase) DeclineOrder(orderID string) error {
	return uc.terminateOrder(orderID, domain.StatusDeclined)
}

// terminateOrder handles the Cancelled/Declined side branch. It is reachable
// from AVAILABLE and CLAIMED, and from IN_PROGRESS only while no report has
// been approved yet.
func (uc *DefaultOrderUsecase) terminateOrder(orderID string, newStatus domain.OrderStatus) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}

	switch order.Status {
	case domain.StatusAvailable, domain.StatusClaimed:
	case domain.StatusInProgress:
		approved, err := uc.ReportRepo.CountApprovedByOrderID(orderID)
		if err != nil {
			return err
		}
		if approved > 0 {
			return domain.ErrInvalidTransition
		}
	default:
		return domain.ErrInvalidTransition
	}

	if err := uc.OrderRepo.UpdateOrderStatus(orderID, newStatus); err != nil {
		return err
	}

	order.Status = newStatus
	uc.recordOrderTerminated(order)
	uc.publishOrderEvent(order)

	return nil
}

// CancelOverdueOrders cancels AVAILABLE orders whose deadline passed with no
// booster claiming them. Driven by a ticker in main.
func (uc *DefaultOrderUsecase) CancelOverdueOrders(ctx context.Context) error {
	orders, err := uc.OrderRepo.FindOverdueOrders()
	if err != nil {
		return err
	}

	for _, order := range orders {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := uc.CancelOrder(order.ID); err != nil {
			log.Printf("Failed to cancel overdue order %s: %v\n", order.ID, err)
			continue
		}
		log.Printf("Order %s cancelled: deadline passed while unclaimed\n", order.ID)
	}

	return nil
}
