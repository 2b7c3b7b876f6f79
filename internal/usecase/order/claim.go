package usecase

import (
	"errors"
	"sync"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ClaimOrder makes boosterID the sole assignee of an AVAILABLE order.
// Claims on the same order are serialized twice: a per-order mutex here and
// a compare-and-swap in the repository. At most one claimant ever wins;
// losers get ErrAlreadyClaimed and mutate nothing.
func (uc *DefaultOrderUsecase) ClaimOrder(orderID, boosterID string) error {
	booster, err := uc.BoosterRepo.GetBoosterByID(boosterID)
	if err != nil {
		return err
	}
	if booster.Status == domain.BoosterBanned {
		return status.Error(codes.PermissionDenied, "booster is banned")
	}

	lock := uc.claimLock(orderID)
	lock.Lock()
	defer lock.Unlock()

	if err := uc.OrderRepo.ClaimOrder(orderID, boosterID); err != nil {
		if errors.Is(err, domain.ErrAlreadyClaimed) {
			if order, lookupErr := uc.OrderRepo.GetOrderByID(orderID); lookupErr == nil {
				uc.recordClaimConflict(order.Game)
			}
		}
		return err
	}

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err == nil {
		uc.recordOrderClaimed(order)
		uc.publishOrderEvent(order)
	}

	return nil
}

func (uc *DefaultOrderUsecase) claimLock(orderID string) *sync.Mutex {
	lock, _ := uc.claimLocks.LoadOrStore(orderID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
