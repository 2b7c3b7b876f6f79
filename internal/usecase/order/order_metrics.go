package usecase

import "github.com/LavaJover/shvark-boost-service/internal/domain"

func (uc *DefaultOrderUsecase) recordOrderCreated(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrdersCreatedTotal.WithLabelValues(string(order.Game), string(order.BoostType)).Inc()
	uc.Metrics.OrdersCreatedAmount.WithLabelValues(string(order.Game)).Add(order.PayableAmount())
}

func (uc *DefaultOrderUsecase) recordOrderClaimed(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrdersClaimedTotal.WithLabelValues(string(order.Game)).Inc()
}

func (uc *DefaultOrderUsecase) recordClaimConflict(game domain.Game) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.ClaimConflictsTotal.WithLabelValues(string(game)).Inc()
}

func (uc *DefaultOrderUsecase) recordOrderCompleted(order *domain.Order, forced bool) {
	if uc.Metrics == nil {
		return
	}
	forcedLabel := "false"
	if forced {
		forcedLabel = "true"
	}
	uc.Metrics.OrdersCompletedTotal.WithLabelValues(string(order.Game), forcedLabel).Inc()
}

func (uc *DefaultOrderUsecase) recordOrderTerminated(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrdersCancelledTotal.WithLabelValues(string(order.Game), string(order.Status)).Inc()
}
