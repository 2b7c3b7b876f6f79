package usecase

import (
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
)

func (uc *DefaultOrderUsecase) GetOrderByID(orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(orderID)
}

func (uc *DefaultOrderUsecase) GetOrders(
	filters domain.OrderFilters,
	sortBy, sortOrder string,
	page, limit int64,
) ([]*domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.OrderRepo.GetOrders(filters, sortBy, sortOrder, page, limit)
}

func (uc *DefaultOrderUsecase) GetOrderStatistics(boosterID string, dateFrom, dateTo time.Time) (*domain.OrderStatistics, error) {
	return uc.OrderRepo.GetOrderStatistics(boosterID, dateFrom, dateTo)
}
