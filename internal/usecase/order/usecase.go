package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/metrics"
	orderdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error)
	SubmitAccountDetails(orderID string, input *orderdto.AccountDetailsInput) error

	ClaimOrder(orderID, boosterID string) error
	CompleteOrder(orderID string, force bool) error
	CancelOrder(orderID string) error
	DeclineOrder(orderID string) error
	CancelOverdueOrders(ctx context.Context) error

	GetOrderByID(orderID string) (*domain.Order, error)
	GetOrders(filters domain.OrderFilters, sortBy, sortOrder string, page, limit int64) ([]*domain.Order, int64, error)
	GetOrderStatistics(boosterID string, dateFrom, dateTo time.Time) (*domain.OrderStatistics, error)
}

type DefaultOrderUsecase struct {
	OrderRepo   domain.OrderRepository
	BoosterRepo domain.BoosterRepository
	ReportRepo  domain.ProgressReportRepository
	Publisher   domain.PublisherPort
	Metrics     *metrics.BoostMetrics

	claimLocks sync.Map
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	boosterRepo domain.BoosterRepository,
	reportRepo domain.ProgressReportRepository,
	kafkaPublisher domain.PublisherPort,
	boostMetrics *metrics.BoostMetrics) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:   orderRepo,
		BoosterRepo: boosterRepo,
		ReportRepo:  reportRepo,
		Publisher:   kafkaPublisher,
		Metrics:     boostMetrics,
	}
}
