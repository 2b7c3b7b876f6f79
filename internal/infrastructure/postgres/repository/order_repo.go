package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", newStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) SetAccountDetails(orderID string, details *domain.AccountDetails, newStatus domain.OrderStatus) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"account_username": details.Username,
			"account_password": details.Password,
			"account_email":    details.Email,
			"status":           newStatus,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// ClaimOrder is a compare-and-swap on status: the UPDATE only matches while
// the order is still AVAILABLE, so concurrent claimants cannot both win.
func (r *DefaultOrderRepository) ClaimOrder(orderID, boosterID string) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, domain.StatusAvailable).
		Updates(map[string]interface{}{
			"status":     domain.StatusClaimed,
			"booster_id": boosterID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var order models.OrderModel
		if err := r.DB.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return err
		}
		if order.BoosterID != "" {
			return domain.ErrAlreadyClaimed
		}
		return domain.ErrNotAvailable
	}
	return nil
}

func (r *DefaultOrderRepository) UpdateOrderProgress(orderID string, progress int32) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("progress", gorm.Expr("GREATEST(progress, ?)", progress))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrders(
	filters domain.OrderFilters,
	sortBy, sortOrder string,
	page, limit int64,
) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	safeSortBy := "created_at"
	switch sortBy {
	case "price":
		safeSortBy = "price"
	case "deadline":
		safeSortBy = "deadline"
	case "progress":
		safeSortBy = "progress"
	case "status":
		safeSortBy = "status"
	case "created_at":
		safeSortBy = "created_at"
	}

	safeSortOrder := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		safeSortOrder = "ASC"
	}

	baseQuery := r.DB.Model(&models.OrderModel{})

	if len(filters.Statuses) > 0 {
		baseQuery = baseQuery.Where("status IN (?)", filters.Statuses)
	}
	if filters.Game != "" {
		baseQuery = baseQuery.Where("game = ?", filters.Game)
	}
	if filters.BoostType != "" {
		baseQuery = baseQuery.Where("boost_type = ?", filters.BoostType)
	}
	if filters.BoosterID != "" {
		baseQuery = baseQuery.Where("booster_id = ?", filters.BoosterID)
	}
	if filters.ClientID != "" {
		baseQuery = baseQuery.Where("client_id = ?", filters.ClientID)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		baseQuery = baseQuery.Where(
			"id ILIKE ? OR client_id ILIKE ? OR requirements_json::text ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order(fmt.Sprintf("%s %s, id ASC", safeSortBy, safeSortOrder)).
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, total, nil
}

func (r *DefaultOrderRepository) FindOverdueOrders() ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.
		Where("status = ?", domain.StatusAvailable).
		Where("deadline < ?", time.Now()).
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}

func (r *DefaultOrderRepository) GetOrderStatistics(boosterID string, dateFrom, dateTo time.Time) (*domain.OrderStatistics, error) {
	// Fresh query per aggregate: gorm chains accumulate conditions.
	scope := func() *gorm.DB {
		q := r.DB.Model(&models.OrderModel{}).Where("booster_id = ?", boosterID)
		if !dateFrom.IsZero() {
			q = q.Where("created_at >= ?", dateFrom)
		}
		if !dateTo.IsZero() {
			q = q.Where("created_at <= ?", dateTo)
		}
		return q
	}

	var stats domain.OrderStatistics
	if err := scope().Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := scope().Where("status = ?", domain.StatusCompleted).Count(&stats.CompletedOrders).Error; err != nil {
		return nil, err
	}
	if err := scope().Where("status IN (?)", []domain.OrderStatus{domain.StatusCancelled, domain.StatusDeclined}).
		Count(&stats.CancelledOrders).Error; err != nil {
		return nil, err
	}

	row := scope().Where("status = ?", domain.StatusCompleted).
		Select("COALESCE(SUM(price * (1 - discount_percent / 100)), 0)").Row()
	if err := row.Scan(&stats.CompletedAmount); err != nil {
		return nil, err
	}

	return &stats, nil
}
