package domain

import "time"

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	UpdateOrderStatus(orderID string, newStatus OrderStatus) error

	// SetAccountDetails stores the client's credentials and moves the order
	// out of AWAITING_ACCOUNT_DETAILS.
	SetAccountDetails(orderID string, details *AccountDetails, newStatus OrderStatus) error

	// ClaimOrder atomically assigns boosterID to an AVAILABLE order.
	// Returns ErrAlreadyClaimed when another booster won the race and
	// ErrNotAvailable when the order is in any other non-claimable state.
	ClaimOrder(orderID, boosterID string) error

	// UpdateOrderProgress raises the order's progress to at least the given
	// value; it never lowers it.
	UpdateOrderProgress(orderID string, progress int32) error

	GetOrders(filters OrderFilters, sortBy, sortOrder string, page, limit int64) ([]*Order, int64, error)
	FindOverdueOrders() ([]*Order, error)
	GetOrderStatistics(boosterID string, dateFrom, dateTo time.Time) (*OrderStatistics, error)
}
