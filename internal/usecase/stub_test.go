package usecase

import (
	"sync"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
)

type stubBoosterRepo struct {
	mu       sync.Mutex
	boosters map[string]*domain.Booster
	deleted  []string
}

func newStubBoosterRepo() *stubBoosterRepo {
	return &stubBoosterRepo{boosters: make(map[string]*domain.Booster)}
}

func (s *stubBoosterRepo) CreateBooster(booster *domain.Booster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *booster
	s.boosters[booster.ID] = &copied
	return nil
}

func (s *stubBoosterRepo) GetBoosterByID(boosterID string) (*domain.Booster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booster, ok := s.boosters[boosterID]
	if !ok {
		return nil, domain.ErrBoosterNotFound
	}
	copied := *booster
	return &copied, nil
}

func (s *stubBoosterRepo) UpdateBooster(booster *domain.Booster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boosters[booster.ID]; !ok {
		return domain.ErrBoosterNotFound
	}
	copied := *booster
	s.boosters[booster.ID] = &copied
	return nil
}

func (s *stubBoosterRepo) DeleteBooster(boosterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boosters[boosterID]; !ok {
		return domain.ErrBoosterNotFound
	}
	delete(s.boosters, boosterID)
	s.deleted = append(s.deleted, boosterID)
	return nil
}

func (s *stubBoosterRepo) GetBoosters(filters domain.BoosterFilters, sortBy, sortOrder string, page, limit int64) ([]*domain.Booster, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []*domain.Booster
	for _, booster := range s.boosters {
		if filters.Status != "" && booster.Status != filters.Status {
			continue
		}
		copied := *booster
		matched = append(matched, &copied)
	}
	return matched, int64(len(matched)), nil
}

func (s *stubBoosterRepo) IncrementCompletedOrders(boosterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	booster, ok := s.boosters[boosterID]
	if !ok {
		return domain.ErrBoosterNotFound
	}
	booster.CompletedOrders++
	return nil
}

type stubOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (s *stubOrderRepo) put(order *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *order
	s.orders[order.ID] = &copied
}

func (s *stubOrderRepo) CreateOrder(order *domain.Order) error {
	s.put(order)
	return nil
}

func (s *stubOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *stubOrderRepo) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = newStatus
	return nil
}

func (s *stubOrderRepo) SetAccountDetails(orderID string, details *domain.AccountDetails, newStatus domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.AccountDetails = details
	order.Status = newStatus
	return nil
}

func (s *stubOrderRepo) ClaimOrder(orderID, boosterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if order.Status != domain.StatusAvailable {
		if order.BoosterID != "" {
			return domain.ErrAlreadyClaimed
		}
		return domain.ErrNotAvailable
	}
	order.Status = domain.StatusClaimed
	order.BoosterID = boosterID
	return nil
}

func (s *stubOrderRepo) UpdateOrderProgress(orderID string, progress int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if progress > order.Progress {
		order.Progress = progress
	}
	return nil
}

func (s *stubOrderRepo) GetOrders(filters domain.OrderFilters, sortBy, sortOrder string, page, limit int64) ([]*domain.Order, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []*domain.Order
	for _, order := range s.orders {
		copied := *order
		matched = append(matched, &copied)
	}
	return matched, int64(len(matched)), nil
}

func (s *stubOrderRepo) FindOverdueOrders() ([]*domain.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) GetOrderStatistics(boosterID string, dateFrom, dateTo time.Time) (*domain.OrderStatistics, error) {
	return &domain.OrderStatistics{}, nil
}

type stubReportRepo struct {
	mu      sync.Mutex
	reports map[string]*domain.ProgressReport
	seq     map[string]int32
}

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{
		reports: make(map[string]*domain.ProgressReport),
		seq:     make(map[string]int32),
	}
}

func (s *stubReportRepo) CreateReport(report *domain.ProgressReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[report.OrderID]++
	report.Seq = s.seq[report.OrderID]
	copied := *report
	s.reports[report.ID] = &copied
	return nil
}

func (s *stubReportRepo) GetReportByID(reportID string) (*domain.ProgressReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	report, ok := s.reports[reportID]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	copied := *report
	return &copied, nil
}

func (s *stubReportRepo) UpdateReviewStatus(reportID string, status domain.ReviewStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	report, ok := s.reports[reportID]
	if !ok {
		return domain.ErrReportNotFound
	}
	report.ReviewStatus = status
	return nil
}

func (s *stubReportRepo) GetReportsByOrderID(orderID string) ([]*domain.ProgressReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []*domain.ProgressReport
	for _, report := range s.reports {
		if report.OrderID == orderID {
			copied := *report
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (s *stubReportRepo) CountApprovedByOrderID(orderID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, report := range s.reports {
		if report.OrderID == orderID && report.ReviewStatus == domain.ReviewApproved {
			count++
		}
	}
	return count, nil
}
