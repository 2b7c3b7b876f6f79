package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultBoosterRepository struct {
	DB *gorm.DB
}

func NewDefaultBoosterRepository(db *gorm.DB) *DefaultBoosterRepository {
	return &DefaultBoosterRepository{DB: db}
}

func (r *DefaultBoosterRepository) CreateBooster(booster *domain.Booster) error {
	boosterModel := mappers.ToGORMBooster(booster)
	if err := r.DB.Create(boosterModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultBoosterRepository) GetBoosterByID(boosterID string) (*domain.Booster, error) {
	var booster models.BoosterModel
	if err := r.DB.First(&booster, "id = ?", boosterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBoosterNotFound
		}
		return nil, err
	}

	return mappers.ToDomainBooster(&booster), nil
}

// UpdateBooster saves the whole record; permission updates stay atomic
// because the caller always writes the full normalized set.
func (r *DefaultBoosterRepository) UpdateBooster(booster *domain.Booster) error {
	boosterModel := mappers.ToGORMBooster(booster)
	res := r.DB.Model(&models.BoosterModel{}).
		Where("id = ?", booster.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(boosterModel)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBoosterNotFound
	}
	return nil
}

func (r *DefaultBoosterRepository) DeleteBooster(boosterID string) error {
	res := r.DB.Delete(&models.BoosterModel{}, "id = ?", boosterID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBoosterNotFound
	}
	return nil
}

func (r *DefaultBoosterRepository) GetBoosters(
	filters domain.BoosterFilters,
	sortBy, sortOrder string,
	page, limit int64,
) ([]*domain.Booster, int64, error) {
	var boosterModels []models.BoosterModel
	var total int64

	safeSortBy := "created_at"
	switch sortBy {
	case "name":
		safeSortBy = "name"
	case "rating":
		safeSortBy = "rating"
	case "completed_orders":
		safeSortBy = "completed_orders"
	case "joined_at":
		safeSortBy = "joined_at"
	case "created_at":
		safeSortBy = "created_at"
	}

	safeSortOrder := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		safeSortOrder = "ASC"
	}

	baseQuery := r.DB.Model(&models.BoosterModel{})

	if filters.Status != "" {
		baseQuery = baseQuery.Where("status = ?", filters.Status)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		baseQuery = baseQuery.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count boosters: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order(fmt.Sprintf("%s %s, id ASC", safeSortBy, safeSortOrder)).
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&boosterModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find boosters: %w", err)
	}

	boosters := make([]*domain.Booster, len(boosterModels))
	for i, boosterModel := range boosterModels {
		boosters[i] = mappers.ToDomainBooster(&boosterModel)
	}

	return boosters, total, nil
}

func (r *DefaultBoosterRepository) IncrementCompletedOrders(boosterID string) error {
	res := r.DB.Model(&models.BoosterModel{}).
		Where("id = ?", boosterID).
		Update("completed_orders", gorm.Expr("completed_orders + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBoosterNotFound
	}
	return nil
}
