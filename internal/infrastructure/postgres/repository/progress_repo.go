package repository

import (
	"errors"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProgressReportRepository struct {
	DB *gorm.DB
}

func NewDefaultProgressReportRepository(db *gorm.DB) *DefaultProgressReportRepository {
	return &DefaultProgressReportRepository{DB: db}
}

// CreateReport assigns the next per-order sequence number inside a
// transaction. Only the assigned booster submits for an order, so there is
// no cross-writer contention on the sequence; the unique index on
// (order_id, seq) backstops it anyway.
func (r *DefaultProgressReportRepository) CreateReport(report *domain.ProgressReport) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var maxSeq int32
		err := tx.Model(&models.ProgressReportModel{}).
			Where("order_id = ?", report.OrderID).
			Select("COALESCE(MAX(seq), 0)").
			Scan(&maxSeq).Error
		if err != nil {
			return err
		}

		report.Seq = maxSeq + 1
		return tx.Create(mappers.ToGORMReport(report)).Error
	})
}

func (r *DefaultProgressReportRepository) GetReportByID(reportID string) (*domain.ProgressReport, error) {
	var report models.ProgressReportModel
	if err := r.DB.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}

	return mappers.ToDomainReport(&report), nil
}

func (r *DefaultProgressReportRepository) UpdateReviewStatus(reportID string, status domain.ReviewStatus) error {
	res := r.DB.Model(&models.ProgressReportModel{}).
		Where("id = ?", reportID).
		Update("review_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

func (r *DefaultProgressReportRepository) GetReportsByOrderID(orderID string) ([]*domain.ProgressReport, error) {
	var reportModels []models.ProgressReportModel
	if err := r.DB.
		Where("order_id = ?", orderID).
		Order("seq ASC").
		Find(&reportModels).Error; err != nil {
		return nil, err
	}

	reports := make([]*domain.ProgressReport, len(reportModels))
	for i, reportModel := range reportModels {
		reports[i] = mappers.ToDomainReport(&reportModel)
	}

	return reports, nil
}

func (r *DefaultProgressReportRepository) CountApprovedByOrderID(orderID string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.ProgressReportModel{}).
		Where("order_id = ? AND review_status = ?", orderID, domain.ReviewApproved).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
