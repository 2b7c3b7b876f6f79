package mappers

import (
	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/postgres/models"
)

func ToDomainReport(model *models.ProgressReportModel) *domain.ProgressReport {
	return &domain.ProgressReport{
		ID:           model.ID,
		OrderID:      model.OrderID,
		BoosterID:    model.BoosterID,
		Seq:          model.Seq,
		Progress:     model.Progress,
		Description:  model.Description,
		Attachments:  fromJSONList(model.AttachmentsJSON),
		ReviewStatus: model.ReviewStatus,
		SubmittedAt:  model.SubmittedAt,
	}
}

func ToGORMReport(report *domain.ProgressReport) *models.ProgressReportModel {
	return &models.ProgressReportModel{
		ID:              report.ID,
		OrderID:         report.OrderID,
		BoosterID:       report.BoosterID,
		Seq:             report.Seq,
		Progress:        report.Progress,
		Description:     report.Description,
		AttachmentsJSON: toJSONList(report.Attachments),
		ReviewStatus:    report.ReviewStatus,
		SubmittedAt:     report.SubmittedAt,
	}
}
