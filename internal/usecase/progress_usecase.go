package usecase

import (
	"log/slog"
	"strings"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	publisher "github.com/LavaJover/shvark-boost-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/metrics"
	progressdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/progress"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ProgressUsecase interface {
	SubmitReport(input *progressdto.SubmitReportInput) (*domain.ProgressReport, error)
	ReviewReport(reportID string, approve bool) error
	GetReportsByOrderID(orderID string) ([]*domain.ProgressReport, error)
}

type DefaultProgressUsecase struct {
	ReportRepo domain.ProgressReportRepository
	OrderRepo  domain.OrderRepository
	Publisher  domain.PublisherPort
	Metrics    *metrics.BoostMetrics
}

func NewDefaultProgressUsecase(
	reportRepo domain.ProgressReportRepository,
	orderRepo domain.OrderRepository,
	kafkaPublisher domain.PublisherPort,
	boostMetrics *metrics.BoostMetrics) *DefaultProgressUsecase {

	return &DefaultProgressUsecase{
		ReportRepo: reportRepo,
		OrderRepo:  orderRepo,
		Publisher:  kafkaPublisher,
		Metrics:    boostMetrics,
	}
}

// SubmitReport appends a pending report and raises the order's aggregate
// progress immediately. Raising before review mirrors the product's current
// behavior; review only flips the report status and never recomputes order
// progress.
func (uc *DefaultProgressUsecase) SubmitReport(input *progressdto.SubmitReportInput) (*domain.ProgressReport, error) {
	ve := domain.NewValidationError()
	if strings.TrimSpace(input.Description) == "" {
		ve.Add("description", "Please provide a description of your progress")
	}
	if input.Progress < 0 || input.Progress > 100 {
		ve.Add("progress", "Progress must be between 0 and 100")
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	order, err := uc.OrderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.BoosterID == "" || order.BoosterID != input.BoosterID {
		return nil, domain.ErrNotAssigned
	}
	if order.Status != domain.StatusClaimed && order.Status != domain.StatusInProgress {
		return nil, domain.ErrInvalidTransition
	}

	report := &domain.ProgressReport{
		ID:           uuid.NewString(),
		OrderID:      input.OrderID,
		BoosterID:    input.BoosterID,
		Progress:     input.Progress,
		Description:  input.Description,
		Attachments:  input.Attachments,
		ReviewStatus: domain.ReviewPending,
		SubmittedAt:  time.Now(),
	}
	if err := uc.ReportRepo.CreateReport(report); err != nil {
		return nil, err
	}

	// Aggregate progress never goes down: max(current, reported).
	if report.Progress > order.Progress {
		if err := uc.OrderRepo.UpdateOrderProgress(order.ID, report.Progress); err != nil {
			return nil, err
		}
		order.Progress = report.Progress
	}

	// The first report moves a claimed order into active work.
	if order.Status == domain.StatusClaimed {
		if err := uc.OrderRepo.UpdateOrderStatus(order.ID, domain.StatusInProgress); err != nil {
			return nil, err
		}
		order.Status = domain.StatusInProgress
	}

	if uc.Metrics != nil {
		uc.Metrics.ProgressReportsTotal.WithLabelValues(string(order.Game)).Inc()
	}
	uc.publishReportEvent(report)

	return report, nil
}

// ReviewReport records the operator's decision. Rejection does not roll back
// order progress.
func (uc *DefaultProgressUsecase) ReviewReport(reportID string, approve bool) error {
	report, err := uc.ReportRepo.GetReportByID(reportID)
	if err != nil {
		return err
	}
	if report.ReviewStatus != domain.ReviewPending {
		return status.Errorf(codes.FailedPrecondition, "report %s already reviewed: %s", reportID, report.ReviewStatus)
	}

	decision := domain.ReviewApproved
	if !approve {
		decision = domain.ReviewRejected
	}
	if err := uc.ReportRepo.UpdateReviewStatus(reportID, decision); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.ReportReviewsTotal.WithLabelValues(string(decision)).Inc()
	}

	report.ReviewStatus = decision
	uc.publishReportEvent(report)

	return nil
}

func (uc *DefaultProgressUsecase) GetReportsByOrderID(orderID string) ([]*domain.ProgressReport, error) {
	if _, err := uc.OrderRepo.GetOrderByID(orderID); err != nil {
		return nil, err
	}
	return uc.ReportRepo.GetReportsByOrderID(orderID)
}

func (uc *DefaultProgressUsecase) publishReportEvent(report *domain.ProgressReport) {
	if uc.Publisher == nil {
		return
	}
	go func(event publisher.ReportEvent) {
		if err := publisher.PublishReportEvent(uc.Publisher, event); err != nil {
			slog.Error("failed to publish kafka ReportEvent", "report_id", event.ReportID, "error", err.Error())
		}
	}(publisher.ReportEvent{
		ReportID:     report.ID,
		OrderID:      report.OrderID,
		BoosterID:    report.BoosterID,
		Seq:          report.Seq,
		Progress:     report.Progress,
		ReviewStatus: string(report.ReviewStatus),
	})
}
