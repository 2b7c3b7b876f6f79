package domain

import "time"

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewRejected ReviewStatus = "REJECTED"
)

// ProgressReport is an append-only log entry. Immutable once created except
// for the review status.
type ProgressReport struct {
	ID           string
	OrderID      string
	BoosterID    string
	Seq          int32
	Progress     int32
	Description  string
	Attachments  []string
	ReviewStatus ReviewStatus
	SubmittedAt  time.Time
}

type ProgressReportRepository interface {
	// CreateReport appends the report and assigns the next per-order
	// sequence number, starting at 1.
	CreateReport(report *ProgressReport) error
	GetReportByID(reportID string) (*ProgressReport, error)
	UpdateReviewStatus(reportID string, status ReviewStatus) error
	GetReportsByOrderID(orderID string) ([]*ProgressReport, error)
	CountApprovedByOrderID(orderID string) (int64, error)
}
