package models

import (
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
)

type ProgressReportModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	OrderID         string `gorm:"index:idx_report_order_seq,unique"`
	BoosterID       string
	Seq             int32 `gorm:"index:idx_report_order_seq,unique"`
	Progress        int32
	Description     string
	AttachmentsJSON string              `gorm:"type:jsonb"`
	ReviewStatus    domain.ReviewStatus `gorm:"index:idx_report_review"`
	SubmittedAt     time.Time
}
