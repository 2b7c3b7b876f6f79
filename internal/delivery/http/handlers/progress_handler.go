package handlers

import (
	"net/http"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"github.com/LavaJover/shvark-boost-service/internal/usecase"
	progressdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/progress"
	"github.com/go-chi/chi/v5"
)

type ProgressHandler struct {
	Progress usecase.ProgressUsecase
}

func NewProgressHandler(progress usecase.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{Progress: progress}
}

type reportResponse struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	BoosterID    string    `json:"boosterId"`
	Seq          int32     `json:"seq"`
	Progress     int32     `json:"progress"`
	Description  string    `json:"description"`
	Attachments  []string  `json:"attachments,omitempty"`
	ReviewStatus string    `json:"reviewStatus"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

func toReportResponse(report *domain.ProgressReport) reportResponse {
	return reportResponse{
		ID:           report.ID,
		OrderID:      report.OrderID,
		BoosterID:    report.BoosterID,
		Seq:          report.Seq,
		Progress:     report.Progress,
		Description:  report.Description,
		Attachments:  report.Attachments,
		ReviewStatus: string(report.ReviewStatus),
		SubmittedAt:  report.SubmittedAt,
	}
}

func (h *ProgressHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[struct {
		BoosterID   string   `json:"boosterId"`
		Progress    int32    `json:"progress"`
		Description string   `json:"description"`
		Attachments []string `json:"attachments"`
	}](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.Progress.SubmitReport(&progressdto.SubmitReportInput{
		OrderID:     chi.URLParam(r, "id"),
		BoosterID:   body.BoosterID,
		Progress:    body.Progress,
		Description: body.Description,
		Attachments: body.Attachments,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toReportResponse(report), http.StatusCreated)
}

func (h *ProgressHandler) GetReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Progress.GetReportsByOrderID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]reportResponse, 0, len(reports))
	for _, report := range reports {
		items = append(items, toReportResponse(report))
	}

	writeJSON(w, map[string]any{"reports": items}, http.StatusOK)
}

func (h *ProgressHandler) ReviewReport(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[struct {
		Approve bool `json:"approve"`
	}](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Progress.ReviewReport(chi.URLParam(r, "id"), body.Approve); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
