package usecase

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	progressdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newProgressFixture(t *testing.T, orderStatus domain.OrderStatus, progress int32) (*DefaultProgressUsecase, *stubOrderRepo, *stubReportRepo) {
	t.Helper()
	orderRepo := newStubOrderRepo()
	reportRepo := newStubReportRepo()
	orderRepo.put(&domain.Order{
		ID:        "ORD-10000001",
		ClientID:  "client-1",
		Game:      domain.GameLoL,
		BoostType: domain.BoostDuo,
		Status:    orderStatus,
		Progress:  progress,
		BoosterID: "booster-1",
		Deadline:  time.Now().Add(48 * time.Hour),
	})
	return NewDefaultProgressUsecase(reportRepo, orderRepo, nil, nil), orderRepo, reportRepo
}

func submitInput(progress int32) *progressdto.SubmitReportInput {
	return &progressdto.SubmitReportInput{
		OrderID:     "ORD-10000001",
		BoosterID:   "booster-1",
		Progress:    progress,
		Description: "Won five ranked games",
	}
}

func TestSubmitReportValidation(t *testing.T) {
	uc, _, _ := newProgressFixture(t, domain.StatusClaimed, 0)

	_, err := uc.SubmitReport(&progressdto.SubmitReportInput{
		OrderID:   "ORD-10000001",
		BoosterID: "booster-1",
		Progress:  120,
	})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.True(t, ve.Has("description"))
	assert.True(t, ve.Has("progress"))
}

func TestSubmitReportOnlyAssigneeMayReport(t *testing.T) {
	uc, _, _ := newProgressFixture(t, domain.StatusClaimed, 0)

	input := submitInput(25)
	input.BoosterID = "booster-2"

	_, err := uc.SubmitReport(input)
	assert.ErrorIs(t, err, domain.ErrNotAssigned)
}

func TestSubmitReportRejectedInTerminalStatus(t *testing.T) {
	uc, _, _ := newProgressFixture(t, domain.StatusCompleted, 100)

	_, err := uc.SubmitReport(submitInput(100))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestFirstReportMovesOrderInProgress(t *testing.T) {
	uc, orderRepo, _ := newProgressFixture(t, domain.StatusClaimed, 0)

	report, err := uc.SubmitReport(submitInput(25))
	require.NoError(t, err)
	assert.Equal(t, int32(1), report.Seq)
	assert.Equal(t, domain.ReviewPending, report.ReviewStatus)

	order, err := orderRepo.GetOrderByID("ORD-10000001")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, order.Status)
	assert.Equal(t, int32(25), order.Progress)
}

func TestProgressNeverDecreases(t *testing.T) {
	uc, orderRepo, _ := newProgressFixture(t, domain.StatusInProgress, 60)

	_, err := uc.SubmitReport(submitInput(40))
	require.NoError(t, err)

	order, err := orderRepo.GetOrderByID("ORD-10000001")
	require.NoError(t, err)
	assert.Equal(t, int32(60), order.Progress)
}

func TestReportSequenceNumbersIncrement(t *testing.T) {
	uc, _, _ := newProgressFixture(t, domain.StatusClaimed, 0)

	first, err := uc.SubmitReport(submitInput(20))
	require.NoError(t, err)
	second, err := uc.SubmitReport(submitInput(45))
	require.NoError(t, err)

	assert.Equal(t, int32(1), first.Seq)
	assert.Equal(t, int32(2), second.Seq)
}

func TestReviewReportApprove(t *testing.T) {
	uc, _, reportRepo := newProgressFixture(t, domain.StatusClaimed, 0)

	report, err := uc.SubmitReport(submitInput(30))
	require.NoError(t, err)

	require.NoError(t, uc.ReviewReport(report.ID, true))

	stored, err := reportRepo.GetReportByID(report.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewApproved, stored.ReviewStatus)
}

func TestReviewReportRejectKeepsOrderProgress(t *testing.T) {
	uc, orderRepo, reportRepo := newProgressFixture(t, domain.StatusClaimed, 0)

	report, err := uc.SubmitReport(submitInput(55))
	require.NoError(t, err)

	require.NoError(t, uc.ReviewReport(report.ID, false))

	stored, err := reportRepo.GetReportByID(report.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewRejected, stored.ReviewStatus)

	// Rejection never rolls the aggregate back.
	order, err := orderRepo.GetOrderByID("ORD-10000001")
	require.NoError(t, err)
	assert.Equal(t, int32(55), order.Progress)
}

func TestReviewReportOnlyOnce(t *testing.T) {
	uc, _, _ := newProgressFixture(t, domain.StatusClaimed, 0)

	report, err := uc.SubmitReport(submitInput(30))
	require.NoError(t, err)
	require.NoError(t, uc.ReviewReport(report.ID, true))

	err = uc.ReviewReport(report.ID, false)
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestGetReportsByOrderIDUnknownOrder(t *testing.T) {
	uc, _, _ := newProgressFixture(t, domain.StatusClaimed, 0)

	_, err := uc.GetReportsByOrderID("ORD-00000000")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
