package usecase

import (
	"regexp"
	"testing"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	orderdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrderUsecase() (*DefaultOrderUsecase, *stubOrderRepo, *stubBoosterRepo, *stubReportRepo) {
	orderRepo := newStubOrderRepo()
	boosterRepo := newStubBoosterRepo()
	reportRepo := newStubReportRepo()
	uc := NewDefaultOrderUsecase(orderRepo, boosterRepo, reportRepo, nil, nil)
	return uc, orderRepo, boosterRepo, reportRepo
}

func validCreateInput(boostType domain.BoostType) *orderdto.CreateOrderInput {
	return &orderdto.CreateOrderInput{
		ClientID:    "client-1",
		Game:        domain.GameLoL,
		BoostType:   boostType,
		CurrentRank: "Gold II",
		DesiredRank: "Platinum IV",
		Price:       40,
		Deadline:    time.Now().Add(72 * time.Hour),
	}
}

func TestNewOrderIDFormat(t *testing.T) {
	id, err := NewOrderID()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}$`), id)
}

func TestCreateOrderDuoStartsAvailable(t *testing.T) {
	uc, _, _, _ := newTestOrderUsecase()

	out, err := uc.CreateOrder(validCreateInput(domain.BoostDuo))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, out.Status)
	assert.Regexp(t, `^ORD-\d+$`, out.ID)
}

func TestCreateOrderSoloWithoutCredentialsAwaits(t *testing.T) {
	uc, _, _, _ := newTestOrderUsecase()

	out, err := uc.CreateOrder(validCreateInput(domain.BoostSolo))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAwaitingAccount, out.Status)
}

func TestCreateOrderSoloWithCredentialsIsAvailable(t *testing.T) {
	uc, orderRepo, _, _ := newTestOrderUsecase()

	input := validCreateInput(domain.BoostSolo)
	input.AccountDetails = &orderdto.AccountDetailsInput{
		Username:     "summoner",
		Password:     "secret99",
		Email:        "client@example.com",
		AgreeToTerms: true,
	}

	out, err := uc.CreateOrder(input)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, out.Status)

	stored, err := orderRepo.GetOrderByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AccountDetails)
	assert.Equal(t, "summoner", stored.AccountDetails.Username)
}

func TestCreateOrderAppliesDiscountToPayableAmount(t *testing.T) {
	uc, _, _, _ := newTestOrderUsecase()

	input := validCreateInput(domain.BoostDuo)
	input.Price = 40
	input.DiscountPercent = 10

	out, err := uc.CreateOrder(input)
	require.NoError(t, err)
	assert.InDelta(t, 36.0, out.PayableAmount, 0.001)
	assert.InDelta(t, 40.0, out.Price, 0.001)
}

func TestCreateOrderCollectsAllValidationFailures(t *testing.T) {
	uc, _, _, _ := newTestOrderUsecase()

	_, err := uc.CreateOrder(&orderdto.CreateOrderInput{
		Game:            "CHESS",
		BoostType:       "TRIO",
		Price:           -5,
		DiscountPercent: 150,
	})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.True(t, ve.Has("clientId"))
	assert.True(t, ve.Has("game"))
	assert.True(t, ve.Has("boostType"))
	assert.True(t, ve.Has("price"))
	assert.True(t, ve.Has("discount"))
}

func TestSubmitAccountDetailsActivatesOrder(t *testing.T) {
	uc, orderRepo, _, _ := newTestOrderUsecase()

	out, err := uc.CreateOrder(validCreateInput(domain.BoostSolo))
	require.NoError(t, err)

	err = uc.SubmitAccountDetails(out.ID, &orderdto.AccountDetailsInput{
		Username:     "summoner",
		Password:     "secret99",
		Email:        "client@example.com",
		AgreeToTerms: true,
	})
	require.NoError(t, err)

	stored, err := orderRepo.GetOrderByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, stored.Status)
	require.NotNil(t, stored.AccountDetails)
}

func TestSubmitAccountDetailsValidation(t *testing.T) {
	uc, _, _, _ := newTestOrderUsecase()

	out, err := uc.CreateOrder(validCreateInput(domain.BoostSolo))
	require.NoError(t, err)

	err = uc.SubmitAccountDetails(out.ID, &orderdto.AccountDetailsInput{
		Username: "",
		Password: "abc",
		Email:    "not-an-email",
	})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.True(t, ve.Has("username"))
	assert.True(t, ve.Has("password"))
	assert.True(t, ve.Has("email"))
	assert.True(t, ve.Has("agreeToTerms"))
}

func TestSubmitAccountDetailsRejectedOutsideAwaiting(t *testing.T) {
	uc, _, _, _ := newTestOrderUsecase()

	out, err := uc.CreateOrder(validCreateInput(domain.BoostDuo))
	require.NoError(t, err)

	err = uc.SubmitAccountDetails(out.ID, &orderdto.AccountDetailsInput{
		Username:     "summoner",
		Password:     "secret99",
		Email:        "client@example.com",
		AgreeToTerms: true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
