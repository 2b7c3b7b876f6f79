package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/metrics"
	checkoutdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/checkout"
	orderdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/order"
	orderusecase "github.com/LavaJover/shvark-boost-service/internal/usecase/order"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type CheckoutStep string

const (
	StepAccountDetails CheckoutStep = "ACCOUNT_DETAILS"
	StepPayment        CheckoutStep = "PAYMENT"
)

const defaultPaymentTimeout = 30 * time.Second

// CheckoutState is the caller-visible snapshot of a wizard session.
type CheckoutState struct {
	SessionID     string
	Step          CheckoutStep
	StepIndex     int
	TotalSteps    int
	PayableAmount float64
	Cancelled     bool
}

// checkoutSession is ephemeral and never persisted; it dies with completion
// or cancellation.
type checkoutSession struct {
	id             string
	draft          checkoutdto.OrderDraft
	steps          []CheckoutStep
	stepIndex      int
	accountDetails *orderdto.AccountDetailsInput
}

type CheckoutUsecase interface {
	StartCheckout(draft *checkoutdto.OrderDraft) (*CheckoutState, error)
	SubmitAccountDetails(sessionID string, input *orderdto.AccountDetailsInput) (*CheckoutState, error)
	SubmitPayment(ctx context.Context, sessionID string, input *checkoutdto.PaymentInput) (string, error)
	Back(sessionID string) (*CheckoutState, error)
	CancelCheckout(sessionID string) error
}

// OrderCreator is the slice of the order usecase checkout needs.
type OrderCreator interface {
	CreateOrder(input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error)
}

type DefaultCheckoutUsecase struct {
	Orders         OrderCreator
	Gateway        domain.PaymentGateway
	Metrics        *metrics.BoostMetrics
	PaymentTimeout time.Duration

	mu       sync.Mutex
	sessions map[string]*checkoutSession
}

func NewDefaultCheckoutUsecase(
	orders OrderCreator,
	gateway domain.PaymentGateway,
	boostMetrics *metrics.BoostMetrics) *DefaultCheckoutUsecase {

	return &DefaultCheckoutUsecase{
		Orders:         orders,
		Gateway:        gateway,
		Metrics:        boostMetrics,
		PaymentTimeout: defaultPaymentTimeout,
		sessions:       make(map[string]*checkoutSession),
	}
}

// StartCheckout opens a wizard for the configured draft. Solo boosts walk
// AccountDetails then Payment; duo boosts skip straight to the single
// Payment step.
func (uc *DefaultCheckoutUsecase) StartCheckout(draft *checkoutdto.OrderDraft) (*CheckoutState, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	steps := []CheckoutStep{StepPayment}
	if draft.BoostType == domain.BoostSolo {
		steps = []CheckoutStep{StepAccountDetails, StepPayment}
	}

	session := &checkoutSession{
		id:    uuid.NewString(),
		draft: *draft,
		steps: steps,
	}

	uc.mu.Lock()
	uc.sessions[session.id] = session
	uc.mu.Unlock()

	return uc.stateOf(session), nil
}

func (uc *DefaultCheckoutUsecase) SubmitAccountDetails(sessionID string, input *orderdto.AccountDetailsInput) (*CheckoutState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if session.steps[session.stepIndex] != StepAccountDetails {
		return nil, status.Error(codes.FailedPrecondition, "checkout is not on the account details step")
	}
	if err := orderusecase.ValidateAccountDetails(input); err != nil {
		return nil, err
	}

	details := *input
	session.accountDetails = &details
	session.stepIndex++

	return uc.stateOf(session), nil
}

// SubmitPayment validates the payment form, charges through the external
// gateway and, on success, creates the order and discards the session. A
// failed or timed-out payment leaves the session on the payment step so the
// buyer can retry.
func (uc *DefaultCheckoutUsecase) SubmitPayment(ctx context.Context, sessionID string, input *checkoutdto.PaymentInput) (string, error) {
	uc.mu.Lock()
	session, ok := uc.sessions[sessionID]
	if !ok {
		uc.mu.Unlock()
		return "", domain.ErrSessionNotFound
	}
	if session.steps[session.stepIndex] != StepPayment {
		uc.mu.Unlock()
		return "", status.Error(codes.FailedPrecondition, "checkout is not on the payment step")
	}
	draft := session.draft
	accountDetails := session.accountDetails
	uc.mu.Unlock()

	if err := validatePayment(input); err != nil {
		return "", err
	}

	order := checkoutOrder(&draft)
	req := &domain.ChargeRequest{
		Amount:   order.PayableAmount(),
		Currency: "EUR",
		Method:   input.Method,
	}
	if input.Card != nil {
		req.Card = &domain.CardDetails{
			Number: strings.ReplaceAll(input.Card.Number, " ", ""),
			Holder: input.Card.Holder,
			Expiry: input.Card.Expiry,
			CVV:    input.Card.CVV,
		}
	}

	timeout := uc.PaymentTimeout
	if timeout <= 0 {
		timeout = defaultPaymentTimeout
	}
	chargeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	result, err := uc.Gateway.Charge(chargeCtx, req)
	uc.recordPayment(input.Method, time.Since(started), err)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, domain.ErrPaymentTimeout) {
			return "", domain.ErrPaymentTimeout
		}
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	createInput := &orderdto.CreateOrderInput{
		ClientID:        draft.ClientID,
		Game:            draft.Game,
		BoostType:       draft.BoostType,
		CurrentRank:     draft.CurrentRank,
		DesiredRank:     draft.DesiredRank,
		Price:           draft.Price,
		DiscountPercent: draft.DiscountPercent,
		Deadline:        draft.Deadline,
		Requirements:    draft.Requirements,
		AccountDetails:  accountDetails,
	}
	out, err := uc.Orders.CreateOrder(createInput)
	if err != nil {
		return "", err
	}

	uc.mu.Lock()
	delete(uc.sessions, sessionID)
	uc.mu.Unlock()

	slog.Info("checkout completed",
		"session_id", sessionID, "order_id", out.ID, "payment_id", result.PaymentID)

	return out.ID, nil
}

// Back steps the wizard backwards; backing out of the first step cancels the
// whole checkout.
func (uc *DefaultCheckoutUsecase) Back(sessionID string) (*CheckoutState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	if session.stepIndex == 0 {
		delete(uc.sessions, sessionID)
		state := uc.stateOf(session)
		state.Cancelled = true
		return state, nil
	}

	session.stepIndex--
	return uc.stateOf(session), nil
}

func (uc *DefaultCheckoutUsecase) CancelCheckout(sessionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.sessions[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(uc.sessions, sessionID)
	return nil
}

func (uc *DefaultCheckoutUsecase) stateOf(session *checkoutSession) *CheckoutState {
	order := checkoutOrder(&session.draft)
	return &CheckoutState{
		SessionID:     session.id,
		Step:          session.steps[session.stepIndex],
		StepIndex:     session.stepIndex,
		TotalSteps:    len(session.steps),
		PayableAmount: order.PayableAmount(),
	}
}

// checkoutOrder builds a throwaway order from the draft so payable-amount
// math lives in exactly one place.
func checkoutOrder(draft *checkoutdto.OrderDraft) *domain.Order {
	return &domain.Order{
		Price:           draft.Price,
		DiscountPercent: draft.DiscountPercent,
	}
}

func (uc *DefaultCheckoutUsecase) recordPayment(method domain.PaymentMethod, elapsed time.Duration, err error) {
	if uc.Metrics == nil {
		return
	}
	outcome := "success"
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, domain.ErrPaymentTimeout):
		outcome = "timeout"
	case err != nil:
		outcome = "failed"
	}
	uc.Metrics.PaymentDuration.WithLabelValues(string(method), outcome).Observe(elapsed.Seconds())
	uc.Metrics.PaymentsTotal.WithLabelValues(string(method), outcome).Inc()
}

func validateDraft(draft *checkoutdto.OrderDraft) error {
	ve := domain.NewValidationError()
	if draft.ClientID == "" {
		ve.Add("clientId", "Client id is required")
	}
	if !domain.ValidGame(draft.Game) {
		ve.Add("game", "Unknown game title")
	}
	if !domain.ValidBoostType(draft.BoostType) {
		ve.Add("boostType", "Boost type must be solo or duo")
	}
	if draft.Price < 0 {
		ve.Add("price", "Price must not be negative")
	}
	if draft.DiscountPercent < 0 || draft.DiscountPercent > 100 {
		ve.Add("discount", "Discount must be between 0 and 100")
	}
	return ve.Err()
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVVPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// validatePayment shapes the input only; nothing here verifies the card.
func validatePayment(input *checkoutdto.PaymentInput) error {
	ve := domain.NewValidationError()
	if !domain.ValidPaymentMethod(input.Method) {
		ve.Add("method", "Unknown payment method")
		return ve
	}

	if input.Method != domain.MethodCard {
		return nil
	}

	if input.Card == nil {
		ve.Add("card", "Card details are required")
		return ve
	}
	number := strings.ReplaceAll(input.Card.Number, " ", "")
	if !cardNumberPattern.MatchString(number) {
		ve.Add("cardNumber", "Card number is invalid")
	}
	if strings.TrimSpace(input.Card.Holder) == "" {
		ve.Add("cardHolder", "Name on card is required")
	}
	if !cardExpiryPattern.MatchString(input.Card.Expiry) {
		ve.Add("expiry", "Expiry must be MM/YY")
	}
	if !cardCVVPattern.MatchString(input.Card.CVV) {
		ve.Add("cvv", "CVV is invalid")
	}
	return ve.Err()
}
