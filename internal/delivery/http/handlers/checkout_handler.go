package handlers

import (
	"net/http"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"github.com/LavaJover/shvark-boost-service/internal/usecase"
	checkoutdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/checkout"
	orderdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/order"
	"github.com/go-chi/chi/v5"
)

type CheckoutHandler struct {
	Checkout usecase.CheckoutUsecase
}

func NewCheckoutHandler(checkout usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{Checkout: checkout}
}

type checkoutStateResponse struct {
	SessionID     string  `json:"sessionId"`
	Step          string  `json:"step"`
	StepIndex     int     `json:"stepIndex"`
	TotalSteps    int     `json:"totalSteps"`
	PayableAmount float64 `json:"payableAmount"`
	Cancelled     bool    `json:"cancelled,omitempty"`
}

func toCheckoutStateResponse(state *usecase.CheckoutState) checkoutStateResponse {
	return checkoutStateResponse{
		SessionID:     state.SessionID,
		Step:          string(state.Step),
		StepIndex:     state.StepIndex,
		TotalSteps:    state.TotalSteps,
		PayableAmount: state.PayableAmount,
		Cancelled:     state.Cancelled,
	}
}

func (h *CheckoutHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[struct {
		ClientID        string    `json:"clientId"`
		Game            string    `json:"game"`
		BoostType       string    `json:"boostType"`
		CurrentRank     string    `json:"currentRank"`
		DesiredRank     string    `json:"desiredRank"`
		Price           float64   `json:"price"`
		DiscountPercent float64   `json:"discount"`
		Deadline        time.Time `json:"deadline"`
		Requirements    []string  `json:"requirements"`
	}](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.Checkout.StartCheckout(&checkoutdto.OrderDraft{
		ClientID:        body.ClientID,
		Game:            domain.Game(body.Game),
		BoostType:       domain.BoostType(body.BoostType),
		CurrentRank:     body.CurrentRank,
		DesiredRank:     body.DesiredRank,
		Price:           body.Price,
		DiscountPercent: body.DiscountPercent,
		Deadline:        body.Deadline,
		Requirements:    body.Requirements,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toCheckoutStateResponse(state), http.StatusCreated)
}

func (h *CheckoutHandler) SubmitAccountDetails(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[accountDetailsRequest](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.Checkout.SubmitAccountDetails(chi.URLParam(r, "id"), &orderdto.AccountDetailsInput{
		Username:     body.Username,
		Password:     body.Password,
		Email:        body.Email,
		AgreeToTerms: body.AgreeToTerms,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toCheckoutStateResponse(state), http.StatusOK)
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	state, err := h.Checkout.Back(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toCheckoutStateResponse(state), http.StatusOK)
}

func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[struct {
		Method string `json:"method"`
		Card   *struct {
			Number string `json:"number"`
			Holder string `json:"holder"`
			Expiry string `json:"expiry"`
			CVV    string `json:"cvv"`
		} `json:"card,omitempty"`
	}](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input := &checkoutdto.PaymentInput{Method: domain.PaymentMethod(body.Method)}
	if body.Card != nil {
		input.Card = &checkoutdto.CardInput{
			Number: body.Card.Number,
			Holder: body.Card.Holder,
			Expiry: body.Card.Expiry,
			CVV:    body.Card.CVV,
		}
	}

	orderID, err := h.Checkout.SubmitPayment(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]string{"order_id": orderID}, http.StatusOK)
}

func (h *CheckoutHandler) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	if err := h.Checkout.CancelCheckout(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
