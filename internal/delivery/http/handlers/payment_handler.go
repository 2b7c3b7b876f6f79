package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/LavaJover/shvark-boost-service/internal/delivery/http/dto/payment/request"
	"github.com/LavaJover/shvark-boost-service/internal/delivery/http/dto/payment/response"
	"github.com/LavaJover/shvark-boost-service/internal/domain"
)

// HTTPPaymentHandler charges buyers through the external payment service.
// Implements domain.PaymentGateway.
type HTTPPaymentHandler struct {
	Address string
	Client  *http.Client
}

func NewHTTPPaymentHandler(address string) (*HTTPPaymentHandler, error) {
	return &HTTPPaymentHandler{
		Address: address,
		Client:  http.DefaultClient,
	}, nil
}

func (h *HTTPPaymentHandler) Charge(ctx context.Context, req *domain.ChargeRequest) (*domain.ChargeResult, error) {
	chargeRequest := paymentRequest.ChargeRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Method:   string(req.Method),
	}
	if req.Card != nil {
		chargeRequest.Card = &paymentRequest.ChargeCard{
			Number: req.Card.Number,
			Holder: req.Card.Holder,
			Expiry: req.Card.Expiry,
			CVV:    req.Card.CVV,
		}
	}
	requestBodyBytes, err := json.Marshal(chargeRequest)
	if err != nil {
		return nil, err
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/payments/charge", h.Address), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	response, err := h.Client.Do(httpRequest)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrPaymentTimeout
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var chargeResponse paymentResponse.ChargeResponse
		if err := json.Unmarshal(responseBodyBytes, &chargeResponse); err != nil {
			return nil, err
		}
		return &domain.ChargeResult{PaymentID: chargeResponse.PaymentID}, nil
	}

	var errorResponse paymentResponse.ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return nil, fmt.Errorf("%w: status %d", domain.ErrPaymentFailed, response.StatusCode)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrPaymentFailed, errorResponse.Error)
}
