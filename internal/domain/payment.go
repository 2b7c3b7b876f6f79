package domain

import "context"

type PaymentMethod string

const (
	MethodCard      PaymentMethod = "CARD"
	MethodPayPal    PaymentMethod = "PAYPAL"
	MethodGooglePay PaymentMethod = "GOOGLE_PAY"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	return m == MethodCard || m == MethodPayPal || m == MethodGooglePay
}

// CardDetails are format-shaped by the checkout layer, never verified here.
type CardDetails struct {
	Number string
	Holder string
	Expiry string
	CVV    string
}

type ChargeRequest struct {
	Amount   float64
	Currency string
	Method   PaymentMethod
	Card     *CardDetails
}

type ChargeResult struct {
	PaymentID string
}

// PaymentGateway is the single network-like boundary of the workflow core.
// Implementations must honor ctx cancellation and surface ErrPaymentTimeout
// when the call exceeds its deadline.
type PaymentGateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}
