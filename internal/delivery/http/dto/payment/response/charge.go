package paymentResponse

type ChargeResponse struct {
	PaymentID string `json:"paymentId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
