package paymentRequest

type ChargeRequest struct {
	Amount   float64     `json:"amount"`
	Currency string      `json:"currency"`
	Method   string      `json:"method"`
	Card     *ChargeCard `json:"card,omitempty"`
}

type ChargeCard struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}
