package publisher

const (
	OrderEventsTopic  = "boost-order-events"
	ReportEventsTopic = "boost-report-events"
)

type OrderEvent struct {
	OrderID   string  `json:"order_id"`
	ClientID  string  `json:"client_id"`
	BoosterID string  `json:"booster_id,omitempty"`
	Status    string  `json:"status"`
	Game      string  `json:"game"`
	BoostType string  `json:"boost_type"`
	Price     float64 `json:"price"`
	Progress  int32   `json:"progress"`
}

type ReportEvent struct {
	ReportID     string `json:"report_id"`
	OrderID      string `json:"order_id"`
	BoosterID    string `json:"booster_id"`
	Seq          int32  `json:"seq"`
	Progress     int32  `json:"progress"`
	ReviewStatus string `json:"review_status"`
}
