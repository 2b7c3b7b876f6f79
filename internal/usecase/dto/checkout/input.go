package checkoutdto

import (
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
)

// OrderDraft is what the buyer configured before opening checkout: the
// service selection plus its computed price and discount.
type OrderDraft struct {
	ClientID        string
	Game            domain.Game
	BoostType       domain.BoostType
	CurrentRank     string
	DesiredRank     string
	Price           float64
	DiscountPercent float64
	Deadline        time.Time
	Requirements    []string
}

type PaymentInput struct {
	Method domain.PaymentMethod
	Card   *CardInput
}

type CardInput struct {
	Number string
	Holder string
	Expiry string
	CVV    string
}
