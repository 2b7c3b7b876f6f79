package orderdto

import (
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
)

type CreateOrderInput struct {
	ClientID        string
	Game            domain.Game
	BoostType       domain.BoostType
	CurrentRank     string
	DesiredRank     string
	Price           float64
	DiscountPercent float64
	Deadline        time.Time
	Requirements    []string
	Attachments     []string

	// AccountDetails may accompany solo orders collected through checkout;
	// without them a solo order starts in AWAITING_ACCOUNT_DETAILS.
	AccountDetails *AccountDetailsInput
}

type AccountDetailsInput struct {
	Username     string
	Password     string
	Email        string
	AgreeToTerms bool
}
