package usecase

import (
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	orderdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/order"
	"github.com/jaevor/go-nanoid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewOrderID mints an order identifier in the ORD-<digits> format shared by
// checkout-created and operator-created orders.
func NewOrderID() (string, error) {
	idGenerator, err := nanoid.CustomASCII("0123456789", 8)
	if err != nil {
		return "", err
	}
	return "ORD-" + idGenerator(), nil
}

func (uc *DefaultOrderUsecase) CreateOrder(input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error) {
	if err := validateCreateOrder(input); err != nil {
		return nil, err
	}
	if input.AccountDetails != nil {
		if err := ValidateAccountDetails(input.AccountDetails); err != nil {
			return nil, err
		}
	}

	orderID, err := NewOrderID()
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	// Solo boosts need the client's credentials before boosters may see the
	// order; duo boosts are playable immediately.
	orderStatus := domain.StatusAvailable
	var details *domain.AccountDetails
	if input.BoostType == domain.BoostSolo {
		if input.AccountDetails == nil {
			orderStatus = domain.StatusAwaitingAccount
		} else {
			details = &domain.AccountDetails{
				Username: input.AccountDetails.Username,
				Password: input.AccountDetails.Password,
				Email:    input.AccountDetails.Email,
			}
		}
	}

	now := time.Now()
	order := &domain.Order{
		ID:              orderID,
		ClientID:        input.ClientID,
		Game:            input.Game,
		BoostType:       input.BoostType,
		CurrentRank:     input.CurrentRank,
		DesiredRank:     input.DesiredRank,
		Price:           input.Price,
		DiscountPercent: input.DiscountPercent,
		Deadline:        input.Deadline,
		Status:          orderStatus,
		Progress:        0,
		Requirements:    input.Requirements,
		Attachments:     input.Attachments,
		AccountDetails:  details,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		return nil, err
	}

	uc.recordOrderCreated(order)
	uc.publishOrderEvent(order)

	return orderdto.ToOrderOutput(order), nil
}

func validateCreateOrder(input *orderdto.CreateOrderInput) error {
	ve := domain.NewValidationError()
	if input.ClientID == "" {
		ve.Add("clientId", "Client id is required")
	}
	if !domain.ValidGame(input.Game) {
		ve.Add("game", "Unknown game title")
	}
	if !domain.ValidBoostType(input.BoostType) {
		ve.Add("boostType", "Boost type must be solo or duo")
	}
	if input.Price < 0 {
		ve.Add("price", "Price must not be negative")
	}
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		ve.Add("discount", "Discount must be between 0 and 100")
	}
	return ve.Err()
}
