package usecase

import (
	"regexp"
	"strings"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	orderdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/order"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateAccountDetails checks every field and reports all failures at
// once; the first invalid field never hides the rest.
func ValidateAccountDetails(input *orderdto.AccountDetailsInput) error {
	ve := domain.NewValidationError()
	if strings.TrimSpace(input.Username) == "" {
		ve.Add("username", "Account username is required")
	}
	if input.Password == "" {
		ve.Add("password", "Account password is required")
	} else if len(input.Password) < 6 {
		ve.Add("password", "Password must be at least 6 characters")
	}
	if strings.TrimSpace(input.Email) == "" {
		ve.Add("email", "Email is required")
	} else if !emailPattern.MatchString(input.Email) {
		ve.Add("email", "Email address is invalid")
	}
	if !input.AgreeToTerms {
		ve.Add("agreeToTerms", "You must agree to the terms")
	}
	return ve.Err()
}

// SubmitAccountDetails moves a solo order out of AWAITING_ACCOUNT_DETAILS
// once the buyer supplies game credentials.
func (uc *DefaultOrderUsecase) SubmitAccountDetails(orderID string, input *orderdto.AccountDetailsInput) error {
	if err := ValidateAccountDetails(input); err != nil {
		return err
	}

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusAwaitingAccount {
		return domain.ErrInvalidTransition
	}

	details := &domain.AccountDetails{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
	}
	if err := uc.OrderRepo.SetAccountDetails(orderID, details, domain.StatusAvailable); err != nil {
		return err
	}

	order.Status = domain.StatusAvailable
	order.AccountDetails = details
	uc.publishOrderEvent(order)

	return nil
}
