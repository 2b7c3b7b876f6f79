package usecase

import (
	"regexp"
	"strings"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	boosterdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/booster"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type BoosterUsecase interface {
	CreateBooster(input *boosterdto.CreateBoosterInput) (*domain.Booster, error)
	UpdateBooster(boosterID string, input *boosterdto.UpdateBoosterInput) (*domain.Booster, error)
	SetPermissions(boosterID string, toggle PermissionToggle) (*domain.Booster, error)
	SetStatus(boosterID string, newStatus domain.BoosterStatus) (*domain.Booster, error)
	DeleteBooster(boosterID, confirmationPhrase string) error
	GetBoosterByID(boosterID string) (*domain.Booster, error)
	GetBoosters(filters domain.BoosterFilters, sortBy, sortOrder string, page, limit int64) ([]*domain.Booster, int64, error)
}

type DefaultBoosterUsecase struct {
	BoosterRepo domain.BoosterRepository
}

func NewDefaultBoosterUsecase(boosterRepo domain.BoosterRepository) *DefaultBoosterUsecase {
	return &DefaultBoosterUsecase{BoosterRepo: boosterRepo}
}

var boosterEmailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func (uc *DefaultBoosterUsecase) CreateBooster(input *boosterdto.CreateBoosterInput) (*domain.Booster, error) {
	ve := domain.NewValidationError()
	validateBoosterProfile(ve, input.Name, input.Email, input.Phone, input.Specializations)
	if strings.TrimSpace(input.Username) == "" {
		ve.Add("username", "Username is required")
	}
	if input.Password == "" {
		ve.Add("password", "Password is required")
	} else if len(input.Password) < 8 {
		ve.Add("password", "Password must be at least 8 characters")
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	permissions := domain.Permissions{}
	if input.Permissions != nil {
		permissions = *input.Permissions
		if permissions.IsAdmin {
			// Same cascade as a live toggle: admin implies everything.
			permissions, _ = NormalizePermissions(permissions, PermissionToggle{Field: PermissionAdmin, Value: true})
		}
	}

	now := time.Now()
	booster := &domain.Booster{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Username:        input.Username,
		Password:        input.Password,
		JoinedAt:        now,
		Status:          domain.BoosterOffline,
		Specializations: input.Specializations,
		Permissions:     permissions,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.BoosterRepo.CreateBooster(booster); err != nil {
		return nil, err
	}

	return booster, nil
}

func (uc *DefaultBoosterUsecase) UpdateBooster(boosterID string, input *boosterdto.UpdateBoosterInput) (*domain.Booster, error) {
	booster, err := uc.BoosterRepo.GetBoosterByID(boosterID)
	if err != nil {
		return nil, err
	}

	ve := domain.NewValidationError()
	validateBoosterProfile(ve, input.Name, input.Email, input.Phone, input.Specializations)
	if input.Rating != nil && (*input.Rating < 0 || *input.Rating > 5) {
		ve.Add("rating", "Rating must be between 0.0 and 5.0")
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	booster.Name = input.Name
	booster.Email = input.Email
	booster.Phone = input.Phone
	booster.Specializations = input.Specializations
	if input.Rating != nil {
		booster.Rating = *input.Rating
	}
	booster.UpdatedAt = time.Now()

	if err := uc.BoosterRepo.UpdateBooster(booster); err != nil {
		return nil, err
	}

	return booster, nil
}

// SetPermissions runs the toggle through the cascade and writes the whole
// normalized set in one update, never two partial writes.
func (uc *DefaultBoosterUsecase) SetPermissions(boosterID string, toggle PermissionToggle) (*domain.Booster, error) {
	booster, err := uc.BoosterRepo.GetBoosterByID(boosterID)
	if err != nil {
		return nil, err
	}

	normalized, err := NormalizePermissions(booster.Permissions, toggle)
	if err != nil {
		return nil, err
	}

	booster.Permissions = normalized
	booster.UpdatedAt = time.Now()
	if err := uc.BoosterRepo.UpdateBooster(booster); err != nil {
		return nil, err
	}

	return booster, nil
}

func (uc *DefaultBoosterUsecase) SetStatus(boosterID string, newStatus domain.BoosterStatus) (*domain.Booster, error) {
	if !domain.ValidBoosterStatus(newStatus) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown booster status: %s", newStatus)
	}

	booster, err := uc.BoosterRepo.GetBoosterByID(boosterID)
	if err != nil {
		return nil, err
	}

	booster.Status = newStatus
	booster.UpdatedAt = time.Now()
	if err := uc.BoosterRepo.UpdateBooster(booster); err != nil {
		return nil, err
	}

	return booster, nil
}

// DeleteBooster destroys a booster record. Boosters with completed orders
// require the operator to retype the generated confirmation phrase; fresh
// boosters are deleted unconditionally.
func (uc *DefaultBoosterUsecase) DeleteBooster(boosterID, confirmationPhrase string) error {
	booster, err := uc.BoosterRepo.GetBoosterByID(boosterID)
	if err != nil {
		return err
	}

	if booster.CompletedOrders > 0 && confirmationPhrase != DeleteConfirmationPhrase(booster) {
		return domain.ErrConfirmationMismatch
	}

	return uc.BoosterRepo.DeleteBooster(boosterID)
}

func DeleteConfirmationPhrase(booster *domain.Booster) string {
	return "delete-" + strings.ToLower(booster.Name)
}

func (uc *DefaultBoosterUsecase) GetBoosterByID(boosterID string) (*domain.Booster, error) {
	return uc.BoosterRepo.GetBoosterByID(boosterID)
}

func (uc *DefaultBoosterUsecase) GetBoosters(
	filters domain.BoosterFilters,
	sortBy, sortOrder string,
	page, limit int64,
) ([]*domain.Booster, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.BoosterRepo.GetBoosters(filters, sortBy, sortOrder, page, limit)
}

func validateBoosterProfile(ve *domain.ValidationError, name, email, phone string, specializations []string) {
	if strings.TrimSpace(name) == "" {
		ve.Add("name", "Name is required")
	}
	if strings.TrimSpace(email) == "" {
		ve.Add("email", "Email is required")
	} else if !boosterEmailPattern.MatchString(email) {
		ve.Add("email", "Email is invalid")
	}
	if strings.TrimSpace(phone) == "" {
		ve.Add("phone", "Phone number is required")
	}
	if len(specializations) == 0 {
		ve.Add("specialization", "At least one specialization is required")
	}
}
