package mappers

import (
	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/postgres/models"
)

func ToDomainBooster(model *models.BoosterModel) *domain.Booster {
	return &domain.Booster{
		ID:              model.ID,
		Name:            model.Name,
		Email:           model.Email,
		Phone:           model.Phone,
		Username:        model.Username,
		Password:        model.Password,
		JoinedAt:        model.JoinedAt,
		Status:          model.Status,
		CompletedOrders: model.CompletedOrders,
		Rating:          model.Rating,
		Specializations: fromJSONList(model.SpecializationsJSON),
		Permissions: domain.Permissions{
			CanAccessChat:          model.CanAccessChat,
			CanModifyOrders:        model.CanModifyOrders,
			CanAccessClientDetails: model.CanAccessClientDetails,
			IsAdmin:                model.IsAdmin,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMBooster(booster *domain.Booster) *models.BoosterModel {
	return &models.BoosterModel{
		ID:                     booster.ID,
		Name:                   booster.Name,
		Email:                  booster.Email,
		Phone:                  booster.Phone,
		Username:               booster.Username,
		Password:               booster.Password,
		JoinedAt:               booster.JoinedAt,
		Status:                 booster.Status,
		CompletedOrders:        booster.CompletedOrders,
		Rating:                 booster.Rating,
		SpecializationsJSON:    toJSONList(booster.Specializations),
		CanAccessChat:          booster.Permissions.CanAccessChat,
		CanModifyOrders:        booster.Permissions.CanModifyOrders,
		CanAccessClientDetails: booster.Permissions.CanAccessClientDetails,
		IsAdmin:                booster.Permissions.IsAdmin,
		CreatedAt:              booster.CreatedAt,
		UpdatedAt:              booster.UpdatedAt,
	}
}
