package mappers

import (
	"encoding/json"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:              model.ID,
		ClientID:        model.ClientID,
		Game:            model.Game,
		BoostType:       model.BoostType,
		CurrentRank:     model.CurrentRank,
		DesiredRank:     model.DesiredRank,
		Price:           model.Price,
		DiscountPercent: model.DiscountPercent,
		Deadline:        model.Deadline,
		Status:          model.Status,
		Progress:        model.Progress,
		BoosterID:       model.BoosterID,
		Requirements:    fromJSONList(model.RequirementsJSON),
		Attachments:     fromJSONList(model.AttachmentsJSON),
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.AccountUsername != "" {
		order.AccountDetails = &domain.AccountDetails{
			Username: model.AccountUsername,
			Password: model.AccountPassword,
			Email:    model.AccountEmail,
		}
	}
	return order
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	model := &models.OrderModel{
		ID:               order.ID,
		ClientID:         order.ClientID,
		Game:             order.Game,
		BoostType:        order.BoostType,
		CurrentRank:      order.CurrentRank,
		DesiredRank:      order.DesiredRank,
		Price:            order.Price,
		DiscountPercent:  order.DiscountPercent,
		Deadline:         order.Deadline,
		Status:           order.Status,
		Progress:         order.Progress,
		BoosterID:        order.BoosterID,
		RequirementsJSON: toJSONList(order.Requirements),
		AttachmentsJSON:  toJSONList(order.Attachments),
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
	if order.AccountDetails != nil {
		model.AccountUsername = order.AccountDetails.Username
		model.AccountPassword = order.AccountDetails.Password
		model.AccountEmail = order.AccountDetails.Email
	}
	return model
}

func toJSONList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	v, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(v)
}

func fromJSONList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}
