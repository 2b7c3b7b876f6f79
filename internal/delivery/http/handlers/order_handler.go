package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	orderdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/order"
	ordersvc "github.com/LavaJover/shvark-boost-service/internal/usecase/order"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	Orders ordersvc.OrderUsecase
}

func NewOrderHandler(orders ordersvc.OrderUsecase) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

type accountDetailsRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	AgreeToTerms bool   `json:"agreeToTerms"`
}

type createOrderRequest struct {
	ClientID        string                 `json:"clientId"`
	Game            string                 `json:"game"`
	BoostType       string                 `json:"boostType"`
	CurrentRank     string                 `json:"currentRank"`
	DesiredRank     string                 `json:"desiredRank"`
	Price           float64                `json:"price"`
	DiscountPercent float64                `json:"discount"`
	Deadline        time.Time              `json:"deadline"`
	Requirements    []string               `json:"requirements"`
	Attachments     []string               `json:"attachments"`
	AccountDetails  *accountDetailsRequest `json:"accountDetails,omitempty"`
}

type orderResponse struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"clientId"`
	Game            string    `json:"game"`
	BoostType       string    `json:"boostType"`
	CurrentRank     string    `json:"currentRank"`
	DesiredRank     string    `json:"desiredRank"`
	Price           float64   `json:"price"`
	DiscountPercent float64   `json:"discount"`
	PayableAmount   float64   `json:"payableAmount"`
	Deadline        time.Time `json:"deadline"`
	Status          string    `json:"status"`
	Progress        int32     `json:"progress"`
	BoosterID       string    `json:"boosterId,omitempty"`
	Requirements    []string  `json:"requirements,omitempty"`
	Attachments     []string  `json:"attachments,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toOrderResponse(out *orderdto.OrderOutput) orderResponse {
	return orderResponse{
		ID:              out.ID,
		ClientID:        out.ClientID,
		Game:            string(out.Game),
		BoostType:       string(out.BoostType),
		CurrentRank:     out.CurrentRank,
		DesiredRank:     out.DesiredRank,
		Price:           out.Price,
		DiscountPercent: out.DiscountPercent,
		PayableAmount:   out.PayableAmount,
		Deadline:        out.Deadline,
		Status:          string(out.Status),
		Progress:        out.Progress,
		BoosterID:       out.BoosterID,
		Requirements:    out.Requirements,
		Attachments:     out.Attachments,
		CreatedAt:       out.CreatedAt,
	}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[createOrderRequest](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input := &orderdto.CreateOrderInput{
		ClientID:        body.ClientID,
		Game:            domain.Game(body.Game),
		BoostType:       domain.BoostType(body.BoostType),
		CurrentRank:     body.CurrentRank,
		DesiredRank:     body.DesiredRank,
		Price:           body.Price,
		DiscountPercent: body.DiscountPercent,
		Deadline:        body.Deadline,
		Requirements:    body.Requirements,
		Attachments:     body.Attachments,
	}
	if body.AccountDetails != nil {
		input.AccountDetails = &orderdto.AccountDetailsInput{
			Username:     body.AccountDetails.Username,
			Password:     body.AccountDetails.Password,
			Email:        body.AccountDetails.Email,
			AgreeToTerms: body.AccountDetails.AgreeToTerms,
		}
	}

	out, err := h.Orders.CreateOrder(input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toOrderResponse(out), http.StatusCreated)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetOrderByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toOrderResponse(orderdto.ToOrderOutput(order)), http.StatusOK)
}

func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := domain.OrderFilters{
		Game:      domain.Game(query.Get("game")),
		BoostType: domain.BoostType(query.Get("boostType")),
		BoosterID: query.Get("boosterId"),
		ClientID:  query.Get("clientId"),
		Search:    query.Get("search"),
	}
	if statuses := query.Get("status"); statuses != "" {
		for _, s := range strings.Split(statuses, ",") {
			filters.Statuses = append(filters.Statuses, domain.OrderStatus(s))
		}
	}

	page := parseInt64Param(query.Get("page"), 1)
	limit := parseInt64Param(query.Get("limit"), 20)

	orders, total, err := h.Orders.GetOrders(filters, query.Get("sortBy"), query.Get("sortOrder"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, toOrderResponse(orderdto.ToOrderOutput(order)))
	}

	writeJSON(w, map[string]any{
		"orders": items,
		"total":  total,
		"page":   page,
		"limit":  limit,
	}, http.StatusOK)
}

func (h *OrderHandler) ClaimOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[struct {
		BoosterID string `json:"boosterId"`
	}](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Orders.ClaimOrder(chi.URLParam(r, "id"), body.BoosterID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) SubmitAccountDetails(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[accountDetailsRequest](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input := &orderdto.AccountDetailsInput{
		Username:     body.Username,
		Password:     body.Password,
		Email:        body.Email,
		AgreeToTerms: body.AgreeToTerms,
	}
	if err := h.Orders.SubmitAccountDetails(chi.URLParam(r, "id"), input); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[struct {
		Force bool `json:"force"`
	}](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Orders.CompleteOrder(chi.URLParam(r, "id"), body.Force); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[struct {
		Decline bool `json:"decline"`
	}](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orderID := chi.URLParam(r, "id")
	if body.Decline {
		err = h.Orders.DeclineOrder(orderID)
	} else {
		err = h.Orders.CancelOrder(orderID)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateFrom, err := parseTimeParam(query.Get("dateFrom"))
	if err != nil {
		http.Error(w, "dateFrom must be RFC3339", http.StatusBadRequest)
		return
	}
	dateTo, err := parseTimeParam(query.Get("dateTo"))
	if err != nil {
		http.Error(w, "dateTo must be RFC3339", http.StatusBadRequest)
		return
	}

	stats, err := h.Orders.GetOrderStatistics(query.Get("boosterId"), dateFrom, dateTo)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"totalOrders":     stats.TotalOrders,
		"completedOrders": stats.CompletedOrders,
		"cancelledOrders": stats.CancelledOrders,
		"completedAmount": stats.CompletedAmount,
	}, http.StatusOK)
}

func parseInt64Param(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}

func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
