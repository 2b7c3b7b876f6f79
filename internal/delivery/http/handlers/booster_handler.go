package handlers

import (
	"net/http"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"github.com/LavaJover/shvark-boost-service/internal/usecase"
	boosterdto "github.com/LavaJover/shvark-boost-service/internal/usecase/dto/booster"
	"github.com/go-chi/chi/v5"
)

type BoosterHandler struct {
	Boosters usecase.BoosterUsecase
}

func NewBoosterHandler(boosters usecase.BoosterUsecase) *BoosterHandler {
	return &BoosterHandler{Boosters: boosters}
}

type permissionsResponse struct {
	CanAccessChat          bool `json:"canAccessChat"`
	CanModifyOrders        bool `json:"canModifyOrders"`
	CanAccessClientDetails bool `json:"canAccessClientDetails"`
	IsAdmin                bool `json:"isAdmin"`
}

type boosterResponse struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Email           string              `json:"email"`
	Phone           string              `json:"phone"`
	Username        string              `json:"username"`
	JoinedAt        time.Time           `json:"joinedAt"`
	Status          string              `json:"status"`
	CompletedOrders int32               `json:"completedOrders"`
	Rating          float64             `json:"rating"`
	Specializations []string            `json:"specializations"`
	Permissions     permissionsResponse `json:"permissions"`
}

// Password never leaves the service.
func toBoosterResponse(booster *domain.Booster) boosterResponse {
	return boosterResponse{
		ID:              booster.ID,
		Name:            booster.Name,
		Email:           booster.Email,
		Phone:           booster.Phone,
		Username:        booster.Username,
		JoinedAt:        booster.JoinedAt,
		Status:          string(booster.Status),
		CompletedOrders: booster.CompletedOrders,
		Rating:          booster.Rating,
		Specializations: booster.Specializations,
		Permissions: permissionsResponse{
			CanAccessChat:          booster.Permissions.CanAccessChat,
			CanModifyOrders:        booster.Permissions.CanModifyOrders,
			CanAccessClientDetails: booster.Permissions.CanAccessClientDetails,
			IsAdmin:                booster.Permissions.IsAdmin,
		},
	}
}

type createBoosterRequest struct {
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone"`
	Username        string               `json:"username"`
	Password        string               `json:"password"`
	Specializations []string             `json:"specializations"`
	Permissions     *permissionsResponse `json:"permissions,omitempty"`
}

func (h *BoosterHandler) CreateBooster(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[createBoosterRequest](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input := &boosterdto.CreateBoosterInput{
		Name:            body.Name,
		Email:           body.Email,
		Phone:           body.Phone,
		Username:        body.Username,
		Password:        body.Password,
		Specializations: body.Specializations,
	}
	if body.Permissions != nil {
		input.Permissions = &domain.Permissions{
			CanAccessChat:          body.Permissions.CanAccessChat,
			CanModifyOrders:        body.Permissions.CanModifyOrders,
			CanAccessClientDetails: body.Permissions.CanAccessClientDetails,
			IsAdmin:                body.Permissions.IsAdmin,
		}
	}

	booster, err := h.Boosters.CreateBooster(input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toBoosterResponse(booster), http.StatusCreated)
}

func (h *BoosterHandler) GetBooster(w http.ResponseWriter, r *http.Request) {
	booster, err := h.Boosters.GetBoosterByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toBoosterResponse(booster), http.StatusOK)
}

func (h *BoosterHandler) GetBoosters(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := domain.BoosterFilters{
		Status: domain.BoosterStatus(query.Get("status")),
		Search: query.Get("search"),
	}
	page := parseInt64Param(query.Get("page"), 1)
	limit := parseInt64Param(query.Get("limit"), 20)

	boosters, total, err := h.Boosters.GetBoosters(filters, query.Get("sortBy"), query.Get("sortOrder"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]boosterResponse, 0, len(boosters))
	for _, booster := range boosters {
		items = append(items, toBoosterResponse(booster))
	}

	writeJSON(w, map[string]any{
		"boosters": items,
		"total":    total,
		"page":     page,
		"limit":    limit,
	}, http.StatusOK)
}

func (h *BoosterHandler) UpdateBooster(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[struct {
		Name            string   `json:"name"`
		Email           string   `json:"email"`
		Phone           string   `json:"phone"`
		Specializations []string `json:"specializations"`
		Rating          *float64 `json:"rating,omitempty"`
	}](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booster, err := h.Boosters.UpdateBooster(chi.URLParam(r, "id"), &boosterdto.UpdateBoosterInput{
		Name:            body.Name,
		Email:           body.Email,
		Phone:           body.Phone,
		Specializations: body.Specializations,
		Rating:          body.Rating,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toBoosterResponse(booster), http.StatusOK)
}

func (h *BoosterHandler) SetPermissions(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[struct {
		Field string `json:"field"`
		Value bool   `json:"value"`
	}](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booster, err := h.Boosters.SetPermissions(chi.URLParam(r, "id"), usecase.PermissionToggle{
		Field: body.Field,
		Value: body.Value,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toBoosterResponse(booster), http.StatusOK)
}

func (h *BoosterHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[struct {
		Status string `json:"status"`
	}](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booster, err := h.Boosters.SetStatus(chi.URLParam(r, "id"), domain.BoosterStatus(body.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toBoosterResponse(booster), http.StatusOK)
}

func (h *BoosterHandler) DeleteBooster(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[struct {
		Confirmation string `json:"confirmation"`
	}](r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Boosters.DeleteBooster(chi.URLParam(r, "id"), body.Confirmation); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
