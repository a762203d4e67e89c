package http

import (
	"net/http"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

type DiscountHandler struct {
	discountSvc service.DiscountService
}

func NewDiscountHandler(discountSvc service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountSvc: discountSvc}
}

type discountRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsActive    bool   `json:"is_active"`
	Percentage  *int32 `json:"percentage,omitempty"`
	FixedAmount *int64 `json:"fixed_amount,omitempty"`
}

func (req *discountRequest) toDomain(id int32) *domain.Discount {
	return &domain.Discount{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
		Percentage:  req.Percentage,
		FixedAmount: req.FixedAmount,
	}
}

func (h *DiscountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req discountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	discount := req.toDomain(0)
	if err := h.discountSvc.AddDiscount(r.Context(), discount); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, discount)
}

func (h *DiscountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	discount, err := h.discountSvc.GetDiscount(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, discount)
}

func (h *DiscountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req discountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	discount := req.toDomain(id)
	if err := h.discountSvc.UpdateDiscount(r.Context(), discount); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, discount)
}

func (h *DiscountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.discountSvc.DeleteDiscount(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *DiscountHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	activeOnly := r.URL.Query().Get("active") == "true"

	discounts, count, err := h.discountSvc.ListDiscounts(r.Context(), activeOnly, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: discounts, TotalCount: count, Page: page, PageSize: pageSize})
}
