package http

import (
	"net/http"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

type MotorbikeHandler struct {
	motorbikeSvc service.MotorbikeService
}

func NewMotorbikeHandler(motorbikeSvc service.MotorbikeService) *MotorbikeHandler {
	return &MotorbikeHandler{motorbikeSvc: motorbikeSvc}
}

type motorbikeRequest struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int32  `json:"year"`
	LicensePlate string `json:"license_plate"`
	Color        string `json:"color"`
	ImageURL     string `json:"image_url,omitempty"`
	Status       string `json:"status,omitempty"`
	ReservedBy   *int32 `json:"reserved_by,omitempty"`
	DailyRate    int64  `json:"daily_rate"`
}

type motorbikeResponse struct {
	*domain.Motorbike
	DailyRate *int64 `json:"daily_rate,omitempty"`
}

func (h *MotorbikeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req motorbikeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	bike := &domain.Motorbike{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		Color:        req.Color,
		ImageURL:     req.ImageURL,
		Status:       domain.MotorbikeStatus(req.Status),
		ReservedBy:   req.ReservedBy,
	}
	if err := h.motorbikeSvc.AddMotorbike(r.Context(), bike, req.DailyRate); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, bike)
}

func (h *MotorbikeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	bike, priceList, err := h.motorbikeSvc.GetMotorbike(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := motorbikeResponse{Motorbike: bike}
	if priceList != nil {
		resp.DailyRate = &priceList.DailyRate
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *MotorbikeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req motorbikeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	bike := &domain.Motorbike{
		ID:           id,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		Color:        req.Color,
		ImageURL:     req.ImageURL,
		Status:       domain.MotorbikeStatus(req.Status),
		ReservedBy:   req.ReservedBy,
	}
	if err := h.motorbikeSvc.UpdateMotorbike(r.Context(), bike); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bike)
}

func (h *MotorbikeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.motorbikeSvc.DeleteMotorbike(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MotorbikeHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	bikes, count, err := h.motorbikeSvc.ListMotorbikes(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: bikes, TotalCount: count, Page: page, PageSize: pageSize})
}

type dailyRateRequest struct {
	DailyRate int64 `json:"daily_rate"`
}

func (h *MotorbikeHandler) SetDailyRate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req dailyRateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.motorbikeSvc.SetDailyRate(r.Context(), id, req.DailyRate); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
