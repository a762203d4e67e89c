package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

type ContractHandler struct {
	contractSvc service.ContractService
}

func NewContractHandler(contractSvc service.ContractService) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid " + name)
	}
	return int32(id), nil
}

func pagination(r *http.Request) (int32, int32) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32)
	pageSize, _ := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return int32(page), int32(pageSize)
}

func actorID(r *http.Request) int32 {
	if claims := ClaimsFromContext(r.Context()); claims != nil {
		return claims.EmployeeID
	}
	return 0
}

type quoteRequest struct {
	CustomerID  int32  `json:"customer_id"`
	MotorbikeID int32  `json:"motorbike_id"`
	DiscountID  *int32 `json:"discount_id,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type quoteResponse struct {
	Days           int32 `json:"days"`
	DailyRate      int64 `json:"daily_rate"`
	BasePrice      int64 `json:"base_price"`
	DiscountAmount int64 `json:"discount_amount"`
	TotalPrice     int64 `json:"total_price"`
}

func (h *ContractHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	quote, err := h.contractSvc.CalculateRentalPrice(r.Context(), req.CustomerID, req.MotorbikeID, req.DiscountID, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteResponse{
		Days:           quote.Days,
		DailyRate:      quote.DailyRate,
		BasePrice:      quote.BasePrice,
		DiscountAmount: quote.DiscountAmount,
		TotalPrice:     quote.TotalPrice,
	})
}

type createContractRequest struct {
	CustomerID  int32  `json:"customer_id"`
	MotorbikeID int32  `json:"motorbike_id"`
	DiscountID  *int32 `json:"discount_id,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Notes       string `json:"notes,omitempty"`
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContractRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	contract, err := h.contractSvc.CreateContract(r.Context(), actorID(r), service.CreateContractInput{
		CustomerID:  req.CustomerID,
		MotorbikeID: req.MotorbikeID,
		DiscountID:  req.DiscountID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	contract, err := h.contractSvc.GetContract(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	customerID, _ := strconv.ParseInt(r.URL.Query().Get("customer_id"), 10, 32)
	status := r.URL.Query().Get("status")

	contracts, count, err := h.contractSvc.ListContracts(r.Context(), int32(customerID), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: contracts, TotalCount: count, Page: page, PageSize: pageSize})
}

func (h *ContractHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	contract, err := h.contractSvc.ActivateContract(r.Context(), actorID(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

type cancelContractRequest struct {
	Reason string `json:"reason,omitempty"`
}

func (h *ContractHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req cancelContractRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
	}
	contract, err := h.contractSvc.CancelContract(r.Context(), actorID(r), id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	contract, err := h.contractSvc.CompleteContract(r.Context(), actorID(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

type reportIncidentRequest struct {
	Type        domain.IncidentType     `json:"type"`
	Severity    domain.IncidentSeverity `json:"severity"`
	Description string                  `json:"description"`
}

func (h *ContractHandler) ReportIncident(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req reportIncidentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	incident, err := h.contractSvc.ReportIncident(r.Context(), actorID(r), service.ReportIncidentInput{
		ContractID:  contractID,
		Type:        req.Type,
		Severity:    req.Severity,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, incident)
}

type completeIncidentRequest struct {
	ResolutionNotes string     `json:"resolution_notes"`
	ResolutionCost  int64      `json:"resolution_cost"`
	ResolvedOn      *time.Time `json:"resolved_on,omitempty"`
}

func (h *ContractHandler) CompleteIncident(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	incidentID, err := pathID(r, "incident_id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req completeIncidentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	resolvedOn := req.ResolvedOn
	if resolvedOn == nil {
		now := time.Now()
		resolvedOn = &now
	}

	contract, err := h.contractSvc.CompleteIncident(r.Context(), actorID(r), service.CompleteIncidentInput{
		IncidentID:      incidentID,
		ContractID:      contractID,
		ResolutionNotes: req.ResolutionNotes,
		ResolutionCost:  req.ResolutionCost,
		ResolvedOn:      resolvedOn,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

type paymentRequest struct {
	Amount    int64  `json:"amount"`
	Method    string `json:"method"`
	Reference string `json:"reference,omitempty"`
}

func (h *ContractHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	payment, err := h.contractSvc.ProcessPayment(r.Context(), actorID(r), service.ProcessPaymentInput{
		ContractID: contractID,
		Amount:     req.Amount,
		Method:     domain.PaymentMethod(req.Method),
		Reference:  req.Reference,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}
