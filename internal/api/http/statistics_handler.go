package http

import (
	"net/http"
	"time"

	"motorent-backend/internal/service"
)

type StatisticsHandler struct {
	statsSvc service.StatisticsService
}

func NewStatisticsHandler(statsSvc service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statsSvc: statsSvc}
}

func (h *StatisticsHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	// Default to the last twelve months.
	if from == "" || to == "" {
		now := time.Now().UTC()
		to = now.Format("2006-01")
		from = now.AddDate(-1, 0, 0).Format("2006-01")
	}

	rows, err := h.statsSvc.RevenueByMonth(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"revenue": rows, "from": from, "to": to})
}

func (h *StatisticsHandler) ContractCounts(w http.ResponseWriter, r *http.Request) {
	rows, err := h.statsSvc.ContractCountsByStatus(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"contract_counts": rows})
}

func (h *StatisticsHandler) IncidentCounts(w http.ResponseWriter, r *http.Request) {
	rows, err := h.statsSvc.IncidentCountsByType(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"incident_counts": rows})
}
