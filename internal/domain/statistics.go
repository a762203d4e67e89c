package domain

// Aggregates served by the statistics endpoints. Computed in SQL, never kept
// in memory.

type MonthlyRevenue struct {
	Month     string `json:"month"` // yyyy-mm
	Revenue   int64  `json:"revenue"`
	Contracts int32  `json:"contracts"`
}

type ContractStatusCount struct {
	Status ContractStatus `json:"status"`
	Count  int32          `json:"count"`
}

type IncidentTypeCount struct {
	Type  IncidentType `json:"type"`
	Count int32        `json:"count"`
}
