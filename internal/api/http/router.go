package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"motorent-backend/internal/security"
	"motorent-backend/internal/service"
)

// Services bundles everything the API serves.
type Services struct {
	Auth          service.AuthService
	Contracts     service.ContractService
	Motorbikes    service.MotorbikeService
	Discounts     service.DiscountService
	Customers     service.CustomerService
	Statistics    service.StatisticsService
	Notifications service.NotificationService
	IncidentImage service.IncidentImageService
}

// NewRouter builds the full API route table. Everything under /api/v1 except
// the auth endpoints requires a valid access token.
func NewRouter(svcs Services, tm security.TokenManager, maxUploadSize int64) *mux.Router {
	root := mux.NewRouter()
	root.Use(LoggingMiddleware)

	root.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	authHandler := NewAuthHandler(svcs.Auth)
	root.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods(http.MethodPost)
	root.HandleFunc("/api/v1/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	api := root.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tm))

	contractHandler := NewContractHandler(svcs.Contracts)
	api.HandleFunc("/contracts/quote", contractHandler.Quote).Methods(http.MethodPost)
	api.HandleFunc("/contracts", contractHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/contracts", contractHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/contracts/{id}", contractHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/contracts/{id}/activate", contractHandler.Activate).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id}/cancel", contractHandler.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id}/complete", contractHandler.Complete).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id}/incidents", contractHandler.ReportIncident).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id}/incidents/{incident_id}/complete", contractHandler.CompleteIncident).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id}/payments", contractHandler.ProcessPayment).Methods(http.MethodPost)

	imageHandler := NewIncidentImageHandler(svcs.IncidentImage, maxUploadSize)
	api.HandleFunc("/incidents/{incident_id}/images", imageHandler.Upload).Methods(http.MethodPost)
	api.HandleFunc("/incidents/images", imageHandler.Download).Methods(http.MethodGet)

	motorbikeHandler := NewMotorbikeHandler(svcs.Motorbikes)
	api.HandleFunc("/motorbikes", motorbikeHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/motorbikes", motorbikeHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/motorbikes/{id}", motorbikeHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/motorbikes/{id}", motorbikeHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/motorbikes/{id}", RequireAdmin(motorbikeHandler.Delete)).Methods(http.MethodDelete)
	api.HandleFunc("/motorbikes/{id}/daily-rate", RequireAdmin(motorbikeHandler.SetDailyRate)).Methods(http.MethodPut)

	discountHandler := NewDiscountHandler(svcs.Discounts)
	api.HandleFunc("/discounts", RequireAdmin(discountHandler.Create)).Methods(http.MethodPost)
	api.HandleFunc("/discounts", discountHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/discounts/{id}", discountHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/discounts/{id}", RequireAdmin(discountHandler.Update)).Methods(http.MethodPut)
	api.HandleFunc("/discounts/{id}", RequireAdmin(discountHandler.Delete)).Methods(http.MethodDelete)

	customerHandler := NewCustomerHandler(svcs.Customers)
	api.HandleFunc("/customers", customerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers", customerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", customerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", customerHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}", RequireAdmin(customerHandler.Delete)).Methods(http.MethodDelete)

	statsHandler := NewStatisticsHandler(svcs.Statistics)
	api.HandleFunc("/statistics/revenue", RequireAdmin(statsHandler.Revenue)).Methods(http.MethodGet)
	api.HandleFunc("/statistics/contracts", statsHandler.ContractCounts).Methods(http.MethodGet)
	api.HandleFunc("/statistics/incidents", statsHandler.IncidentCounts).Methods(http.MethodGet)

	noteHandler := NewNotificationHandler(svcs.Notifications)
	api.HandleFunc("/notifications", noteHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", noteHandler.MarkAsRead).Methods(http.MethodPost)

	return root
}
