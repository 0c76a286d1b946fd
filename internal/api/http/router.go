package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"equiprent-backend/internal/security"
	"equiprent-backend/internal/service"
)

// NewRouter wires all HTTP routes. Everything under /api/v1 except the
// login and health endpoints requires a valid session token.
func NewRouter(
	tokenMgr security.TokenManager,
	authSvc service.AuthService,
	customerSvc service.CustomerService,
	equipmentSvc service.EquipmentService,
	rentalSvc service.RentalService,
	reportSvc service.ReportService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	customerHandler := NewCustomerHandler(customerSvc, reportSvc)
	equipmentHandler := NewEquipmentHandler(equipmentSvc)
	rentalHandler := NewRentalHandler(rentalSvc)
	reportHandler := NewReportHandler(reportSvc)

	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokenMgr))

	protected.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	protected.HandleFunc("/auth/users", authHandler.CreateUser).Methods("POST")

	protected.HandleFunc("/customers", customerHandler.List).Methods("GET")
	protected.HandleFunc("/customers", customerHandler.Create).Methods("POST")
	protected.HandleFunc("/customers/{id}", customerHandler.Get).Methods("GET")
	protected.HandleFunc("/customers/{id}", customerHandler.Update).Methods("PUT")
	protected.HandleFunc("/customers/{id}", customerHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/customers/{id}/whatsapp", customerHandler.WhatsAppLink).Methods("GET")
	protected.HandleFunc("/customers/{id}/history", customerHandler.History).Methods("GET")

	protected.HandleFunc("/equipment", equipmentHandler.List).Methods("GET")
	protected.HandleFunc("/equipment", equipmentHandler.Create).Methods("POST")
	protected.HandleFunc("/equipment/{id}", equipmentHandler.Get).Methods("GET")
	protected.HandleFunc("/equipment/{id}", equipmentHandler.Update).Methods("PUT")
	protected.HandleFunc("/equipment/{id}", equipmentHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/equipment/{id}/quote", equipmentHandler.Quote).Methods("GET")

	protected.HandleFunc("/rentals", rentalHandler.List).Methods("GET")
	protected.HandleFunc("/rentals", rentalHandler.Create).Methods("POST")
	protected.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods("GET")
	protected.HandleFunc("/rentals/{id}/renew", rentalHandler.Renew).Methods("POST")
	protected.HandleFunc("/rentals/{id}/finalize", rentalHandler.Finalize).Methods("POST")
	protected.HandleFunc("/rentals/{id}/payment", rentalHandler.SetPaymentStatus).Methods("PUT")

	protected.HandleFunc("/reports/due-soon", reportHandler.DueSoon).Methods("GET")
	protected.HandleFunc("/reports/debtors", reportHandler.Debtors).Methods("GET")

	return router
}
