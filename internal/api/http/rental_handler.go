package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	CustomerID   string `json:"customer_id"`
	EquipmentID  string `json:"equipment_id"`
	StartDate    string `json:"start_date"`
	DurationDays int32  `json:"duration_days"`
	Notes        string `json:"notes"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	start := time.Now().UTC()
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "start_date must be YYYY-MM-DD"})
			return
		}
		start = parsed
	}

	rental, err := h.rentalSvc.CreateRental(
		r.Context(),
		req.CustomerID,
		req.EquipmentID,
		start,
		req.DurationDays,
		req.Notes,
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.GetRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		rentals []domain.Rental
		err     error
	)
	if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		rentals, err = h.rentalSvc.ListRentalsByCustomer(r.Context(), customerID)
	} else {
		rentals, err = h.rentalSvc.ListRentals(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

type renewRentalRequest struct {
	AdditionalDays int32 `json:"additional_days"`
}

func (h *RentalHandler) Renew(w http.ResponseWriter, r *http.Request) {
	var req renewRentalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rental, err := h.rentalSvc.RenewRental(r.Context(), mux.Vars(r)["id"], req.AdditionalDays)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.FinalizeRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

func (h *RentalHandler) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req paymentStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	status := domain.PaymentStatus(req.PaymentStatus)
	switch status {
	case domain.PaymentStatusPaid, domain.PaymentStatusPending, domain.PaymentStatusOwing:
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "payment_status must be PAID, PENDING or OWING"})
		return
	}

	rental, err := h.rentalSvc.SetPaymentStatus(r.Context(), mux.Vars(r)["id"], status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}
