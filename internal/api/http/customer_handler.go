package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/service"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
	reportSvc   service.ReportService
}

func NewCustomerHandler(customerSvc service.CustomerService, reportSvc service.ReportService) *CustomerHandler {
	return &CustomerHandler{
		customerSvc: customerSvc,
		reportSvc:   reportSvc,
	}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if !decodeBody(w, r, &customer) {
		return
	}
	if customer.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	if err := h.customerSvc.CreateCustomer(r.Context(), &customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customerSvc.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if !decodeBody(w, r, &customer) {
		return
	}
	customer.ID = mux.Vars(r)["id"]

	if err := h.customerSvc.UpdateCustomer(r.Context(), &customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customerSvc.DeleteCustomer(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerSvc.ListCustomers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

type whatsappLinkResponse struct {
	Link string `json:"link"`
}

func (h *CustomerHandler) WhatsAppLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.customerSvc.WhatsAppLink(r.Context(), mux.Vars(r)["id"], r.URL.Query().Get("message"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, whatsappLinkResponse{Link: link})
}

func (h *CustomerHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.reportSvc.CustomerHistory(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
