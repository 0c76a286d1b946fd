package http

import (
	"net/http"
	"time"

	"equiprent-backend/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (h *ReportHandler) DueSoon(w http.ResponseWriter, r *http.Request) {
	due, err := h.reportSvc.DueSoon(r.Context(), time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, due)
}

func (h *ReportHandler) Debtors(w http.ResponseWriter, r *http.Request) {
	debtors, err := h.reportSvc.CustomersWithDebt(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, debtors)
}
