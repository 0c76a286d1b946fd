package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/service"
)

type EquipmentHandler struct {
	equipmentSvc service.EquipmentService
}

func NewEquipmentHandler(equipmentSvc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentSvc: equipmentSvc}
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var equipment domain.Equipment
	if !decodeBody(w, r, &equipment) {
		return
	}
	if equipment.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	if err := h.equipmentSvc.CreateEquipment(r.Context(), &equipment); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, equipment)
}

type equipmentDetailResponse struct {
	Equipment   *domain.Equipment         `json:"equipment"`
	ActiveUnits []domain.ActiveRentalUnit `json:"active_units"`
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	equipment, units, err := h.equipmentSvc.GetEquipment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, equipmentDetailResponse{Equipment: equipment, ActiveUnits: units})
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var equipment domain.Equipment
	if !decodeBody(w, r, &equipment) {
		return
	}
	equipment.ID = mux.Vars(r)["id"]

	if err := h.equipmentSvc.UpdateEquipment(r.Context(), &equipment); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, equipment)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.equipmentSvc.DeleteEquipment(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		equipment []domain.Equipment
		err       error
	)
	if r.URL.Query().Get("available") == "true" {
		equipment, err = h.equipmentSvc.ListAvailableEquipment(r.Context())
	} else {
		equipment, err = h.equipmentSvc.ListEquipment(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, equipment)
}

type quoteResponse struct {
	EquipmentID string          `json:"equipment_id"`
	Days        int32           `json:"days"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

func (h *EquipmentHandler) Quote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	days, err := strconv.ParseInt(r.URL.Query().Get("days"), 10, 32)
	if err != nil || days < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "days must be a positive integer"})
		return
	}

	price, err := h.equipmentSvc.Quote(r.Context(), id, int32(days))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteResponse{EquipmentID: id, Days: int32(days), TotalPrice: price})
}
