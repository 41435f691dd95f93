package http

import (
	"net/http"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/service"
)

type MaintenanceHandler struct {
	maintenanceSvc service.MaintenanceService
}

func NewMaintenanceHandler(maintenanceSvc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceSvc: maintenanceSvc}
}

func (h *MaintenanceHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req domain.MaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PropertyID <= 0 || req.Title == "" {
		respondError(w, http.StatusBadRequest, "property_id and title are required")
		return
	}

	if err := h.maintenanceSvc.OpenRequest(r.Context(), &req); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, req)
}

type startRequest struct {
	AssignedTo int32 `json:"assigned_to"`
}

func (h *MaintenanceHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req startRequest
	if err := decodeJSON(r, &req); err != nil || req.AssignedTo <= 0 {
		respondError(w, http.StatusBadRequest, "assigned_to is required")
		return
	}

	updated, err := h.maintenanceSvc.StartRequest(r.Context(), id, req.AssignedTo)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

type resolveRequest struct {
	CostCents int64 `json:"cost_cents"`
}

func (h *MaintenanceHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req resolveRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.maintenanceSvc.ResolveRequest(r.Context(), id, req.CostCents)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	req, err := h.maintenanceSvc.GetRequest(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.MaintenanceStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.MaintenanceStatusOpen
	}
	page, pageSize := pageParams(r)

	reqs, total, err := h.maintenanceSvc.ListByStatus(r.Context(), status, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: reqs, Total: total})
}

func (h *MaintenanceHandler) ListByProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	reqs, err := h.maintenanceSvc.ListByProperty(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reqs)
}
