package http

import (
	"net/http"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/service"
)

type TenantHandler struct {
	tenantSvc service.TenantService
}

func NewTenantHandler(tenantSvc service.TenantService) *TenantHandler {
	return &TenantHandler{tenantSvc: tenantSvc}
}

func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var tenant domain.Tenant
	if err := decodeJSON(r, &tenant); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if tenant.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.tenantSvc.CreateTenant(r.Context(), &tenant); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, tenant)
}

func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	tenant, err := h.tenantSvc.GetTenant(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tenant)
}

// Balances returns the tenant's derived financial picture: rent and deposit
// balances, standing, and the overdue breakdown when applicable.
func (h *TenantHandler) Balances(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	balances, err := h.tenantSvc.GetTenantBalances(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, balances)
}

func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var tenant domain.Tenant
	if err := decodeJSON(r, &tenant); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tenant.ID = id

	if err := h.tenantSvc.UpdateTenant(r.Context(), &tenant); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tenant)
}

type reassignRequest struct {
	PropertyID int32 `json:"property_id"`
}

func (h *TenantHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req reassignRequest
	if err := decodeJSON(r, &req); err != nil || req.PropertyID <= 0 {
		respondError(w, http.StatusBadRequest, "property_id is required")
		return
	}

	if err := h.tenantSvc.ReassignTenant(r.Context(), id, req.PropertyID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *TenantHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.tenantSvc.RemoveTenant(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	tenants, total, err := h.tenantSvc.ListTenants(r.Context(), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: tenants, Total: total})
}
