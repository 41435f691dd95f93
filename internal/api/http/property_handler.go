package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/service"
)

type PropertyHandler struct {
	propertySvc service.PropertyService
}

func NewPropertyHandler(propertySvc service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertySvc: propertySvc}
}

func pathID(r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func pageParams(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(20)
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}

type pagedResponse struct {
	Items any   `json:"items"`
	Total int32 `json:"total"`
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var property domain.Property
	if err := decodeJSON(r, &property); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if property.Name == "" || property.RentAmountCents <= 0 {
		respondError(w, http.StatusBadRequest, "name and a positive rent amount are required")
		return
	}

	if err := h.propertySvc.AddProperty(r.Context(), &property); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	property, err := h.propertySvc.GetProperty(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var property domain.Property
	if err := decodeJSON(r, &property); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	property.ID = id

	if err := h.propertySvc.UpdateProperty(r.Context(), &property); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.propertySvc.DeleteProperty(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)

	query := r.URL.Query().Get("q")
	status := domain.PropertyStatus(r.URL.Query().Get("status"))

	var (
		properties []domain.Property
		total      int32
		err        error
	)
	if query != "" || status != "" {
		properties, total, err = h.propertySvc.SearchProperties(r.Context(), query, status, page, pageSize)
	} else {
		properties, total, err = h.propertySvc.ListProperties(r.Context(), page, pageSize)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: properties, Total: total})
}
