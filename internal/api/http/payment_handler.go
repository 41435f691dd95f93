package http

import (
	"net/http"
	"strconv"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/ledger"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/service"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// Record is the staff path: the payment is confirmed immediately.
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	var payment domain.Payment
	if err := decodeJSON(r, &payment); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payment.TenantID <= 0 {
		respondError(w, http.StatusBadRequest, "tenant_id is required")
		return
	}

	if err := h.paymentSvc.RecordPayment(r.Context(), &payment, claims.UserID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, payment)
}

// Submit is the tenant self-service path: the payment lands in the approval
// queue regardless of what the body claims.
func (h *PaymentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payment domain.Payment
	if err := decodeJSON(r, &payment); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payment.TenantID <= 0 {
		respondError(w, http.StatusBadRequest, "tenant_id is required")
		return
	}

	if err := h.paymentSvc.SubmitTenantPayment(r.Context(), &payment); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	payment, err := h.paymentSvc.ApprovePayment(r.Context(), claims.UserID, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *PaymentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req rejectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, err := h.paymentSvc.RejectPayment(r.Context(), claims.UserID, id, req.Reason)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var payment domain.Payment
	if err := decodeJSON(r, &payment); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	payment.ID = id

	if err := h.paymentSvc.UpdatePayment(r.Context(), &payment); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	payment, err := h.paymentSvc.GetPayment(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) ListByTenant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	payments, err := h.paymentSvc.ListTenantPayments(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	payments, total, err := h.paymentSvc.ListPendingApprovals(r.Context(), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: payments, Total: total})
}

// Preview answers what a tenant's balance would look like after a
// hypothetical payment. Used by payment forms while typing.
func (h *PaymentHandler) Preview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	q := r.URL.Query()
	obligation := ledger.ObligationRent
	if q.Get("obligation") == string(ledger.ObligationDeposit) {
		obligation = ledger.ObligationDeposit
	}
	amount, err := strconv.ParseInt(q.Get("amount_cents"), 10, 64)
	if err != nil || amount <= 0 {
		respondError(w, http.StatusBadRequest, "amount_cents must be a positive integer")
		return
	}
	var exclude int32
	if v, err := strconv.ParseInt(q.Get("exclude_payment_id"), 10, 32); err == nil && v > 0 {
		exclude = int32(v)
	}

	preview, err := h.paymentSvc.BalancePreview(r.Context(), id, obligation, amount, exclude)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, preview)
}
