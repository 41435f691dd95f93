package http

import (
	"net/http"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportSvc.DashboardSummary(r.Context(), time.Now())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	overdue, err := h.reportSvc.OverdueTenants(r.Context(), time.Now())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, overdue)
}

// Commission reports an agent's suggested payout for a period. The period
// defaults to the current calendar month; end dates are inclusive.
func (h *ReportHandler) Commission(w http.ResponseWriter, r *http.Request) {
	agentID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	now := time.Now().UTC()
	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	q := r.URL.Query()
	if v := q.Get("start"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "start must be yyyy-mm-dd")
			return
		}
		periodStart = t
	}
	if v := q.Get("end"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "end must be yyyy-mm-dd")
			return
		}
		periodEnd = t
	}
	if periodEnd.Before(periodStart) {
		respondError(w, http.StatusBadRequest, "end must not be before start")
		return
	}

	report, err := h.reportSvc.CommissionPayout(r.Context(), agentID, periodStart, periodEnd)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
