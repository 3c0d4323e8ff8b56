package handlers

import (
	"net/http"

	"github.com/controleponto/ponto/internal/report"
	"github.com/controleponto/ponto/internal/store"
)

// RecordsHandler serves the clock-in records backing the dashboard.
type RecordsHandler struct {
	dataset *store.Dataset
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(dataset *store.Dataset) *RecordsHandler {
	return &RecordsHandler{dataset: dataset}
}

// List returns the detail rows for a date range, optionally narrowed to one
// employee via the employee query parameter.
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	punches := report.FilterByDateRange(h.dataset.Punches(), start, end)
	if employee := r.URL.Query().Get("employee"); employee != "" {
		punches = report.FilterByEmployee(punches, employee)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"records": report.DetailRows(punches),
	})
}

// Employees returns the distinct employee names, sorted.
func (h *RecordsHandler) Employees(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"employees": h.dataset.Employees(),
	})
}

// BoundsResponse carries the first and last recorded dates, used by the
// dashboard to preset its date pickers.
type BoundsResponse struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// Bounds returns the date range covered by the records.
func (h *RecordsHandler) Bounds(w http.ResponseWriter, r *http.Request) {
	min, max := h.dataset.Bounds()
	respondJSON(w, http.StatusOK, BoundsResponse{
		Min: min.Format("2006-01-02"),
		Max: max.Format("2006-01-02"),
	})
}

// Refresh reloads the records from disk.
func (h *RecordsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.dataset.Reload(); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to reload records")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(h.dataset.Punches()),
	})
}
