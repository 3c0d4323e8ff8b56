package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/controleponto/ponto/internal/report"
	"github.com/controleponto/ponto/internal/store"
)

const reportFilename = "relatorio_presenca.pdf"

// ReportHandler serves the per-employee attendance sheet PDF.
type ReportHandler struct {
	dataset  *store.Dataset
	renderer *report.Renderer
}

// NewReportHandler creates a new report handler.
func NewReportHandler(dataset *store.Dataset, renderer *report.Renderer) *ReportHandler {
	return &ReportHandler{dataset: dataset, renderer: renderer}
}

// ReportResponse carries the rendered PDF as a data URI the browser can
// offer as a download. Href is empty when there is nothing to export.
type ReportResponse struct {
	Href     string `json:"href"`
	Filename string `json:"filename"`
}

// Generate renders the attendance sheet for one employee over a date range.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee := r.URL.Query().Get("employee")
	all := h.dataset.Punches()
	filtered := report.FilterByEmployee(report.FilterByDateRange(all, start, end), employee)

	data, err := h.renderer.Render(employee, start, end, all, filtered)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to render report")
		return
	}
	if data == nil {
		respondJSON(w, http.StatusOK, ReportResponse{Filename: reportFilename})
		return
	}

	respondJSON(w, http.StatusOK, ReportResponse{
		Href:     "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(data),
		Filename: reportFilename,
	})
}
