package handlers

import (
	"net/http"

	"github.com/controleponto/ponto/internal/report"
	"github.com/controleponto/ponto/internal/store"
)

// ChartsHandler serves the aggregated chart data for the dashboard.
type ChartsHandler struct {
	dataset *store.Dataset
}

// NewChartsHandler creates a new charts handler.
func NewChartsHandler(dataset *store.Dataset) *ChartsHandler {
	return &ChartsHandler{dataset: dataset}
}

// IrregularitiesResponse is the irregularity ranking chart payload. When
// Message is set the chart has nothing to draw and shows the message instead.
type IrregularitiesResponse struct {
	Title   string                     `json:"title"`
	Message string                     `json:"message,omitempty"`
	Counts  []report.IrregularityCount `json:"counts,omitempty"`
	Max     *report.IrregularityCount  `json:"max,omitempty"`
}

// Irregularities returns the per-employee irregularity ranking for a date
// range. Bad range bounds degrade to a placeholder chart rather than an
// error, so the dashboard keeps rendering while the user is mid-edit on a
// date field.
func (h *ChartsHandler) Irregularities(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r)
	if err != nil {
		respondJSON(w, http.StatusOK, IrregularitiesResponse{
			Title:   "Funcionários com mais Irregularidades",
			Message: "Erro ao atualizar gráfico",
		})
		return
	}

	punches := report.FilterByDateRange(h.dataset.Punches(), start, end)
	counts, max := report.IrregularityRanking(punches)
	if len(counts) == 0 {
		respondJSON(w, http.StatusOK, IrregularitiesResponse{
			Title:   "Funcionários com mais Irregularidades",
			Message: "Nenhuma irregularidade registrada no período",
		})
		return
	}

	respondJSON(w, http.StatusOK, IrregularitiesResponse{
		Title:  "Funcionários com mais Irregularidades",
		Counts: counts,
		Max:    max,
	})
}

// StatusDistributionResponse is the status pie chart payload.
type StatusDistributionResponse struct {
	Title  string               `json:"title"`
	Counts []report.StatusCount `json:"counts"`
}

// StatusDistribution returns the punch totals per status for a date range.
func (h *ChartsHandler) StatusDistribution(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	punches := report.FilterByDateRange(h.dataset.Punches(), start, end)
	respondJSON(w, http.StatusOK, StatusDistributionResponse{
		Title:  "Total de Status por Tipo",
		Counts: report.StatusDistribution(punches),
	})
}
