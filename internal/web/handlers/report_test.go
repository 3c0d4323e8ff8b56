package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/controleponto/ponto/internal/report"
)

func newReportHandler(t *testing.T) *ReportHandler {
	t.Helper()
	return NewReportHandler(
		testDataset(t, samplePunches(t)),
		&report.Renderer{CompanyName: "Nome da Empresa"},
	)
}

func TestReportGenerate(t *testing.T) {
	h := newReportHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/report?start=2024-03-01&end=2024-03-31&employee=Ana", nil)
	h.Generate(w, req)

	assertStatusCode(t, w, http.StatusOK)
	var resp ReportResponse
	parseJSONResponse(t, w, &resp)
	if resp.Filename != "relatorio_presenca.pdf" {
		t.Errorf("filename = %q", resp.Filename)
	}
	if !strings.HasPrefix(resp.Href, "data:application/pdf;base64,") {
		t.Errorf("href does not look like a PDF data URI: %.40s", resp.Href)
	}
}

func TestReportGenerate_NoEmployee(t *testing.T) {
	h := newReportHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/report?start=2024-03-01&end=2024-03-31", nil)
	h.Generate(w, req)

	assertStatusCode(t, w, http.StatusOK)
	var resp ReportResponse
	parseJSONResponse(t, w, &resp)
	if resp.Href != "" {
		t.Errorf("expected empty href, got %.40s", resp.Href)
	}
}

func TestReportGenerate_EmptyPeriod(t *testing.T) {
	h := newReportHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/report?start=2030-01-01&end=2030-01-31&employee=Ana", nil)
	h.Generate(w, req)

	assertStatusCode(t, w, http.StatusOK)
	var resp ReportResponse
	parseJSONResponse(t, w, &resp)
	if resp.Href != "" {
		t.Errorf("expected empty href, got %.40s", resp.Href)
	}
}

func TestReportGenerate_BadRange(t *testing.T) {
	h := newReportHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/report?start=bogus&end=2024-03-31&employee=Ana", nil)
	h.Generate(w, req)

	assertStatusCode(t, w, http.StatusBadRequest)
}
