package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/controleponto/ponto/internal/punch"
	"github.com/controleponto/ponto/internal/report"
	"github.com/controleponto/ponto/internal/store"
)

func samplePunches(t *testing.T) []punch.Punch {
	t.Helper()
	return []punch.Punch{
		{Nome: "Ana", Cargo: "Recepcionista", Timestamp: mustParse(t, "2024-03-01 07:03:00")},
		{Nome: "Ana", Cargo: "Recepcionista", Timestamp: mustParse(t, "2024-03-01 17:02:00")},
		{Nome: "Bruno", Cargo: "Analista", Timestamp: mustParse(t, "2024-03-01 06:50:00")},
		{Nome: "Bruno", Cargo: "Analista", Timestamp: mustParse(t, "2024-04-10 07:01:00")},
	}
}

func TestRecordsList(t *testing.T) {
	h := NewRecordsHandler(testDataset(t, samplePunches(t)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/records?start=2024-03-01&end=2024-03-31", nil)
	h.List(w, req)

	assertStatusCode(t, w, http.StatusOK)
	var resp struct {
		Records []report.DetailRow `json:"records"`
	}
	parseJSONResponse(t, w, &resp)
	if len(resp.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(resp.Records))
	}
	if resp.Records[0].Status != punch.StatusCorrectEntry {
		t.Errorf("Ana 07:03 status = %q, want %q", resp.Records[0].Status, punch.StatusCorrectEntry)
	}
	if resp.Records[2].Status != punch.StatusIrregular {
		t.Errorf("Bruno 06:50 status = %q, want %q", resp.Records[2].Status, punch.StatusIrregular)
	}
}

func TestRecordsList_EmployeeFilter(t *testing.T) {
	h := NewRecordsHandler(testDataset(t, samplePunches(t)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/records?start=2024-03-01&end=2024-03-31&employee=Ana", nil)
	h.List(w, req)

	var resp struct {
		Records []report.DetailRow `json:"records"`
	}
	parseJSONResponse(t, w, &resp)
	if len(resp.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(resp.Records))
	}
	for _, rec := range resp.Records {
		if rec.Nome != "Ana" {
			t.Errorf("unexpected employee %q", rec.Nome)
		}
	}
}

func TestRecordsList_BadRange(t *testing.T) {
	h := NewRecordsHandler(testDataset(t, samplePunches(t)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/records?start=bogus&end=2024-03-31", nil)
	h.List(w, req)

	assertStatusCode(t, w, http.StatusBadRequest)
}

func TestRecordsEmployees(t *testing.T) {
	h := NewRecordsHandler(testDataset(t, samplePunches(t)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/records/employees", nil)
	h.Employees(w, req)

	var resp struct {
		Employees []string `json:"employees"`
	}
	parseJSONResponse(t, w, &resp)
	want := []string{"Ana", "Bruno"}
	if !reflect.DeepEqual(resp.Employees, want) {
		t.Errorf("employees = %v, want %v", resp.Employees, want)
	}
}

func TestRecordsBounds(t *testing.T) {
	h := NewRecordsHandler(testDataset(t, samplePunches(t)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/records/bounds", nil)
	h.Bounds(w, req)

	var resp BoundsResponse
	parseJSONResponse(t, w, &resp)
	if resp.Min != "2024-03-01" {
		t.Errorf("min = %q, want 2024-03-01", resp.Min)
	}
	if resp.Max != "2024-04-10" {
		t.Errorf("max = %q, want 2024-04-10", resp.Max)
	}
}

func TestRecordsRefresh(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "registro.xlsx"))
	d := store.NewDataset(s, testSchedule(t))
	h := NewRecordsHandler(d)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/records/refresh", nil)
	h.Refresh(w, req)

	assertStatusCode(t, w, http.StatusOK)
	var resp struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
	}
	parseJSONResponse(t, w, &resp)
	if !resp.Success {
		t.Error("expected success")
	}
	if resp.Count != 0 {
		t.Errorf("count = %d, want 0", resp.Count)
	}
}
