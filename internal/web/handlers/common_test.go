package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/health", nil)

	HealthCheck(w, req)

	assertStatusCode(t, w, http.StatusOK)
	var result map[string]string
	parseJSONResponse(t, w, &result)
	if result["status"] != "ok" {
		t.Errorf("status = %q, want ok", result["status"])
	}
}

func TestParseRangeBound_BareDateStart(t *testing.T) {
	got, err := parseRangeBound("2024-03-01", false)
	if err != nil {
		t.Fatalf("parseRangeBound: %v", err)
	}
	want := mustParse(t, "2024-03-01 00:00:00")
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseRangeBound_BareDateEndCoversWholeDay(t *testing.T) {
	got, err := parseRangeBound("2024-03-31", true)
	if err != nil {
		t.Fatalf("parseRangeBound: %v", err)
	}
	want := mustParse(t, "2024-03-31 23:59:59")
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseRangeBound_FullTimestampUnchanged(t *testing.T) {
	got, err := parseRangeBound("2024-03-31T12:30:00", true)
	if err != nil {
		t.Fatalf("parseRangeBound: %v", err)
	}
	want := mustParse(t, "2024-03-31 12:30:00")
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseRange_Errors(t *testing.T) {
	for _, target := range []string{
		"/x",
		"/x?start=2024-03-01",
		"/x?end=2024-03-31",
		"/x?start=bogus&end=2024-03-31",
		"/x?start=2024-03-01&end=bogus",
	} {
		req := httptest.NewRequest("GET", target, nil)
		if _, _, err := parseRange(req); err == nil {
			t.Errorf("expected an error for %s", target)
		}
	}
}
