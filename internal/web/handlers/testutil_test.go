package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/controleponto/ponto/internal/punch"
	"github.com/controleponto/ponto/internal/store"
)

// testSchedule builds the standard four-checkpoint day used by handler tests.
func testSchedule(t *testing.T) punch.Schedule {
	t.Helper()
	checkpoints := []struct {
		label punch.Status
		at    string
	}{
		{punch.StatusCorrectEntry, "07:00:00"},
		{punch.StatusBreakStarted, "12:00:00"},
		{punch.StatusBreakEnded, "13:00:00"},
		{punch.StatusCorrectExit, "17:00:00"},
	}

	var schedule punch.Schedule
	for _, cp := range checkpoints {
		at, err := punch.ParseTimeOfDay(cp.at)
		if err != nil {
			t.Fatal(err)
		}
		schedule.Checkpoints = append(schedule.Checkpoints, punch.Checkpoint{
			Label:     cp.label,
			At:        at,
			Tolerance: 5 * time.Minute,
		})
	}
	return schedule
}

// testDataset builds an in-memory dataset with classified punches.
func testDataset(t *testing.T, punches []punch.Punch) *store.Dataset {
	t.Helper()
	schedule := testSchedule(t)
	d := store.NewDataset(nil, schedule)
	d.Replace(schedule.ClassifyAll(punches))
	return d
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("parse %s: %v", value, err)
	}
	return parsed
}

// parseJSONResponse parses a JSON response body into the target type
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertJSONError checks if the response is a JSON error with the expected message
func assertJSONError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, recorder.Body.String())
	}
	if result["error"] != expectedMessage {
		t.Errorf("expected error '%s', got '%s'", expectedMessage, result["error"])
	}
}
