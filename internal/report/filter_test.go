package report

import (
	"reflect"
	"testing"
	"time"

	"github.com/controleponto/ponto/internal/punch"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("parse %s: %v", value, err)
	}
	return parsed
}

func TestFilterByDateRange_InclusiveBounds(t *testing.T) {
	start := ts(t, "2024-03-01 07:00:00")
	end := ts(t, "2024-03-01 17:00:00")
	punches := []punch.Punch{
		{Nome: "before", Timestamp: start.Add(-time.Second)},
		{Nome: "at start", Timestamp: start},
		{Nome: "inside", Timestamp: ts(t, "2024-03-01 12:00:00")},
		{Nome: "at end", Timestamp: end},
		{Nome: "after", Timestamp: end.Add(time.Second)},
	}

	got := FilterByDateRange(punches, start, end)

	var names []string
	for _, p := range got {
		names = append(names, p.Nome)
	}
	want := []string{"at start", "inside", "at end"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("filtered names = %v, want %v", names, want)
	}
}

func TestFilterByDateRange_SkipsTimestampless(t *testing.T) {
	start := ts(t, "2000-01-01 00:00:00")
	end := ts(t, "2100-01-01 00:00:00")
	punches := []punch.Punch{
		{Nome: "Ana"}, // no timestamp: never matches, even on a huge range
		{Nome: "Bruno", Timestamp: ts(t, "2024-03-01 07:03:00")},
	}

	got := FilterByDateRange(punches, start, end)
	if len(got) != 1 || got[0].Nome != "Bruno" {
		t.Errorf("expected only Bruno, got %v", got)
	}
}

func TestFilterByEmployee_ExactMatch(t *testing.T) {
	punches := []punch.Punch{
		{Nome: "Ana"},
		{Nome: "ana"},
		{Nome: "Ana Clara"},
		{Nome: "Ana"},
	}

	got := FilterByEmployee(punches, "Ana")
	if len(got) != 2 {
		t.Errorf("expected 2 exact matches, got %d", len(got))
	}
}

func TestIrregularityRanking(t *testing.T) {
	punches := []punch.Punch{
		{Nome: "Ana", Status: punch.StatusIrregular},
		{Nome: "Bruno", Status: punch.StatusIrregular},
		{Nome: "Bruno", Status: punch.StatusIrregular},
		{Nome: "Carla", Status: punch.StatusCorrectEntry},
	}

	counts, max := IrregularityRanking(punches)

	want := []IrregularityCount{{Nome: "Ana", Total: 1}, {Nome: "Bruno", Total: 2}}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
	if max == nil || max.Nome != "Bruno" || max.Total != 2 {
		t.Errorf("max = %v, want Bruno/2", max)
	}
}

func TestIrregularityRanking_Empty(t *testing.T) {
	punches := []punch.Punch{
		{Nome: "Ana", Status: punch.StatusCorrectEntry},
		{Nome: "Bruno", Status: punch.StatusCorrectExit},
	}

	counts, max := IrregularityRanking(punches)
	if counts != nil {
		t.Errorf("expected no counts, got %v", counts)
	}
	if max != nil {
		t.Errorf("expected nil max, got %v", max)
	}
}

func TestStatusDistribution(t *testing.T) {
	punches := []punch.Punch{
		{Status: punch.StatusCorrectEntry},
		{Status: punch.StatusCorrectEntry},
		{Status: punch.StatusIrregular},
		{Status: punch.StatusIncomplete},
	}

	got := StatusDistribution(punches)

	if len(got) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(got))
	}
	if got[0].Status != punch.StatusCorrectEntry || got[0].Total != 2 {
		t.Errorf("most frequent = %v, want Entrada Correta/2", got[0])
	}
}

func TestDetailRows_Formatting(t *testing.T) {
	punches := []punch.Punch{
		{Nome: "Ana", Cargo: "Clerk", Timestamp: ts(t, "2024-03-01 07:03:00"), Status: punch.StatusCorrectEntry},
		{Nome: "Bruno", Cargo: "Analyst", Status: punch.StatusIncomplete},
	}

	rows := DetailRows(punches)

	if rows[0].DataHora != "01/03/2024 07:03:00" {
		t.Errorf("DataHora = %q, want %q", rows[0].DataHora, "01/03/2024 07:03:00")
	}
	if rows[1].DataHora != "" {
		t.Errorf("timestampless DataHora = %q, want empty", rows[1].DataHora)
	}
	if rows[0].Status != punch.StatusCorrectEntry {
		t.Errorf("Status = %q", rows[0].Status)
	}
}
