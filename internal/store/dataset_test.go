package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/controleponto/ponto/internal/punch"
)

func entrySchedule(t *testing.T) punch.Schedule {
	t.Helper()
	at, err := punch.ParseTimeOfDay("07:00:00")
	if err != nil {
		t.Fatal(err)
	}
	return punch.Schedule{Checkpoints: []punch.Checkpoint{
		{Label: punch.StatusCorrectEntry, At: at, Tolerance: 5 * time.Minute},
	}}
}

func TestDataset_ReloadClassifies(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "registro.xlsx"))
	base := mustParse(t, "2006-01-02 15:04:05", "2024-03-01 07:03:00")
	if err := s.Append(punch.Punch{Nome: "Ana", Cargo: "Clerk", Timestamp: base}); err != nil {
		t.Fatal(err)
	}

	d := NewDataset(s, entrySchedule(t))
	if err := d.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	punches := d.Punches()
	if len(punches) != 1 {
		t.Fatalf("expected 1 punch, got %d", len(punches))
	}
	if punches[0].Status != punch.StatusCorrectEntry {
		t.Errorf("status = %q, want %q", punches[0].Status, punch.StatusCorrectEntry)
	}
}

func TestDataset_Employees(t *testing.T) {
	d := NewDataset(nil, punch.Schedule{})
	d.Replace([]punch.Punch{
		{Nome: "Carla"},
		{Nome: "Ana"},
		{Nome: ""},
		{Nome: "Ana"},
		{Nome: "Bruno"},
	})

	got := d.Employees()
	want := []string{"Ana", "Bruno", "Carla"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Employees() = %v, want %v", got, want)
	}
}

func TestDataset_Bounds(t *testing.T) {
	d := NewDataset(nil, punch.Schedule{})
	early := mustParse(t, "2006-01-02 15:04:05", "2024-03-01 07:03:00")
	late := mustParse(t, "2006-01-02 15:04:05", "2024-03-15 17:02:00")
	d.Replace([]punch.Punch{
		{Nome: "Ana", Timestamp: late},
		{Nome: "Bruno"},
		{Nome: "Carla", Timestamp: early},
	})

	min, max := d.Bounds()
	if !min.Equal(early) {
		t.Errorf("min = %v, want %v", min, early)
	}
	if !max.Equal(late) {
		t.Errorf("max = %v, want %v", max, late)
	}
}

func TestDataset_BoundsEmptyStoreIsToday(t *testing.T) {
	d := NewDataset(nil, punch.Schedule{})

	min, max := d.Bounds()
	now := time.Now()
	if min.Year() != now.Year() || min.YearDay() != now.YearDay() {
		t.Errorf("min = %v, want today", min)
	}
	if !min.Equal(max) {
		t.Errorf("min %v != max %v", min, max)
	}
}
