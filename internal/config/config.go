package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/controleponto/ponto/internal/punch"
)

//go:embed schedule.yaml
var scheduleYAML []byte

type Config struct {
	Dashboard  DashboardConfig
	Store      StoreConfig
	Identity   IdentityConfig
	Recognizer RecognizerConfig
	Schedule   punch.Schedule
}

type DashboardConfig struct {
	Username    string // static credential pair for the login gate
	Password    string
	CompanyName string // first line of the PDF report
}

type StoreConfig struct {
	Path string // xlsx record file shared with the clock-in terminal
}

type IdentityConfig struct {
	Path string // sqlite database file holding users and sessions
}

type RecognizerConfig struct {
	URL            string // base URL of the face-recognition service
	DisplaySeconds int    // confirmation screen duration in the terminal
}

// scheduleFile is the on-disk shape of the checkpoint schedule.
type scheduleFile struct {
	ToleranceMinutes int `yaml:"tolerance_minutes"`
	Checkpoints      []struct {
		Label string `yaml:"label"`
		Time  string `yaml:"time"`
	} `yaml:"checkpoints"`
}

func parseSchedule(data []byte) (punch.Schedule, error) {
	var f scheduleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return punch.Schedule{}, fmt.Errorf("unmarshal schedule: %w", err)
	}

	tolerance := time.Duration(f.ToleranceMinutes) * time.Minute
	var s punch.Schedule
	for _, cp := range f.Checkpoints {
		at, err := punch.ParseTimeOfDay(cp.Time)
		if err != nil {
			return punch.Schedule{}, fmt.Errorf("checkpoint %q: %w", cp.Label, err)
		}
		s.Checkpoints = append(s.Checkpoints, punch.Checkpoint{
			Label:     punch.Status(cp.Label),
			At:        at,
			Tolerance: tolerance,
		})
	}
	return s, nil
}

// loadSchedule returns the schedule from SCHEDULE_PATH when set, the
// embedded default otherwise. A broken external file falls back to the
// embedded default with a warning instead of taking the process down.
func loadSchedule() punch.Schedule {
	if path := os.Getenv("SCHEDULE_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring SCHEDULE_PATH: %v\n", err)
		} else if s, perr := parseSchedule(data); perr != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", path, perr)
		} else {
			return s
		}
	}

	s, err := parseSchedule(scheduleYAML)
	if err != nil {
		// This is an embedded file so this error should never happen in practice.
		panic("failed to unmarshal embedded schedule.yaml: " + err.Error())
	}
	return s
}

// envOr reads an environment variable with a default.
func envOr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			Username:    envOr("DASHBOARD_USERNAME", "admin"),
			Password:    envOr("DASHBOARD_PASSWORD", "1234"),
			CompanyName: envOr("COMPANY_NAME", "Nome da Empresa"),
		},
		Store: StoreConfig{
			Path: envOr("REGISTRO_PATH", "dash/registro.xlsx"),
		},
		Identity: IdentityConfig{
			Path: envOr("PONTO_DATABASE_PATH", "reconhecimento.db"),
		},
		Recognizer: RecognizerConfig{
			URL:            os.Getenv("RECOGNIZER_URL"),
			DisplaySeconds: envInt("TERMINAL_DISPLAY_SECONDS", 10),
		},
		Schedule: loadSchedule(),
	}
}
