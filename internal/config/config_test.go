package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func defaultConfig() *Config {
	return &Config{
		Planner: PlannerConfig{
			Year:        2025,
			WorkingDays: "0,1,2,3,4",
			Threshold:   4,
		},
		Holidays: HolidaysConfig{
			Source:     "file",
			File:       "holidays.ics",
			FileType:   "ics",
			CSVBackend: "standard",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero threshold",
			mutate:  func(c *Config) { c.Planner.Threshold = 0 },
			wantErr: "threshold",
		},
		{
			name:    "negative year",
			mutate:  func(c *Config) { c.Planner.Year = -1 },
			wantErr: "year",
		},
		{
			name:    "empty working days",
			mutate:  func(c *Config) { c.Planner.WorkingDays = "" },
			wantErr: "working_days",
		},
		{
			name:    "unparseable working days",
			mutate:  func(c *Config) { c.Planner.WorkingDays = "0,x,2" },
			wantErr: "working_days",
		},
		{
			name:    "file source without file",
			mutate:  func(c *Config) { c.Holidays.File = "" },
			wantErr: "holidays.file",
		},
		{
			name:    "unknown file type",
			mutate:  func(c *Config) { c.Holidays.FileType = "xlsx" },
			wantErr: "file_type",
		},
		{
			name: "unknown csv backend",
			mutate: func(c *Config) {
				c.Holidays.FileType = "csv"
				c.Holidays.CSVBackend = "pandas"
			},
			wantErr: "csv_backend",
		},
		{
			name: "region source without region",
			mutate: func(c *Config) {
				c.Holidays.Source = "region"
				c.Holidays.Region = ""
			},
			wantErr: "region",
		},
		{
			name: "feed source without url",
			mutate: func(c *Config) {
				c.Holidays.Source = "feed"
				c.Holidays.FeedURL = ""
			},
			wantErr: "feed_url",
		},
		{
			name:    "unknown source",
			mutate:  func(c *Config) { c.Holidays.Source = "carrier-pigeon" },
			wantErr: "holidays.source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `planner:
  year: 2026
  working_days: "0,1,2,3"
  threshold: 5
holidays:
  source: region
  region: de
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Planner.Year != 2026 {
		t.Errorf("Planner.Year = %d, want 2026", cfg.Planner.Year)
	}
	if cfg.Planner.Threshold != 5 {
		t.Errorf("Planner.Threshold = %d, want 5", cfg.Planner.Threshold)
	}
	if cfg.Holidays.Source != "region" || cfg.Holidays.Region != "de" {
		t.Errorf("Holidays = %+v, want region source de", cfg.Holidays)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}

	// Defaults fill what the file leaves out
	if cfg.Holidays.CSVBackend != "standard" {
		t.Errorf("Holidays.CSVBackend = %q, want standard default", cfg.Holidays.CSVBackend)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing explicit path = nil error, want error")
	}
}

func TestTargetYear(t *testing.T) {
	c := &PlannerConfig{Year: 2030}
	if got := c.TargetYear(); got != 2030 {
		t.Errorf("TargetYear() = %d, want 2030", got)
	}

	c.Year = 0
	if got := c.TargetYear(); got < 2024 {
		t.Errorf("TargetYear() = %d, want current year", got)
	}
}
