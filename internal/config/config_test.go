package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateExtract(t *testing.T) {
	valid := Config{
		Calendar: CalendarConfig{
			Path:  "calendars/team.ics",
			Start: Date{Year: 2024, Month: 1, Day: 1},
			End:   Date{Year: 2024, Month: 7, Day: 12},
		},
		Export: ExportConfig{Path: "extracts/team.xlsx"},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"missing calendar path", func(c *Config) { c.Calendar.Path = "" }, true},
		{"missing start date", func(c *Config) { c.Calendar.Start = Date{} }, true},
		{"missing end date", func(c *Config) { c.Calendar.End = Date{} }, true},
		{"end before start", func(c *Config) {
			c.Calendar.End = Date{Year: 2023, Month: 12, Day: 31}
		}, true},
		{"missing export path", func(c *Config) { c.Export.Path = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.ValidateExtract()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtract() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSummarize(t *testing.T) {
	valid := Config{
		Summarize: SummarizeConfig{
			Input:     "extracts/team.xlsx",
			Output:    "summaries/team.xlsx",
			VocabPath: "models/vocab.txt",
		},
		Gemini: GeminiConfig{APIKeys: []string{"key-1"}},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"missing input", func(c *Config) { c.Summarize.Input = "" }, true},
		{"missing output", func(c *Config) { c.Summarize.Output = "" }, true},
		{"missing vocab", func(c *Config) { c.Summarize.VocabPath = "" }, true},
		{"missing api keys", func(c *Config) { c.Gemini.APIKeys = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.ValidateSummarize()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSummarize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
calendar:
  path: "calendars/team.ics"
  start: {year: 2024, month: 1, day: 1}
  end: {year: 2024, month: 7, day: 12}

export:
  path: "extracts/team.xlsx"

summarize:
  input: "extracts/team.xlsx"
  output: "summaries/team.xlsx"
  vocab_path: "models/vocab.txt"
  pause_seconds: 30

gemini:
  api_keys: ["key-1", "key-2"]

logging:
  level: "debug"
`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Calendar.Path != "calendars/team.ics" {
		t.Errorf("Calendar.Path = %v, want calendars/team.ics", cfg.Calendar.Path)
	}
	if got := cfg.Calendar.Start.Time().Format("2006-01-02"); got != "2024-01-01" {
		t.Errorf("Start = %v, want 2024-01-01", got)
	}
	if cfg.Summarize.PauseSeconds != 30 {
		t.Errorf("PauseSeconds = %v, want 30", cfg.Summarize.PauseSeconds)
	}
	if len(cfg.Gemini.APIKeys) != 2 {
		t.Errorf("APIKeys = %v, want 2 keys", cfg.Gemini.APIKeys)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Review.MaxGuests != 8 {
		t.Errorf("MaxGuests = %v, want 8", cfg.Review.MaxGuests)
	}
	if cfg.Summarize.BatchSize != 10 {
		t.Errorf("BatchSize = %v, want 10", cfg.Summarize.BatchSize)
	}
	if cfg.Summarize.MaxChunkTokens != 1024 {
		t.Errorf("MaxChunkTokens = %v, want 1024", cfg.Summarize.MaxChunkTokens)
	}
	if cfg.Summarize.PauseSeconds != 180 {
		t.Errorf("PauseSeconds = %v, want 180", cfg.Summarize.PauseSeconds)
	}
	if cfg.Gemini.Model == "" {
		t.Error("Gemini.Model default not applied")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
