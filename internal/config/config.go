package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Calendar  CalendarConfig  `yaml:"calendar"`
	Review    ReviewConfig    `yaml:"review"`
	Export    ExportConfig    `yaml:"export"`
	Summarize SummarizeConfig `yaml:"summarize"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Date is a calendar date in the proleptic Gregorian calendar. Month and
// day carry no leading zeros in the config file.
type Date struct {
	Year  int `yaml:"year"`
	Month int `yaml:"month"`
	Day   int `yaml:"day"`
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) zero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

type CalendarConfig struct {
	Path  string `yaml:"path"`
	Start Date   `yaml:"start"`
	End   Date   `yaml:"end"`
}

type ReviewConfig struct {
	MaxGuests int `yaml:"max_guests"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

type SummarizeConfig struct {
	Input          string `yaml:"input"`
	Output         string `yaml:"output"`
	VocabPath      string `yaml:"vocab_path"`
	ReportDir      string `yaml:"report_dir"`
	BatchSize      int    `yaml:"batch_size"`
	MaxChunkTokens int    `yaml:"max_chunk_tokens"`
	PauseSeconds   int    `yaml:"pause_seconds"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and parses a YAML config file. Validation is per-command:
// the extract and summarize pipelines require different sections.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Review.MaxGuests == 0 {
		c.Review.MaxGuests = 8
	}
	if c.Summarize.BatchSize == 0 {
		c.Summarize.BatchSize = 10
	}
	if c.Summarize.MaxChunkTokens == 0 {
		c.Summarize.MaxChunkTokens = 1024
	}
	if c.Summarize.PauseSeconds == 0 {
		c.Summarize.PauseSeconds = 180
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// ValidateExtract checks the fields the extraction pipeline needs.
func (c *Config) ValidateExtract() error {
	if c.Calendar.Path == "" {
		return fmt.Errorf("calendar.path is required")
	}
	if c.Calendar.Start.zero() {
		return fmt.Errorf("calendar.start is required")
	}
	if c.Calendar.End.zero() {
		return fmt.Errorf("calendar.end is required")
	}
	if c.Calendar.End.Time().Before(c.Calendar.Start.Time()) {
		return fmt.Errorf("calendar.end precedes calendar.start")
	}
	if c.Export.Path == "" {
		return fmt.Errorf("export.path is required")
	}
	return nil
}

// ValidateSummarize checks the fields the summarization pipeline needs.
func (c *Config) ValidateSummarize() error {
	if c.Summarize.Input == "" {
		return fmt.Errorf("summarize.input is required")
	}
	if c.Summarize.Output == "" {
		return fmt.Errorf("summarize.output is required")
	}
	if c.Summarize.VocabPath == "" {
		return fmt.Errorf("summarize.vocab_path is required")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required")
	}
	return nil
}
