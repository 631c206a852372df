package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nguyentantai21042004/readaid/internal/speech"
	"github.com/nguyentantai21042004/readaid/pkg/summarize"
	"github.com/nguyentantai21042004/readaid/pkg/textproc"
	"github.com/nguyentantai21042004/readaid/pkg/translit"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Server      ServerConfig      `yaml:"server"`
	Speech      SpeechConfig      `yaml:"speech"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int           `yaml:"max_concurrent"`
	SettleDelay   time.Duration `yaml:"settle_delay"`
}

type PipelineConfig struct {
	Operations      []string              `yaml:"operations"`
	Formats         []string              `yaml:"formats"`
	Summary         summarize.Budget      `yaml:"summary"`
	Transliteration TransliterationConfig `yaml:"transliteration"`
	Misspellings    map[string]string     `yaml:"misspellings"`
}

type TransliterationConfig struct {
	Direction string            `yaml:"direction"`
	Forward   map[string]string `yaml:"forward"`
	Reverse   map[string]string `yaml:"reverse"`
}

type ServerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type SpeechConfig struct {
	Command string  `yaml:"command"`
	Rate    float64 `yaml:"rate"`
	Pitch   float64 `yaml:"pitch"`
}

// Voice returns the configured speaking parameters.
func (s SpeechConfig) Voice() speech.Voice {
	return speech.Voice{Rate: s.Rate, Pitch: s.Pitch}
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

var validFormats = []string{"md", "html", "docx"}

// Load reads and validates the YAML file at path
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r, rejecting unknown fields, and validates it
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and fills in defaults. All failures are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Paths.Input == "" {
		errs = append(errs, fmt.Errorf("paths.input is required"))
	}
	if c.Paths.Output == "" {
		errs = append(errs, fmt.Errorf("paths.output is required"))
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.MaxConcurrent < 0 {
		errs = append(errs, fmt.Errorf("performance.max_concurrent must not be negative"))
	}
	if c.Performance.SettleDelay == 0 {
		c.Performance.SettleDelay = 500 * time.Millisecond
	}

	if len(c.Pipeline.Operations) == 0 {
		c.Pipeline.Operations = []string{
			string(textproc.OpCorrect),
			string(textproc.OpSummarize),
			string(textproc.OpTransliterate),
		}
	}
	if _, err := textproc.ParseOperations(c.Pipeline.Operations); err != nil {
		errs = append(errs, fmt.Errorf("pipeline.operations: %w", err))
	}
	if len(c.Pipeline.Formats) == 0 {
		c.Pipeline.Formats = []string{"md"}
	}
	for _, f := range c.Pipeline.Formats {
		if !isValidFormat(f) {
			errs = append(errs, fmt.Errorf("pipeline.formats: %q is invalid; valid values: %s", f, strings.Join(validFormats, ", ")))
		}
	}
	if c.Pipeline.Summary.LeadingCount < 0 {
		errs = append(errs, fmt.Errorf("pipeline.summary.leading_count must not be negative"))
	}
	if _, err := translit.ParseDirection(c.Pipeline.Transliteration.Direction); err != nil {
		errs = append(errs, fmt.Errorf("pipeline.transliteration.direction: %w", err))
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}

	if c.Speech.Command == "" {
		c.Speech.Command = "espeak"
	}
	if err := c.Speech.Voice().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("speech: %w", err))
	}

	return errors.Join(errs...)
}

// Operations returns the parsed pipeline operations. Call after Validate.
func (c *Config) Operations() []textproc.Operation {
	ops, _ := textproc.ParseOperations(c.Pipeline.Operations)
	return ops
}

// Direction returns the parsed transliteration direction. Call after Validate.
func (c *Config) Direction() translit.Direction {
	d, _ := translit.ParseDirection(c.Pipeline.Transliteration.Direction)
	return d
}

func isValidFormat(f string) bool {
	for _, v := range validFormats {
		if f == v {
			return true
		}
	}
	return false
}
