package config

import (
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/readaid/pkg/textproc"
	"github.com/nguyentantai21042004/readaid/pkg/translit"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing paths",
			config: Config{
				Paths: PathsConfig{},
			},
			wantErr: true,
		},
		{
			name: "unknown operation",
			config: Config{
				Paths:    PathsConfig{Input: "in", Output: "out"},
				Pipeline: PipelineConfig{Operations: []string{"translate"}},
			},
			wantErr: true,
		},
		{
			name: "unknown format",
			config: Config{
				Paths:    PathsConfig{Input: "in", Output: "out"},
				Pipeline: PipelineConfig{Formats: []string{"pdf"}},
			},
			wantErr: true,
		},
		{
			name: "unknown direction",
			config: Config{
				Paths: PathsConfig{Input: "in", Output: "out"},
				Pipeline: PipelineConfig{
					Transliteration: TransliterationConfig{Direction: "sideways"},
				},
			},
			wantErr: true,
		},
		{
			name: "voice out of range",
			config: Config{
				Paths:  PathsConfig{Input: "in", Output: "out"},
				Speech: SpeechConfig{Rate: 50},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Config{Pipeline: PipelineConfig{Formats: []string{"pdf"}}}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"paths.input", "paths.output", "pipeline.formats"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Paths: PathsConfig{Input: "in", Output: "out"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Paths.Archived != "data/archived" {
		t.Errorf("Archived = %q", cfg.Paths.Archived)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d", cfg.Performance.MaxConcurrent)
	}
	if cfg.Performance.SettleDelay != 500*time.Millisecond {
		t.Errorf("SettleDelay = %v", cfg.Performance.SettleDelay)
	}
	wantOps := []textproc.Operation{textproc.OpCorrect, textproc.OpSummarize, textproc.OpTransliterate}
	if got := cfg.Operations(); !reflect.DeepEqual(got, wantOps) {
		t.Errorf("Operations() = %v, want %v", got, wantOps)
	}
	if cfg.Direction() != translit.Forward {
		t.Errorf("Direction() = %q", cfg.Direction())
	}
	if !reflect.DeepEqual(cfg.Pipeline.Formats, []string{"md"}) {
		t.Errorf("Formats = %v", cfg.Pipeline.Formats)
	}
	if cfg.Server.Addr != ":8080" || cfg.Speech.Command != "espeak" {
		t.Errorf("Server.Addr = %q, Speech.Command = %q", cfg.Server.Addr, cfg.Speech.Command)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "debug"
  format: "json"

performance:
  max_concurrent: 4
  settle_delay: 250ms

pipeline:
  operations: [correct, summarize]
  formats: [md, docx]
  summary:
    leading_count: 3
    omit_tail: true
  transliteration:
    direction: reverse
    forward:
      namaste: hello
  misspellings:
    wierd: weird

server:
  enabled: true
  addr: "127.0.0.1:9000"

speech:
  rate: 1.25
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if cfg.Performance.SettleDelay != 250*time.Millisecond {
		t.Errorf("SettleDelay = %v", cfg.Performance.SettleDelay)
	}
	if cfg.Pipeline.Summary.LeadingCount != 3 || !cfg.Pipeline.Summary.OmitTail {
		t.Errorf("Summary = %+v", cfg.Pipeline.Summary)
	}
	if cfg.Direction() != translit.Reverse {
		t.Errorf("Direction() = %q", cfg.Direction())
	}
	if cfg.Pipeline.Transliteration.Forward["namaste"] != "hello" {
		t.Errorf("Forward = %v", cfg.Pipeline.Transliteration.Forward)
	}
	if cfg.Pipeline.Misspellings["wierd"] != "weird" {
		t.Errorf("Misspellings = %v", cfg.Pipeline.Misspellings)
	}
	if !cfg.Server.Enabled || cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Speech.Voice().Rate != 1.25 {
		t.Errorf("Voice() = %+v", cfg.Speech.Voice())
	}
}

func TestLoadFromReaderUnknownField(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("paths:\n  input: a\n  output: b\nwhisper:\n  model_path: x\n"))
	if err == nil {
		t.Error("LoadFromReader() should reject unknown fields")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
