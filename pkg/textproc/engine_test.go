package textproc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nguyentantai21042004/readaid/pkg/correct"
	"github.com/nguyentantai21042004/readaid/pkg/segment"
	"github.com/nguyentantai21042004/readaid/pkg/summarize"
	"github.com/nguyentantai21042004/readaid/pkg/translit"
)

func TestEngineOperations(t *testing.T) {
	e := New()

	if got := segment.Texts(e.Segment("One. Two! Three?")); !reflect.DeepEqual(got, []string{"One.", "Two!", "Three?"}) {
		t.Errorf("Segment() = %q", got)
	}
	if got := e.Correct("teh thier alot. i am here. next sentence."); got != "the their a lot. I am here. Next sentence." {
		t.Errorf("Correct() = %q", got)
	}
	if got := e.Summarize("One. Two. Three. Four. Five.", summarize.Budget{}); got != "One. Two. [...] Four." {
		t.Errorf("Summarize() = %q", got)
	}
	if got := e.Transliterate("kya hai namaste", translit.Forward); got != "what is namaste" {
		t.Errorf("Transliterate() = %q", got)
	}
}

func TestEngineRun(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		text string
		ops  []Operation
		want string
	}{
		{
			name: "no operations",
			text: "teh end",
			want: "teh end",
		},
		{
			name: "correct then summarize",
			text: "teh one. two. three. four. five. six.",
			ops:  []Operation{OpCorrect, OpSummarize},
			want: "the one. Two. [...] Five. Six.",
		},
		{
			name: "segment renders lines",
			text: "One. Two!",
			ops:  []Operation{OpSegment},
			want: "One.\nTwo!",
		},
		{
			name: "configured direction",
			opts: []Option{WithDirection(translit.Reverse)},
			text: "how are you",
			ops:  []Operation{OpTransliterate},
			want: "kaise ho aap",
		},
		{
			name: "configured budget",
			opts: []Option{WithBudget(summarize.Budget{LeadingCount: 1, OmitTail: true})},
			text: "A. B. C. D. E.",
			ops:  []Operation{OpSummarize},
			want: "A.",
		},
		{
			name: "custom corrector and table",
			opts: []Option{
				WithCorrector(correct.New(correct.WithMisspellings(map[string]string{"namsate": "namaste"}))),
				WithTable(translit.Hinglish().With(map[string]string{"namaste": "hello"}, nil)),
			},
			text: "namsate",
			ops:  []Operation{OpCorrect, OpTransliterate},
			want: "hello",
		},
		{
			name: "unknown operation is ignored",
			text: "text",
			ops:  []Operation{"shout"},
			want: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.opts...).Run(tt.text, tt.ops...); got != tt.want {
				t.Errorf("Run() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseOperations(t *testing.T) {
	got, err := ParseOperations([]string{"Correct", " summarize "})
	if err != nil {
		t.Fatalf("ParseOperations() error = %v", err)
	}
	if want := []Operation{OpCorrect, OpSummarize}; !reflect.DeepEqual(got, want) {
		t.Errorf("ParseOperations() = %v, want %v", got, want)
	}

	if _, err := ParseOperations([]string{"correct", "translate"}); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("ParseOperations() error = %v, want ErrUnknownOperation", err)
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		text    string
		wantErr bool
	}{
		{"", true},
		{"   \n\t", true},
		{"hello", false},
	}
	for _, tt := range tests {
		err := ValidateInput(tt.text)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateInput(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrEmptyInput) {
			t.Errorf("ValidateInput(%q) error = %v, want ErrEmptyInput", tt.text, err)
		}
	}
}
