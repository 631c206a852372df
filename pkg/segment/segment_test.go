package segment

import (
	"reflect"
	"strings"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"no terminal punctuation", "just words here", []string{}},
		{"mixed terminals", "One. Two! Three?", []string{"One.", "Two!", "Three?"}},
		{"punctuation run", "Wait... What?! Fine.", []string{"Wait...", "What?!", "Fine."}},
		{"trailing fragment dropped", "First. Second and more", []string{"First."}},
		{"newline separators", "Line one.\nLine two.", []string{"Line one.", "Line two."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Texts(Segment(tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSegmentOffsets(t *testing.T) {
	text := "Hi there.   How are you?"
	got := Segment(text)
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want 2", len(got))
	}
	for _, s := range got {
		if text[s.Start:s.End] != s.Text {
			t.Errorf("text[%d:%d] = %q, want %q", s.Start, s.End, text[s.Start:s.End], s.Text)
		}
	}
	if got[1].Start != 12 {
		t.Errorf("second sentence Start = %d, want 12", got[1].Start)
	}
}

func TestSegmentRoundTrip(t *testing.T) {
	inputs := []string{
		"One. Two! Three?",
		"A sentence.  Another one!\n\nAnd a third?",
		"Ellipsis... then more. Done!",
	}

	for _, text := range inputs {
		var b strings.Builder
		prev := 0
		for _, s := range Segment(text) {
			b.WriteString(text[prev:s.Start])
			b.WriteString(s.Text)
			prev = s.End
		}
		if b.String() != text {
			t.Errorf("round trip of %q = %q", text, b.String())
		}
	}
}

func TestWords(t *testing.T) {
	got := Words("  kya   hai\tnamaste\n")
	want := []string{"kya", "hai", "namaste"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %q, want %q", got, want)
	}
	if len(Words("   ")) != 0 {
		t.Error("Words() of blank text should be empty")
	}
}
