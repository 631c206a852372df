package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMarkdownText(t *testing.T) {
	src := "# Reading *tips*\n\nUse a **clear** font.\nTake breaks.\n\n- short lines\n- [bigger](https://example.com) text\n\n<div>skip me</div>\n"
	want := "Reading tips\nUse a clear font. Take breaks.\nshort lines\nbigger text"

	if got := MarkdownText([]byte(src)); got != want {
		t.Errorf("MarkdownText() =\n%q\nwant\n%q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		data       string
		wantFormat Format
		wantText   string
		wantErr    error
	}{
		{
			name:       "plain text keeps layout",
			file:       "notes.txt",
			data:       "First line.\r\nSecond  line.",
			wantFormat: FormatText,
			wantText:   "First line.\nSecond  line.",
		},
		{
			name:       "byte order mark dropped",
			file:       "bom.TXT",
			data:       "\xef\xbb\xbfHello.",
			wantFormat: FormatText,
			wantText:   "Hello.",
		},
		{
			name:       "nfc normalization",
			file:       "accents.txt",
			data:       "cafe\u0301",
			wantFormat: FormatText,
			wantText:   "caf\u00e9",
		},
		{
			name:       "markdown",
			file:       "story.md",
			data:       "## Title\n\nBody *text*.",
			wantFormat: FormatMarkdown,
			wantText:   "Title\nBody text.",
		},
		{
			name:    "unsupported",
			file:    "movie.mp4",
			data:    "x",
			wantErr: ErrUnsupported,
		},
		{
			name:    "invalid utf8",
			file:    "bad.txt",
			data:    "\xff\xfe",
			wantErr: ErrNotUTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.file, []byte(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if doc.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", doc.Format, tt.wantFormat)
			}
			if doc.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", doc.Text, tt.wantText)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chapter-1.md")
	if err := os.WriteFile(path, []byte("Hello *world*."), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Name != "chapter-1" || doc.Path != path || doc.Text != "Hello world." {
		t.Errorf("Load() = %+v", doc)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestIsSupported(t *testing.T) {
	for path, want := range map[string]bool{
		"a.txt":        true,
		"b.MD":         true,
		"c.markdown":   true,
		"d.docx":       false,
		"no-extension": false,
		"dir/e.text":   true,
		".hidden.swp":  false,
	} {
		if got := IsSupported(path); got != want {
			t.Errorf("IsSupported(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestExtensions(t *testing.T) {
	got := Extensions()
	want := []string{".markdown", ".md", ".text", ".txt"}
	if len(got) != len(want) {
		t.Fatalf("Extensions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Extensions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
