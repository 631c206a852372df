package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/readaid/internal/logger"
)

func testResult() Result {
	return Result{
		Name:    "lesson",
		Created: time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC),
		Sections: []Section{
			{Operation: "segment", Text: "One.\nTwo!"},
			{Operation: "correct", Text: "The end. "},
			{Operation: "summarize", Text: "One. Two. [...] Four."},
		},
	}
}

func TestMarkdown(t *testing.T) {
	want := "# lesson\n\n_2026-10-15 09:30_\n" +
		"\n## Sentences\n\n1. One.\n2. Two!\n" +
		"\n## Corrected\n\nThe end.\n" +
		"\n## Summary\n\nOne. Two. [...] Four.\n"

	if got := Markdown(testResult()); got != want {
		t.Errorf("Markdown() =\n%q\nwant\n%q", got, want)
	}
}

func TestStageFormats(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w := New(dir, []string{"md", "html", "docx"}, logger.Nop())

	staged, err := w.Stage(context.Background(), testResult())
	if err != nil {
		t.Fatalf("Stage() error = %v", err)
	}
	defer staged.Discard()

	if _, err := os.Stat(filepath.Join(dir, "lesson.md")); !os.IsNotExist(err) {
		t.Error("staged report visible before Commit")
	}

	paths, err := staged.Commit()
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("Commit() returned %d paths, want 3", len(paths))
	}

	for _, ext := range []string{".md", ".html", ".docx"} {
		info, err := os.Stat(filepath.Join(dir, "lesson"+ext))
		if err != nil {
			t.Errorf("missing %s output: %v", ext, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s output is empty", ext)
		}
	}

	html, err := os.ReadFile(filepath.Join(dir, "lesson.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<title>lesson</title>", "<h2>Summary</h2>", "<li>Two!</li>"} {
		if !strings.Contains(string(html), want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestStageHTMLEscapesRawHTML(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, []string{"html"}, logger.Nop())
	r := Result{Name: "x", Sections: []Section{{Operation: "correct", Text: "<script>alert(1)</script>"}}}

	staged, err := w.Stage(context.Background(), r)
	if err != nil {
		t.Fatalf("Stage() error = %v", err)
	}
	if _, err := staged.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	html, _ := os.ReadFile(filepath.Join(dir, "x.html"))
	if strings.Contains(string(html), "<script>") {
		t.Error("raw HTML from the document must not reach the page")
	}
}

func TestStageErrors(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, []string{"md", "pdf"}, logger.Nop())
	if _, err := w.Stage(context.Background(), Result{Name: "x"}); err == nil {
		t.Error("Stage() should fail for an unknown format")
	}
	if _, err := w.Stage(context.Background(), Result{}); err == nil {
		t.Error("Stage() should fail without a name")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed Stage left %d entries behind", len(entries))
	}
}

func TestDiscardAfterCommit(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, []string{"md"}, logger.Nop())

	staged, err := w.Stage(context.Background(), Result{Name: "a", Sections: []Section{{Operation: "correct", Text: "A."}}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := staged.Commit(); err != nil {
		t.Fatal(err)
	}
	if err := staged.Discard(); err != nil {
		t.Fatalf("Discard() error = %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || entries[0].Name() != "a.md" {
		t.Errorf("output dir = %v, want only a.md", entries)
	}
}

func TestSectionTitle(t *testing.T) {
	for op, want := range map[string]string{
		"transliterate": "Transliterated",
		"custom":        "Custom",
		"":              "Text",
	} {
		if got := sectionTitle(op); got != want {
			t.Errorf("sectionTitle(%q) = %q, want %q", op, got, want)
		}
	}
}
