// Package report writes processed documents to disk as Markdown, HTML and
// Word files.
package report

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
)

// Section is the output of one operation.
type Section struct {
	Operation string
	Text      string
}

// Result is everything produced for one source document.
type Result struct {
	// Name is the base name used for every output file.
	Name     string
	Source   string
	Sections []Section
	// Created defaults to the current time.
	Created time.Time
}

// Stage renders r in every configured format into a fresh directory under
// the output directory.
func (w *implWriter) Stage(ctx context.Context, r Result) (*Staged, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("report: result has no name")
	}
	if r.Created.IsZero() {
		r.Created = w.now()
	}
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	dir, err := os.MkdirTemp(w.outputDir, ".staging-")
	if err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}

	staged := &Staged{dir: dir, outputDir: w.outputDir}
	md := Markdown(r)
	for _, format := range w.formats {
		path := filepath.Join(dir, r.Name+"."+format)

		switch format {
		case "md":
			err = os.WriteFile(path, []byte(md), 0644)
		case "html":
			err = writeHTML(r.Name, md, path)
		case "docx":
			err = markdownToDocx(md, path)
		default:
			err = fmt.Errorf("unknown format %q", format)
		}
		if err != nil {
			staged.Discard()
			return nil, fmt.Errorf("write %s: %w", path, err)
		}

		w.logger.Debug(ctx, "Staged %s", path)
		staged.files = append(staged.files, path)
	}
	return staged, nil
}

// Markdown renders r as a Markdown document: a title, the creation time and
// one section per operation.
func Markdown(r Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n_%s_\n", r.Name, r.Created.Format("2006-01-02 15:04"))

	for _, s := range r.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", sectionTitle(s.Operation))
		if s.Operation == "segment" {
			n := 0
			for _, line := range strings.Split(s.Text, "\n") {
				if line == "" {
					continue
				}
				n++
				fmt.Fprintf(&b, "%d. %s\n", n, line)
			}
			continue
		}
		b.WriteString(strings.TrimSpace(s.Text))
		b.WriteString("\n")
	}
	return b.String()
}

func sectionTitle(op string) string {
	switch op {
	case "segment":
		return "Sentences"
	case "correct":
		return "Corrected"
	case "summarize":
		return "Summary"
	case "transliterate":
		return "Transliterated"
	}
	if op == "" {
		return "Text"
	}
	return strings.ToUpper(op[:1]) + op[1:]
}

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

func writeHTML(title, md, path string) error {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return fmt.Errorf("markdown to html: %w", err)
	}
	page := fmt.Sprintf(htmlPage, html.EscapeString(title), buf.String())
	return os.WriteFile(path, []byte(page), 0644)
}
