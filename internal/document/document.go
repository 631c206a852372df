// Package document loads input files into plain text for the engine.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/unicode/norm"
)

// Format is the source format of a document.
type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
)

// ErrUnsupported is returned for files whose extension is not handled.
var ErrUnsupported = errors.New("document: unsupported file type")

// ErrNotUTF8 is returned for input that is not valid UTF-8.
var ErrNotUTF8 = errors.New("document: input is not valid UTF-8")

var extensions = map[string]Format{
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
}

// Document is one input file reduced to plain text.
type Document struct {
	// Path is where the document was read from, if anywhere.
	Path string
	// Name is the file name without directory or extension.
	Name   string
	Format Format
	// Text is NFC-normalized plain text with "\n" line endings.
	Text string
}

// IsSupported reports whether path has a handled extension.
func IsSupported(path string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extensions lists the handled file extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext := range extensions {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Load reads and parses the file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", path, err)
	}
	doc, err := Parse(filepath.Base(path), data)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// Parse converts data into a Document, choosing the format from the
// extension of name.
func Parse(name string, data []byte) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(name))
	format, ok := extensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrNotUTF8, name)
	}

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	var body string
	switch format {
	case FormatMarkdown:
		body = MarkdownText(data)
	default:
		body = string(data)
	}

	return &Document{
		Name:   strings.TrimSuffix(name, filepath.Ext(name)),
		Format: format,
		Text:   norm.NFC.String(body),
	}, nil
}

// MarkdownText returns the readable text of a Markdown source: one line per
// block, markup removed, soft line breaks joined with a space.
func MarkdownText(src []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var b strings.Builder
	endLine := func() {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(src))
				switch {
				case node.HardLineBreak():
					b.WriteByte('\n')
				case node.SoftLineBreak():
					b.WriteByte(' ')
				}
			}
			return ast.WalkContinue, nil
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
			return ast.WalkContinue, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					b.Write(seg.Value(src))
				}
				endLine()
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}

		if !entering && n.Type() == ast.TypeBlock {
			endLine()
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimRight(b.String(), "\n")
}
