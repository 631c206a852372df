package processor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/readaid/internal/document"
	"github.com/nguyentantai21042004/readaid/internal/observe"
	"github.com/nguyentantai21042004/readaid/internal/report"
	"github.com/nguyentantai21042004/readaid/pkg/textproc"
	"golang.org/x/sync/errgroup"
)

// Process loads the document at path, runs every configured operation on
// it, writes the reports and archives the source. Empty documents are
// skipped. A result overtaken by a newer run for the same path is dropped.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()

	doc, err := document.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		p.logger.Debug(ctx, "Document is gone, skipping: %s", path)
		p.metrics.RecordDocument(ctx, observe.StatusSkipped)
		return nil
	}
	if err != nil {
		p.metrics.RecordDocument(ctx, observe.StatusError)
		return fmt.Errorf("load document: %w", err)
	}

	if err := textproc.ValidateInput(doc.Text); err != nil {
		p.logger.Warn(ctx, "Skipping %s: %v", path, err)
		p.metrics.RecordDocument(ctx, observe.StatusSkipped)
		return nil
	}

	tok := p.tracker.Begin(path)
	p.logger.Info(ctx, "Processing %s (%d chars)", path, len(doc.Text))

	sections, err := p.runOperations(ctx, doc.Text)
	if err != nil {
		p.tracker.Release(tok)
		p.metrics.RecordDocument(ctx, observe.StatusError)
		return err
	}

	if !p.tracker.Current(tok) {
		p.discardStale(ctx, path)
		return nil
	}

	staged, err := p.writer.Stage(ctx, report.Result{
		Name:     doc.Name,
		Source:   path,
		Sections: sections,
		Created:  p.now(),
	})
	if err != nil {
		p.tracker.Release(tok)
		p.metrics.RecordDocument(ctx, observe.StatusError)
		return fmt.Errorf("write report: %w", err)
	}
	defer func() {
		if err := staged.Discard(); err != nil {
			p.logger.Warn(ctx, "Failed to remove staged reports: %v", err)
		}
	}()

	// A newer run may have started while the reports were rendered; the
	// commit happens only if this run is still the latest one.
	var written []string
	var commitErr error
	if !p.tracker.Finish(tok, func() { written, commitErr = staged.Commit() }) {
		p.discardStale(ctx, path)
		return nil
	}
	if commitErr != nil {
		p.tracker.Release(tok)
		p.metrics.RecordDocument(ctx, observe.StatusError)
		return fmt.Errorf("write report: %w", commitErr)
	}

	if p.tracker.Release(tok) {
		if err := p.moveToArchived(ctx, path); err != nil {
			p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
		}
	}

	p.metrics.RecordDocument(ctx, observe.StatusOK)
	p.logger.Info(ctx, "Processed %s in %s: %v", doc.Name, time.Since(startTime), written)
	return nil
}

func (p *implProcessor) discardStale(ctx context.Context, path string) {
	p.logger.Info(ctx, "Discarding stale result for %s", path)
	p.metrics.RecordDocument(ctx, observe.StatusStale)
	p.metrics.RecordStale(ctx, observe.SourceDocument)
}

// runOperations runs each configured operation on text concurrently. The
// sections keep the configured order.
func (p *implProcessor) runOperations(ctx context.Context, text string) ([]report.Section, error) {
	ops := p.cfg.Operations()
	sections := make([]report.Section, len(ops))

	g, gctx := errgroup.WithContext(ctx)
	for i, op := range ops {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			out := p.engine.Run(text, op)
			p.metrics.RecordOperation(gctx, string(op), time.Since(start).Seconds())

			sections[i] = report.Section{Operation: string(op), Text: out}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run operations: %w", err)
	}
	return sections, nil
}

// moveToArchived moves the source document out of the input folder.
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	dir := p.cfg.Paths.Archived
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(dir, filepath.Base(path))
	p.logger.Info(ctx, "Archiving: %s -> %s", path, dest)

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
