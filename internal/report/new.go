package report

import (
	"time"

	"github.com/nguyentantai21042004/readaid/internal/logger"
)

type implWriter struct {
	outputDir string
	formats   []string
	logger    logger.Logger
	now       func() time.Time
}

// New creates a Writer that stores reports in outputDir in each of formats
// ("md", "html", "docx").
func New(outputDir string, formats []string, log logger.Logger) Writer {
	return &implWriter{
		outputDir: outputDir,
		formats:   formats,
		logger:    log,
		now:       time.Now,
	}
}
