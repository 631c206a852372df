package processor

import (
	"time"

	"github.com/nguyentantai21042004/readaid/internal/config"
	"github.com/nguyentantai21042004/readaid/internal/logger"
	"github.com/nguyentantai21042004/readaid/internal/observe"
	"github.com/nguyentantai21042004/readaid/internal/report"
	"github.com/nguyentantai21042004/readaid/internal/request"
	"github.com/nguyentantai21042004/readaid/pkg/textproc"
)

type implProcessor struct {
	cfg     *config.Config
	engine  textproc.Engine
	writer  report.Writer
	tracker *request.Tracker
	metrics *observe.Metrics
	logger  logger.Logger
	now     func() time.Time
}

// New creates a Processor that runs the configured operations of cfg
// through engine and stores the results with writer.
func New(cfg *config.Config, engine textproc.Engine, writer report.Writer, tracker *request.Tracker, metrics *observe.Metrics, log logger.Logger) Processor {
	return &implProcessor{
		cfg:     cfg,
		engine:  engine,
		writer:  writer,
		tracker: tracker,
		metrics: metrics,
		logger:  log,
		now:     time.Now,
	}
}
