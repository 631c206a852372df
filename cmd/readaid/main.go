package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/readaid/internal/assistant"
	"github.com/nguyentantai21042004/readaid/internal/config"
	"github.com/nguyentantai21042004/readaid/internal/logger"
	"github.com/nguyentantai21042004/readaid/internal/observe"
	"github.com/nguyentantai21042004/readaid/internal/processor"
	"github.com/nguyentantai21042004/readaid/internal/report"
	"github.com/nguyentantai21042004/readaid/internal/request"
	"github.com/nguyentantai21042004/readaid/internal/server"
	"github.com/nguyentantai21042004/readaid/internal/watcher"
	"github.com/nguyentantai21042004/readaid/pkg/correct"
	"github.com/nguyentantai21042004/readaid/pkg/textproc"
	"github.com/nguyentantai21042004/readaid/pkg/translit"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	speakPath := flag.String("speak", "", "read one document aloud and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithWriter(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)

	if *speakPath != "" {
		if err := speak(ctx, cfg, log, *speakPath); err != nil {
			log.Error(ctx, "Speech failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	log.Info(ctx, "========================================")
	log.Info(ctx, "Reading Assistant")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Operations: %v", cfg.Pipeline.Operations)
	log.Info(ctx, "Formats: %v", cfg.Pipeline.Formats)

	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		shutdown, err := observe.InitProvider(ctx)
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn(ctx, "Metrics shutdown: %v", err)
			}
		}()
		metricsHandler = observe.Handler()
	}
	metrics := observe.DefaultMetrics()

	engine := buildEngine(cfg)
	writer := report.New(cfg.Paths.Output, cfg.Pipeline.Formats, log)
	proc := processor.New(cfg, engine, writer, request.NewTracker(), metrics, log)

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent, cfg.Performance.SettleDelay)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := w.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("watcher: %w", err)
		}
		return nil
	})

	if cfg.Server.Enabled {
		srv := server.New(engine, assistant.New(), metrics, log, metricsHandler)
		httpSrv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           srv.Routes(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			log.Info(gctx, "HTTP API listening on %s", cfg.Server.Addr)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		})
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Reading Assistant is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	err = g.Wait()
	log.Info(ctx, "Reading Assistant stopped")
	return err
}

// buildEngine applies the configured dictionaries and defaults to a new
// engine.
func buildEngine(cfg *config.Config) textproc.Engine {
	tr := cfg.Pipeline.Transliteration
	return textproc.New(
		textproc.WithCorrector(correct.New(correct.WithMisspellings(cfg.Pipeline.Misspellings))),
		textproc.WithTable(translit.Hinglish().With(tr.Forward, tr.Reverse)),
		textproc.WithBudget(cfg.Pipeline.Summary),
		textproc.WithDirection(cfg.Direction()),
	)
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
