package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/readaid/internal/config"
	"github.com/nguyentantai21042004/readaid/internal/document"
	"github.com/nguyentantai21042004/readaid/internal/logger"
	"github.com/nguyentantai21042004/readaid/internal/speech"
	"github.com/nguyentantai21042004/readaid/pkg/executor"
)

// speak reads the document at path aloud. SIGUSR1 toggles pause; the
// reading stops when ctx is cancelled.
func speak(ctx context.Context, cfg *config.Config, log logger.Logger, path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	synth := speech.NewCommandSynthesizer(executor.New(), cfg.Speech.Command)
	narrator, err := speech.NewNarrator(synth,
		speech.WithVoice(cfg.Speech.Voice()),
		speech.WithLogger(log),
	)
	if err != nil {
		return err
	}

	if err := narrator.Start(ctx, doc.Text); err != nil {
		return err
	}
	log.Info(ctx, "Reading %s with %s (send SIGUSR1 to pause or resume)", doc.Name, cfg.Speech.Command)

	toggle := make(chan os.Signal, 1)
	signal.Notify(toggle, syscall.SIGUSR1)
	defer signal.Stop(toggle)

	done := make(chan error, 1)
	go func() { done <- narrator.Wait() }()

	for {
		select {
		case err := <-done:
			log.Info(ctx, "Reading finished (%s)", narrator.State())
			return err
		case <-toggle:
			if narrator.Pause() {
				log.Info(ctx, "Paused")
			} else if narrator.Resume() {
				log.Info(ctx, "Resumed")
			}
		case <-ctx.Done():
			narrator.Stop()
			<-done
			log.Info(ctx, "Reading stopped")
			return nil
		}
	}
}
