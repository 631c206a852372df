package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/readaid/internal/logger"
	"github.com/nguyentantai21042004/readaid/pkg/segment"
	"github.com/nguyentantai21042004/readaid/pkg/textproc"
)

// ErrBusy is returned by Start while a previous text is still being read.
var ErrBusy = errors.New("speech: narrator is busy")

// State is the playback state of a Narrator.
type State int

const (
	StateIdle State = iota
	StateSpeaking
	StatePaused
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateSpeaking:
		return "speaking"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// NarratorOption configures a Narrator.
type NarratorOption func(*Narrator)

// WithVoice sets the voice used for every utterance.
func WithVoice(v Voice) NarratorOption {
	return func(n *Narrator) {
		n.voice = v
	}
}

// WithOnDone registers a callback run when a reading finishes, fails or is
// stopped. The error is nil for a completed or stopped reading.
func WithOnDone(fn func(error)) NarratorOption {
	return func(n *Narrator) {
		n.onDone = fn
	}
}

// WithLogger attaches a logger for progress messages.
func WithLogger(l logger.Logger) NarratorOption {
	return func(n *Narrator) {
		n.logger = l
	}
}

// Narrator reads a document aloud one sentence at a time. Pause takes effect
// between sentences: the utterance in progress is finished first.
// Narrator is safe for concurrent use.
type Narrator struct {
	synth  Synthesizer
	voice  Voice
	onDone func(error)
	logger logger.Logger

	mu      sync.Mutex
	state   State
	cancel  context.CancelFunc
	resume  chan struct{}
	done    chan struct{}
	err     error
	stopped bool
}

// NewNarrator creates a Narrator over synth.
func NewNarrator(synth Synthesizer, opts ...NarratorOption) (*Narrator, error) {
	n := &Narrator{synth: synth, voice: DefaultVoice()}
	for _, opt := range opts {
		opt(n)
	}
	if err := n.voice.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// Start begins reading text in the background. It fails with
// textproc.ErrEmptyInput for blank text and with ErrBusy while another
// reading is in progress.
func (n *Narrator) Start(ctx context.Context, text string) error {
	if err := textproc.ValidateInput(text); err != nil {
		return err
	}

	n.mu.Lock()
	if n.state == StateSpeaking || n.state == StatePaused {
		n.mu.Unlock()
		return ErrBusy
	}
	runCtx, cancel := context.WithCancel(ctx)
	n.state = StateSpeaking
	n.cancel = cancel
	n.resume = nil
	n.done = make(chan struct{})
	n.err = nil
	n.stopped = false
	done := n.done
	n.mu.Unlock()

	parts := Utterances(text)
	if n.logger != nil {
		n.logger.Debug(ctx, "Narrating %d utterances", len(parts))
	}
	go n.run(runCtx, parts, done)
	return nil
}

// Pause holds the reading before the next sentence. It reports whether the
// narrator was speaking.
func (n *Narrator) Pause() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != StateSpeaking {
		return false
	}
	n.state = StatePaused
	n.resume = make(chan struct{})
	return true
}

// Resume continues a paused reading. It reports whether the narrator was
// paused.
func (n *Narrator) Resume() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != StatePaused {
		return false
	}
	close(n.resume)
	n.resume = nil
	n.state = StateSpeaking
	return true
}

// Stop cancels the reading. It reports whether a reading was in progress.
func (n *Narrator) Stop() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != StateSpeaking && n.state != StatePaused {
		return false
	}
	n.stopped = true
	n.cancel()
	return true
}

// Wait blocks until the current reading ends and returns its error. It
// returns nil immediately if nothing was started.
func (n *Narrator) Wait() error {
	n.mu.Lock()
	done := n.done
	n.mu.Unlock()
	if done == nil {
		return nil
	}
	<-done

	n.mu.Lock()
	defer n.mu.Unlock()
	return n.err
}

// State returns the current playback state.
func (n *Narrator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *Narrator) run(ctx context.Context, parts []string, done chan struct{}) {
	err := n.speakAll(ctx, parts)

	n.mu.Lock()
	if n.stopped {
		err = nil
		n.state = StateStopped
	} else {
		n.state = StateIdle
	}
	n.cancel()
	n.err = err
	onDone := n.onDone
	n.mu.Unlock()

	if n.logger != nil {
		if err != nil {
			n.logger.Warn(ctx, "Narration ended with error: %v", err)
		} else {
			n.logger.Debug(ctx, "Narration finished")
		}
	}
	if onDone != nil {
		onDone(err)
	}
	close(done)
}

func (n *Narrator) speakAll(ctx context.Context, parts []string) error {
	for i, p := range parts {
		if err := n.waitIfPaused(ctx); err != nil {
			return err
		}
		if err := n.synth.Speak(ctx, p, n.voice); err != nil {
			return fmt.Errorf("utterance %d: %w", i+1, err)
		}
	}
	return nil
}

func (n *Narrator) waitIfPaused(ctx context.Context) error {
	n.mu.Lock()
	ch := n.resume
	n.mu.Unlock()
	if ch == nil {
		return ctx.Err()
	}
	select {
	case <-ch:
		return ctx.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Utterances splits text into the pieces spoken one at a time: every
// sentence, plus any unterminated text after the last one.
func Utterances(text string) []string {
	sentences := segment.Segment(text)
	parts := segment.Texts(sentences)

	rest := text
	if len(sentences) > 0 {
		rest = text[sentences[len(sentences)-1].End:]
	}
	if r := strings.TrimSpace(rest); r != "" {
		parts = append(parts, r)
	}
	return parts
}
