// Package speech reads documents aloud through a pluggable synthesizer.
//
// A [Synthesizer] speaks one utterance and blocks until it is done. A
// [Narrator] drives a synthesizer sentence by sentence in the background and
// exposes the start, pause, resume and stop controls of a speech player, with
// [Narrator.Wait] and an optional callback for completion.
package speech

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/readaid/pkg/executor"
)

// Synthesizer speaks a single utterance. Speak blocks until the utterance
// has been spoken or ctx is cancelled.
type Synthesizer interface {
	Speak(ctx context.Context, text string, v Voice) error
}

// CommandSynthesizer speaks through an espeak-compatible command line tool.
type CommandSynthesizer struct {
	exec    executor.Executor
	command string
}

// NewCommandSynthesizer creates a synthesizer that runs command for every
// utterance. The command must accept -s (words per minute), -p (pitch 0-99)
// and --stdin.
func NewCommandSynthesizer(exec executor.Executor, command string) *CommandSynthesizer {
	if command == "" {
		command = "espeak"
	}
	return &CommandSynthesizer{exec: exec, command: command}
}

// Args returns the command line arguments used for voice v.
func (c *CommandSynthesizer) Args(v Voice) []string {
	return []string{
		"-s", strconv.Itoa(v.WordsPerMinute()),
		"-p", strconv.Itoa(v.PitchLevel()),
		"--stdin",
	}
}

// Speak runs the speech command with text on stdin.
func (c *CommandSynthesizer) Speak(ctx context.Context, text string, v Voice) error {
	if _, err := c.exec.ExecuteWithInput(ctx, strings.NewReader(text), c.command, c.Args(v)...); err != nil {
		return fmt.Errorf("speech: %s: %w", c.command, err)
	}
	return nil
}
