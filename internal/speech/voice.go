package speech

import (
	"errors"
	"fmt"
)

const (
	minRate  = 0.1
	maxRate  = 10
	minPitch = 0
	maxPitch = 2

	// baseWordsPerMinute is the speaking speed at rate 1.
	baseWordsPerMinute = 175
	// basePitchLevel is the espeak pitch (0-99) at pitch 1.
	basePitchLevel = 50
)

// ErrInvalidVoice is returned for a rate or pitch out of range.
var ErrInvalidVoice = errors.New("speech: invalid voice")

// Voice holds the speaking parameters. Rate is a multiplier of the normal
// speed (0.1-10) and Pitch a multiplier of the normal pitch (0-2). The zero
// value means rate 1 and pitch 1.
type Voice struct {
	Rate  float64 `yaml:"rate" json:"rate,omitempty"`
	Pitch float64 `yaml:"pitch" json:"pitch,omitempty"`
}

// DefaultVoice speaks at normal speed and pitch.
func DefaultVoice() Voice {
	return Voice{Rate: 1, Pitch: 1}
}

// Validate checks the ranges of v after defaults are applied.
func (v Voice) Validate() error {
	v = v.withDefaults()
	if v.Rate < minRate || v.Rate > maxRate {
		return fmt.Errorf("%w: rate %.2f outside [%.1f, %.0f]", ErrInvalidVoice, v.Rate, float64(minRate), float64(maxRate))
	}
	if v.Pitch < minPitch || v.Pitch > maxPitch {
		return fmt.Errorf("%w: pitch %.2f outside [%d, %d]", ErrInvalidVoice, v.Pitch, minPitch, maxPitch)
	}
	return nil
}

func (v Voice) withDefaults() Voice {
	if v.Rate == 0 {
		v.Rate = 1
	}
	if v.Pitch == 0 {
		v.Pitch = 1
	}
	return v
}

// WordsPerMinute converts Rate into an espeak speed.
func (v Voice) WordsPerMinute() int {
	return int(v.withDefaults().Rate * baseWordsPerMinute)
}

// PitchLevel converts Pitch into the espeak 0-99 scale.
func (v Voice) PitchLevel() int {
	return min(int(v.withDefaults().Pitch*basePitchLevel), 99)
}
