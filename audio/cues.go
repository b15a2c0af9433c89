// Package audio plays short tone cues for game events through the
// system speaker.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cues generates sine tone cues. A Cues that failed to initialize plays
// nothing; callers never need to check.
type Cues struct {
	ready bool
}

// NewCues initializes the speaker. Failure is non-fatal: the returned
// Cues is silent and the error is informational.
func NewCues() (*Cues, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Cues{ready: err == nil}, err
}

// Play sounds a sine tone at the given frequency for the given duration.
func (c *Cues) Play(freq float64, duration time.Duration) {
	if !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(duration), sine))
}
