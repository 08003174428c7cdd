// Package sound plays the wheel's detent click: a short synthesized burst
// fired each time a drag crosses a tick, like the detents of a hardware
// jog wheel.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	clickFreq   = 1800.0 // Hz
	clickDecay  = 90.0   // amplitude e-folding rate, 1/s
	clickGain   = 0.4
	clickLength = 25 * time.Millisecond
)

// clickTone is a finite streamer synthesizing one exponentially decaying
// sine burst. Each Play gets a fresh instance; the speaker mixer owns it
// exclusively, so no locking is needed.
type clickTone struct {
	pos   int
	total int
}

func newClickTone() *clickTone {
	return &clickTone{total: sampleRate.N(clickLength)}
}

func (c *clickTone) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if c.pos >= c.total {
			break
		}
		t := float64(c.pos) / float64(sampleRate)
		v := clickGain * math.Exp(-clickDecay*t) * math.Sin(2*math.Pi*clickFreq*t)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
		n++
	}
	return n, true
}

func (c *clickTone) Err() error { return nil }

// Player owns the speaker. A nil Player is valid and silent, so callers
// need no special casing when audio init failed (e.g. no output device).
type Player struct {
	muted bool
}

// NewPlayer initializes the speaker with a small mixing buffer.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &Player{}, nil
}

// Click plays one detent burst. Bursts mix, so rapid spins overlap rather
// than cut each other off.
func (p *Player) Click() {
	if p == nil || p.muted {
		return
	}
	speaker.Play(newClickTone())
}

// ToggleMute flips mute and reports the new state.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	p.muted = !p.muted
	return p.muted
}

// Muted reports whether clicks are suppressed. A nil Player is always
// muted.
func (p *Player) Muted() bool {
	return p == nil || p.muted
}
