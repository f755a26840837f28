// Package sound plays short click tones when cells are toggled.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/pkg/errors"

	"pixel-wall/internal/wall"
)

const (
	sampleRate = beep.SampleRate(44100)

	clickDuration = 40 * time.Millisecond
	primaryFreq   = 880.0
	secondaryFreq = 587.33
)

// Click returns a short tone for a cell entering state s. Painting a cell
// sounds higher than clearing it.
func Click(s wall.State, volume float64) (beep.Streamer, error) {
	freq := secondaryFreq
	if s == wall.Primary {
		freq = primaryFreq
	}
	return tone(sampleRate, freq, clickDuration, volume)
}

func tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %.1fHz", freq)
	}
	n := sr.N(d)
	return &effects.Volume{
		Streamer: fadeOut(beep.Take(n, sine), n),
		Base:     2,
		Volume:   volume,
		Silent:   volume <= -10,
	}, nil
}

// fadeOut ramps the amplitude of s linearly to zero over total samples so the
// click ends without a pop.
func fadeOut(s beep.Streamer, total int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			gain := 1 - float64(pos)/float64(total)
			if gain < 0 {
				gain = 0
			}
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return n, ok
	})
}
