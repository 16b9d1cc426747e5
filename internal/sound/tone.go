package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// SampleRate is the rate every effect is synthesized at.
const SampleRate beep.SampleRate = 44100

// Tone is a sine sweep with an exponential frequency and gain ramp.
type Tone struct {
	Delay     time.Duration
	Duration  time.Duration
	StartHz   float64
	EndHz     float64
	StartGain float64
	EndGain   float64
}

// Streamer renders the tone, including its leading delay.
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	s := &toneStreamer{tone: t, total: sr.N(t.Duration), rate: float64(sr)}
	if t.Delay <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(sr.N(t.Delay)), s)
}

type toneStreamer struct {
	tone  Tone
	total int
	pos   int
	phase float64
	rate  float64
}

// ramp interpolates exponentially from a to b; both must be positive.
func ramp(a, b, frac float64) float64 {
	if a <= 0 || b <= 0 {
		return a + (b-a)*frac
	}
	return a * math.Pow(b/a, frac)
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			break
		}
		frac := float64(s.pos) / float64(s.total)
		freq := ramp(s.tone.StartHz, s.tone.EndHz, frac)
		gain := ramp(s.tone.StartGain, s.tone.EndGain, frac)
		v := math.Sin(s.phase) * gain
		samples[i][0] = v
		samples[i][1] = v
		s.phase += 2 * math.Pi * freq / s.rate
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		s.pos++
		n++
	}
	return n, true
}

func (s *toneStreamer) Err() error {
	return nil
}
