// Package sound synthesizes the short UI feedback tones and plays them through
// the system speaker.
package sound

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

// Effect names a UI sound.
type Effect string

const (
	Click   Effect = "click"
	Open    Effect = "open"
	Close   Effect = "close"
	Success Effect = "success"
	Hover   Effect = "hover"
)

var effects = map[Effect][]Tone{
	Click: {{Duration: 50 * time.Millisecond, StartHz: 800, EndHz: 600, StartGain: 0.1, EndGain: 0.01}},
	Open:  {{Duration: 150 * time.Millisecond, StartHz: 400, EndHz: 800, StartGain: 0.08, EndGain: 0.01}},
	Close: {{Duration: 120 * time.Millisecond, StartHz: 600, EndHz: 300, StartGain: 0.08, EndGain: 0.01}},
	Success: {
		{Duration: 200 * time.Millisecond, StartHz: 523, EndHz: 523, StartGain: 0.1, EndGain: 0.01},
		{Delay: 100 * time.Millisecond, Duration: 200 * time.Millisecond, StartHz: 784, EndHz: 784, StartGain: 0.1, EndGain: 0.01},
	},
	Hover: {{Duration: 30 * time.Millisecond, StartHz: 1200, EndHz: 1200, StartGain: 0.02, EndGain: 0.001}},
}

// Tones returns the tones making up e, or nil for an unknown effect.
func Tones(e Effect) []Tone {
	return append([]Tone(nil), effects[e]...)
}

// Streamer mixes the tones of e into one streamer.
func Streamer(e Effect, sr beep.SampleRate) (beep.Streamer, bool) {
	tones := effects[e]
	if len(tones) == 0 {
		return nil, false
	}
	parts := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		parts[i] = t.Streamer(sr)
	}
	if len(parts) == 1 {
		return parts[0], true
	}
	return beep.Mix(parts...), true
}

// Player plays UI effects. Implementations must not block.
type Player interface {
	Play(Effect)
}

// Muted discards every effect.
type Muted struct{}

func (Muted) Play(Effect) {}

// Speaker plays effects on the default audio device.
type Speaker struct {
	logger *zap.Logger
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// NewSpeaker initializes the audio device once per process.
func NewSpeaker(logger *zap.Logger) (*Speaker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(time.Second/20))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("init speaker: %w", speakerErr)
	}
	return &Speaker{logger: logger}, nil
}

func (s *Speaker) Play(e Effect) {
	st, ok := Streamer(e, SampleRate)
	if !ok {
		s.logger.Debug("unknown sound effect", zap.String("effect", string(e)))
		return
	}
	speaker.Play(st)
}

// Toggle gates a player behind a mute switch.
type Toggle struct {
	next    Player
	enabled atomic.Bool
}

// NewToggle wraps next. A nil next plays nothing.
func NewToggle(next Player, enabled bool) *Toggle {
	if next == nil {
		next = Muted{}
	}
	t := &Toggle{next: next}
	t.enabled.Store(enabled)
	return t
}

func (t *Toggle) Play(e Effect) {
	if t.enabled.Load() {
		t.next.Play(e)
	}
}

func (t *Toggle) Enabled() bool {
	return t.enabled.Load()
}

func (t *Toggle) SetEnabled(v bool) {
	t.enabled.Store(v)
}

// Flip inverts the switch and returns the new state.
func (t *Toggle) Flip() bool {
	for {
		cur := t.enabled.Load()
		if t.enabled.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}
