// Package audio plays short synthesized feedback tones through the
// beep speaker. The game runs fine without it; any initialization
// failure just leaves the engine silent.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/dead-aim/constants"
)

// Engine produces the game's sound effects.
type Engine struct {
	rate    beep.SampleRate
	enabled bool
}

// NewEngine initializes the speaker. If disabled is set or the speaker
// fails to open, the returned engine is silent and err reports why.
func NewEngine(disabled bool) (*Engine, error) {
	e := &Engine{rate: beep.SampleRate(constants.AudioSampleRate)}
	if disabled {
		return e, nil
	}
	if err := speaker.Init(e.rate, e.rate.N(constants.AudioBufferLen)); err != nil {
		return e, err
	}
	e.enabled = true
	return e, nil
}

// Close shuts the speaker down.
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
	}
}

// Enabled reports whether the engine actually produces sound.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// Shot plays the kill confirmation blip.
func (e *Engine) Shot() {
	e.tone(constants.ShotSoundFreq, constants.ShotSoundDuration)
}

// Hit plays the low player-damage thud.
func (e *Engine) Hit() {
	e.tone(constants.HitSoundFreq, constants.HitSoundDuration)
}

// LevelUp plays a rising two-note jingle.
func (e *Engine) LevelUp() {
	if !e.enabled {
		return
	}
	low := e.take(constants.LevelUpSoundFreqLow, constants.LevelUpSoundDuration)
	high := e.take(constants.LevelUpSoundFreqHigh, constants.LevelUpSoundDuration)
	if low == nil || high == nil {
		return
	}
	speaker.Play(beep.Seq(low, high))
}

// GameOver plays the long closing drone.
func (e *Engine) GameOver() {
	e.tone(constants.GameOverSoundFreq, constants.GameOverSoundDuration)
}

func (e *Engine) tone(freq float64, d time.Duration) {
	if !e.enabled {
		return
	}
	if s := e.take(freq, d); s != nil {
		speaker.Play(s)
	}
}

func (e *Engine) take(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(e.rate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(e.rate.N(d), sine)
}
