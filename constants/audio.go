package constants

import "time"

// Audio Sample Rate
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferLen is the speaker buffer length
	AudioBufferLen = 100 * time.Millisecond
)

// Shot Sound
const (
	ShotSoundFreq     = 880.0
	ShotSoundDuration = 50 * time.Millisecond
)

// Hit Sound
const (
	HitSoundFreq     = 220.0
	HitSoundDuration = 120 * time.Millisecond
)

// Level-Up Sound
const (
	LevelUpSoundFreqLow  = 523.25
	LevelUpSoundFreqHigh = 783.99
	LevelUpSoundDuration = 90 * time.Millisecond
)

// Game-Over Sound
const (
	GameOverSoundFreq     = 147.0
	GameOverSoundDuration = 400 * time.Millisecond
)
