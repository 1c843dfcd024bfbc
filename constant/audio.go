package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Feedback sound shapes
const (
	PickupDuration = 30 * time.Millisecond
	PickupFreq     = 660.0

	MatchDuration = 180 * time.Millisecond
	MatchFreqLow  = 660.0
	MatchFreqHigh = 990.0

	MismatchDuration = 150 * time.Millisecond
	MismatchFreq     = 120.0
)
