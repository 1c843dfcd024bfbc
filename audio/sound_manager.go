package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/venn-deduction/component"
	"github.com/lixenwraith/venn-deduction/constant"
)

const (
	sampleRate = beep.SampleRate(constant.AudioSampleRate)
)

// SoundManager plays short feedback tones through a single mixer
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayPickup plays a short click when a token is grabbed
func (sm *SoundManager) PlayPickup() {
	sine, err := generators.SineTone(sampleRate, constant.PickupFreq)
	if err != nil {
		return
	}
	sm.play(beep.Take(sampleRate.N(constant.PickupDuration), sine))
}

// PlayVerdict plays a rising chime on match and a buzz on mismatch
// Unset plays nothing
func (sm *SoundManager) PlayVerdict(v component.Verdict) {
	switch v {
	case component.VerdictMatch:
		sm.play(beep.Take(sampleRate.N(constant.MatchDuration), NewChimeGenerator(sampleRate, constant.MatchFreqLow, constant.MatchFreqHigh)))
	case component.VerdictMismatch:
		sm.play(beep.Take(sampleRate.N(constant.MismatchDuration), NewBuzzGenerator(sampleRate, constant.MismatchFreq)))
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ChimeGenerator generates a two-step rising tone
type ChimeGenerator struct {
	sr        beep.SampleRate
	low, high float64
	pos       int
	half      int
}

// NewChimeGenerator creates a chime that steps from low to high halfway through the match cue
func NewChimeGenerator(sr beep.SampleRate, low, high float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:   sr,
		low:  low,
		high: high,
		half: sr.N(constant.MatchDuration / 2),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := g.low
		if g.pos >= g.half {
			freq = g.high
		}

		// Quick attack, exponential tail
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*10)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Square wave with harmonics for harsh buzz
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Envelope to fade in/out
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
