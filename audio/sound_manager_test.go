package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/venn-deduction/component"
	"github.com/lixenwraith/venn-deduction/constant"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayPickup()
	sm.PlayVerdict(component.VerdictMatch)
	sm.PlayVerdict(component.VerdictMismatch)
	sm.PlayVerdict(component.VerdictUnset)
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayVerdict(component.VerdictMatch)
	sm.Cleanup()
}

// TestSoundManagerMuteToggle verifies mute flips and is reported
func TestSoundManagerMuteToggle(t *testing.T) {
	sm := NewSoundManager()
	if sm.Muted() {
		t.Fatal("Expected new sound manager to be unmuted")
	}
	if !sm.ToggleMute() {
		t.Error("Expected first toggle to mute")
	}
	if sm.ToggleMute() {
		t.Error("Expected second toggle to unmute")
	}
}

// TestChimeStepsAtHalfCue verifies the chime switches pitch halfway through the match cue
func TestChimeStepsAtHalfCue(t *testing.T) {
	sr := beep.SampleRate(constant.AudioSampleRate)
	g := NewChimeGenerator(sr, constant.MatchFreqLow, constant.MatchFreqHigh)

	if want := sr.N(constant.MatchDuration / 2); g.half != want {
		t.Errorf("Expected pitch step at sample %d, got %d", want, g.half)
	}
	if total := sr.N(constant.MatchDuration); g.half*2 > total+1 || g.half*2 < total-1 {
		t.Errorf("Expected step at the middle of %d samples, got %d", total, g.half)
	}
}

// TestGeneratorsProduceBoundedSamples verifies generators stay within [-1, 1] and never end
func TestGeneratorsProduceBoundedSamples(t *testing.T) {
	sr := beep.SampleRate(44100)
	streamers := map[string]beep.Streamer{
		"chime": NewChimeGenerator(sr, 660, 990),
		"buzz":  NewBuzzGenerator(sr, 120),
	}

	for name, s := range streamers {
		buf := make([][2]float64, 4096)
		n, ok := s.Stream(buf)
		if !ok || n != len(buf) {
			t.Errorf("%s: expected full buffer, got n=%d ok=%v", name, n, ok)
		}
		nonZero := false
		for _, frame := range buf {
			if frame[0] < -1 || frame[0] > 1 || frame[0] != frame[1] {
				t.Fatalf("%s: sample out of range or unbalanced: %v", name, frame)
			}
			if frame[0] != 0 {
				nonZero = true
			}
		}
		if !nonZero {
			t.Errorf("%s: expected audible samples", name)
		}
	}
}
