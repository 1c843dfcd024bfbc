// Package game hosts a puzzle on a tcell screen: it pumps terminal events,
// ticks the scene at a fixed rate and draws every frame.
package game

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/venn-deduction/component"
	"github.com/lixenwraith/venn-deduction/constant"
	"github.com/lixenwraith/venn-deduction/engine"
	"github.com/lixenwraith/venn-deduction/input"
	"github.com/lixenwraith/venn-deduction/puzzle"
	"github.com/lixenwraith/venn-deduction/render"
	"github.com/lixenwraith/venn-deduction/render/renderer"
	"github.com/lixenwraith/venn-deduction/status"
	"github.com/lixenwraith/venn-deduction/vmath"
)

// Sounder plays interaction feedback
type Sounder interface {
	PlayPickup()
	PlayVerdict(v component.Verdict)
	ToggleMute() bool
}

type nopSounder struct{ muted bool }

func (n *nopSounder) PlayPickup()                   {}
func (n *nopSounder) PlayVerdict(component.Verdict) {}
func (n *nopSounder) ToggleMute() bool              { n.muted = !n.muted; return n.muted }

// frameSmoothing weights the newest frame time in the moving average
const frameSmoothing = 0.1

// Settings are supplied once at startup
type Settings struct {
	Title      string
	TickRate   int
	Resizable  bool
	Fullscreen bool
	Seed       int64 // logged for reproduction only
	Puzzle     puzzle.Options
}

// Host owns the scene and drives it from a single goroutine
type Host struct {
	screen   tcell.Screen
	rng      puzzle.Rand
	settings Settings
	sound    Sounder
	muted    bool
	crash    func(any)

	scene        *engine.Scene
	machine      *input.Machine
	orchestrator *render.RenderOrchestrator
	viewport     vmath.Viewport

	stats    *status.Registry
	counters counters
}

// counters caches registry pointers written every tick
type counters struct {
	ticks, pickups, releases, resets *atomic.Int64
	verdicts                         [3]*atomic.Int64
	frameMillis                      *status.AtomicFloat
}

func newCounters(r *status.Registry) counters {
	return counters{
		ticks:    r.Ints.Get(status.Ticks),
		pickups:  r.Ints.Get(status.Pickups),
		releases: r.Ints.Get(status.Releases),
		resets:   r.Ints.Get(status.Resets),
		verdicts: [3]*atomic.Int64{
			component.VerdictUnset:    r.Ints.Get(status.VerdictUnset),
			component.VerdictMatch:    r.Ints.Get(status.VerdictMatch),
			component.VerdictMismatch: r.Ints.Get(status.VerdictMismatch),
		},
		frameMillis: r.Floats.Get(status.FrameMillis),
	}
}

// NewHost generates the first puzzle and prepares the render pipeline on an initialized screen
// A nil sounder disables audio feedback
func NewHost(screen tcell.Screen, rng puzzle.Rand, settings Settings, sound Sounder) (*Host, error) {
	if sound == nil {
		sound = &nopSounder{}
	}

	p, err := puzzle.Generate(rng, settings.Puzzle)
	if err != nil {
		return nil, fmt.Errorf("generate puzzle: %w", err)
	}

	screen.SetTitle(settings.Title)
	// Motion reporting keeps region highlights live while no button is held
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	screen.HideCursor()

	cols, rows := screen.Size()
	viewport := fitViewport(settings.Puzzle.Layout.World, cols, rows, settings.Fullscreen)

	h := &Host{
		screen:       screen,
		rng:          rng,
		settings:     settings,
		sound:        sound,
		scene:        engine.NewScene(p),
		machine:      input.NewMachine(viewport),
		orchestrator: render.NewRenderOrchestrator(screen, viewport),
		viewport:     viewport,
		stats:        status.NewRegistry(),
	}
	h.counters = newCounters(h.stats)

	h.orchestrator.Register(renderer.NewRegionRenderer(), render.PriorityRegion)
	h.orchestrator.Register(renderer.NewSlotRenderer(), render.PrioritySlot)
	h.orchestrator.Register(renderer.NewTokenRenderer(), render.PriorityToken)

	logPuzzle("puzzle generated", p, settings)
	return h, nil
}

// SetCrashHandler installs the recovery hook used by the event poller goroutine
func (h *Host) SetCrashHandler(fn func(any)) {
	h.crash = fn
}

// Scene exposes the running scene
func (h *Host) Scene() *engine.Scene {
	return h.scene
}

// Stats exposes the session counters
func (h *Host) Stats() *status.Registry {
	return h.stats
}

// Viewport returns the current world to cell mapping
func (h *Host) Viewport() vmath.Viewport {
	return h.viewport
}

// Run pumps events and ticks until a quit key or ctx cancellation
// Quit returns nil; cancellation returns ctx.Err()
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constant.InputEventBuffer)
	done := make(chan struct{})
	defer close(done)

	go h.poll(events, done)

	ticker := time.NewTicker(constant.TickInterval(h.settings.TickRate))
	defer ticker.Stop()

	h.render()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("host stopped by context")
			return ctx.Err()

		case ev := <-events:
			quit, err := h.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				log.Info().Str("puzzle", h.scene.PuzzleID.String()).Msg("quit requested")
				return nil
			}

		case <-ticker.C:
			h.step()
		}
	}
}

// poll forwards terminal events until the screen is finalized or Run returns
func (h *Host) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil && h.crash != nil {
			h.crash(r)
		}
	}()

	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent folds one event into the input machine and applies its intent
func (h *Host) handleEvent(ev tcell.Event) (quit bool, err error) {
	intent := h.machine.Process(ev)
	if intent == nil {
		return false, nil
	}

	switch intent.Type {
	case input.IntentQuit:
		return true, nil

	case input.IntentReset:
		p, err := puzzle.Generate(h.rng, h.settings.Puzzle)
		if err != nil {
			return false, fmt.Errorf("generate puzzle: %w", err)
		}
		h.scene.Load(p)
		h.counters.resets.Add(1)
		logPuzzle("puzzle reset", p, h.settings)

	case input.IntentToggleMute:
		h.muted = h.sound.ToggleMute()
		log.Debug().Bool("muted", h.muted).Msg("audio toggled")

	case input.IntentResize:
		h.resize(intent.Width, intent.Height)
	}

	h.render()
	return false, nil
}

// resize refits the viewport; a fixed-size window only shrinks when the terminal no longer holds it
func (h *Host) resize(cols, rows int) {
	next := fitViewport(h.settings.Puzzle.Layout.World, cols, rows, h.settings.Fullscreen)
	if !h.settings.Resizable && next.Cols >= h.viewport.Cols && next.Rows >= h.viewport.Rows {
		h.screen.Sync()
		return
	}

	h.viewport = next
	h.machine.SetViewport(next)
	h.orchestrator.Resize(next)
	log.Debug().Int("cols", next.Cols).Int("rows", next.Rows).Msg("viewport resized")
}

// step runs one scene tick on the coalesced pointer state and draws the frame
func (h *Host) step() engine.TickResult {
	res := h.scene.Tick(h.machine.Snapshot())
	h.counters.ticks.Add(1)

	switch res.Event {
	case engine.EventPickup:
		log.Debug().
			Str("puzzle", h.scene.PuzzleID.String()).
			Int("token", res.Index).
			Str("target", h.scene.Tokens[res.Index].Target.String()).
			Msg("drag pickup")
		h.counters.pickups.Add(1)
		h.sound.PlayPickup()

	case engine.EventRelease:
		log.Info().
			Str("puzzle", h.scene.PuzzleID.String()).
			Int("token", res.Index).
			Str("zone", res.Outcome.Zone.String()).
			Str("verdict", res.Outcome.Verdict.String()).
			Bool("snapped", res.Outcome.Snapped).
			Msg("drag release")
		h.counters.releases.Add(1)
		h.counters.verdicts[res.Outcome.Verdict].Add(1)
		h.sound.PlayVerdict(res.Outcome.Verdict)
	}

	h.render()
	return res
}

func (h *Host) render() {
	start := time.Now()
	h.orchestrator.RenderFrame(h.scene, h.status())
	h.counters.frameMillis.Smooth(float64(time.Since(start).Nanoseconds())/1e6, frameSmoothing)
}

// status is the bottom line: title, puzzle id, verdict tally and key hints
func (h *Host) status() string {
	t := h.scene.Tally()
	id := h.scene.PuzzleID.String()[:8]
	mute := ""
	if h.muted {
		mute = " [muted]"
	}
	return fmt.Sprintf(" %s  puzzle %s  match %d  mismatch %d  unset %d%s   r:reset m:mute q:quit",
		h.settings.Title, id, t.Match, t.Mismatch, t.Unset, mute)
}

func logPuzzle(msg string, p *puzzle.Puzzle, s Settings) {
	ev := log.Info().
		Str("puzzle", p.ID.String()).
		Int64("seed", s.Seed).
		Str("sampling", s.Puzzle.Sampling.String()).
		Str("left", p.Left.Target.String()).
		Str("right", p.Right.Target.String())
	if p.Left.Slot != nil && p.Right.Slot != nil {
		ev = ev.Str("left_slot", p.Left.Slot.Target.String()).
			Str("right_slot", p.Right.Slot.Target.String())
	}
	ev.Msg(msg)
}
