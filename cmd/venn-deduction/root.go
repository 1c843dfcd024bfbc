package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/venn-deduction/audio"
	"github.com/lixenwraith/venn-deduction/config"
	"github.com/lixenwraith/venn-deduction/game"
	"github.com/lixenwraith/venn-deduction/logging"
	"github.com/lixenwraith/venn-deduction/puzzle"
	"github.com/lixenwraith/venn-deduction/terminal"
)

// flags holds command-line overrides; only flags the user set are applied
type flags struct {
	configPath string
	seed       int64
	sampling   string
	noSlots    bool
	noAudio    bool
	debug      bool
	color      string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "venn-deduction",
		Short: "Venn Deduction - find the hidden rule behind each circle",
		Long: `Drag shape tokens into two overlapping circles. Each circle, and each answer
slot below it, hides a target; a token matches when it shares the target's
shape or its color. Work out both targets from the verdicts.

Mouse: drag tokens. Keys: r new puzzle, m mute, q or Esc quit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return runGame(cmd.Context(), cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "venn-deduction.yaml", "Config file (YAML); missing file uses defaults")
	pf.Int64Var(&f.seed, "seed", 0, "Puzzle seed (0 picks a time-based seed)")
	pf.StringVar(&f.sampling, "sampling", "", "Target sampling: uniform, legacy")
	pf.BoolVar(&f.noSlots, "no-slots", false, "Disable answer slots")
	pf.BoolVar(&f.noAudio, "no-audio", false, "Disable audio feedback")
	pf.BoolVar(&f.debug, "debug", false, "Write debug logs to the log directory")
	pf.StringVar(&f.color, "color", "", "Color mode: auto, truecolor, 256")

	root.AddCommand(newConfigCmd(f))
	root.AddCommand(newPuzzleCmd(f))
	return root
}

// resolveConfig layers file, .env, environment and flags, then validates
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.Puzzle.Seed = f.seed
	}
	if changed("sampling") {
		cfg.Puzzle.Sampling = f.sampling
	}
	if changed("no-slots") {
		cfg.Puzzle.AnswerSlots = !f.noSlots
	}
	if changed("no-audio") {
		cfg.Audio.Enabled = !f.noAudio
	}
	if changed("debug") {
		cfg.Logging.Debug = f.debug
	}
	if changed("color") {
		cfg.Window.Color = f.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveSeed turns the zero seed into a time-based one
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

func runGame(ctx context.Context, cfg *config.Config) error {
	logFile, err := logging.Setup(cfg.Logging.Debug, cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	colorMode, err := terminal.ParseColorMode(cfg.Window.Color)
	if err != nil {
		return err
	}
	if err := colorMode.Apply(); err != nil {
		return fmt.Errorf("failed to apply color mode: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Audio is optional; the game runs silent when the device is unavailable
	var sound game.Sounder
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	seed := resolveSeed(cfg.Puzzle.Seed)
	settings := game.Settings{
		Title:      cfg.Window.Title,
		TickRate:   cfg.Window.TickRate,
		Resizable:  cfg.Window.Resizable,
		Fullscreen: cfg.Window.Fullscreen,
		Seed:       seed,
		Puzzle:     cfg.PuzzleOptions(),
	}

	host, err := game.NewHost(screen, rand.New(rand.NewSource(seed)), settings, sound)
	if err != nil {
		return err
	}
	host.SetCrashHandler(crash)

	log.Info().
		Str("color", colorMode.String()).
		Int("tick_rate", cfg.Window.TickRate).
		Bool("audio", sound != nil).
		Msg("starting venn-deduction")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = host.Run(ctx)

	summary := log.Info().Err(err)
	host.Stats().Each(func(key string, value any) {
		summary = summary.Interface(key, value)
	})
	summary.Msg("shutdown")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newConfigCmd(f *flags) *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			if write != "" {
				if err := cfg.Save(write); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", write)
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&write, "write", "o", "", "Write the configuration to this path instead of stdout")
	return cmd
}

func newPuzzleCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "puzzle",
		Short: "Print the targets a seed produces, without starting the game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			seed := resolveSeed(cfg.Puzzle.Seed)
			opts := cfg.PuzzleOptions()

			p, err := puzzle.Generate(rand.New(rand.NewSource(seed)), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "puzzle   %s\n", p.ID)
			fmt.Fprintf(out, "seed     %d\n", seed)
			fmt.Fprintf(out, "sampling %s\n", opts.Sampling)
			fmt.Fprintf(out, "left     %s\n", p.Left.Target)
			fmt.Fprintf(out, "right    %s\n", p.Right.Target)
			if p.Left.Slot != nil {
				fmt.Fprintf(out, "left slot  %s\n", p.Left.Slot.Target)
			}
			if p.Right.Slot != nil {
				fmt.Fprintf(out, "right slot %s\n", p.Right.Slot.Target)
			}
			return nil
		},
	}
}
