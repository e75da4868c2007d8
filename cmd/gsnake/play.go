package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/control"
	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/games/snake"
	"github.com/vovakirdan/gesture-snake/internal/gesture"
	"github.com/vovakirdan/gesture-snake/internal/platform/tui"
	"github.com/vovakirdan/gesture-snake/internal/registry"
	"github.com/vovakirdan/gesture-snake/internal/sources/keyboard"
	"github.com/vovakirdan/gesture-snake/internal/sources/replay"
)

var (
	flagSource    string
	flagLandmarks string
	flagLoop      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game. The snake is steered by gestures from the chosen source.

Gestures:
  Swipe            - Turn (a reversal is ignored)
  Pinch            - Boost while held
  Swipe up         - Restart after game over

Keys:
  Arrows/WASD      - Swipe the virtual hand (keyboard source)
  Space            - Toggle the virtual pinch (keyboard source)
  R                - Restart after game over
  Q/Esc            - Quit
  Ctrl+C           - Force quit

Examples:
  gsnake play
  gsnake play --landmarks swipes.jsonl --loop
  tracker | gsnake play --source stdin
  gsnake play --seed 42 --log-file gsnake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSource, "source", keyboard.Name, "Landmark source (see 'gsnake sources')")
	playCmd.Flags().StringVar(&flagLandmarks, "landmarks", "", "Landmark recording for the replay source (.jsonl or .jsonl.zst)")
	playCmd.Flags().BoolVar(&flagLoop, "loop", false, "Restart the recording when it ends")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so logs only go to a file
	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()

	source, err := resolveSource(flagSource, flagLandmarks, cmd.Flags().Changed("source"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'gsnake sources' to see available sources.")
		closeLog()
		os.Exit(1)
	}

	src, err := registry.Open(source, registry.Options{
		Path:   flagLandmarks,
		Loop:   flagLoop,
		Config: cfg,
	})
	if err != nil {
		logger.Error("source unavailable", "source", source, "err", err)
		fmt.Fprintf(os.Stderr, "Error: could not open landmark source %q: %v\n", source, err)
		fmt.Fprintln(os.Stderr, "Run 'gsnake sources' to see available sources.")
		closeLog()
		os.Exit(1)
	}
	logger.Info("source opened", "source", src.Name())

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	buf := control.NewBuffer()
	classifier := gesture.NewClassifier(cfg.Gesture.MovementThreshold, cfg.Gesture.PinchThreshold)
	capture := control.NewCapture(src, classifier, buf, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := capture.Run(ctx); err != nil {
			logger.Error("capture failed", "err", err)
		}
	}()

	steer, _ := src.(tui.Steerable)
	err = tui.Run(tui.Options{
		Game:   snake.New(cfg),
		Buffer: buf,
		Steer:  steer,
		Cancel: cancel,
		Config: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Logger:   logger,
		InputTTY: source == replay.NameStdin,
	})

	cancel()
	wg.Wait()

	st := capture.Stats()
	logger.Info("session ended", "polls", st.Polls, "misses", st.Misses, "swipes", st.Directions)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// resolveSource picks the landmark source. A recording given without an
// explicit --source selects replay.
func resolveSource(name, landmarks string, explicit bool) (string, error) {
	if landmarks != "" && !explicit {
		name = replay.NameReplay
	}
	if !registry.Exists(name) {
		return "", fmt.Errorf("unknown landmark source %q", name)
	}
	return name, nil
}
