package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/gesture"
	"github.com/vovakirdan/gesture-snake/internal/sources/replay"
)

var (
	flagSummaryOnly bool
	flagOnly        string
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file>...",
	Short: "Print the gestures found in landmark recordings",
	Long: `Runs the gesture classifier over recordings, one poll per frame, and
prints a table of detected swipes and pinches followed by a summary. Use it
to tune gesture thresholds against real captures. Each file starts with a
fresh wrist reference. Pass '-' to read standard input.

Examples:
  gsnake classify swipes.jsonl
  gsnake classify left.jsonl right.jsonl.zst --summary
  gsnake classify swipes.jsonl --only up
  gsnake classify swipes.jsonl --config tuned.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&flagSummaryOnly, "summary", false, "Print only the summary")
	classifyCmd.Flags().StringVar(&flagOnly, "only", "", "Only list frames with this gesture: up, down, left, right")
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// classifySummary counts what the recordings contain.
type classifySummary struct {
	Files      int
	Frames     int
	NoHand     int
	BadLines   int
	Pinched    int
	Directions map[core.Direction]int
}

// classifyRun feeds recordings through one classifier. With table set, rows
// are written to it, filtered by only unless only is DirNone.
type classifyRun struct {
	classifier *gesture.Classifier
	mirror     bool
	only       core.Direction
	table      io.Writer

	sum classifySummary
}

func newClassifyRun(cfg config.Config, only core.Direction, table io.Writer) *classifyRun {
	return &classifyRun{
		classifier: gesture.NewClassifier(cfg.Gesture.MovementThreshold, cfg.Gesture.PinchThreshold),
		mirror:     cfg.Capture.Mirror,
		only:       only,
		table:      table,
		sum:        classifySummary{Directions: make(map[core.Direction]int)},
	}
}

func runClassify(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	only := core.DirNone
	if flagOnly != "" {
		only = core.ParseDirection(flagOnly)
		if only == core.DirNone {
			fmt.Fprintf(os.Stderr, "Error: --only must be up, down, left or right, got %q\n", flagOnly)
			os.Exit(1)
		}
	}

	logger, closeLog := mustLogger(os.Stderr)
	defer closeLog()

	var table io.Writer
	if !flagSummaryOnly {
		table = os.Stdout
	}
	run := newClassifyRun(cfg, only, table)

	failed := false
	for _, path := range args {
		if err := run.classifyPath(path); err != nil {
			logger.Error("classify stopped", "file", path, "err", err)
			failed = true
		}
	}
	printSummary(os.Stdout, run.sum)

	if failed {
		closeLog()
		os.Exit(1)
	}
}

// classifyPath opens one recording, or standard input for "-".
func (cr *classifyRun) classifyPath(path string) error {
	if path == "-" {
		return cr.classifyStream(path, os.Stdin)
	}
	rc, err := replay.OpenFile(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return cr.classifyStream(path, rc)
}

// classifyStream classifies every frame of r. The wrist reference from a
// previous file is dropped first.
func (cr *classifyRun) classifyStream(name string, r io.Reader) error {
	cr.classifier.Reset()
	cr.sum.Files++

	if cr.table != nil {
		fmt.Fprintln(cr.table, headerStyle.Render(name))
		fmt.Fprintln(cr.table, headerStyle.Render(fmt.Sprintf("%6s  %8s  %-5s  %-5s  %s", "Line", "t (ms)", "Hand", "Pinch", "Gesture")))
	}

	dec := replay.NewDecoder(r, cr.mirror)
	for {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, replay.ErrRead) {
			return err
		}
		if err != nil {
			cr.sum.BadLines++
			if cr.table != nil && cr.only == core.DirNone {
				fmt.Fprintf(cr.table, "%6d  %8s  %v\n", rec.Line, "-", err)
			}
			continue
		}

		cr.sum.Frames++
		hand := rec.Frame.FirstHand()
		if hand == nil {
			cr.sum.NoHand++
		}
		dir, pinched := cr.classifier.Classify(hand)
		if pinched {
			cr.sum.Pinched++
		}
		if dir != core.DirNone {
			cr.sum.Directions[dir]++
		}

		if cr.table == nil || (cr.only != core.DirNone && dir != cr.only) {
			continue
		}
		at := "-"
		if rec.Timed {
			at = fmt.Sprint(rec.At.Milliseconds())
		}
		fmt.Fprintf(cr.table, "%6d  %8s  %-5s  %-5s  %s\n", rec.Line, at, yesNo(hand != nil), yesNo(pinched), dirLabel(dir))
	}
}

func printSummary(w io.Writer, sum classifySummary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Summary"))
	fmt.Fprintf(w, "  Files:      %d\n", sum.Files)
	fmt.Fprintf(w, "  Frames:     %d\n", sum.Frames)
	fmt.Fprintf(w, "  No hand:    %d\n", sum.NoHand)
	fmt.Fprintf(w, "  Bad lines:  %d\n", sum.BadLines)
	fmt.Fprintf(w, "  Pinched:    %d\n", sum.Pinched)
	for _, d := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		fmt.Fprintf(w, "  %-10s  %d\n", d.String()+":", sum.Directions[d])
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func dirLabel(d core.Direction) string {
	if d == core.DirNone {
		return ""
	}
	return d.String()
}
