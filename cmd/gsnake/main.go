// gsnake is a terminal snake game steered by hand gestures.
//
// Usage:
//
//	gsnake play              - Play with the keyboard virtual hand
//	gsnake play --landmarks f - Play a recorded landmark stream
//	gsnake classify <file>   - Print the gestures found in a recording
//	gsnake sources           - List landmark sources
//	gsnake config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom YAML config
//	--seed <value>      - RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs here (play only logs to a file)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gsnake",
	Short: "Gesture Snake - steer a snake with your hand",
	Long: `Gesture Snake is the classic grid snake played in the terminal. Swipe
your hand to turn and pinch thumb and index finger to speed up.

Hand landmarks come from a source: the keyboard virtual hand, a recorded
landmark file, or a tracker piped into standard input.

Examples:
  gsnake play
  gsnake play --landmarks swipes.jsonl.zst --loop
  tracker | gsnake play --source stdin
  gsnake classify swipes.jsonl
  gsnake sources`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (play discards logs when unset)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(configCmd)
}
