// game runs "Rise of the AI", a single-screen platformer.
//
// Usage:
//
//	game                  - Play the default stage in a window
//	game replay <file>    - Re-simulate a recorded run without a window
//
// Global flags:
//
//	--config <dir>        - Load game.yaml and stages/ from a directory instead of the embedded defaults
//	--log-level <level>   - debug, info, warn or error (default: $LOG_LEVEL or info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfigDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Rise of the AI - a tiny platformer",
	Long: `Rise of the AI is a single-screen platformer with three enemies:
one waits for you, two patrol the floor.

Controls:
  Left/Right or A/D - Move
  Space             - Jump
  Esc               - Pause
  R                 - Restart
  Q                 - Quit

Examples:
  game
  game --stage demo --contact-rule stomp
  game --record run.json
  game replay run.json`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: embedded configs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (default: $LOG_LEVEL or info)")

	rootCmd.Flags().StringVar(&flagStage, "stage", "demo", "Stage to play")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
	rootCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale (default: from game.yaml)")
	rootCmd.Flags().StringVar(&flagContactRule, "contact-rule", "", "Enemy contact rule: defeat-enemy, defeat-player or stomp")

	// Add subcommands
	rootCmd.AddCommand(replayCmd)
}
