package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/riseai/internal/application/replay"
	"github.com/younwookim/riseai/internal/infrastructure/logging"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run without a window",
	Long: `Load a replay recorded with --record and run it through the
simulation headlessly, then log where the run ended.

Examples:
  game replay run.json
  game replay run.json --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	result, err := replayFile(args[0], flagConfigDir, logger)
	if err != nil {
		return err
	}

	logger.Info("replay finished",
		"frames", result.Frames,
		"steps", result.Steps,
		"state", result.State,
		"defeated", result.Defeated,
		"x", result.Player.X(),
		"y", result.Player.Y())
	return nil
}

// replayFile loads a recording and simulates it against its stage
func replayFile(path, configDir string, logger *log.Logger) (replay.Result, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replay.Result{}, err
	}
	logger.Debug("replay loaded", "stage", data.Stage, "rule", data.ContactRule, "frames", len(data.Frames))

	loader, err := newLoader(configDir)
	if err != nil {
		return replay.Result{}, err
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		return replay.Result{}, err
	}

	w, err := loadWorld(loader, cfg, data.Stage)
	if err != nil {
		return replay.Result{}, err
	}

	return replay.Simulate(*data, w)
}
