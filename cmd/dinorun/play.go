package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/games/dinorun"
	"github.com/vovakirdan/dino-run/internal/notify"
	"github.com/vovakirdan/dino-run/internal/platform/tui"
	"github.com/vovakirdan/dino-run/internal/storage"
)

var (
	flagWatch    bool
	flagNoNotify bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Dino Run",
	Long: `Start a round in this terminal.

Controls:
  A / D      - Move left / right
  W          - Jump
  R          - Restart
  Ctrl+S     - Save a screenshot (text and PNG)
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Every A, D and W press is posted to notify.url from the config.

Examples:
  dinorun play
  dinorun play --seed 7
  dinorun play --config ./configs/dinorun.yaml --watch
  dinorun play --no-notify --log-file /tmp/dinorun.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().BoolVar(&flagNoNotify, "no-notify", false, "Do not forward moves to the device")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	out, closeLog, err := openLogOutput(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(out, "dinorun")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := []dinorun.Option{dinorun.WithConfig(gameCfg)}
	var notifier *notify.HTTPNotifier
	if gameCfg.Notify.Enabled && !flagNoNotify {
		notifier = notify.New(gameCfg.Notify, logger)
		opts = append(opts, dinorun.WithNotifier(notifier))
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runtime := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	model := tui.NewModel(dinorun.New(opts...), store, runtime, logger)

	watchPath := ""
	if flagWatch {
		if watchPath = config.Locate(flagConfig); watchPath == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch ignored, no config file found")
		}
	}

	runErr := tui.Run(model, watchPath)

	if notifier != nil {
		notifier.Wait()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
