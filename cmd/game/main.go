package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/arena/internal/application/game"
	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/scene/arena"
	"github.com/younwookim/arena/internal/infrastructure/config"
	"github.com/younwookim/arena/internal/logger"
)

// options holds the parsed command line
type options struct {
	configDir string
	record    string
	replay    string
	model     string
	headless  bool
	debug     bool
}

func main() {
	// Parse command line flags
	var opts options
	flag.StringVar(&opts.configDir, "config", "", "Directory containing game.yaml (default: embedded config)")
	flag.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json, or -record auto)")
	flag.StringVar(&opts.replay, "replay", "", "Play back a recording")
	flag.BoolVar(&opts.headless, "headless", false, "With -replay: simulate without a window and log the final state")
	flag.StringVar(&opts.model, "model", "", "Model (.glb/.gltf) to load for both characters")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup (scene exit, which
// saves the recording, and the log flush) always happens
func run(opts options) error {
	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.model != "" {
		cfg.Model.DefaultPath = opts.model
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
	}

	log, err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()

	recordPath := opts.record
	if recordPath == "auto" {
		recordPath = replay.GenerateFilename()
	}

	var data *replay.ReplayData
	if opts.replay != "" {
		data, err = replay.LoadReplay(opts.replay)
		if err != nil {
			return fmt.Errorf("failed to load replay %s: %w", opts.replay, err)
		}
	}

	if data != nil && opts.headless {
		runHeadless(cfg, data, logger.Named(log, "replay"))
		return nil
	}

	sc, err := arena.New(cfg, logger.Named(log, "arena"), arena.Options{
		RecordPath: recordPath,
		Replay:     data,
	})
	if err != nil {
		return fmt.Errorf("failed to create arena: %w", err)
	}

	g := game.New(sc, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Simulation.MaxFrameDelta)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle("Character Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Error("game exited with error", zap.Error(err))
		return fmt.Errorf("game exited with error: %w", err)
	}
	return nil
}

// loadConfig reads game.yaml from dir, or from the embedded configs when
// dir is empty. ARENA_* environment variables override both.
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).Load()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").WithEnv(true).Load()
}
