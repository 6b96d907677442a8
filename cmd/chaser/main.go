package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaser/audio"
	"github.com/lixenwraith/chaser/config"
	"github.com/lixenwraith/chaser/constants"
	"github.com/lixenwraith/chaser/engine"
	"github.com/lixenwraith/chaser/replay"
)

var (
	configFlag = flag.String("config", "", "YAML tuning file (default $"+config.EnvConfigPath+")")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	recordFlag = flag.String("record", "", "Save a replay of the session to this file on exit")
	replayFlag = flag.String("replay", "", "Run a saved replay without a terminal and print the result")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chaser: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run() error {
	if *replayFlag != "" {
		return runReplay(os.Stdout, *replayFlag)
	}

	cfg, err := loadConfig(*configFlag, *seedFlag)
	if err != nil {
		return err
	}
	log.Printf("seed %d", cfg.Seed)

	g, err := runTerminal(cfg, *muteFlag, *recordFlag != "")
	if err != nil {
		return err
	}

	if *recordFlag != "" {
		if err := replay.SaveFile(*recordFlag, g.rec.Recording()); err != nil {
			return err
		}
		log.Printf("replay saved to %s", *recordFlag)
	}
	return nil
}

// loadConfig resolves the tuning from .env, the YAML file, the environment and the seed flag
func loadConfig(path string, seed int64) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(config.ResolvePath(path))
	if err != nil {
		return cfg, err
	}

	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// runTerminal owns the screen for the whole interactive session
func runTerminal(cfg config.Config, muted, record bool) (g *game, err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before anything reaches stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCHASER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Cleanup()
	if muted {
		sound.ToggleMute()
	}

	g = newGame(screen, cfg, engine.NewMonotonicTimeProvider(), sound, record)
	loop(screen, g)
	return g, nil
}

// loop multiplexes terminal events and the frame ticker on one goroutine
func loop(screen tcell.Screen, g *game) {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handle(ev) {
				return
			}
		case <-ticker.C:
			g.frame()
		}
	}
}

// runReplay rebuilds a recorded session and prints how it ended
func runReplay(w io.Writer, path string) error {
	rec, err := replay.LoadFile(path)
	if err != nil {
		return err
	}
	gs, err := replay.Play(rec)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "replay %s: seed %d, %d frames, round %s %s, score %d, elapsed %s\n",
		rec.ID, rec.Config.Seed, len(rec.Frames), gs.RoundID(), gs.Round(), gs.Score(), gs.Elapsed())
	return err
}
