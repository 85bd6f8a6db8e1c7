// Command ragdoll-volley is a terminal ragdoll volleyball game: you against a simple bot
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ragdoll-volley/audio"
	"github.com/lixenwraith/ragdoll-volley/config"
	"github.com/lixenwraith/ragdoll-volley/core"
	"github.com/lixenwraith/ragdoll-volley/engine"
	"github.com/lixenwraith/ragdoll-volley/input"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "Bot random seed (0 = config value or time based)")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/")
	colorFlag  = flag.Bool("color", true, "Draw in color; -color=false for monochrome")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if *dumpFlag {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	keys := input.DefaultKeyTable()
	if err := keys.BindNamed(cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid key binding: %v\n", err)
		os.Exit(1)
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed=%d tick_rate=%d bot_interval=%s hold_window=%s",
		cfg.Seed, cfg.TickRate, cfg.BotInterval, cfg.HoldWindow)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.RegisterTerminal(screen)
	defer screen.Fini()

	sounds := audio.NewSoundManager()
	if cfg.Audio {
		// Non-fatal, game can run without sound
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer sounds.Cleanup()
	if *muteFlag {
		sounds.ToggleMute()
	}

	a := newApp(cfg, screen, keys, engine.NewMonotonicTimeProvider(), sounds)
	a.run(cfg.FrameDuration())
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "color":
			cfg.Color = *colorFlag
		}
	})
}
