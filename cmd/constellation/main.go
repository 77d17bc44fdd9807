package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/constellation/audio"
	"github.com/lixenwraith/constellation/config"
	"github.com/lixenwraith/constellation/core"
	"github.com/lixenwraith/constellation/status"
)

func main() {
	// Panic recovery: the terminal is restored before the stack is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("constellation", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := config.ParseConfig(fs, args)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(stderr, "constellation: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	sc, err := loadScene(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "constellation: %v\n", err)
		return 1
	}

	a := &app{
		cfg:     cfg,
		scene:   sc,
		logger:  log.Default(),
		metrics: status.NewRegistry(),
		player:  audio.NewPlayer(cfg.Audio()),
	}
	a.logger.Printf("scene %q seed %d", sc.Name, sc.Field.Seed)

	if cfg.Headless() {
		err = a.runSnapshot(stdout)
	} else {
		var screen tcell.Screen
		screen, err = tcell.NewScreen()
		if err == nil {
			err = a.runTerminal(screen)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "constellation: %v\n", err)
		return 1
	}
	return 0
}
