package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/lixenwraith/wirecube/config"
	"github.com/lixenwraith/wirecube/terminal"
)

var (
	configFlag      = flag.String("config", "", "TOML config file overlaid on the preset")
	presetFlag      = flag.String("preset", "cube", "Profile: "+strings.Join(config.PresetNames(), ", "))
	shapeFlag       = flag.String("shape", "", "Shape kind override: cube, ring (donut), line")
	boundsFlag      = flag.String("bounds", "", "Off-grid samples: clip, strict")
	outputFlag      = flag.String("output", "ansi", "Output: ansi, tcell")
	framesFlag      = flag.Int("frames", 0, "Stop after N frames (0 = run until interrupted)")
	debugFlag       = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	printConfigFlag = flag.Bool("print-config", false, "Print the effective config as TOML and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if rendering crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mWIRECUBE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wirecube: %v\n", err)
		os.Exit(1)
	}
}

func execute() error {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := resolveConfig(cliOptions{
		preset:     *presetFlag,
		configPath: *configFlag,
		shape:      *shapeFlag,
		bounds:     *boundsFlag,
	})
	if err != nil {
		return err
	}

	if *printConfigFlag {
		return config.Encode(os.Stdout, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, cfg, runOptions{output: *outputFlag, frames: *framesFlag}, os.Stdout)
}
