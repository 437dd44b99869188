package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/chrisuehlinger/decafdrag/config"
	"github.com/chrisuehlinger/decafdrag/ui"
)

func main() {
	configPath := flag.String("config", "", "panel layout file (YAML); built-in layout when empty")
	headless := flag.Bool("headless", false, "run against an in-memory page instead of opening a window")
	script := flag.String("script", "", "script to run in headless mode")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(*debug)
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	if *headless {
		var code []byte
		if *script != "" {
			code, err = os.ReadFile(*script)
			if err != nil {
				logger.Error("read script", "err", err)
				os.Exit(1)
			}
		}
		if err := runHeadless(os.Stdout, cfg, *script, string(code), logger); err != nil {
			logger.Error("headless run", "err", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("decafdrag - draggable panels")
	ui.NewBoard(app.New(), cfg, logger).Run()
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
