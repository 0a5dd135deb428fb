// Package main provides the fable terminal player.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/astokes/fable/internal/config"
	"github.com/astokes/fable/internal/game/session"
	"github.com/astokes/fable/internal/game/world"
	"github.com/astokes/fable/internal/observability"
	"github.com/astokes/fable/internal/tui"
)

func main() {
	worldPath := flag.String("world", "", "path to world script")
	configPath := flag.String("config", "", "optional path to configuration file")
	flag.Parse()

	if *worldPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fable -world <script> [-config <file>]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	start := time.Now()
	w, err := world.Load(*worldPath)
	if err != nil {
		logger.Error("loading world failed", zap.String("path", *worldPath), zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("world loaded",
		zap.String("title", w.Meta.Title),
		zap.Int("rooms", len(w.Rooms)),
		zap.Int("actions", len(w.Actions)),
		zap.Int("dialogues", len(w.Dialogues)),
		zap.Duration("elapsed", time.Since(start)))

	sess := session.New(w)
	logger.Info("session started",
		zap.String("session_id", sess.ID.String()),
		zap.String("start_room", string(w.Meta.StartRoom)))

	if err := tui.Run(sess, cfg.UI, logger); err != nil {
		logger.Error("player exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session ended", zap.String("session_id", sess.ID.String()))
}
