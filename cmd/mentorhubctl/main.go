package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/campusbridge-hq/mentorhub-client/internal/app"
	"github.com/campusbridge-hq/mentorhub-client/internal/config"
	"github.com/campusbridge-hq/mentorhub-client/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mentorhubctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctl, err := app.NewCtl(cfg, log)
	if err != nil {
		return fmt.Errorf("init runtime: %w", err)
	}

	return ctl.Run(ctx, os.Args[1:])
}
