package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"isce_report/internal/app"
	"isce_report/internal/config"
	"isce_report/internal/logging"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <root-dir>\n", os.Args[0])
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFile)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application := app.New(cfg, logger)
	if _, err := application.Run(ctx, os.Args[1]); err != nil {
		log.Fatalf("run: %v", err)
	}
}
