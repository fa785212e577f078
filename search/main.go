package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jobcrawler/infrastructure"
	"github.com/jobcrawler/internal/cli"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	cfg, err := infrastructure.LoadConfigFromEnv()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(cfg).ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		stop()
		os.Exit(1)
	}
}
