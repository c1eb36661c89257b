package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"medical-tracker/cmd/bootstrap"
	"medical-tracker/internal/delivery/cli"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize application with all dependencies
	app, err := bootstrap.New(ctx)
	if err != nil {
		logrus.Errorf("Failed to initialize application: %v", err)
		os.Exit(1)
	}

	// Run the command
	err = app.Run(ctx, os.Args[1:])
	app.Close()
	if err != nil {
		// Failures from handlers already printed their envelope
		if !errors.Is(err, cli.ErrCommandFailed) {
			logrus.Error(err)
		}
		stop()
		os.Exit(1)
	}
}
