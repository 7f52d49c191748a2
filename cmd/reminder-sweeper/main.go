package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/finwise/finwise-server/internal/config"
	"github.com/finwise/finwise-server/internal/logging"
	"github.com/finwise/finwise-server/internal/notify"
	"github.com/finwise/finwise-server/internal/storage"
	"github.com/finwise/finwise-server/internal/sweeper"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("reminder-sweeper starting")

	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	sender, err := notify.NewAMQPSender(envConfig.AMQPAddress, envConfig.AMQPQueue)
	if err != nil {
		logrus.WithError(err).Fatal("notify.NewAMQPSender")
		return
	}
	defer sender.Close()

	interval := time.Duration(envConfig.SweepIntervalSeconds) * time.Second
	sw := sweeper.New(dbStorage.Reminders, sender, logger, interval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sw.Run(ctx)
	logrus.Info("reminder-sweeper stopped")
}
