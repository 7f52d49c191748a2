package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/finwise/finwise-server/api"
	"github.com/finwise/finwise-server/internal/config"
	"github.com/finwise/finwise-server/internal/logging"
	"github.com/finwise/finwise-server/internal/operator"
	"github.com/finwise/finwise-server/internal/service"
	"github.com/finwise/finwise-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finwise-server starting")

	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewDelegator(dbStorage, logger, 4)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
