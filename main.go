package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/clock"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := envConfig.Validate(); err != nil {
		logrus.WithError(err).Fatal("config.Validate")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("finance-tracker starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	dispatcher := events.NewDispatcher()
	svc := service.NewService(service.Dependencies{
		Reader:             dbStorage.Reader(),
		Goals:              dbStorage.Goals,
		Processor:          operator.NewOperator(dbStorage, logger),
		Publisher:          dispatcher,
		Clock:              clock.System{},
		Logger:             logger,
		ChartMonths:        envConfig.ChartMonths,
		ExpiringWithinDays: envConfig.ExpiringWithinDays,
	})
	dispatcher.Subscribe(svc.Synchronizer)

	if envConfig.AMQPURL != "" {
		amqpClient, err := events.NewAMQPClient(envConfig.AMQPURL, envConfig.AMQPExchange, envConfig.AMQPQueue, logger)
		if err != nil {
			logger.WithError(err).Fatal("events.NewAMQPClient")
			return
		}
		defer amqpClient.Close()
		dispatcher.Subscribe(events.HandlerFunc(amqpClient.Publish))
		logger.WithField("exchange", envConfig.AMQPExchange).Info("forwarding ledger events over AMQP")
	}

	httpRest := api.Rest{
		Logger:             logger,
		Port:               envConfig.HTTPPort,
		Service:            svc,
		Database:           dbStorage,
		ExpiringWithinDays: envConfig.ExpiringWithinDays,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}
}
