// Command sync-worker consumes ledger mutation events from AMQP and
// recomputes the affected goals.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

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
	if envConfig.AMQPURL == "" {
		logrus.Fatal("sync-worker requires AMQP_URL")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	client, err := events.NewAMQPClient(envConfig.AMQPURL, envConfig.AMQPExchange, envConfig.AMQPQueue, logger)
	if err != nil {
		logger.WithError(err).Fatal("events.NewAMQPClient")
		return
	}
	defer client.Close()

	synchronizer := service.NewGoalSynchronizer(
		operator.NewOperator(dbStorage, logger),
		dbStorage.Goals,
		clock.System{},
		logger,
	)

	logger.WithField("queue", envConfig.AMQPQueue).Info("sync-worker starting")
	if err := client.Consume(ctx, synchronizer); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("AMQPClient.Consume")
	}
	logger.Info("sync-worker stopped")
}
