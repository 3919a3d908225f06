package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	di "github.com/fleetops/shiplog"
	"github.com/fleetops/shiplog/config"
	"github.com/fleetops/shiplog/pkg/healthcheck"
	"github.com/fleetops/shiplog/pkg/localizer"
	"github.com/fleetops/shiplog/pkg/logging"
	"github.com/fleetops/shiplog/pkg/mysqldb"
	"github.com/fleetops/shiplog/pkg/sqsqueue"
)

func main() {
	configureManager := config.NewConfigureManager()
	logger := logging.NewLogger(logging.Config{
		Service: logging.ServiceConfig{
			Env:     configureManager.GetWebConfig().Env,
			AppName: configureManager.GetWebConfig().AppName,
		},
		Logstash: &logging.LogstashConfig{
			Host: configureManager.GetLogstashConfig().Host,
			Port: configureManager.GetLogstashConfig().Port,
		},
		OpenSearch: &logging.OpenSearchConfig{
			Addresses: configureManager.GetOpenSearchConfig().Addresses,
			Username:  configureManager.GetOpenSearchConfig().Username,
			Password:  configureManager.GetOpenSearchConfig().Password,
			Index:     configureManager.GetOpenSearchConfig().Index,
		},
	})

	logger.Info("starting app")

	mysqlInstance, err := mysqldb.InitMysqlDB(configureManager.GetMysqlDBConfig().URL)
	if err != nil {
		logger.Fatalf("connection: mysql %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sqsInstance, err := sqsqueue.InitSQSQueue(ctx, sqsqueue.Config{
		QueueURL: configureManager.GetQueueConfig().QueueURL,
		Region:   configureManager.GetQueueConfig().Region,
		Endpoint: configureManager.GetQueueConfig().Endpoint,
	})
	if err != nil {
		logger.Fatalf("connection: sqs %v", err)
	}

	app := initApplication(&application{
		Logger: logger,
		LanguageBundle: localizer.InitLocalizer(
			configureManager.GetLanguageConfig().Default, configureManager.GetLanguageConfig().Languages,
		),
		MysqlInstance: mysqlInstance,
	})

	go func() {
		healthcheck.InitHealthCheck()

		if serveErr := app.Listen(fmt.Sprintf(":%s", configureManager.GetWebConfig().Port)); serveErr != nil {
			logger.Fatalf("connection: web server %v", serveErr)
		}
	}()

	queueListener := di.InitListener(logger, mysqlInstance, sqsInstance, configureManager.GetQueueConfig())

	listenerDone := make(chan struct{})
	go func() {
		defer close(listenerDone)
		queueListener.Run(ctx)
	}()

	// Wait for gracefully shutdown (Interrupt)
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	<-c

	healthcheck.ServerShutdown()
	cancel()
	<-listenerDone

	if shutdownErr := app.Shutdown(); shutdownErr != nil {
		logger.Error(shutdownErr)
	}

	if closeErr := mysqlInstance.Close(); closeErr != nil {
		logger.Error(closeErr)
	}
}
