package shiplog

import (
	"github.com/sirupsen/logrus"

	"github.com/fleetops/shiplog/config"
	"github.com/fleetops/shiplog/internal/handler"
	"github.com/fleetops/shiplog/internal/listener"
	"github.com/fleetops/shiplog/internal/repository"
	"github.com/fleetops/shiplog/internal/route"
	"github.com/fleetops/shiplog/internal/service"
	"github.com/fleetops/shiplog/pkg/mysqldb"
	"github.com/fleetops/shiplog/pkg/sqsqueue"
	"github.com/fleetops/shiplog/pkg/validation"
)

func InitHealthCheckHandler(mysqlInstance mysqldb.IMysqlInstance) handler.IHealthCheckHandler {
	iHealthCheckHandler := handler.NewHealthCheckHandler(mysqlInstance)
	return iHealthCheckHandler
}

func InitRoute(l *logrus.Logger, mysqlInstance mysqldb.IMysqlInstance) route.IRoute {
	iRepository := initRepository(mysqlInstance)
	iIngestService := initIngestService(l, iRepository)
	iAppService := service.NewAppService(l, iRepository, iIngestService)
	iAppHandler := handler.NewAppHandler(iAppService)
	iRoute := route.NewRoute(iAppHandler)
	return iRoute
}

func InitListener(l *logrus.Logger, mysqlInstance mysqldb.IMysqlInstance, sqsInstance sqsqueue.ISQSInstance, queueConfig config.QueueConfig) listener.IListener {
	iRepository := initRepository(mysqlInstance)
	iIngestService := initIngestService(l, iRepository)

	return listener.NewListener(listener.Config{
		QueueURL:        queueConfig.QueueURL,
		WaitTimeSeconds: queueConfig.WaitTimeSeconds,
		MaxMessages:     queueConfig.MaxMessages,
		VisibilityTO:    queueConfig.VisibilityTO,
		Workers:         queueConfig.Workers,
	}, l, sqsInstance.Client(), iIngestService)
}

func initRepository(mysqlInstance mysqldb.IMysqlInstance) repository.IRepository {
	iErrorAndWarningRepository := repository.NewErrorAndWarningRepository(mysqlInstance)
	iIngestLogRepository := repository.NewIngestLogRepository(mysqlInstance)
	return repository.NewRepository(mysqlInstance, iErrorAndWarningRepository, iIngestLogRepository)
}

func initIngestService(l *logrus.Logger, r repository.IRepository) service.IIngestService {
	return service.NewIngestService(l, validation.InitValidator(), r)
}
