package routes

import (
	"strconv"

	"gestao_servicos/internal/adapter/http/handlers"
	"gestao_servicos/internal/adapter/http/middleware"
	repository2 "gestao_servicos/internal/adapter/persistence/repository"
	"gestao_servicos/internal/infrastructure/config"
	"gestao_servicos/internal/infrastructure/database"
	"gestao_servicos/internal/infrastructure/logging"
	"gestao_servicos/internal/infrastructure/payments"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var router = gin.New()

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Service  *handlers.ServiceHandler
	Payment  *handlers.ServicePaymentHandler
	Settings *handlers.SettingsHandler
	Report   *handlers.ReportHandler
}

// Run will start the server
func Run() {
	cfg := config.Load()
	logging.Configure(cfg.LogLevel, cfg.LogFile)

	setMiddlewares(middleware.NewMetrics(prometheus.DefaultRegisterer))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerRoutes(router, buildHandlers(cfg))

	log := logging.For("server", "routes").WithField("port", cfg.Port)
	log.Info("starting http server")
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.WithError(err).Fatal("Failed to startup the application")
	}
}

func buildHandlers(cfg config.Config) Handlers {
	ddb := database.ConnectDynamoDB(cfg)

	serviceRepo := repository2.NewServiceDynamoRepository(ddb, cfg.ServicesTable)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb, cfg.SettingsTable)
	paymentRepo := repository2.NewServicePaymentDynamoRepository(ddb, cfg.PaymentsTable)

	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, settingsUseCase)
	reportUseCase := usecase.NewReportUseCase(serviceRepo, cfg.Location)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg)
	if err != nil {
		logging.For("payment", "routes").WithError(err).Warn("Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewServicePaymentUseCase(paymentRepo, serviceRepo, paymentGateway, cfg)

	return Handlers{
		Service:  handlers.NewServiceHandler(serviceUseCase, cfg.Location),
		Payment:  handlers.NewServicePaymentHandler(paymentUseCase),
		Settings: handlers.NewSettingsHandler(settingsUseCase),
		Report:   handlers.NewReportHandler(reportUseCase, cfg.Location),
	}
}

func registerRoutes(r gin.IRouter, h Handlers) {
	addSwaggerRoutes(r)

	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addServiceRoutes(v1, h.Service, h.Payment)
	addSettingsRoutes(v1, h.Settings)
	addReportRoutes(v1, h.Report)
}

func setMiddlewares(metrics *middleware.Metrics) {
	router.Use(gin.Logger())
	router.Use(metrics.Handler())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.For("server", "routes").WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatus(500)
	}))
}
