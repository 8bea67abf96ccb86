package routes

import (
	"gestao_servicos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReports  = "/reports"
	PathSettings = "/settings"
)

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/dashboard", reportHandler.Dashboard)
		reports.GET("/calendar", reportHandler.Calendar)
		reports.GET("/export", reportHandler.Export)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("/tax-rate", settingsHandler.GetTaxRate)
		settings.PUT("/tax-rate", settingsHandler.PutTaxRate)
	}
}
