package routes

import (
	"gestao_servicos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
	PathPayments = "/:id/payments"
)

func addServiceRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler, paymentHandler *handlers.ServicePaymentHandler) {
	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.PATCH("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
	}

	payments := services.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CollectPayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}
}
