package routes

import (
	"gestao_servicos/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PathSwagger = "/swagger/*any"

func addSwaggerRoutes(r gin.IRouter) {
	r.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))
}
