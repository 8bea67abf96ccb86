package main

import (
	"gestao_servicos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestao de Servicos API
// @version         1.0
// @description     Service financial and scheduling engine (services, payments, reports) backed by DynamoDB.

// @host      localhost:8080
// @BasePath  /v1

func main() {
	routes.Run()
}
