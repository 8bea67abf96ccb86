package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort     = 8080
	defaultTimezone = "America/Sao_Paulo"
	defaultRegion   = "sa-east-1"
)

// Config is the process configuration, read from the environment (a .env file
// is autoloaded by cmd/api).
//
// Supported env vars:
//   - PORT (default: 8080)
//   - APP_TIMEZONE (default: America/Sao_Paulo) - "local time" of calendar buckets
//   - AWS_REGION (default: sa-east-1), DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - SERVICES_TABLE, SETTINGS_TABLE, PAYMENTS_TABLE - DynamoDB table names
//   - MERCADOPAGO_ACCESS_TOKEN, MERCADOPAGO_TEST_PAYER_EMAIL, PAYMENT_GATEWAY_MOCK
//   - LOG_LEVEL (default: info), LOG_FILE (optional, rotated)
type Config struct {
	Port     int
	Location *time.Location

	AWSRegion        string
	DynamoDBEndpoint string
	ServicesTable    string
	SettingsTable    string
	PaymentsTable    string

	MercadoPagoAccessToken    string
	MercadoPagoTestPayerEmail string
	PaymentGatewayMock        bool

	LogLevel string
	LogFile  string
}

func Load() Config {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		port = defaultPort
	}

	return Config{
		Port:                      port,
		Location:                  LoadLocation(getenvDefault("APP_TIMEZONE", defaultTimezone)),
		AWSRegion:                 getenvDefault("AWS_REGION", defaultRegion),
		DynamoDBEndpoint:          strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		ServicesTable:             getenvDefault("SERVICES_TABLE", "services"),
		SettingsTable:             getenvDefault("SETTINGS_TABLE", "settings"),
		PaymentsTable:             getenvDefault("PAYMENTS_TABLE", "service_payments"),
		MercadoPagoAccessToken:    strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		MercadoPagoTestPayerEmail: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		PaymentGatewayMock:        IsPaymentGatewayMockEnabled(),
		LogLevel:                  getenvDefault("LOG_LEVEL", "info"),
		LogFile:                   os.Getenv("LOG_FILE"),
	}
}

// LoadLocation falls back to the process local zone when name is unknown.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// IsPaymentGatewayMockEnabled reports whether payments must skip the provider.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
