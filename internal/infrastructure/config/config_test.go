package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("DYNAMODB_ENDPOINT", "")
	t.Setenv("SERVICES_TABLE", "")
	t.Setenv("SETTINGS_TABLE", "")
	t.Setenv("PAYMENTS_TABLE", "")

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected default port, got %d", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected info, got %q", cfg.LogLevel)
	}
	if cfg.PaymentGatewayMock {
		t.Fatalf("expected mock disabled")
	}
	if cfg.Location == nil {
		t.Fatalf("expected a location")
	}
	if cfg.AWSRegion != "sa-east-1" || cfg.DynamoDBEndpoint != "" {
		t.Fatalf("unexpected aws settings %q %q", cfg.AWSRegion, cfg.DynamoDBEndpoint)
	}
	if cfg.ServicesTable != "services" || cfg.SettingsTable != "settings" || cfg.PaymentsTable != "service_payments" {
		t.Fatalf("unexpected tables %q %q %q", cfg.ServicesTable, cfg.SettingsTable, cfg.PaymentsTable)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("PAYMENT_GATEWAY_MOCK", " TRUE ")
	t.Setenv("LOG_FILE", "/tmp/app.log")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("DYNAMODB_ENDPOINT", " http://dynamodb:8000 ")
	t.Setenv("SERVICES_TABLE", "svc-prod")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", " TEST-abc ")
	t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "qa@test.com")

	cfg := Load()
	if cfg.Port != 9090 {
		t.Fatalf("expected 9090, got %d", cfg.Port)
	}
	if cfg.Location != time.UTC {
		t.Fatalf("expected UTC, got %v", cfg.Location)
	}
	if !cfg.PaymentGatewayMock {
		t.Fatalf("expected mock enabled")
	}
	if cfg.LogFile != "/tmp/app.log" {
		t.Fatalf("unexpected log file %q", cfg.LogFile)
	}
	if cfg.AWSRegion != "us-east-1" || cfg.DynamoDBEndpoint != "http://dynamodb:8000" || cfg.ServicesTable != "svc-prod" {
		t.Fatalf("unexpected aws settings %+v", cfg)
	}
	if cfg.MercadoPagoAccessToken != "TEST-abc" || cfg.MercadoPagoTestPayerEmail != "qa@test.com" {
		t.Fatalf("unexpected mercado pago settings %q %q", cfg.MercadoPagoAccessToken, cfg.MercadoPagoTestPayerEmail)
	}
}

func TestLoadLocation_Unknown(t *testing.T) {
	if got := LoadLocation("Nowhere/Atlantis"); got != time.Local {
		t.Fatalf("expected local fallback, got %v", got)
	}
}
