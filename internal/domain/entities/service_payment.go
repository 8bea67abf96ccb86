package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ServicePayment records one collection of a service's gross value through the
// payment provider.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (service_id-index): service_id
//
// ProviderPayloadRaw keeps the provider response body for audit; ProviderPayload
// is the parsed form.
type ServicePayment struct {
	ID             string          `json:"id"`
	ServiceID      string          `json:"service_id"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	ProviderStatus string          `json:"provider_status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
