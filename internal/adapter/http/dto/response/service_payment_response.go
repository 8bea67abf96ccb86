package response

import (
	"time"

	"gestao_servicos/internal/domain/entities"
)

type ServicePaymentResponse struct {
	PaymentID      string    `json:"payment_id"`
	ServiceID      string    `json:"service_id"`
	Amount         float64   `json:"amount"`
	PaymentDate    time.Time `json:"payment_date"`
	ProviderStatus string    `json:"provider_status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromServicePayment(p entities.ServicePayment) ServicePaymentResponse {
	return ServicePaymentResponse{
		PaymentID:          p.ID,
		ServiceID:          p.ServiceID,
		Amount:             p.Amount.InexactFloat64(),
		PaymentDate:        p.Date,
		ProviderStatus:     p.ProviderStatus,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromServicePayments(payments []entities.ServicePayment) []ServicePaymentResponse {
	out := make([]ServicePaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromServicePayment(p))
	}
	return out
}
