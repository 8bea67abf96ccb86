package request

import "encoding/json"

// ServicePaymentCreateRequest is the payload of POST /services/:id/payments.
//
// `mp_payload` is forwarded to Mercado Pago as-is; a bare body without the
// envelope is accepted too.
type ServicePaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
