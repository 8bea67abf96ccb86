package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gestao_servicos/internal/infrastructure/config"
	"gestao_servicos/internal/infrastructure/logging"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/google/uuid"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const statusApproved = "approved"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges services through the Mercado Pago payments API.
// In mock mode it approves every request locally and echoes the payload back.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg config.Config) (*MercadoPagoGateway, error) {
	log := logging.For("payment", "gateway")
	if cfg.PaymentGatewayMock {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if cfg.MercadoPagoAccessToken == "" {
		log.Error("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.WithError(err).Error("failed creating sdk config")
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	log := logging.For("payment", "gateway")

	if g != nil && g.mockMode {
		id, resp, err := mockPaymentResponse(requestPayload, time.Now().UTC())
		if err != nil {
			log.WithError(err).Error("mock response marshal failed")
			return "", "", nil, err
		}
		log.WithField("provider_payment_id", id).Info("mock payment approved")
		return id, statusApproved, resp, nil
	}

	if g == nil || g.client == nil {
		log.Error("gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.WithField("payload_len", len(requestPayload)).Debug("create start")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.WithError(err).Warn("payload unmarshal failed")
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.WithError(err).Error("sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.WithError(err).Error("response marshal failed")
		return "", "", nil, err
	}
	log.WithField("provider_payment_id", resp.ID).WithField("provider_status", resp.Status).Info("create success")

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockPaymentResponse echoes the request fields and marks the payment approved.
func mockPaymentResponse(requestPayload json.RawMessage, now time.Time) (string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := uuid.NewString()
	ts := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = statusApproved
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = ts
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = ts
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", nil, err
	}
	return id, b, nil
}
