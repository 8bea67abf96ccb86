package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/infrastructure/config"
	"gestao_servicos/internal/infrastructure/logging"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service_payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_service_payment_usecase.go -package=mocks

const statusApproved = "approved"

var (
	ErrServicePaymentNotFound         = errors.New("service payment not found")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrServiceAlreadyPaid             = errors.New("service already paid")
	ErrNothingToCharge                = errors.New("service has no value to charge")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IServicePaymentUseCase collects the gross value of a service.
//
// A successful collection is persisted as a ServicePayment and flips the
// service's payment_status to pago. A service is charged at most once: an
// approved payment already on record blocks a new charge even when the status
// flip was lost.
type IServicePaymentUseCase interface {
	Collect(ctx context.Context, serviceID string, payload json.RawMessage) (entities.ServicePayment, error)
	GetByID(ctx context.Context, serviceID, id string) (entities.ServicePayment, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.ServicePayment, error)
}

type ServicePaymentUseCase struct {
	repo        interfaces.IServicePaymentRepository
	serviceRepo interfaces.IServiceRepository
	gateway     interfaces.IPaymentGateway
	cfg         config.Config
}

var _ IServicePaymentUseCase = (*ServicePaymentUseCase)(nil)

func NewServicePaymentUseCase(repo interfaces.IServicePaymentRepository, serviceRepo interfaces.IServiceRepository, gateway interfaces.IPaymentGateway, cfg config.Config) *ServicePaymentUseCase {
	return &ServicePaymentUseCase{repo: repo, serviceRepo: serviceRepo, gateway: gateway, cfg: cfg}
}

func (u *ServicePaymentUseCase) Collect(ctx context.Context, serviceID string, payload json.RawMessage) (entities.ServicePayment, error) {
	log := logging.For("payment", "usecase")
	mockMode := u.cfg.PaymentGatewayMock

	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.ServicePayment{}, ErrInvalidServiceID
	}
	log = log.WithField("service_id", serviceID)

	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Warn("invalid payload")
			return entities.ServicePayment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.ServicePayment{}, errors.New("payment gateway not configured")
	}
	if u.repo == nil || u.serviceRepo == nil {
		return entities.ServicePayment{}, errors.New("payment repositories not configured")
	}

	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		log.WithError(err).Error("failed loading service")
		return entities.ServicePayment{}, err
	}
	if svc.ID == "" {
		return entities.ServicePayment{}, ErrServiceNotFound
	}
	if svc.PaymentStatus == entities.ServicePaymentPago {
		return entities.ServicePayment{}, ErrServiceAlreadyPaid
	}
	if !svc.GrossValue.IsPositive() {
		return entities.ServicePayment{}, ErrNothingToCharge
	}

	prior, err := u.repo.ListByServiceID(ctx, serviceID)
	if err != nil {
		log.WithError(err).Error("failed listing previous payments")
		return entities.ServicePayment{}, err
	}
	if approved, ok := findApproved(prior); ok {
		log.WithField("provider_payment_id", approved.ID).Warn("service already has an approved payment")
		u.markPaid(ctx, log, serviceID)
		return entities.ServicePayment{}, ErrServiceAlreadyPaid
	}

	payload, err = enrichPaymentPayload(payload, svc, u.cfg)
	if err != nil {
		log.WithError(err).Warn("payment payload rejected")
		return entities.ServicePayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.WithError(err).Error("payment gateway failed")
		return entities.ServicePayment{}, mapGatewayError(err)
	}
	log = log.WithFields(logrus.Fields{"provider_payment_id": providerID, "provider_status": providerStatus})

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.WithError(err).Warn("provider response unmarshal failed")
	}

	created, err := u.repo.Create(ctx, entities.ServicePayment{
		ID:                 providerID,
		ServiceID:          serviceID,
		Amount:             svc.GrossValue,
		Date:               time.Now().UTC(),
		ProviderStatus:     providerStatus,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	})
	if err != nil {
		log.WithError(err).Error("payment repository create failed")
		return entities.ServicePayment{}, err
	}

	// The charge is final once recorded; a failed status flip is healed by the
	// next Collect through the approved payment above.
	if providerStatus == statusApproved {
		u.markPaid(ctx, log, serviceID)
	}
	log.Info("payment collected")
	return created, nil
}

func (u *ServicePaymentUseCase) markPaid(ctx context.Context, log *logrus.Entry, serviceID string) {
	changed, err := u.serviceRepo.MarkPaid(ctx, serviceID)
	if err != nil {
		log.WithError(err).Error("failed marking service as paid")
		return
	}
	log.WithField("changed", changed).Debug("service marked as paid")
}

func findApproved(payments []entities.ServicePayment) (entities.ServicePayment, bool) {
	for _, p := range payments {
		if strings.EqualFold(p.ProviderStatus, statusApproved) {
			return p, true
		}
	}
	return entities.ServicePayment{}, false
}

// GetByID only returns payments of serviceID; a payment of another service is
// reported as not found.
func (u *ServicePaymentUseCase) GetByID(ctx context.Context, serviceID, id string) (entities.ServicePayment, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.ServicePayment{}, ErrInvalidServiceID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServicePayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServicePayment{}, err
	}
	if p.ID == "" || p.ServiceID != serviceID {
		return entities.ServicePayment{}, ErrServicePaymentNotFound
	}
	return p, nil
}

func (u *ServicePaymentUseCase) ListByServiceID(ctx context.Context, serviceID string) ([]entities.ServicePayment, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidServiceID
	}
	return u.repo.ListByServiceID(ctx, serviceID)
}

// enrichPaymentPayload links the provider request to the service. The amount
// always comes from the stored gross value.
func enrichPaymentPayload(payload json.RawMessage, svc entities.Service, cfg config.Config) (json.RawMessage, error) {
	mockMode := cfg.PaymentGatewayMock
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		if !mockMode {
			return nil, ErrInvalidPaymentPayload
		}
		req = map[string]any{}
	}

	if !mockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, ErrInvalidPaymentPayload
		}
		ensurePayerDefaults(req, cfg)
		if !hasPayer(req) {
			return nil, ErrInvalidPaymentPayload
		}
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = svc.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Service %s", svc.ID)
	}
	req["transaction_amount"] = svc.GrossValue.InexactFloat64()

	return json.Marshal(req)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills the sandbox payer e-mail when a test token is in
// use and the caller sent neither payer.id nor payer.email.
func ensurePayerDefaults(m map[string]any, cfg config.Config) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if cfg.MercadoPagoTestPayerEmail != "" {
		payer["email"] = cfg.MercadoPagoTestPayerEmail
	} else if strings.HasPrefix(cfg.MercadoPagoAccessToken, "TEST-") {
		payer["email"] = "test_user_br@testuser.com"
	}
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
