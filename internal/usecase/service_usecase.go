package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/finance"
	"gestao_servicos/internal/domain/lifecycle"
	"gestao_servicos/internal/infrastructure/logging"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service_usecase.go -destination=../adapter/http/handlers/mocks/mock_service_usecase.go -package=mocks

var (
	ErrServiceNotFound       = errors.New("service not found")
	ErrInvalidServiceID      = errors.New("invalid service id")
	ErrInvalidServiceValue   = errors.New("invalid service value")
	ErrInvalidServicePayload = errors.New("invalid service payload")
	ErrInvalidDateRange      = errors.New("invalid date range")
)

// IServiceUseCase exposes service CRUD.
//
// Create and Update derive tax_amount from the configured tax rate; Update also
// infers the status from the scheduling dates written by the patch.
type IServiceUseCase interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, filter interfaces.ServiceFilter) ([]entities.Service, error)
	Update(ctx context.Context, id string, patch lifecycle.ServicePatch) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	repo  interfaces.IServiceRepository
	rates finance.TaxRateProvider
	now   func() time.Time
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, rates finance.TaxRateProvider) *ServiceUseCase {
	return &ServiceUseCase{
		repo:  repo,
		rates: rates,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (u *ServiceUseCase) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	log := logging.For("service", "usecase")

	s.ClientID = strings.TrimSpace(s.ClientID)
	s.TechnicianID = strings.TrimSpace(s.TechnicianID)
	if s.ClientID == "" || s.TechnicianID == "" || s.Date.IsZero() {
		return entities.Service{}, ErrInvalidServicePayload
	}
	if s.GrossValue.IsNegative() || s.OperationalCost.IsNegative() {
		return entities.Service{}, ErrInvalidServiceValue
	}
	if !s.HasInvoice {
		s.InvoiceNumber = ""
	}

	rate, err := u.rates.TaxRate(ctx)
	if err != nil {
		log.WithError(err).Error("failed to read tax rate")
		return entities.Service{}, err
	}

	now := u.now()
	s.ID = uuid.NewString()
	s.GrossValue = finance.Round2(s.GrossValue)
	s.OperationalCost = finance.Round2(s.OperationalCost)
	s.TaxAmount = finance.ComputeTax(s.GrossValue, s.HasInvoice, rate)
	s.Status = entities.ServiceStatusPendente
	s.PaymentStatus = entities.ServicePaymentPendente
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.WithError(err).WithField("service_id", s.ID).Error("failed to create service")
		return entities.Service{}, err
	}
	log.WithField("service_id", created.ID).Info("service created")
	return created, nil
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context, filter interfaces.ServiceFilter) ([]entities.Service, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, ErrInvalidDateRange
	}
	return u.repo.List(ctx, filter)
}

// Update applies a partial update.
//
// The patch goes through, in order: amount rounding, tax recomputation (one rate snapshot, on the
// merged gross_value and has_invoice), status inference, and sanitizing. Any
// tax_amount carried by the caller is discarded.
func (u *ServiceUseCase) Update(ctx context.Context, id string, patch lifecycle.ServicePatch) (entities.Service, error) {
	log := logging.For("service", "usecase").WithField("service_id", id)

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	patch.TaxAmount = lifecycle.Unset[decimal.Decimal]()
	if err := validatePatch(patch); err != nil {
		return entities.Service{}, err
	}
	patch.GrossValue = roundAmount(patch.GrossValue)
	patch.OperationalCost = roundAmount(patch.OperationalCost)

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if current.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	if patch.GrossValue.IsSet() || patch.HasInvoice.IsSet() {
		rate, err := u.rates.TaxRate(ctx)
		if err != nil {
			log.WithError(err).Error("failed to read tax rate")
			return entities.Service{}, err
		}
		merged := lifecycle.Sanitize(patch).Apply(current)
		patch.TaxAmount = lifecycle.SetTo(finance.ComputeTax(merged.GrossValue, merged.HasInvoice, rate))
	}
	if v, ok := patch.HasInvoice.Value(); ok && !v {
		patch.InvoiceNumber = lifecycle.SetTo("")
	}

	res, err := lifecycle.ResolveStatus(current.Status, patch)
	if err != nil {
		log.WithError(err).Warn("rejected status")
		return entities.Service{}, err
	}
	if res.Changed {
		patch.Status = lifecycle.SetTo(res.Status)
		log.WithField("from", current.Status).WithField("to", res.Status).Info("status inferred")
	}

	final := lifecycle.Sanitize(patch)
	updated, err := u.repo.Update(ctx, id, final)
	if err != nil {
		log.WithError(err).Error("failed to update service")
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrServiceNotFound
	}
	logging.For("service", "usecase").WithField("service_id", id).Info("service deleted")
	return nil
}

func roundAmount(f lifecycle.Field[decimal.Decimal]) lifecycle.Field[decimal.Decimal] {
	if v, ok := f.Value(); ok {
		return lifecycle.SetTo(finance.Round2(v))
	}
	return f
}

func validatePatch(p lifecycle.ServicePatch) error {
	if v, ok := p.GrossValue.Value(); ok && v.IsNegative() {
		return ErrInvalidServiceValue
	}
	if v, ok := p.OperationalCost.Value(); ok && v.IsNegative() {
		return ErrInvalidServiceValue
	}
	if v, ok := p.PaymentStatus.Value(); ok && v != "" && !v.Valid() {
		return ErrInvalidServicePayload
	}
	return nil
}
