package usecase

import (
	"context"
	"errors"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/finance"
	"gestao_servicos/internal/infrastructure/logging"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=settings_usecase.go -destination=../adapter/http/handlers/mocks/mock_settings_usecase.go -package=mocks

var ErrInvalidTaxRate = errors.New("invalid tax rate")

// ISettingsUseCase reads and writes the tax rate setting.
type ISettingsUseCase interface {
	GetTaxRate(ctx context.Context) (decimal.Decimal, error)
	SetTaxRate(ctx context.Context, rate decimal.Decimal) (decimal.Decimal, error)
}

// SettingsUseCase is also the finance.TaxRateProvider of the service pipeline.
type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var (
	_ ISettingsUseCase        = (*SettingsUseCase)(nil)
	_ finance.TaxRateProvider = (*SettingsUseCase)(nil)
)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// GetTaxRate returns 0 when the setting was never written or holds garbage.
func (u *SettingsUseCase) GetTaxRate(ctx context.Context) (decimal.Decimal, error) {
	s, err := u.repo.Get(ctx, entities.SettingTaxRate)
	if err != nil {
		return decimal.Zero, err
	}
	if s.Key == "" {
		return decimal.Zero, nil
	}
	return finance.FromString(s.Value), nil
}

func (u *SettingsUseCase) TaxRate(ctx context.Context) (decimal.Decimal, error) {
	return u.GetTaxRate(ctx)
}

// SetTaxRate stores a fraction in [0,1] (0.15 means 15%).
func (u *SettingsUseCase) SetTaxRate(ctx context.Context, rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, ErrInvalidTaxRate
	}

	saved, err := u.repo.Put(ctx, entities.Setting{
		Key:       entities.SettingTaxRate,
		Value:     rate.String(),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		logging.For("settings", "usecase").WithError(err).Error("failed to store tax rate")
		return decimal.Zero, err
	}
	logging.For("settings", "usecase").WithField("tax_rate", saved.Value).Info("tax rate updated")
	return finance.FromString(saved.Value), nil
}
