package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_servicos/internal/domain/entities"
	mock_interfaces "gestao_servicos/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_GetTaxRate(t *testing.T) {
	t.Run("absent setting is zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), entities.SettingTaxRate).Return(entities.Setting{}, nil)

		r, err := uc.GetTaxRate(context.Background())
		if err != nil || !r.IsZero() {
			t.Fatalf("expected 0, got %s err=%v", r, err)
		}
	})

	t.Run("stored value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), entities.SettingTaxRate).Return(entities.Setting{Key: entities.SettingTaxRate, Value: "0.15"}, nil)

		r, err := uc.TaxRate(context.Background())
		if err != nil || !r.Equal(decimal.RequireFromString("0.15")) {
			t.Fatalf("expected 0.15, got %s err=%v", r, err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), entities.SettingTaxRate).Return(entities.Setting{}, errors.New("db"))

		if _, err := uc.GetTaxRate(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSettingsUseCase_SetTaxRate(t *testing.T) {
	for _, v := range []string{"-0.01", "1.01"} {
		t.Run("out of range "+v, func(t *testing.T) {
			uc := NewSettingsUseCase(nil)
			if _, err := uc.SetTaxRate(context.Background(), decimal.RequireFromString(v)); !errors.Is(err, ErrInvalidTaxRate) {
				t.Fatalf("expected ErrInvalidTaxRate, got %v", err)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Setting{})).DoAndReturn(
			func(_ context.Context, s entities.Setting) (entities.Setting, error) {
				if s.Key != entities.SettingTaxRate || s.Value != "0.2" || s.UpdatedAt.IsZero() {
					t.Fatalf("unexpected setting: %+v", s)
				}
				return s, nil
			},
		)

		r, err := uc.SetTaxRate(context.Background(), decimal.RequireFromString("0.2"))
		if err != nil || !r.Equal(decimal.RequireFromString("0.2")) {
			t.Fatalf("unexpected result %s err=%v", r, err)
		}
	})
}
