package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"gestao_servicos/internal/adapter/http/handlers/mocks"
	"gestao_servicos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestSettingsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.ISettingsUseCase) *gin.Engine {
		h := NewSettingsHandler(uc)
		r := gin.New()
		r.GET("/v1/settings/tax-rate", h.GetTaxRate)
		r.PUT("/v1/settings/tax-rate", h.PutTaxRate)
		return r
	}

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)

		uc.EXPECT().GetTaxRate(gomock.Any()).Return(decimal.RequireFromString("0.15"), nil)

		w := doJSON(newRouter(uc), http.MethodGet, "/v1/settings/tax-rate", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["tax_rate"] != 0.15 || body["percent"] != float64(15) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)

		uc.EXPECT().GetTaxRate(gomock.Any()).Return(decimal.Zero, errors.New("db"))

		w := doJSON(newRouter(uc), http.MethodGet, "/v1/settings/tax-rate", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("put missing rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)

		w := doJSON(newRouter(uc), http.MethodPut, "/v1/settings/tax-rate", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("put zero rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)

		uc.EXPECT().SetTaxRate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, rate decimal.Decimal) (decimal.Decimal, error) {
			if !rate.IsZero() {
				t.Fatalf("expected zero rate, got %s", rate)
			}
			return rate, nil
		})

		w := doJSON(newRouter(uc), http.MethodPut, "/v1/settings/tax-rate", `{"tax_rate":0}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("put out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)

		uc.EXPECT().SetTaxRate(gomock.Any(), gomock.Any()).Return(decimal.Zero, usecase.ErrInvalidTaxRate)

		w := doJSON(newRouter(uc), http.MethodPut, "/v1/settings/tax-rate", `{"tax_rate":1.5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
