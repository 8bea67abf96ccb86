package handlers

import (
	"net/http"

	request "gestao_servicos/internal/adapter/http/dto/request"
	response "gestao_servicos/internal/adapter/http/dto/response"
	"gestao_servicos/internal/infrastructure/logging"
	"gestao_servicos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the configured tax rate.
type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetTaxRate(c *gin.Context) {
	rate, err := h.usecase.GetTaxRate(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTaxRate(rate))
}

func (h *SettingsHandler) PutTaxRate(c *gin.Context) {
	var payload request.TaxRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	rate, err := h.usecase.SetTaxRate(c.Request.Context(), *payload.TaxRate)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logging.For("settings", "handler").WithField("tax_rate", rate.String()).Info("tax rate updated")

	c.JSON(http.StatusOK, response.FromTaxRate(rate))
}
