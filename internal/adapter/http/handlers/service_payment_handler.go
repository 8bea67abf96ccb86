package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"

	request "gestao_servicos/internal/adapter/http/dto/request"
	response "gestao_servicos/internal/adapter/http/dto/response"
	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/infrastructure/config"
	"gestao_servicos/internal/infrastructure/logging"
	"gestao_servicos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ServicePaymentHandler handles payment collection for services.
type ServicePaymentHandler struct {
	usecase usecase.IServicePaymentUseCase
}

func NewServicePaymentHandler(uc usecase.IServicePaymentUseCase) *ServicePaymentHandler {
	return &ServicePaymentHandler{usecase: uc}
}

// CollectPayment charges the service gross value. The body is either the
// provider payload itself or wrapped as {"mp_payload": {...}}.
func (h *ServicePaymentHandler) CollectPayment(c *gin.Context) {
	serviceID := c.Param("id")
	log := logging.For("payment", "handler").WithField("service_id", serviceID)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !config.IsPaymentGatewayMockEnabled() {
			log.WithError(err).Warn("invalid payload")
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
		log.WithError(err).Warn("payload invalid in mock mode; using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.Collect(c.Request.Context(), serviceID, mpPayload)
	if err != nil {
		log.WithError(err).Error("collect failed")
		appErr := mapServicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.WithFields(logrus.Fields{"payment_id": created.ID, "provider_status": created.ProviderStatus}).Info("collect success")

	c.JSON(http.StatusCreated, response.FromServicePayment(created))
}

// ListPayments returns every payment of the service, newest first.
func (h *ServicePaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByServiceID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sortNewestFirst(payments)
	c.JSON(http.StatusOK, response.FromServicePayments(payments))
}

// GetPayment answers 404 for a payment that belongs to another service.
func (h *ServicePaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), c.Param("payment_id"))
	if err != nil {
		appErr := mapServicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServicePayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.ServicePaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.MPPayload != nil {
		if strings.TrimSpace(string(envelope.MPPayload)) == "null" {
			return nil, errors.New("mp_payload cannot be empty")
		}
		return envelope.MPPayload, nil
	}

	return json.RawMessage(raw), nil
}

func sortNewestFirst(payments []entities.ServicePayment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})
}
