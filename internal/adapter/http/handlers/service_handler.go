package handlers

import (
	"errors"
	"net/http"
	"time"

	request "gestao_servicos/internal/adapter/http/dto/request"
	response "gestao_servicos/internal/adapter/http/dto/response"
	"gestao_servicos/internal/infrastructure/logging"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// ServiceHandler handles HTTP requests for scheduled services.
type ServiceHandler struct {
	usecase usecase.IServiceUseCase
	loc     *time.Location
}

func NewServiceHandler(uc usecase.IServiceUseCase, loc *time.Location) *ServiceHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ServiceHandler{usecase: uc, loc: loc}
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	log := logging.For("service", "handler")

	var payload request.ServiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.WithError(err).Warn("invalid create payload")
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}
	s, err := payload.ToEntity(h.loc)
	if err != nil {
		c.JSON(errInvalidDate.HTTPStatus, errInvalidDate.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), s)
	if err != nil {
		log.WithError(err).Error("create failed")
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.WithField("service_id", created.ID).Info("service created")

	c.JSON(http.StatusCreated, response.FromService(created))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(s))
}

// ListServices accepts organization_id, from and to query parameters.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	var q request.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	r, err := q.Range(h.loc)
	if err != nil {
		c.JSON(errInvalidDate.HTTPStatus, errInvalidDate.ToHTTPError())
		return
	}

	services, err := h.usecase.List(c.Request.Context(), interfaces.ServiceFilter{
		OrganizationID: q.OrganizationID,
		From:           r.From,
		To:             r.To,
	})
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

// UpdateService applies a partial update. Keys absent from the body are left
// untouched; null clears the attribute.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	log := logging.For("service", "handler").WithField("service_id", c.Param("id"))

	var payload request.ServiceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.WithError(err).Warn("invalid update payload")
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}
	patch, err := payload.ToPatch(h.loc)
	if err != nil {
		appErr := errInvalidDate
		if errors.Is(err, request.ErrInvalidStatus) {
			appErr = errInvalidServicePayload
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		log.WithError(err).Warn("update failed")
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(updated))
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logging.For("service", "handler").WithField("service_id", c.Param("id")).Info("service deleted")

	c.Status(http.StatusNoContent)
}
