package handlers

import (
	"errors"
	"net/http"

	"gestao_servicos/internal/domain/lifecycle"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/pkg"
)

var (
	errInvalidRequest        = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
	errInvalidDate           = pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date", http.StatusBadRequest)
)

func mapServiceError(err error) *pkg.AppError {
	var statusErr *lifecycle.InvalidStatusError
	switch {
	case errors.As(err, &statusErr):
		return pkg.NewDomainError("INVALID_STATUS", statusErr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidServicePayload):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidServiceValue):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_VALUE", "Monetary values must be non-negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "from must not be after to", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMonth):
		return pkg.NewDomainErrorSimple("INVALID_MONTH", "Invalid month", http.StatusBadRequest)
	default:
		return mapServiceError(err)
	}
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaxRate):
		return pkg.NewDomainErrorSimple("INVALID_TAX_RATE", "tax_rate must be between 0 and 1", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapServicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("SERVICE_ALREADY_PAID", "Service already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Service has no value to charge", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrServicePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
