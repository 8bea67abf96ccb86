package interfaces

import (
	"context"

	"gestao_servicos/internal/domain/entities"
)

//go:generate mockgen -source=service_payment_repository_interface.go -destination=mocks/mock_service_payment_repository_interface.go -package=mock_interfaces

// IServicePaymentRepository abstracts DynamoDB persistence for ServicePayment.
type IServicePaymentRepository interface {
	Create(ctx context.Context, p entities.ServicePayment) (entities.ServicePayment, error)
	GetByID(ctx context.Context, id string) (entities.ServicePayment, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.ServicePayment, error)
}
