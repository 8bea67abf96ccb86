package interfaces

import (
	"context"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/lifecycle"
)

//go:generate mockgen -source=service_repository_interface.go -destination=mocks/mock_service_repository_interface.go -package=mock_interfaces

// ServiceFilter narrows a listing. Empty fields do not filter; From and To are
// inclusive calendar dates.
type ServiceFilter struct {
	OrganizationID string
	From           time.Time
	To             time.Time
}

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// Lookups return a zero Service (empty ID) when nothing matches, never an error.
// Update writes an already sanitized patch verbatim. MarkPaid is a conditional
// write that reports false when the service is missing or already pago.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, filter ServiceFilter) ([]entities.Service, error)
	Update(ctx context.Context, id string, patch lifecycle.ServicePatch) (entities.Service, error)
	MarkPaid(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
