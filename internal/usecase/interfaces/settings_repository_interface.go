package interfaces

import (
	"context"

	"gestao_servicos/internal/domain/entities"
)

//go:generate mockgen -source=settings_repository_interface.go -destination=mocks/mock_settings_repository_interface.go -package=mock_interfaces

// ISettingsRepository is a generic key-value settings store.
// Get returns a zero Setting (empty Key) when the key is absent.
type ISettingsRepository interface {
	Get(ctx context.Context, key string) (entities.Setting, error)
	Put(ctx context.Context, s entities.Setting) (entities.Setting, error)
}
