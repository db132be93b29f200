package services

import (
	"errors"
	"fmt"

	"github.com/ghuser/inventory-service/pkg/app"
	"github.com/ghuser/inventory-service/pkg/config"
	"github.com/ghuser/inventory-service/services/inventory/domain/repositories"
	"github.com/ghuser/inventory-service/services/inventory/infrastructure/persistence/memory"
	"github.com/ghuser/inventory-service/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// ErrNoDatabase is returned by New when the postgres driver is selected but
// the Application carries no database pool.
var ErrNoDatabase = errors.New("storage driver postgres requires a database pool")

// New wires all inventory application services with infrastructure from the
// Application container. The repository is chosen by STORAGE_DRIVER alone.
func New(a *app.Application) (*Services, error) {
	var repo repositories.ItemRepository
	switch a.Config.StorageDriver {
	case config.StorageMemory:
		repo = memory.NewItemRepository()
	case config.StoragePostgres:
		if a.Db == nil {
			return nil, ErrNoDatabase
		}
		repo = postgres.NewItemRepository(a.Db)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", a.Config.StorageDriver)
	}
	return NewWithRepository(repo, a), nil
}

// NewWithRepository wires the services around an explicit repository.
func NewWithRepository(repo repositories.ItemRepository, a *app.Application) *Services {
	return &Services{
		Item: NewItemService(repo, a.Logger),
	}
}
