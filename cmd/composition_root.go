package cmd

import (
	"log/slog"

	apihttp "ordertrack/internal/adapters/in/http"
	"ordertrack/internal/adapters/out/inmemory"
	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/core/application/services"
	"ordertrack/internal/core/domain/validation"
	"ordertrack/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires the storage backend, the application services and
// the HTTP server together.
type CompositionRoot struct {
	uowFactory ports.UnitOfWorkFactory

	Clients  *services.ClientService
	Products *services.ProductService
	Orders   *services.OrderService
	History  *services.HistoryService
}

// NewCompositionRoot builds the object graph. A nil gormDB selects the
// in-memory backend.
func NewCompositionRoot(gormDB *gorm.DB, log *slog.Logger) *CompositionRoot {
	var uowFactory ports.UnitOfWorkFactory
	if gormDB != nil {
		uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	} else {
		uowFactory = inmemory.NewUnitOfWorkFactory(inmemory.NewDatabase())
	}

	return &CompositionRoot{
		uowFactory: uowFactory,
		Clients:    services.NewClientService(uowFactory, validation.NewDefaultClientValidator(), log),
		Products:   services.NewProductService(uowFactory, validation.NewDefaultProductValidator(), log),
		Orders:     services.NewOrderService(uowFactory, log),
		History:    services.NewHistoryService(uowFactory),
	}
}

// CreateServer builds the HTTP server over the composed services.
func (c *CompositionRoot) CreateServer() *apihttp.Server {
	return apihttp.NewServer(c.Clients, c.Products, c.Orders, c.History)
}
