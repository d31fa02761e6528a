package app

import (
	"context"
	"fmt"

	"github.com/receiptworks/points-service/internal/app/services/receipts"
	"github.com/receiptworks/points-service/internal/app/storage"
	"github.com/receiptworks/points-service/internal/app/storage/memory"
	"github.com/receiptworks/points-service/internal/app/system"
	"github.com/receiptworks/points-service/pkg/logger"
)

// Stores encapsulates persistence dependencies. Nil stores default to the
// in-memory implementation.
type Stores struct {
	Receipts storage.ReceiptStore
}

// Application ties domain services together and manages their lifecycle.
type Application struct {
	manager *system.Manager
	log     *logger.Logger

	Receipts *receipts.Service
}

// New builds a fully initialised application with the provided stores.
func New(stores Stores, log *logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NewDefault("app")
	}

	if stores.Receipts == nil {
		stores.Receipts = memory.New()
	}

	manager := system.NewManager()

	receiptService := receipts.New(stores.Receipts, log)

	if err := manager.Register(system.NoopService{ServiceName: "receipts"}); err != nil {
		return nil, fmt.Errorf("register receipts service: %w", err)
	}

	return &Application{
		manager:  manager,
		log:      log,
		Receipts: receiptService,
	}, nil
}

// Attach registers an additional lifecycle-managed service. Call before Start.
func (a *Application) Attach(service system.Service) error {
	return a.manager.Register(service)
}

// Start begins all registered services.
func (a *Application) Start(ctx context.Context) error {
	return a.manager.Start(ctx)
}

// Stop stops all services.
func (a *Application) Stop(ctx context.Context) error {
	return a.manager.Stop(ctx)
}
