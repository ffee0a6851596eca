package services

import (
	"time"

	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repo portsrepo.SnapshotRepositoryFacade, notifier portssvc.ChangeNotifier) *portssvc.ServiceContainer {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &portssvc.ServiceContainer{
		Finance: NewFinanceService(repo,
			WithStorageKey(cfg.StorageKey),
			WithLocation(loc),
			WithChangeNotifier(notifier),
		),
	}
}
