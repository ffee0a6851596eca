package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Finance FinanceSvcFacade
}

// ChangeNotifier is told about every mutation that reached storage.
type ChangeNotifier interface {
	Notify(ctx context.Context, event domain.ChangeEvent) error
}

// NoopNotifier discards events.
type NoopNotifier struct{}

// Notify does nothing.
func (NoopNotifier) Notify(context.Context, domain.ChangeEvent) error { return nil }
