package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreadableRepository fails every read and records Close.
type unreadableRepository struct {
	closed bool
}

func (r *unreadableRepository) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk unreadable")
}

func (r *unreadableRepository) Set(context.Context, string, []byte) error { return nil }

func (r *unreadableRepository) Delete(context.Context, string) error { return nil }

func (r *unreadableRepository) Close() error {
	r.closed = true
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Port:            "0",
		StorageBackend:  config.BackendMemory,
		StorageKey:      "finance_tracker_data",
		Location:        time.UTC,
		RateLimit:       "100-M",
		ShutdownTimeout: time.Second,
	}
}

func TestRun_LoadFailureClosesStorage(t *testing.T) {
	repo := &unreadableRepository{}
	orig := openRepository
	openRepository = func(context.Context, *config.Config, *slog.Logger) (portsrepo.SnapshotRepositoryFacade, error) {
		return repo, nil
	}
	t.Cleanup(func() { openRepository = orig })

	err := run(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.ErrorContains(t, err, "load stored data")
	assert.True(t, repo.closed, "storage is closed before run returns")
}

func TestRun_StorageOpenFailure(t *testing.T) {
	orig := openRepository
	openRepository = func(context.Context, *config.Config, *slog.Logger) (portsrepo.SnapshotRepositoryFacade, error) {
		return nil, errors.New("no such database")
	}
	t.Cleanup(func() { openRepository = orig })

	err := run(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "initialize memory storage")
}
