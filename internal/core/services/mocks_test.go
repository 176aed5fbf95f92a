package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
)

// mockRequester is a scripted driven.PermissionRequester.
type mockRequester struct {
	granted bool
	err     error
	calls   int
}

func (m *mockRequester) RequestStoragePermission(_ context.Context) (bool, error) {
	m.calls++
	return m.granted, m.err
}

// mockRenderer returns fixed content for every payslip.
type mockRenderer struct {
	content []byte
	err     error
}

func (m *mockRenderer) Render(p domain.Payslip) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.content != nil {
		return m.content, nil
	}
	return []byte("payslip " + p.ID), nil
}

// mockViewer records Open calls.
type mockViewer struct {
	mu     sync.Mutex
	err    error
	opened []string
	opts   []driven.OpenOptions
}

func (m *mockViewer) Open(_ context.Context, path string, opts driven.OpenOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, path)
	m.opts = append(m.opts, opts)
	return nil
}

// recordingSleeper captures backoff delays without waiting.
type recordingSleeper struct {
	delays []time.Duration
}

func (r *recordingSleeper) sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return nil
}

var errFlaky = errors.New("flaky write")

// mockWatcher replays a fixed set of events.
type mockWatcher struct {
	dir    string
	events []domain.StorageEvent
	err    error
}

func (m *mockWatcher) Watch(_ context.Context, dir string) (<-chan domain.StorageEvent, error) {
	m.dir = dir
	if m.err != nil {
		return nil, m.err
	}
	ch := make(chan domain.StorageEvent, len(m.events))
	for _, e := range m.events {
		ch <- e
	}
	close(ch)
	return ch, nil
}
