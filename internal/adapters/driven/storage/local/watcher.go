package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.StorageWatcher = (*Watcher)(nil)

// eventBuffer is the channel capacity for storage events.
const eventBuffer = 16

// Watcher streams document changes in a directory using fsnotify.
// Hidden files and subdirectories are ignored.
type Watcher struct{}

// NewWatcher creates a storage watcher.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// Watch streams events for dir until ctx is cancelled. The directory
// must exist.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan domain.StorageEvent, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	events := make(chan domain.StorageEvent, eventBuffer)
	go func() {
		defer close(events)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				change := handleFsEvent(event)
				if change == nil {
					continue
				}
				select {
				case events <- *change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("storage watcher: %v", err)
			}
		}
	}()

	return events, nil
}

// handleFsEvent converts an fsnotify event to a storage event.
// Returns nil for events that don't describe a document change.
func handleFsEvent(event fsnotify.Event) *domain.StorageEvent {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return nil
	}

	var eventType domain.StorageEventType
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eventType = domain.StorageEventRemoved
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil || info.IsDir() {
			return nil
		}
		eventType = domain.StorageEventWritten
	default:
		return nil
	}

	return &domain.StorageEvent{
		Type: eventType,
		Name: name,
		Path: event.Name,
	}
}
