package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driving"
	"github.com/custodia-labs/payslip-cli/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// retrievalState names the steps of a single acquisition attempt.
type retrievalState string

const (
	statePermissionCheck retrievalState = "PERMISSION_CHECK"
	stateDirEnsure       retrievalState = "DIR_ENSURE"
	stateSpaceCheck      retrievalState = "SPACE_CHECK"
	stateWrite           retrievalState = "WRITE"
	stateVerify          retrievalState = "VERIFY"
	stateDone            retrievalState = "DONE"
)

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// contextSleep is the default Sleeper.
func contextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetrievalService guarantees a payslip's document exists at its canonical
// path and hands it to a viewer on request. All filesystem mutation in the
// application goes through here.
//
// Calls for different payslips are independent. Callers must serialise
// calls for the same payslip themselves.
type RetrievalService struct {
	store    driven.FileStore
	gate     *PermissionGate
	renderer driven.DocumentRenderer
	viewer   driven.Viewer
	watcher  driven.StorageWatcher

	platform domain.Platform
	policy   domain.RetrievalSettings
	minFree  int64
	sleep    Sleeper
}

// NewRetrievalService creates a retrieval service.
func NewRetrievalService(
	store driven.FileStore,
	gate *PermissionGate,
	renderer driven.DocumentRenderer,
	viewer driven.Viewer,
	settings domain.AppSettings,
) *RetrievalService {
	policy := settings.Retrieval
	policy.MaxAttempts = min(max(policy.MaxAttempts, 1), domain.MaxRetrievalAttempts)

	return &RetrievalService{
		store:    store,
		gate:     gate,
		renderer: renderer,
		viewer:   viewer,
		platform: settings.Platform,
		policy:   policy,
		minFree:  settings.Storage.MinFreeBytes,
		sleep:    contextSleep,
	}
}

// WithSleeper replaces the backoff sleeper. Used by tests.
func (s *RetrievalService) WithSleeper(sleep Sleeper) *RetrievalService {
	s.sleep = sleep
	return s
}

// WithWatcher enables Watch.
func (s *RetrievalService) WithWatcher(watcher driven.StorageWatcher) *RetrievalService {
	s.watcher = watcher
	return s
}

// DocumentsDir returns the canonical documents directory.
func (s *RetrievalService) DocumentsDir() string {
	return s.platform.DocumentsDir(s.store.Root())
}

// CanonicalPath returns where the payslip's document is stored.
func (s *RetrievalService) CanonicalPath(payslip domain.Payslip) (string, error) {
	name, err := domain.SanitizeFileName(payslip.File)
	if err != nil {
		return "", domain.NewAppError(domain.ErrCodeInvalidFileName, "", err)
	}
	return filepath.Join(s.DocumentsDir(), name), nil
}

// IsStored reports whether the payslip's document is on disk.
func (s *RetrievalService) IsStored(ctx context.Context, payslip domain.Payslip) bool {
	path, err := s.CanonicalPath(payslip)
	if err != nil {
		return false
	}
	exists, err := s.store.Exists(ctx, path)
	return err == nil && exists
}

// LocationMessage describes where a saved file can be found.
func (s *RetrievalService) LocationMessage(filePath string) string {
	return s.platform.LocationMessage(filePath)
}

// Acquire ensures the payslip's document exists at its canonical path,
// writing a fresh copy each time, and returns the path. The whole sequence
// is retried with exponential backoff; the last error is returned when
// every attempt fails.
func (s *RetrievalService) Acquire(ctx context.Context, payslip domain.Payslip) (string, error) {
	logger.Section("Acquire " + payslip.ID)

	// The grant is asked for once per call. A refusal is the user's answer,
	// not a transient failure, so it is never retried.
	logger.Debug("retrieval[%s]: %s", payslip.ID, statePermissionCheck)
	if !s.gate.RequestStoragePermission(ctx) {
		return "", domain.NewAppError(domain.ErrCodePermissionDenied, "", domain.ErrPermissionRequired)
	}

	var lastErr error
	for attempt := 0; attempt < s.policy.MaxAttempts; attempt++ {
		path, err := s.acquireOnce(ctx, payslip)
		if err == nil {
			logger.Debug("retrieval[%s]: %s %s", payslip.ID, stateDone, path)
			return path, nil
		}
		lastErr = err
		logger.Warn("retrieval[%s]: attempt %d/%d failed: %v", payslip.ID, attempt+1, s.policy.MaxAttempts, err)

		if attempt == s.policy.MaxAttempts-1 || ctx.Err() != nil {
			break
		}

		delay := s.policy.Backoff(attempt)
		logger.Debug("retrieval[%s]: retrying in %s", payslip.ID, delay)
		if err := s.sleep(ctx, delay); err != nil {
			break
		}
	}

	return "", lastErr
}

// acquireOnce runs one pass of the acquisition state machine.
func (s *RetrievalService) acquireOnce(ctx context.Context, payslip domain.Payslip) (string, error) {
	dir := s.DocumentsDir()
	logger.Debug("retrieval[%s]: %s %s", payslip.ID, stateDirEnsure, dir)
	if err := s.store.MkdirAll(ctx, dir); err != nil {
		return "", classify(fmt.Errorf("create %s: %w", dir, err), domain.ErrCodeFileWriteFailed)
	}

	logger.Debug("retrieval[%s]: %s", payslip.ID, stateSpaceCheck)
	info, err := s.store.FSInfo(ctx, dir)
	if err != nil {
		return "", classify(fmt.Errorf("read filesystem info: %w", err), domain.ErrCodeFileDownloadFailed)
	}
	if info.FreeSpace < s.minFree {
		return "", domain.NewAppError(domain.ErrCodeInsufficientStorage, "",
			fmt.Errorf("%d bytes free, need %d", info.FreeSpace, s.minFree))
	}

	path, err := s.CanonicalPath(payslip)
	if err != nil {
		return "", err
	}

	content, err := s.renderer.Render(payslip)
	if err != nil {
		return "", classify(fmt.Errorf("render %s: %w", payslip.ID, err), domain.ErrCodeFileDownloadFailed)
	}
	if result := domain.ValidateFileSize(int64(len(content))); !result.Valid {
		return "", domain.NewAppError(domain.ErrCodeFileSizeExceeded, "", fmt.Errorf("%s", result.Error))
	}

	logger.Debug("retrieval[%s]: %s %s (%d bytes)", payslip.ID, stateWrite, path, len(content))
	if err := s.replace(ctx, path, content); err != nil {
		return "", classify(err, domain.ErrCodeFileWriteFailed)
	}

	logger.Debug("retrieval[%s]: %s", payslip.ID, stateVerify)
	exists, err := s.store.Exists(ctx, path)
	if err != nil || !exists {
		return "", domain.NewAppError(domain.ErrCodeFileWriteFailed,
			"File was not saved correctly. Please try again.", err)
	}

	return path, nil
}

// replace removes any stale copy at path and writes content.
func (s *RetrievalService) replace(ctx context.Context, path string, content []byte) error {
	exists, err := s.store.Exists(ctx, path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if exists {
		if err := s.store.Remove(ctx, path); err != nil {
			return fmt.Errorf("remove stale %s: %w", path, err)
		}
	}
	if err := s.store.WriteFile(ctx, path, content); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Preview ensures the document exists, acquiring it if needed, then hands
// it to a viewer application.
func (s *RetrievalService) Preview(ctx context.Context, payslip domain.Payslip) error {
	path, err := s.CanonicalPath(payslip)
	if err != nil {
		return err
	}

	if exists, err := s.store.Exists(ctx, path); err != nil || !exists {
		logger.Debug("preview[%s]: not stored, acquiring", payslip.ID)
		if path, err = s.Acquire(ctx, payslip); err != nil {
			return err
		}
	}

	if s.viewer == nil {
		return domain.NewAppError(domain.ErrCodeFilePreviewFailed, "", domain.ErrNoViewer)
	}

	opts := driven.OpenOptions{
		DisplayName: "Payslip " + payslip.Period(),
		MIMEType:    payslip.FileType().MIMEType(),
		ShowChooser: true,
	}
	if err := s.viewer.Open(ctx, path, opts); err != nil {
		return classify(err, domain.ErrCodeFilePreviewFailed)
	}

	logger.Debug("preview[%s]: handed %s to viewer", payslip.ID, path)
	return nil
}

// Watch streams changes to the documents directory. The directory is
// created if missing so a watch can start before the first download.
func (s *RetrievalService) Watch(ctx context.Context) (<-chan domain.StorageEvent, error) {
	if s.watcher == nil {
		return nil, nil
	}

	dir := s.DocumentsDir()
	if err := s.store.MkdirAll(ctx, dir); err != nil {
		return nil, classify(fmt.Errorf("create %s: %w", dir, err), domain.ErrCodeFileWriteFailed)
	}
	return s.watcher.Watch(ctx, dir)
}
