package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/payslip-cli/internal/adapters/driven/document"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driven/permission"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-cli/internal/core/services"
)

const testStorageRoot = "/home/test/.payslips/storage"

// recordingViewer records opened paths.
type recordingViewer struct {
	opened []string
	err    error
}

func (v *recordingViewer) Open(_ context.Context, path string, _ driven.OpenOptions) error {
	if v.err != nil {
		return v.err
	}
	v.opened = append(v.opened, path)
	return nil
}

type testEnv struct {
	store    *memory.FileStore
	config   *memory.ConfigStore
	viewer   *recordingViewer
	services *Services
}

func testRecords() []domain.Payslip {
	return []domain.Payslip{
		{ID: "1", FromDate: "2024-01-01", ToDate: "2024-01-31", File: "payslip_2024_01.pdf"},
		{ID: "2", FromDate: "2024-02-01", ToDate: "2024-02-29", File: "payslip_2024_02.pdf"},
		{ID: "3", FromDate: "2024-03-01", ToDate: "2024-03-31", File: "payslip_2024_03.pdf"},
		{ID: "6", FromDate: "2023-12-01", ToDate: "2023-12-31", File: "payslip_2023_12.pdf"},
	}
}

// setupTestServices installs services backed by in-memory stores.
func setupTestServices(t *testing.T, records []domain.Payslip) *testEnv {
	t.Helper()

	payslips, err := services.NewPayslipService(records)
	require.NoError(t, err)

	env := &testEnv{
		store:  memory.NewFileStore(testStorageRoot),
		config: memory.NewConfigStore(),
		viewer: &recordingViewer{},
	}

	settings := domain.DefaultAppSettings()
	gate := services.NewPermissionGate(settings.Platform, permission.Static{Granted: true})
	retrieval := services.NewRetrievalService(env.store, gate, document.NewRenderer(), env.viewer, settings).
		WithSleeper(func(context.Context, time.Duration) error { return nil })

	env.services = &Services{
		Payslips:  payslips,
		Retrieval: retrieval,
		Settings:  services.NewSettingsService(env.config),
	}

	prevBootstrap := bootstrap
	bootstrap = nil
	SetServices(env.services)
	t.Cleanup(func() {
		bootstrap = prevBootstrap
		payslipService, retrievalService, settingsService = nil, nil, nil
		permissionRouter = nil
	})
	return env
}

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	listSort, listYear, listSearch = string(domain.SortRecent), "", ""

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}
