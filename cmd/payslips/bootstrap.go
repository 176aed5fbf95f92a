package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/payslip-cli/internal/adapters/driven/catalogue"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driven/document"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driven/permission"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driven/storage/local"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driven/viewer"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-cli/internal/core/services"
	"github.com/custodia-labs/payslip-cli/internal/logger"
)

// bootstrap wires driven adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	logger.Debug("config: %s, platform: %s", configStore.Path(), settings.Platform)

	records, err := catalogue.New(settings.Catalogue.Path).Load(context.Background())
	if err != nil {
		return nil, err
	}
	payslipService, err := services.NewPayslipService(records)
	if err != nil {
		return nil, err
	}

	root := settings.Storage.Root
	if root == "" && opts.ConfigDir != "" {
		root = filepath.Join(opts.ConfigDir, "storage")
	}
	store, err := local.NewFileStore(root)
	if err != nil {
		return nil, err
	}

	var requester driven.PermissionRequester = permission.Static{Granted: true}
	if settings.Platform.RequiresStoragePermission() {
		requester = permission.NewTerminalPrompter()
	}
	router := permission.NewRouter(requester)
	gate := services.NewPermissionGate(settings.Platform, router)

	retrievalService := services.NewRetrievalService(
		store,
		gate,
		document.NewRenderer(),
		viewer.New(settings.Viewer.OpensPerSecond),
		*settings,
	).WithWatcher(local.NewWatcher())

	return &cli.Services{
		Payslips:  payslipService,
		Retrieval: retrievalService,
		Settings:  settingsService,

		Permissions: router,
	}, nil
}
