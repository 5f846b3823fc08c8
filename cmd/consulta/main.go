package main

import (
	"os"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driven/config/file"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driven/download"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driven/httpapi"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driven/storage/memory"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/cli"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/present"
	"github.com/riosdeldesierto/consulta-clientes/internal/config"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driven"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/services"
	"github.com/riosdeldesierto/consulta-clientes/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	store := openConfigStore()

	settings, err := config.Load(store)
	if err != nil {
		logger.Error(err, "invalid configuration")
		os.Exit(1)
	}
	if err := logger.SetLevel(settings.LogLevel); err != nil {
		logger.Warn("%v", err)
	}

	client := httpapi.NewClient(httpapi.Config{
		BaseURL:           settings.APIURL,
		Timeout:           settings.APITimeout,
		RequestsPerSecond: settings.APIRate,
		UserAgent:         "consulta/" + version,
	})
	saver := download.NewFileSaver(settings.DownloadDir)

	formatter, err := present.NewFormatterFromSettings(*settings)
	if err != nil {
		logger.Warn("using default formatting: %v", err)
		formatter = present.DefaultFormatter()
	}

	cli.SetServices(cli.Services{
		Lookup:    services.NewLookupService(client),
		Export:    services.NewExportService(client, saver),
		Report:    services.NewReportService(client, saver),
		Settings:  services.NewSettingsService(store),
		Formatter: formatter,
		Endpoint:  client,
	})

	cli.SetTUIConfig(&cli.TUIConfig{
		Session: services.NewSession(),
		Watch:   store.Watch,
		Reload: func() (string, *present.Formatter, error) {
			reloaded, err := config.Load(store)
			if err != nil {
				return "", nil, err
			}
			if err := logger.SetLevel(reloaded.LogLevel); err != nil {
				logger.Warn("%v", err)
			}
			f, err := present.NewFormatterFromSettings(*reloaded)
			if err != nil {
				return "", nil, err
			}
			client.SetBaseURL(reloaded.APIURL)
			return client.BaseURL(), f, nil
		},
	})
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// openConfigStore opens ~/.consulta/config.toml, falling back to an
// in-memory store when the home directory is unusable.
func openConfigStore() driven.ConfigStore {
	dir, err := file.DefaultDir()
	if err == nil {
		store, storeErr := file.NewConfigStore(dir)
		if storeErr == nil {
			return store
		}
		err = storeErr
	}
	logger.Warn("settings will not be persisted: %v", err)
	return memory.NewConfigStore()
}
