package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-web-api-sdk/internal/config"
	"github.com/MKhiriev/go-web-api-sdk/internal/handler"
	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
	"github.com/MKhiriev/go-web-api-sdk/internal/server"
	"github.com/MKhiriev/go-web-api-sdk/internal/service"
	"github.com/MKhiriev/go-web-api-sdk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("sdkctl", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("sdkctl", cfg.App.LogLevel)
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Strs("files", cfg.ConfigFilePaths).Str("namespace", cfg.App.Namespace).Msg("received configs")

	services, err := service.NewServices(*cfg, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	ctx := context.Background()
	if _, err = services.ClientService.Load(ctx, cfg.SDK); err != nil {
		log.Fatal().Err(err).Msg("error loading clients")
	}

	switch {
	case cfg.Probe.ServiceKey != "":
		result, probeErr := services.ClientService.Probe(ctx, cfg.Probe.ServiceKey, cfg.Probe.Path)
		printJSON(os.Stdout, result)
		if probeErr != nil {
			log.Fatal().Err(probeErr).Str("service_key", cfg.Probe.ServiceKey).Msg("probe failed")
		}
	case cfg.Server.Enabled():
		handlers, err := handler.NewHandlers(services, cfg.Server, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating handlers")
		}

		srv, err := server.NewServer(handlers, cfg.Server, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating server")
		}

		srv.RunServer()
	default:
		clients := services.ClientService.Clients(ctx)
		printJSON(os.Stdout, models.ClientsResponse{Clients: clients, Length: len(clients)})
	}
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Fprintf(os.Stderr, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(os.Stderr, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", info.BuildCommit())
}
