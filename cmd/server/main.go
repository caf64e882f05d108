package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/storefront/internal/domain"
	"github.com/kahvecikaan/storefront/internal/enrichment"
	"github.com/kahvecikaan/storefront/internal/events"
	"github.com/kahvecikaan/storefront/internal/rates"
	"github.com/kahvecikaan/storefront/internal/repository"
	"github.com/kahvecikaan/storefront/internal/service"
	httpTransport "github.com/kahvecikaan/storefront/internal/transport/http"
	websocketTransport "github.com/kahvecikaan/storefront/internal/transport/websocket"
	"github.com/nicholasjackson/env"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	catalogURL = env.String("CATALOG_URL", false,
		repository.DefaultCatalogURL, "Base URL of the remote product catalog")
	catalogSource = env.String("CATALOG_SOURCE", false,
		"http", "Where products come from [http, memory]")
	ratesURL = env.String("RATES_URL", false,
		rates.DefaultURL, "Daily exchange rate feed")
	ratesRefresh = env.Duration("RATES_REFRESH", false,
		6*time.Hour, "How often exchange rates are reloaded")
	clientTimeout = env.Duration("HTTP_CLIENT_TIMEOUT", false,
		10*time.Second, "Timeout for outgoing HTTP requests")
)

func main() {
	env.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "storefront",
		Level: hclog.LevelFromString(*logLevel),
	})

	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	client := &http.Client{Timeout: *clientTimeout}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var source repository.CatalogSource
	switch *catalogSource {
	case "http":
		source = repository.NewHTTPCatalogSource(*catalogURL, client, logger.Named("catalog-source"))
	case "memory":
		source = repository.NewMemoryCatalogSource(repository.SampleProducts(100))
	default:
		logger.Error("Unknown catalog source", "source", *catalogSource)
		os.Exit(1)
	}

	// Prices stay in the base currency when the rate feed is unreachable
	var rateTable service.RateTable
	er, err := rates.NewRates(ctx, logger.Named("rates"), client, *ratesURL)
	if err != nil {
		logger.Warn("Exchange rates unavailable, currency conversion disabled", "error", err)
	} else {
		rateTable = er
		go refreshRates(ctx, er, *ratesRefresh, logger.Named("rates"))
	}

	eventBus := events.NewEventBus[any]()

	catalog := service.NewCatalogService(
		source,
		enrichment.NewDefaultEnricher(),
		eventBus,
		logger.Named("catalog-service"),
	)
	cs := service.NewCurrencyService(logger.Named("currency-service"), rateTable)

	views, err := httpTransport.NewViewEngine()
	if err != nil {
		logger.Error("Unable to load templates", "error", err)
		os.Exit(1)
	}

	ph := httpTransport.NewProductHandler(
		catalog,
		cs,
		domain.NewValidation(),
		eventBus,
		views,
		logger.Named("http-handler"),
	)

	wh := websocketTransport.NewHandler(logger.Named("websocket-handler"), eventBus)

	router := httpTransport.NewRouter(ph, logger, wh)

	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: *clientTimeout + 10*time.Second,
	}

	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress, "catalog_source", *catalogSource)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()
	server.Shutdown(shutdownCtx)
}

// refreshRates reloads the rate table until ctx is done. A failed reload keeps
// the previous rates.
func refreshRates(ctx context.Context, er *rates.ExchangeRates, interval time.Duration, logger hclog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := er.Refresh(ctx); err != nil {
				logger.Warn("Unable to refresh exchange rates", "error", err)
			}
		}
	}
}
