package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"strongroom/internal/assets"
	"strongroom/internal/bank"
	"strongroom/internal/oracle"
	"strongroom/internal/platform/config"
	"strongroom/internal/platform/health"
	"strongroom/internal/platform/logger"
	"strongroom/internal/platform/middleware"
	"strongroom/internal/platform/token"
	"strongroom/internal/protocol"
	protocolhandler "strongroom/internal/protocol/handler"
	"strongroom/internal/seeder"
	"strongroom/internal/stablecoin"
	vaulthandler "strongroom/internal/vault/handler"
	vaultmetrics "strongroom/internal/vault/metrics"
	"strongroom/internal/vault/service"
	"strongroom/internal/vault/store"
	"strongroom/internal/venue"
	"strongroom/pkg/domain"
	"strongroom/pkg/platform/audit"
)

// main wires the collaborators, mounts the HTTP surface, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	genesis := config.GenesisFromEnv()
	log := logger.New()

	authority := resolveAddress(genesis.Authority)
	treasury := resolveAddress(genesis.Treasury)
	wrappedNative := domain.NewAddress()
	venueAddress := domain.NewAddress()

	log.Info("initializing strongroom",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"authority", authority.String(),
		"treasury", treasury.String(),
	)

	registry := assets.NewRegistry()
	priceOracle := oracle.New()
	collateralBank := bank.NewLedger(wrappedNative)
	peggedLedger := stablecoin.NewLedger()

	exchangeVenue, err := venue.New(venueAddress, genesis.VenueFeeRate, priceOracle, collateralBank)
	if err != nil {
		log.Error("invalid venue configuration", "error", err)
		os.Exit(1)
	}

	protocolStore, err := protocol.NewStore(protocol.Config{
		MintFeeRate:                genesis.MintFeeRate,
		BurnFeeRate:                genesis.BurnFeeRate,
		SwapFeeRate:                genesis.SwapFeeRate,
		CollateralizationThreshold: genesis.CollateralizationThreshold,
		Authority:                  authority,
		Treasury:                   treasury,
		ExchangeVenue:              venueAddress,
		WrappedNative:              wrappedNative,
	})
	if err != nil {
		log.Error("invalid protocol configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Environment == "development" {
		seed := seeder.New(registry, priceOracle, collateralBank, exchangeVenue, log)
		if err := seed.SeedAll(ctx, wrappedNative); err != nil {
			log.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	auditStore := audit.NewInMemoryStore()
	auditTrail := audit.NewStorePublisher(auditStore,
		audit.WithAsyncBuffer(256),
		audit.WithPublisherLogger(log),
	)
	defer auditTrail.Close()

	vaultService := service.New(
		store.NewInMemory(),
		registry,
		priceOracle,
		peggedLedger,
		collateralBank,
		exchangeVenue,
		protocolStore,
		service.WithLogger(log),
		service.WithAuditPublisher(audit.Multi{audit.NewLogPublisher(log), auditTrail}),
		service.WithMetrics(vaultmetrics.New()),
		service.WithTracer(otel.Tracer("strongroom/vault")),
	)

	tokenService := token.NewService(cfg.JWTSigningKey, "strongroom", cfg.TokenTTL)

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.Timeout(30 * time.Second))

	healthHandler := health.New(cfg.Environment)
	healthHandler.Register(router)
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireCaller(tokenService, log))
		vaulthandler.New(vaultService, log, vaulthandler.WithAuditTrail(auditStore)).Register(r)
		protocolhandler.New(protocolStore, log).Register(r)
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// resolveAddress parses a configured address or generates one for
// development runs where none is provided.
func resolveAddress(configured string) domain.Address {
	if configured == "" {
		return domain.NewAddress()
	}
	addr, err := domain.ParseAddress(configured)
	if err != nil {
		return domain.NewAddress()
	}
	return addr
}
