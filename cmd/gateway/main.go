package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dwikikusuma/storefront/api/catalogv1"
	"github.com/dwikikusuma/storefront/api/orderv1"
	"github.com/dwikikusuma/storefront/api/settingsv1"
	"github.com/dwikikusuma/storefront/internal/admin/auth"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartadapter "github.com/dwikikusuma/storefront/internal/cart/infra/adapter"
	"github.com/dwikikusuma/storefront/internal/cart/infra/session"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/storefront/internal/gateway"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "gateway",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := grpc.NewClient(cfg.APIAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Error("grpc client failed", slog.Any("err", err), slog.String("target", cfg.APIAddr))
		os.Exit(1)
	}
	defer conn.Close()

	catalogClient := catalogv1.NewCatalogServiceClient(conn)
	orderClient := orderv1.NewOrderServiceClient(conn)
	settingsClient := settingsv1.NewSettingsServiceClient(conn)

	authn, err := auth.New(auth.Config{
		Username:        cfg.Admin.Username,
		Email:           cfg.Admin.Email,
		Password:        cfg.Admin.Password,
		PasswordHash:    cfg.Admin.PasswordHash,
		AllowDev:        cfg.IsDev(),
		SessionTTL:      cfg.SessionTTL,
		SessionCapacity: cfg.SessionCapacity,
	}, log)
	if err != nil {
		log.Error("admin auth setup failed", slog.Any("err", err))
		os.Exit(1)
	}

	checkoutSvc := checkoutapp.NewService(checkoutadapter.NewOrderClientCreator(orderClient), log)
	cartSvc := cartapp.NewService(
		cartadapter.NewCatalogClientReader(catalogClient),
		session.NewStore(cfg.SessionCapacity, cfg.SessionTTL),
		checkoutSvc,
		log,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := gateway.NewRouter(gateway.Deps{
		Catalog:  catalogClient,
		Orders:   orderClient,
		Settings: settingsClient,
		Cart:     cartSvc,
		Auth:     authn,
		Log:      log,
		Metrics:  metrics.NewServerMetrics("gateway", reg),
		Ready: func(ctx context.Context) error {
			_, err := settingsClient.GetSettings(ctx, &settingsv1.GetSettingsRequest{})
			return err
		},
		AllowedOrigin: cfg.AllowedOrigin,
		CookieSecure:  cfg.CookieSecure,
		SessionTTL:    cfg.SessionTTL,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr), slog.String("api", cfg.APIAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("gateway stopped with error", slog.Any("err", err))
	}
	log.Info("bye")
}
