package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/api/catalogv1"
	"github.com/dwikikusuma/storefront/api/orderv1"
	"github.com/dwikikusuma/storefront/api/settingsv1"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/storefront/internal/catalog/grpc"
	cstore "github.com/dwikikusuma/storefront/internal/catalog/infra/sqlstore"

	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	ogrpc "github.com/dwikikusuma/storefront/internal/order/grpc"
	"github.com/dwikikusuma/storefront/internal/order/infra/events"
	ostore "github.com/dwikikusuma/storefront/internal/order/infra/sqlstore"

	settingsapp "github.com/dwikikusuma/storefront/internal/settings/app"
	sgrpc "github.com/dwikikusuma/storefront/internal/settings/grpc"
	sstore "github.com/dwikikusuma/storefront/internal/settings/infra/sqlstore"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/database"
	"github.com/dwikikusuma/storefront/pkg/interceptor"
	"github.com/dwikikusuma/storefront/pkg/kafka"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "api", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	db := mustDB(ctx, log, cfg)
	defer db.Close()

	// Catalog
	catalogSvc := catalogapp.NewService(cstore.NewProductRepo(db))

	// Order, with best-effort events
	var publisher orderapp.EventPublisher
	kc := kafka.NewClient(cfg.KafkaBrokers)
	w, err := kc.NewWriter(cfg.KafkaTopic)
	switch {
	case err == nil:
		defer w.Close()
		publisher = events.NewKafkaPublisher(w)
		log.Info("order events enabled", slog.String("topic", cfg.KafkaTopic))
	default:
		log.Info("order events disabled", slog.Any("reason", err))
	}
	orderSvc := orderapp.NewService(ostore.NewOrderRepo(db), publisher, log)

	// Settings
	settingsSvc := settingsapp.NewService(sstore.NewSettingsRepo(db))
	if err := settingsSvc.Seed(ctx, settingsapp.Defaults); err != nil {
		log.Error("seed settings failed", slog.Any("err", err))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewServerMetrics("api", reg)

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", addr))
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptor.UnaryLogging(log, m)))
	catalogv1.RegisterCatalogServiceServer(grpcServer, cgrpc.NewServer(catalogSvc))
	orderv1.RegisterOrderServiceServer(grpcServer, ogrpc.NewServer(orderSvc))
	settingsv1.RegisterSettingsServiceServer(grpcServer, sgrpc.NewServer(settingsSvc))

	metricsAddr := fmt.Sprintf(":%d", cfg.MetricsPort)
	metricsServer := &http.Server{Addr: metricsAddr, Handler: m.Handler(), ReadHeaderTimeout: 5 * time.Second}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		log.Info("grpc starting", slog.String("addr", addr), slog.String("db", string(db.Dialect)))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpc serve error", slog.Any("err", err))
			cancel()
		}
	}()
	go func() {
		defer wg.Done()
		log.Info("metrics starting", slog.String("addr", metricsAddr))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server error", slog.Any("err", err))
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopCtx.Done():
		log.Warn("graceful stop timeout, forcing stop")
		grpcServer.Stop()
	case <-stopped:
	}
	_ = metricsServer.Shutdown(stopCtx)

	wg.Wait()
	log.Info("bye")
}

func mustDB(ctx context.Context, log *slog.Logger, cfg config.Config) *database.DB {
	db, err := database.Open(ctx, database.Config{
		Driver: cfg.DB.Driver,
		DSN:    cfg.DB.DSN,
		Host:   cfg.DB.Host,
		Port:   cfg.DB.Port,
		User:   cfg.DB.User,
		Pass:   cfg.DB.Pass,
		DB:     cfg.DB.Name,
	})
	if err != nil {
		log.Error("db open failed", slog.Any("err", err))
		os.Exit(1)
	}
	return db
}
