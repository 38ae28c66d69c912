// @title Page Window Catalog API
// @version 1.0
// @description Paginated catalog listing with server-computed page links.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pagewindow/config"
	_ "pagewindow/docs"
	"pagewindow/internal/adapters/view"
	deliveryhttp "pagewindow/internal/delivery/http"
	"pagewindow/internal/delivery/http/controllers"
	"pagewindow/internal/delivery/http/middleware"
	"pagewindow/internal/pager"
	"pagewindow/internal/repository/postgres"
	"pagewindow/internal/services"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("db open failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	if err := db.PingContext(pingCtx); err != nil {
		// The server still starts; /health reports the outage.
		logger.Warn("db ping failed", "err", err)
	}
	cancelPing()

	base := pager.New(pager.Request{}).AlignCenter()
	var preset *pager.Preset
	if cfg.PagerPreset != "" {
		preset, err = pager.LoadPreset(cfg.PagerPreset)
		if err != nil {
			logger.Error("pager preset load failed", "path", cfg.PagerPreset, "err", err)
			os.Exit(1)
		}
		base = preset.Apply(base)
		logger.Info("pager preset loaded", "path", cfg.PagerPreset)
	}

	itemRepo := postgres.NewItemRepository(db)
	catalogService := services.NewCatalogService(itemRepo, cfg.RequestTimeout)
	catalogController := controllers.NewCatalogController(logger, catalogService, view.NewTemplateRenderer(), base, pageSizeLimits(cfg, preset))
	healthController := controllers.NewHealthController(logger, db)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	mux := deliveryhttp.NewRouter(catalogController, healthController, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	handler := middleware.CORS(middleware.SplitOrigins(cfg.CORSAllowedOrigins), mux)
	handler = metrics.Middleware(handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
	}
}

// pageSizeLimits bounds page_size. A preset per_page replaces PAGE_SIZE_DEFAULT,
// capped at PAGE_SIZE_MAX.
func pageSizeLimits(cfg *config.Config, preset *pager.Preset) controllers.PageSizeLimits {
	limits := controllers.PageSizeLimits{Default: cfg.PageSizeDefault, Max: cfg.PageSizeMax}
	if preset != nil && preset.PerPage != nil {
		limits.Default = min(*preset.PerPage, cfg.PageSizeMax)
	}
	return limits
}
