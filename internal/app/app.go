package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	apphttp "github.com/yungbote/civic-innovation-backend/internal/http"
	httpH "github.com/yungbote/civic-innovation-backend/internal/http/handlers"
	"github.com/yungbote/civic-innovation-backend/internal/invocation"
	"github.com/yungbote/civic-innovation-backend/internal/observability"
	"github.com/yungbote/civic-innovation-backend/internal/platform/logger"
)

type App struct {
	Log     *logger.Logger
	Cfg     Config
	Core    Core
	Metrics *observability.Metrics
	Server  *apphttp.Server

	otelShutdown func(context.Context) error
}

// New wires the whole service. invoker is the AI backend; nil disables the
// invoke endpoint.
func New(ctx context.Context, log *logger.Logger, cfg Config, invoker invocation.Invoker) (*App, error) {
	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)
	metrics := observability.Init(log, cfg.MetricsEnabled)

	core, err := WireCore(log, cfg, invoker, metrics)
	if err != nil {
		return nil, err
	}

	log.Info("Wiring HTTP server...", "address", cfg.Address())
	routerCfg := apphttp.RouterConfig{
		Log:           log,
		Metrics:       metrics,
		CORSOrigins:   cfg.CORSOrigins,
		HealthHandler: httpH.NewHealthHandler(cfg.Version),
		PromptHandler: httpH.NewPromptHandler(log, core.Registry, core.Library, core.Service, metrics),
	}
	if cfg.Otel.Enabled {
		routerCfg.ServiceName = cfg.Otel.ServiceName
	}

	return &App{
		Log:          log,
		Cfg:          cfg,
		Core:         core,
		Metrics:      metrics,
		Server:       apphttp.NewServer(cfg.Address(), routerCfg),
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves until ctx is done, then flushes traces.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "address", a.Cfg.Address())
		return a.Server.Run(gctx, a.Cfg.ShutdownTimeout)
	})
	g.Go(func() error {
		<-gctx.Done()
		if a.otelShutdown == nil {
			return nil
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		return a.otelShutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
