package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"vsdash/internal/config"
	"vsdash/internal/infrastructure"
	customMiddleware "vsdash/internal/middleware"
	"vsdash/internal/services"
	handlers "vsdash/internal/transport/http"
	"vsdash/pkg/contracts"
)

// ErrPortInUse is returned when the configured port is already bound.
var ErrPortInUse = errors.New("port already in use")

// Application represents the dashboard server
type Application struct {
	Config         *config.Config
	Router         *chi.Mux
	Server         *http.Server
	HealthService  *services.HealthService
	SummaryService *services.SummaryService
	Logger         *slog.Logger
	OTelProviders  *infrastructure.OTelProviders
}

// NewApplication wires the dashboard server. It fails fast when the
// dashboard directory is incomplete. The caller owns providers.
func NewApplication(cfg *config.Config, providers *infrastructure.OTelProviders, logger *slog.Logger) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("build", contracts.GetFullVersionString()))

	if err := handlers.CheckDashboard(cfg.Server.DashboardDir); err != nil {
		return nil, err
	}

	if providers == nil {
		var err error
		providers, err = infrastructure.InitializeOTel(nil, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
		}
	}

	paths := config.NewPaths(cfg.Pipeline)
	paths.LogPathResolution(logger)

	a := &Application{
		Config:         cfg,
		Logger:         logger,
		OTelProviders:  providers,
		HealthService:  services.NewHealthService(config.AppVersion, paths, cfg.Server.DashboardDir, logger),
		SummaryService: services.NewSummaryService(cfg.Pipeline, logger),
	}

	if !config.FileExists(paths.MergedCSV) {
		logger.Warn("Merged dataset not found, run the process command first",
			slog.String("path", paths.MergedCSV))
	}

	if err := a.setupRouter(paths); err != nil {
		return nil, err
	}
	a.createServer()
	return a, nil
}

func (a *Application) setupRouter(paths *config.Paths) error {
	httpMetrics, err := infrastructure.NewHTTPMetrics(a.OTelProviders.Meter)
	if err != nil {
		return fmt.Errorf("failed to create HTTP metrics: %w", err)
	}

	dashboard := handlers.NewDashboardHandler(a.Config.Server.DashboardDir, paths, a.Logger)
	summary := handlers.NewSummaryHandler(a.SummaryService, a.Logger)
	health := handlers.NewHealthHandler(a.HealthService, a.Logger)

	r := chi.NewRouter()
	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)

	r.Group(func(r chi.Router) {
		// Order: RequestID → RealIP → OTel → Logger → Recoverer
		r.Use(customMiddleware.Telemetry(a.OTelProviders.Tracer, httpMetrics))
		r.Use(customMiddleware.StructuredLogger(a.Logger))
		r.Use(customMiddleware.Recoverer(a.Logger))
		r.Use(customMiddleware.SecurityHeaders)

		if rl := a.Config.Server.RateLimit; rl.Enabled {
			r.Use(customMiddleware.NewRateLimiter(rl.RPS, rl.Burst, a.Logger).Handler)
		}

		r.Get("/", handlers.RedirectToDashboard)
		r.Get("/dashboard", handlers.RedirectToDashboard)
		r.Handle("/dashboard/*", dashboard.Static())
		r.Get("/merged_dataset.csv", dashboard.MergedDataset)

		r.Route("/api", func(r chi.Router) {
			r.Use(render.SetContentType(render.ContentTypeJSON))
			r.Get("/summary", summary.GetSummary)
			r.Get("/health", health.HealthCheck)
			r.Get("/version", health.Version)
		})
	})

	if a.OTelProviders.PrometheusHTTP != nil {
		r.Handle("/metrics", a.OTelProviders.PrometheusHTTP)
	}

	a.Router = r
	return nil
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         net.JoinHostPort(a.Config.Server.Host, strconv.Itoa(a.Config.Server.Port)),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Listen binds the server address. A bound port is reported as ErrPortInUse.
func (a *Application) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", a.Server.Addr)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("port %d is already in use, stop the other process or set VSDASH_SERVER_PORT: %w",
				a.Config.Server.Port, ErrPortInUse)
		}
		return nil, fmt.Errorf("failed to listen on %s: %w", a.Server.Addr, err)
	}
	return ln, nil
}

// Serve runs the server on ln until ctx is cancelled, then shuts down
// gracefully.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.InfoContext(gctx, "Dashboard server started",
			slog.String("name", config.AppName),
			slog.String("version", config.AppVersion),
			slog.String("address", fmt.Sprintf("http://%s/dashboard/", ln.Addr())))
		if err := a.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.Stop(context.WithoutCancel(gctx))
	})

	return g.Wait()
}

// Stop gracefully stops the server
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down dashboard server")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	a.Logger.InfoContext(ctx, "Dashboard server shutdown complete")
	return nil
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := a.Listen()
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}
