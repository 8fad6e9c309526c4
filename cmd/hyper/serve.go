package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/hyper/internal/config"
	hypererrors "github.com/vango-dev/hyper/internal/errors"
	"github.com/vango-dev/hyper/pkg/markup"
	"github.com/vango-dev/hyper/pkg/middleware"
	"github.com/vango-dev/hyper/pkg/render"
)

func serveCmd(load func() (*config.Config, error)) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo pages over HTTP",
		Long: `Start an HTTP server with the demo pages, a Prometheus endpoint
and optional OpenTelemetry tracing.

Pages accept ?theme=dark, ?user=name and ?rows=n query parameters.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			listen := cfg.Address()
			if addr != "" {
				listen = addr
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Log)
			shutdownTracing, err := setupTracing(cfg.Tracing, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				if err := shutdownTracing(context.Background()); err != nil {
					logger.Warn("tracer shutdown failed", slog.Any("error", err))
				}
			}()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			ln, err := net.Listen("tcp", listen)
			if err != nil {
				if errors.Is(err, syscall.EADDRINUSE) {
					return hypererrors.New("H140").Wrap(err)
				}
				return err
			}

			srv := &http.Server{
				Handler:           newServer(cfg, logger, reg),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			printBanner(out)
			success(out, "Serving demo pages on http://%s", ln.Addr())
			if cfg.Metrics.Enabled {
				info(out, "Metrics: http://%s%s", ln.Addr(), cfg.Metrics.Path)
			}
			if cfg.Render.FlushEvery == 0 {
				warn(out, "render.flushEvery is 0, pages are buffered until complete")
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Serve(ln)
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout()))
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overriding server.host and server.port")

	return cmd
}

// newServer builds the router for the demo pages.
func newServer(cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)

	var metrics *middleware.Metrics
	if cfg.Metrics.Enabled {
		metrics = middleware.NewMetrics(
			middleware.WithRegistry(reg),
			middleware.WithNamespace(cfg.Metrics.Namespace),
		)
		r.Use(metrics.Handler)
	}
	if cfg.Tracing.Enabled {
		r.Use(middleware.OTel(middleware.WithTracerName(cfg.Tracing.TracerName)))
	}

	onError := func(req *http.Request, err error) {
		if metrics != nil {
			metrics.RecordRenderError(req, err)
		}
		middleware.RecordRenderError(req, err)
	}
	syncRenderer := render.NewRenderer(render.RendererConfig{
		Async:      cfg.Render.Async,
		FlushEvery: cfg.Render.FlushEvery,
		Logger:     logger,
		OnError:    onError,
	})
	asyncRenderer := render.NewRenderer(render.RendererConfig{
		Async:      true,
		FlushEvery: max(cfg.Render.FlushEvery, 1),
		Logger:     logger,
		OnError:    onError,
	})

	r.Method(http.MethodGet, "/", syncRenderer.Handler(func(req *http.Request) markup.Node {
		return indexPage(paramsFromRequest(req))
	}))
	r.Get("/pages/{name}", func(w http.ResponseWriter, req *http.Request) {
		d, ok := demos[chi.URLParam(req, "name")]
		if !ok {
			http.NotFound(w, req)
			return
		}
		renderer := syncRenderer
		if d.Async {
			renderer = asyncRenderer
		}
		renderer.Handler(func(req *http.Request) markup.Node {
			return d.Build(req.Context(), paramsFromRequest(req))
		}).ServeHTTP(w, req)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	logger.Debug("routes registered", slog.Int("pages", len(demos)), slog.Bool("metrics", cfg.Metrics.Enabled))
	return r
}
