package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transaction-dashboard/internal/api/handler"
	"github.com/vfg2006/transaction-dashboard/internal/api/handler/router"
	"github.com/vfg2006/transaction-dashboard/internal/config"
	"github.com/vfg2006/transaction-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/transaction-dashboard/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	dashboards dashboarding.DashboardService
}

func New(cfg *config.Config, dashboards dashboarding.DashboardService) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, dashboards),
			ReadHeaderTimeout: 2 * time.Second,
		},
		dashboards: dashboards,
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares global
func NewHandler(cfg *config.Config, dashboards dashboarding.DashboardService) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(dashboards)...),
		router.WithRoutes(handler.Months(dashboards)...),
		router.WithRoutes(handler.Dashboards(dashboards)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimit.Interval, cfg.RateLimit.Burst),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server: error while serving")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("server: interrupt signal received")
	case <-ctx.Done():
		logrus.Info("server: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("server: starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server: error during shutdown")
		return err
	}

	logrus.Info("server: shutdown complete")
	return nil
}

// Shutdown para de aceitar requisições e depois fecha as sessões abertas,
// cancelando as buscas pendentes
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	s.dashboards.Shutdown()
	return nil
}
