package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog"
	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/catalogclient"
	"github.com/vfg2006/transaction-dashboard/infrastructure/repository"
	"github.com/vfg2006/transaction-dashboard/internal/api"
	"github.com/vfg2006/transaction-dashboard/internal/config"
	"github.com/vfg2006/transaction-dashboard/internal/usecases/dashboarding"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("main: invalid log level %q, using 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("main: log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalogClient := catalogclient.NewClient(cfg)
	catalogIntegrator := catalog.New(catalogClient)

	sessions := repository.NewSessionRepository[*dashboarding.Composer](
		cfg.Dashboard.SessionTTL,
		cfg.Dashboard.SessionCleanupInterval,
	)

	dashboardService := dashboarding.NewService(cfg, catalogIntegrator, sessions)

	logrus.WithFields(logrus.Fields{
		"catalog_base_url": cfg.Catalog.BaseURL,
		"default_month":    cfg.Dashboard.DefaultMonth,
		"page_reset":       cfg.Dashboard.PageReset,
	}).Info("main: dashboard service ready")

	server, err := api.New(cfg, dashboardService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
