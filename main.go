package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-web/api"
	"github.com/carson-networks/budget-web/internal/apiclient"
	"github.com/carson-networks/budget-web/internal/config"
	"github.com/carson-networks/budget-web/internal/logging"
	"github.com/carson-networks/budget-web/internal/service"
	"github.com/carson-networks/budget-web/internal/storage"
)

// Browsers keep the view-session cookie for a year when tokens never expire.
const defaultCookieMaxAge = 365 * 24 * time.Hour

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logging.SetupLogging(logrus.InfoLevel).WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("budget-web starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewStorage(ctx, envConfig, logger)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	client, err := apiclient.NewClient(envConfig.APIBaseURL, envConfig.APITimeout, logger)
	if err != nil {
		logger.WithError(err).Fatal("apiclient.NewClient")
		return
	}

	policy, err := service.ParseRacePolicy(envConfig.RacePolicy)
	if err != nil {
		logger.WithError(err).Fatal("service.ParseRacePolicy")
		return
	}

	svc := service.NewService(store, client, policy, envConfig.ViewIdleTimeout, logger)
	defer svc.Views.Close()

	cookieMaxAge := envConfig.SessionTTL
	if cookieMaxAge == 0 {
		cookieMaxAge = defaultCookieMaxAge
	}

	httpRest := api.Rest{
		Logger:             logger,
		Port:               envConfig.Port,
		Service:            svc,
		CORSAllowedOrigins: envConfig.CORSAllowedOrigins,
		CookieMaxAge:       int(cookieMaxAge.Seconds()),
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return httpRest.Serve(groupCtx)
	})
	group.Go(func() error {
		return svc.Views.RunSweeper(groupCtx)
	})

	if err := group.Wait(); err != nil {
		logger.WithError(err).Error("budget-web stopped with error")
		return
	}
	logger.Info("budget-web stopped")
}
