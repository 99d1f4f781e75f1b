package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/jobmatch/internal/buildinfo"
	"github.com/dmitrijs2005/jobmatch/internal/client/cli"
	"github.com/dmitrijs2005/jobmatch/internal/client/client"
	"github.com/dmitrijs2005/jobmatch/internal/client/config"
	"github.com/dmitrijs2005/jobmatch/internal/client/events"
	"github.com/dmitrijs2005/jobmatch/internal/client/notifications"
	"github.com/dmitrijs2005/jobmatch/internal/client/refresh"
	"github.com/dmitrijs2005/jobmatch/internal/client/services"
	"github.com/dmitrijs2005/jobmatch/internal/client/tokenstore"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.New(cfg.LogBackend, os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := client.InitStore(ctx, client.StoreOptions{
		Backend:    cfg.StoreBackend,
		Path:       cfg.StorePath,
		RedisURL:   cfg.RedisURL,
		Passphrase: cfg.StorePassphrase,
	})
	if err != nil {
		log.Fatalf("error initializing session store: %v", err)
	}
	defer repos.Close()

	store := tokenstore.New(repos.Metadata)
	bus := events.NewBus()

	opts := client.Options{
		BaseURL:      cfg.BaseURL,
		ExpiryMargin: cfg.ExpiryMargin,
		Timeout:      cfg.RequestTimeout,
	}
	coord := refresh.New(store, client.NewAuthRefresher(opts, bus, logger), bus, logger, cfg.RefreshTimeout)
	api := client.New(opts, store, coord, bus, logger)

	svc := cli.Services{
		Auth:          services.NewAuthService(api, store, logger),
		Profile:       services.NewProfileService(api),
		Resumes:       services.NewResumeService(api),
		Jobs:          services.NewJobService(api),
		Matches:       services.NewMatchService(api),
		Analytics:     services.NewAnalyticsService(api),
		Notifications: services.NewNotificationService(api),
	}

	feed := notifications.NewFeed(notifications.DefaultFeedSize)
	var listener *notifications.Listener
	if cfg.NotificationsURL != "" {
		listener = notifications.NewListener(cfg.NotificationsURL, store, feed, bus, logger)
	}

	cli.NewApp(cfg, svc, feed, listener, bus, logger).Run(ctx)
}
