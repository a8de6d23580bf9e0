package cmd

import (
	"context"

	adapteractivitylog "github.com/Vinyaaggarwal/Perry/internal/adapters/activitylog"
	adapterhosts "github.com/Vinyaaggarwal/Perry/internal/adapters/hosts"
	adapternotify "github.com/Vinyaaggarwal/Perry/internal/adapters/notify"
	adaptersound "github.com/Vinyaaggarwal/Perry/internal/adapters/sound"
	adapterstorage "github.com/Vinyaaggarwal/Perry/internal/adapters/storage"
	"github.com/Vinyaaggarwal/Perry/internal/config"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
	"github.com/Vinyaaggarwal/Perry/internal/ports"
	"github.com/Vinyaaggarwal/Perry/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ActivityService     *services.ActivityService
	FocusController     *services.FocusController
	NotificationService *services.NotificationService
	SiteService         *services.SiteService

	// Adapters exposed for status output
	BlockList ports.HostBlockList
	Runtime   config.Runtime

	// Internal - for cleanup only
	siteRepo ports.SiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(rt config.Runtime) (*Container, error) {
	siteRepo, err := adapterstorage.NewSQLiteRepository(rt.DBPath)
	if err != nil {
		return nil, err
	}

	hostsFile := adapterhosts.NewFile(rt.HostsPath, rt.RedirectIP, adapterhosts.NewDNSFlusher())
	elevation := adapterhosts.NewElevationChecker(rt.HostsPath)
	activityLog := adapteractivitylog.NewCSVLogger(rt.ActivityLogPath)

	var notifier ports.Notifier = adapternotify.Nop{}
	if rt.Notifications {
		notifier = adapternotify.NewDesktop()
	}
	var soundPlayer ports.SoundPlayer = adaptersound.Silent{}
	if rt.Sound {
		soundPlayer = adaptersound.NewPlayer()
	}

	notificationService := services.NewNotificationService(notifier, soundPlayer)
	focusController := services.NewFocusController(hostsFile, elevation, activityLog, notificationService)
	siteService := services.NewSiteService(siteRepo, activityLog)
	activityService := services.NewActivityService(activityLog)

	if err := siteService.EnsureDefaults(context.Background()); err != nil {
		logging.Logger.Warn("Failed to seed default blocklist", "error", err)
	}

	return &Container{
		ActivityService:     activityService,
		BlockList:           hostsFile,
		FocusController:     focusController,
		NotificationService: notificationService,
		Runtime:             rt,
		SiteService:         siteService,
		siteRepo:            siteRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.NotificationService != nil {
		c.NotificationService.Wait()
	}
	if c.siteRepo != nil {
		return c.siteRepo.Close()
	}
	return nil
}
