package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoArmGo/artgallery/internal/config"
	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/metrics"
	"github.com/GoArmGo/artgallery/internal/usecase"
)

const (
	ModeServer = "server"
	ModeWorker = "worker"

	shutdownTimeout = 30 * time.Second
)

// Resource описывает внешнее подключение, которое нужно закрыть при остановке
type Resource struct {
	Name  string
	Close func(ctx context.Context) error
}

type App struct {
	Config  *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics

	handler         http.Handler
	activityUseCase usecase.ActivityUseCase
	eventConsumer   ports.ArtworkEventConsumer

	resources []Resource
}

type Options struct {
	Handler         http.Handler
	ActivityUseCase usecase.ActivityUseCase
	EventConsumer   ports.ArtworkEventConsumer
	Metrics         *metrics.Metrics
	Resources       []Resource
}

func NewApp(cfg *config.Config, logger *slog.Logger, opts Options) *App {
	return &App{
		Config:          cfg,
		logger:          logger,
		metrics:         opts.Metrics,
		handler:         opts.Handler,
		activityUseCase: opts.ActivityUseCase,
		eventConsumer:   opts.EventConsumer,
		resources:       opts.Resources,
	}
}

func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run работает до SIGINT/SIGTERM, затем закрывает ресурсы
func (a *App) Run(ctx context.Context, mode string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting", "mode", mode)

	var err error
	switch mode {
	case ModeServer:
		err = runServer(ctx, a.Config, a.handler, a.logger)
	case ModeWorker:
		err = runWorker(ctx, a.eventConsumer, a.activityUseCase, a.metrics, a.logger)
	default:
		err = fmt.Errorf("unknown mode %q (use %q or %q)", mode, ModeServer, ModeWorker)
	}

	a.logger.Info("shutting down")
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown finished with errors", "error", closeErr)
		if err == nil {
			err = closeErr
		}
	}
	return err
}

// Shutdown закрывает ресурсы в обратном порядке открытия
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	for i := len(a.resources) - 1; i >= 0; i-- {
		r := a.resources[i]
		if err := r.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", r.Name, err))
			continue
		}
		a.logger.Info("resource closed", "resource", r.Name)
	}
	return errors.Join(errs...)
}
