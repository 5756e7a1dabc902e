// Package app provides the application bootstrap and runtime orchestration.
//
// The App type wires together all dependencies and exposes methods to run
// the operational modes:
//
//   - Server mode: webhook/registration/stats API plus the resolution pipeline
//   - Broadcast mode: scheduled (or one-shot) daily alert job
//
// Each mode can be run independently based on deployment needs.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/arogyamitra/arogya-bot/internal/broadcast"
	"github.com/arogyamitra/arogya-bot/internal/config"
	"github.com/arogyamitra/arogya-bot/internal/dataset"
	"github.com/arogyamitra/arogya-bot/internal/gateway"
	"github.com/arogyamitra/arogya-bot/internal/httpapi"
	"github.com/arogyamitra/arogya-bot/internal/llm"
	"github.com/arogyamitra/arogya-bot/internal/platform/observability"
	"github.com/arogyamitra/arogya-bot/internal/platform/schedule"
	"github.com/arogyamitra/arogya-bot/internal/platform/worker"
	"github.com/arogyamitra/arogya-bot/internal/resolve"
	"github.com/arogyamitra/arogya-bot/internal/storage"
	"github.com/arogyamitra/arogya-bot/internal/translate"
)

// App holds the application dependencies and provides methods to run
// different modes.
type App struct {
	cfg      *config.Config
	database *storage.DB
	logger   *zerolog.Logger
}

// New creates a new App instance with the given dependencies.
func New(cfg *config.Config, database *storage.DB, logger *zerolog.Logger) *App {
	return &App{
		cfg:      cfg,
		database: database,
		logger:   logger,
	}
}

// StartHealthServer starts the health check and metrics server.
func (a *App) StartHealthServer(ctx context.Context) error {
	return observability.NewServer(a.database, a.cfg.HealthPort, a.logger).Start(ctx)
}

// RunServer runs the webhook API with the full resolution pipeline behind it.
func (a *App) RunServer(ctx context.Context) error {
	gw, err := a.newGateway()
	if err != nil {
		return err
	}

	pipeline := resolve.NewPipeline(a.newTranslator(), a.newOrchestrator(), a.cfg.ChunkBound)

	return httpapi.NewServer(pipeline, a.database, gw, a.cfg.APIPort, a.logger).Start(ctx)
}

// RunBroadcast runs the daily alert job: once immediately, or on the
// configured wall-clock schedule.
func (a *App) RunBroadcast(ctx context.Context, once bool) error {
	gw, err := a.newGateway()
	if err != nil {
		return err
	}

	broadcaster := broadcast.New(a.database, a.newDatasetBuilder(), gw, a.cfg.ChunkBound, a.logger)

	if once {
		return worker.RunWithTimeout(ctx, a.cfg.BroadcastTimeout, broadcaster.RunOnce)
	}

	sched := schedule.Daily{TimeOfDay: a.cfg.BroadcastTime, Timezone: a.cfg.BroadcastTimezone}
	if err := sched.Validate(); err != nil {
		return err
	}

	for {
		next, err := sched.Next(time.Now())
		if err != nil {
			return err
		}

		a.logger.Info().Time("next_run", next).Msg("broadcast scheduled")

		if err := worker.WaitUntil(ctx, next); err != nil {
			return err
		}

		if err := worker.RunWithTimeout(ctx, a.cfg.BroadcastTimeout, broadcaster.RunOnce); err != nil {
			a.logger.Error().Err(err).Msg("broadcast run failed")
		}
	}
}

func (a *App) newOrchestrator() *resolve.Orchestrator {
	return resolve.NewOrchestrator(llm.New(a.cfg, a.logger), a.newDatasetBuilder(), a.logger)
}

func (a *App) newDatasetBuilder() *dataset.Builder {
	return dataset.NewBuilder(dataset.Config{
		CaseFeedURL:         a.cfg.CaseFeedURL,
		SurveillanceFeedURL: a.cfg.SurveillanceFeedURL,
		BulletinFeedURL:     a.cfg.BulletinFeedURL,
		Timeout:             a.cfg.FeedTimeout,
	}, a.logger)
}

func (a *App) newTranslator() *translate.Wrapper {
	var svc translate.Service
	if a.cfg.TranslateBaseURL != "" {
		svc = translate.NewHTTPClient(a.cfg.TranslateBaseURL, a.cfg.TranslateAPIKey, a.cfg.TranslateTimeout)
	} else {
		a.logger.Warn().Msg("no translation service configured, replies stay in the pivot language")
	}

	return translate.NewWrapper(svc, a.logger)
}

func (a *App) newGateway() (gateway.Sender, error) {
	if a.cfg.BotToken == "" {
		a.logger.Warn().Msg("no bot token configured, outbound messages are dropped")

		return gateway.NopSender{Logger: a.logger}, nil
	}

	return gateway.NewTelegramSender(a.cfg.BotToken, a.logger)
}
