// Package resolve implements the fallback chain that turns a query into
// exactly one reply: intent classification, the emergency hotline registry,
// the regional dataset lookup, and the AI completion catch-all.
package resolve

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arogyamitra/arogya-bot/internal/dataset"
	"github.com/arogyamitra/arogya-bot/internal/llm"
	"github.com/arogyamitra/arogya-bot/internal/nlu"
	"github.com/arogyamitra/arogya-bot/internal/platform/observability"
)

// Resolution source labels for metrics.
const (
	sourceHotline = "hotline"
	sourceDataset = "dataset"
	sourceAI      = "ai"
	sourceApology = "apology"
)

// DatasetSource builds a fresh regional dataset for one resolution cycle.
type DatasetSource interface {
	Build(ctx context.Context) dataset.Dataset
}

// Orchestrator walks the fallback chain. It always terminates with a
// non-empty reply; external failures degrade to safe defaults instead of
// propagating.
type Orchestrator struct {
	ai       llm.Client
	datasets DatasetSource
	logger   *zerolog.Logger
}

func NewOrchestrator(ai llm.Client, datasets DatasetSource, logger *zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		ai:       ai,
		datasets: datasets,
		logger:   logger,
	}
}

// Resolve produces the single terminal reply for a pivot-language query.
func (o *Orchestrator) Resolve(ctx context.Context, text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))

	intent := nlu.ClassifyIntent(normalized)
	observability.QueriesTotal.WithLabelValues(string(intent)).Inc()

	switch intent {
	case nlu.IntentEmergency:
		entities := nlu.ExtractEntities(normalized)
		observability.ResolutionsTotal.WithLabelValues(sourceHotline).Inc()

		return HotlineFor(entities.Region)

	case nlu.IntentSymptomCheck:
		// The full original query goes into the template, not the
		// extracted entities.
		return o.complete(ctx, symptomPrompt(text))

	default:
		return o.resolveData(ctx, text, normalized)
	}
}

func (o *Orchestrator) resolveData(ctx context.Context, text, normalized string) string {
	entities := nlu.ExtractEntities(normalized)

	if entities.Region != "" && entities.Condition != "" {
		ds := o.datasets.Build(ctx)

		if msg, ok := ds.Get(entities.Region, entities.Condition); ok {
			observability.ResolutionsTotal.WithLabelValues(sourceDataset).Inc()

			return msg
		}

		o.logger.Debug().
			Str("region", entities.Region).
			Str("condition", entities.Condition).
			Msg("dataset lookup miss, falling through to AI")
	}

	return o.complete(ctx, generalPrompt(text))
}

func (o *Orchestrator) complete(ctx context.Context, prompt string) string {
	reply, err := o.ai.Complete(ctx, prompt)
	if err != nil || reply == "" {
		observability.ResolutionsTotal.WithLabelValues(sourceApology).Inc()
		o.logger.Warn().Err(err).Msg("AI completion failed, substituting apology")

		return ApologyReply
	}

	observability.ResolutionsTotal.WithLabelValues(sourceAI).Inc()

	return reply
}
