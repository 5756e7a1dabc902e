// Package broadcast implements the scheduled daily alert job: one dataset
// build per run, fanned out sequentially to every daily subscriber.
package broadcast

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arogyamitra/arogya-bot/internal/chunk"
	"github.com/arogyamitra/arogya-bot/internal/dataset"
	"github.com/arogyamitra/arogya-bot/internal/gateway"
	"github.com/arogyamitra/arogya-bot/internal/platform/observability"
	"github.com/arogyamitra/arogya-bot/internal/platform/worker"
	"github.com/arogyamitra/arogya-bot/internal/storage"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	sendStatusOK     = "ok"
	sendStatusFailed = "failed"

	// GenericSafetyMessage is sent to subscribers whose region has no
	// dataset entries for the run.
	GenericSafetyMessage = "Daily health reminder: wash hands regularly, drink clean water, and consult a doctor if you feel unwell. Dial 1075 for the national health helpline."
)

// SubscriberSource lists the subscribers for one broadcast cycle.
type SubscriberSource interface {
	ListSubscribersByFrequency(ctx context.Context, frequency string) ([]storage.Subscriber, error)
}

// DatasetSource builds the regional dataset once per run.
type DatasetSource interface {
	Build(ctx context.Context) dataset.Dataset
}

type Broadcaster struct {
	store      SubscriberSource
	datasets   DatasetSource
	gw         gateway.Sender
	chunkBound int
	logger     *zerolog.Logger
}

func New(store SubscriberSource, datasets DatasetSource, gw gateway.Sender, chunkBound int, logger *zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		store:      store,
		datasets:   datasets,
		gw:         gw,
		chunkBound: chunkBound,
		logger:     logger,
	}
}

// RunOnce executes a single broadcast cycle. The dataset is built once for
// the whole run; a send failure for one subscriber is logged and does not
// stop the rest.
func (b *Broadcaster) RunOnce(ctx context.Context) error {
	defer worker.RecoverPanic(b.logger, "broadcast run")

	start := time.Now()
	defer func() {
		observability.BroadcastRunDuration.Observe(time.Since(start).Seconds())
	}()

	subs, err := b.store.ListSubscribersByFrequency(ctx, storage.FrequencyDaily)
	if err != nil {
		return fmt.Errorf("list daily subscribers: %w", err)
	}

	ds := b.datasets.Build(ctx)

	b.logger.Info().Int("subscribers", len(subs)).Msg("broadcast cycle starting")

	for i := range subs {
		sub := subs[i]

		if err := b.sendAlert(ctx, sub, ComposeAlert(ds, sub.Region)); err != nil {
			observability.BroadcastSends.WithLabelValues(sendStatusFailed).Inc()
			b.logger.Warn().Err(err).Str("phone", sub.Phone).Msg("broadcast send failed, continuing")

			continue
		}

		observability.BroadcastSends.WithLabelValues(sendStatusOK).Inc()
	}

	b.logger.Info().Dur("duration", time.Since(start)).Msg("broadcast cycle finished")

	return nil
}

func (b *Broadcaster) sendAlert(ctx context.Context, sub storage.Subscriber, text string) error {
	for _, part := range chunk.Split(text, b.chunkBound) {
		if err := b.gw.Send(ctx, sub.Phone, part); err != nil {
			return err
		}
	}

	return nil
}

// ComposeAlert builds the alert text for one subscriber region: a header
// naming the region followed by all of the region's condition messages, or
// the generic safety message when the region has no data.
func ComposeAlert(ds dataset.Dataset, region string) string {
	conditions, ok := ds.Region(region)
	if !ok || len(conditions) == 0 {
		return GenericSafetyMessage
	}

	keys := make([]string, 0, len(conditions))
	for k := range conditions {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var sb strings.Builder

	title := cases.Title(language.English).String(strings.TrimSpace(region))
	sb.WriteString(fmt.Sprintf("Health alert for %s:\n", title))

	for _, k := range keys {
		sb.WriteString(conditions[k])
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}
