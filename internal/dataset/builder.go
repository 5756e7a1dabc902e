package dataset

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/arogyamitra/arogya-bot/internal/platform/observability"
)

const defaultFeedTimeout = 15 * time.Second

// Feed contributes entries for a build cycle. Later feeds overwrite earlier
// ones for the exact same (region, condition) key.
type Feed interface {
	Name() string
	Fetch(ctx context.Context) ([]Entry, error)
}

// Entry is a single (region, condition) keyed message contributed by a feed.
type Entry struct {
	Region    string
	Condition string
	Message   string
}

// Builder fetches all configured feeds and merges their entries into a
// Dataset.
type Builder struct {
	feeds  []Feed
	logger *zerolog.Logger
}

// Config selects which feeds participate in a build. Feeds with an empty URL
// are skipped.
type Config struct {
	CaseFeedURL         string
	SurveillanceFeedURL string
	BulletinFeedURL     string
	Timeout             time.Duration
}

// NewBuilder wires the standard feed chain: case counters first, then the
// disease surveillance table, then the advisory bulletin. Order matters for
// the last-writer-wins merge.
func NewBuilder(cfg Config, logger *zerolog.Logger) *Builder {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultFeedTimeout
	}

	client := &http.Client{Timeout: timeout}

	var feeds []Feed

	if cfg.CaseFeedURL != "" {
		feeds = append(feeds, NewCaseFeed(cfg.CaseFeedURL, client))
	}

	if cfg.SurveillanceFeedURL != "" {
		feeds = append(feeds, NewSurveillanceFeed(cfg.SurveillanceFeedURL, client))
	}

	if cfg.BulletinFeedURL != "" {
		feeds = append(feeds, NewBulletinFeed(cfg.BulletinFeedURL, timeout))
	}

	return &Builder{feeds: feeds, logger: logger}
}

// NewBuilderWithFeeds constructs a builder over an explicit feed chain.
func NewBuilderWithFeeds(logger *zerolog.Logger, feeds ...Feed) *Builder {
	return &Builder{feeds: feeds, logger: logger}
}

// Build fetches every feed and merges the results. A feed failure only
// omits that feed's contributions; the build itself always succeeds with
// whatever data was fetched, possibly an empty dataset.
func (b *Builder) Build(ctx context.Context) Dataset {
	ds := make(Dataset)

	for _, feed := range b.feeds {
		entries, err := feed.Fetch(ctx)
		if err != nil {
			observability.FeedFailures.WithLabelValues(feed.Name()).Inc()
			b.logger.Warn().Err(err).Str("feed", feed.Name()).Msg("feed fetch failed, skipping its contributions")

			continue
		}

		for _, e := range entries {
			ds.Set(e.Region, e.Condition, e.Message)
		}

		b.logger.Debug().Str("feed", feed.Name()).Int("entries", len(entries)).Msg("feed merged")
	}

	return ds
}
