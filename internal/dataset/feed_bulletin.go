package dataset

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/arogyamitra/arogya-bot/internal/vocab"
)

const (
	feedNameBulletin      = "bulletin"
	bulletinSnippetLength = 280
)

// BulletinFeed fetches an RSS health-advisory bulletin. Items are mapped to
// (region, condition) by scanning the item title against the region
// vocabulary and the item categories (falling back to the title) against the
// condition vocabulary; items that resolve to neither are dropped.
type BulletinFeed struct {
	url    string
	parser *gofeed.Parser
}

func NewBulletinFeed(url string, timeout time.Duration) *BulletinFeed {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}

	return &BulletinFeed{url: url, parser: parser}
}

func (f *BulletinFeed) Name() string { return feedNameBulletin }

func (f *BulletinFeed) Fetch(ctx context.Context) ([]Entry, error) {
	feed, err := f.parser.ParseURLWithContext(f.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse bulletin feed: %w", err)
	}

	var entries []Entry

	for _, item := range feed.Items {
		if item == nil {
			continue
		}

		region := firstVocabMatch(item.Title, vocab.Regions)
		condition := bulletinCondition(item)

		if region == "" || condition == "" {
			continue
		}

		entries = append(entries, Entry{
			Region:    region,
			Condition: condition,
			Message:   bulletinMessage(item),
		})
	}

	return entries, nil
}

func bulletinCondition(item *gofeed.Item) string {
	for _, cat := range item.Categories {
		if c := firstVocabMatch(cat, vocab.Conditions); c != "" {
			return c
		}
	}

	return firstVocabMatch(item.Title, vocab.Conditions)
}

func bulletinMessage(item *gofeed.Item) string {
	title := strings.TrimSpace(item.Title)

	snippet := strings.TrimSpace(item.Description)
	if runes := []rune(snippet); len(runes) > bulletinSnippetLength {
		snippet = string(runes[:bulletinSnippetLength]) + "..."
	}

	if snippet == "" {
		return title
	}

	return fmt.Sprintf("%s: %s", title, snippet)
}

func firstVocabMatch(text string, list []string) string {
	text = strings.ToLower(text)

	for _, entry := range list {
		if strings.Contains(text, entry) {
			return entry
		}
	}

	return ""
}
