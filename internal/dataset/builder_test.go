package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"
)

var errFeedDown = errors.New("feed down")

type stubFeed struct {
	name    string
	entries []Entry
	err     error
}

func (f *stubFeed) Name() string { return f.name }

func (f *stubFeed) Fetch(_ context.Context) ([]Entry, error) {
	return f.entries, f.err
}

func testLogger() *zerolog.Logger {
	nop := zerolog.Nop()

	return &nop
}

func TestBuildMergeLastWriterWins(t *testing.T) {
	primary := &stubFeed{name: "primary", entries: []Entry{
		{Region: "Kerala", Condition: "covid-19", Message: "primary message"},
		{Region: "Kerala", Condition: "dengue", Message: "primary dengue"},
	}}
	secondary := &stubFeed{name: "secondary", entries: []Entry{
		{Region: "Kerala", Condition: "covid-19", Message: "secondary message"},
		{Region: "Telangana", Condition: "malaria", Message: "secondary malaria"},
	}}

	ds := NewBuilderWithFeeds(testLogger(), primary, secondary).Build(context.Background())

	if msg, _ := ds.Get("kerala", "covid-19"); msg != "secondary message" {
		t.Errorf("shared key: got %q, want secondary feed's value", msg)
	}

	if msg, _ := ds.Get("kerala", "dengue"); msg != "primary dengue" {
		t.Errorf("primary-only key lost: got %q", msg)
	}

	if msg, _ := ds.Get("telangana", "malaria"); msg != "secondary malaria" {
		t.Errorf("secondary-only key lost: got %q", msg)
	}
}

func TestBuildPrimaryFailureIsolated(t *testing.T) {
	primary := &stubFeed{name: "primary", err: errFeedDown}
	secondary := &stubFeed{name: "secondary", entries: []Entry{
		{Region: "Kerala", Condition: "dengue", Message: "dengue message"},
	}}

	ds := NewBuilderWithFeeds(testLogger(), primary, secondary).Build(context.Background())

	if _, ok := ds.Get("kerala", "covid-19"); ok {
		t.Error("expected no primary contributions after primary failure")
	}

	if msg, ok := ds.Get("kerala", "dengue"); !ok || msg != "dengue message" {
		t.Errorf("secondary contribution missing: got %q, ok=%v", msg, ok)
	}
}

func TestBuildSecondaryFailureIsolated(t *testing.T) {
	primary := &stubFeed{name: "primary", entries: []Entry{
		{Region: "Kerala", Condition: "covid-19", Message: "primary message"},
	}}
	secondary := &stubFeed{name: "secondary", err: errFeedDown}

	ds := NewBuilderWithFeeds(testLogger(), primary, secondary).Build(context.Background())

	if msg, ok := ds.Get("kerala", "covid-19"); !ok || msg != "primary message" {
		t.Errorf("primary contribution missing: got %q, ok=%v", msg, ok)
	}
}

func TestBuildAllFeedsFailEmptyDataset(t *testing.T) {
	ds := NewBuilderWithFeeds(testLogger(),
		&stubFeed{name: "primary", err: errFeedDown},
		&stubFeed{name: "secondary", err: errFeedDown},
	).Build(context.Background())

	if len(ds) != 0 {
		t.Errorf("expected empty dataset, got %d regions", len(ds))
	}
}

func TestCaseFeedFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)

		_, err := w.Write([]byte(`{"records": [{"state": "Kerala", "active": 120, "cured": 450, "deaths": 7}]}`))
		if err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer ts.Close()

	feed := NewCaseFeed(ts.URL, &http.Client{Timeout: 5 * time.Second})

	entries, err := feed.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	want := Entry{
		Region:    "Kerala",
		Condition: PrimaryCondition,
		Message:   "COVID-19 update for Kerala: 120 active cases, 450 recovered, 7 deaths.",
	}
	if entries[0] != want {
		t.Errorf("entry mismatch:\n got %+v\nwant %+v", entries[0], want)
	}
}

func TestCaseFeedFetchErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	feed := NewCaseFeed(ts.URL, &http.Client{Timeout: 5 * time.Second})

	if _, err := feed.Fetch(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestSurveillanceFeedFetch(t *testing.T) {
	csvBody := "state,disease,cases,deaths,week\n" +
		"Kerala,Dengue,45,2,31\n" +
		"Kerala,Scurvy,3,0,31\n" +
		"Telangana,malaria,12,0,31\n"

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write([]byte(csvBody)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer ts.Close()

	feed := NewSurveillanceFeed(ts.URL, &http.Client{Timeout: 5 * time.Second})

	entries, err := feed.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The scurvy row is outside the allowed condition set and dropped.
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Message != "Dengue in Kerala: 45 reported cases, 2 deaths (week 31)." {
		t.Errorf("unexpected message: %q", entries[0].Message)
	}

	if entries[1].Region != "Telangana" || entries[1].Condition != "malaria" {
		t.Errorf("unexpected entry key: %+v", entries[1])
	}
}

func TestBulletinFeedFetch(t *testing.T) {
	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Health Advisories</title>
<item><title>Dengue advisory for Kerala</title><description>Avoid stagnant water.</description><category>dengue</category></item>
<item><title>General wellness tips</title><description>No region here.</description></item>
</channel></rss>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")

		if _, err := w.Write([]byte(rss)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer ts.Close()

	feed := NewBulletinFeed(ts.URL, 5*time.Second)

	entries, err := feed.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if entries[0].Region != "kerala" || entries[0].Condition != "dengue" {
		t.Errorf("unexpected entry key: %+v", entries[0])
	}

	if entries[0].Message != "Dengue advisory for Kerala: Avoid stagnant water." {
		t.Errorf("unexpected message: %q", entries[0].Message)
	}
}

func TestBulletinMessageTruncatesOnRuneBoundary(t *testing.T) {
	// Devanagari codepoints are multibyte; a byte-indexed cut would split one.
	long := strings.Repeat("डेंगू ", 100)

	msg := bulletinMessage(&gofeed.Item{Title: "Dengue advisory", Description: long})

	if !utf8.ValidString(msg) {
		t.Fatalf("message is not valid UTF-8: %q", msg)
	}

	if !strings.HasSuffix(msg, "...") {
		t.Errorf("expected truncation marker, got %q", msg)
	}

	body := strings.TrimPrefix(msg, "Dengue advisory: ")
	if got := utf8.RuneCountInString(strings.TrimSuffix(body, "...")); got != bulletinSnippetLength {
		t.Errorf("snippet length: got %d runes, want %d", got, bulletinSnippetLength)
	}
}
