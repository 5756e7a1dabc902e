package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const feedNameSurveillance = "surveillance"

var errSurveillanceUnexpectedStatus = errors.New("surveillance feed unexpected status")

// surveillanceConditions is the small allowed set of diseases accepted from
// the tabular feed; rows for anything else are dropped.
var surveillanceConditions = map[string]struct{}{
	"dengue":      {},
	"malaria":     {},
	"chikungunya": {},
	"cholera":     {},
}

// SurveillanceFeed fetches a secondary tabular feed of weekly disease
// surveillance rows: state,disease,cases,deaths,week.
type SurveillanceFeed struct {
	url    string
	client *http.Client
}

func NewSurveillanceFeed(url string, client *http.Client) *SurveillanceFeed {
	return &SurveillanceFeed{url: url, client: client}
}

func (f *SurveillanceFeed) Name() string { return feedNameSurveillance }

func (f *SurveillanceFeed) Fetch(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create surveillance feed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("surveillance feed request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", errSurveillanceUnexpectedStatus, resp.StatusCode)
	}

	return parseSurveillanceCSV(resp.Body)
}

func parseSurveillanceCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse surveillance csv: %w", err)
	}

	var entries []Entry

	for i, row := range rows {
		if i == 0 || len(row) < 5 {
			// Header or malformed row.
			continue
		}

		state := strings.TrimSpace(row[0])
		disease := strings.ToLower(strings.TrimSpace(row[1]))

		if state == "" {
			continue
		}

		if _, ok := surveillanceConditions[disease]; !ok {
			continue
		}

		entries = append(entries, Entry{
			Region:    state,
			Condition: disease,
			Message: fmt.Sprintf("%s in %s: %s reported cases, %s deaths (week %s).",
				titleCase(disease), state, strings.TrimSpace(row[2]), strings.TrimSpace(row[3]), strings.TrimSpace(row[4])),
		})
	}

	return entries, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
