package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const feedNameCases = "cases"

var errCasesUnexpectedStatus = errors.New("case feed unexpected status")

// CaseFeed fetches the primary structured feed of per-region case counters
// and formats each record into a message keyed (region, PrimaryCondition).
type CaseFeed struct {
	url    string
	client *http.Client
}

type caseRecord struct {
	State  string `json:"state"`
	Active int    `json:"active"`
	Cured  int    `json:"cured"`
	Deaths int    `json:"deaths"`
}

type caseFeedResponse struct {
	Records []caseRecord `json:"records"`
}

func NewCaseFeed(url string, client *http.Client) *CaseFeed {
	return &CaseFeed{url: url, client: client}
}

func (f *CaseFeed) Name() string { return feedNameCases }

func (f *CaseFeed) Fetch(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create case feed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("case feed request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", errCasesUnexpectedStatus, resp.StatusCode)
	}

	var payload caseFeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode case feed: %w", err)
	}

	entries := make([]Entry, 0, len(payload.Records))

	for _, rec := range payload.Records {
		if rec.State == "" {
			continue
		}

		entries = append(entries, Entry{
			Region:    rec.State,
			Condition: PrimaryCondition,
			Message: fmt.Sprintf("COVID-19 update for %s: %d active cases, %d recovered, %d deaths.",
				rec.State, rec.Active, rec.Cured, rec.Deaths),
		})
	}

	return entries, nil
}
