// Package statsbomb fetches immutable JSON documents from the StatsBomb
// open-data store: competitions, matches, events and lineups. Responses are
// parsed into the typed models of this package and cached forever, since
// the underlying data is a fixed historical record.
package statsbomb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fortuna/pitchside/internal/cache"
)

// BaseURL is the public StatsBomb open-data raw-file root.
const BaseURL = "https://raw.githubusercontent.com/statsbomb/open-data/master/data"

const requestTimeout = 15 * time.Second

// Client fetches and caches StatsBomb open-data documents.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      cache.Store
}

// New creates a client with a custom base URL and response cache.
func New(baseURL string, store cache.Store) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		store:      store,
	}
}

// NewClient creates a client against the public open-data store.
func NewClient(store cache.Store) *Client {
	return New(BaseURL, store)
}

// Competitions fetches competitions.json. A non-success response is a hard
// error: nothing downstream is usable without the competition index.
func (c *Client) Competitions(ctx context.Context) ([]Competition, error) {
	body, err := c.fetch(ctx, cache.Key("competitions"), "%s/competitions.json", c.baseURL)
	if err != nil {
		return nil, err
	}

	var comps []Competition
	if err := json.Unmarshal(body, &comps); err != nil {
		return nil, fmt.Errorf("decoding competitions: %w", err)
	}
	return comps, nil
}

// Matches fetches the match list for a competition season. Absence degrades
// to an empty list so the rest of the page still renders.
func (c *Client) Matches(ctx context.Context, competitionID, seasonID int) ([]Match, error) {
	body, err := c.fetch(ctx, cache.Key("matches", competitionID, seasonID),
		"%s/matches/%d/%d.json", c.baseURL, competitionID, seasonID)
	if err != nil {
		if isNotSuccess(err) {
			log.Printf("[statsbomb] matches %d/%d unavailable: %v", competitionID, seasonID, err)
			return nil, nil
		}
		return nil, err
	}

	var matches []Match
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, fmt.Errorf("decoding matches: %w", err)
	}
	return matches, nil
}

// Events fetches the full event sequence for a match. Absence degrades to
// an empty list.
func (c *Client) Events(ctx context.Context, matchID int) ([]Event, error) {
	body, err := c.fetch(ctx, cache.Key("events", matchID), "%s/events/%d.json", c.baseURL, matchID)
	if err != nil {
		if isNotSuccess(err) {
			log.Printf("[statsbomb] events for match %d unavailable: %v", matchID, err)
			return nil, nil
		}
		return nil, err
	}

	var events []Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}
	return events, nil
}

// Lineups fetches both teams' lineups for a match. Absence degrades to an
// empty list ("lineup data unavailable" tier).
func (c *Client) Lineups(ctx context.Context, matchID int) ([]TeamLineup, error) {
	body, err := c.fetch(ctx, cache.Key("lineups", matchID), "%s/lineups/%d.json", c.baseURL, matchID)
	if err != nil {
		if isNotSuccess(err) {
			log.Printf("[statsbomb] lineups for match %d unavailable: %v", matchID, err)
			return nil, nil
		}
		return nil, err
	}

	var lineups []TeamLineup
	if err := json.Unmarshal(body, &lineups); err != nil {
		return nil, fmt.Errorf("decoding lineups: %w", err)
	}
	return lineups, nil
}

// statusError marks a non-2xx response so callers can tell "document is
// absent" apart from transport failures.
type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("statsbomb returned status %d for %s", e.code, e.url)
}

func isNotSuccess(err error) bool {
	var se *statusError
	return errors.As(err, &se)
}

// fetch returns the raw document for the given URL, serving from the cache
// when possible and caching successful responses without expiry.
func (c *Client) fetch(ctx context.Context, key, format string, args ...interface{}) ([]byte, error) {
	if cached, err := c.store.Get(ctx, key); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		// A broken cache backend should not take the feed down.
		log.Printf("[statsbomb] cache get %s: %v", key, err)
	}

	url := fmt.Sprintf(format, args...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, url: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if err := c.store.Set(ctx, key, body); err != nil {
		log.Printf("[statsbomb] cache set %s: %v", key, err)
	}

	return body, nil
}
