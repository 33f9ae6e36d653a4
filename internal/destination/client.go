// Package destination fetches country information from the REST Countries
// API (https://restcountries.com). The result is best-effort display data —
// callers attach it to a trip and never depend on it for core behavior.
package destination

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/jsoderlund/wayfarer/internal/domain"
)

// DefaultBaseURL is the public REST Countries endpoint.
const DefaultBaseURL = "https://restcountries.com"

// cacheTTL bounds how long a looked-up country stays fresh. Country data
// changes on the timescale of years, so an hour is generous.
const cacheTTL = time.Hour

// Client looks up country information by name, with bounded retries and a
// small in-process cache so repeat trips to the same destination do not
// re-fetch. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	info    domain.DestinationInfo
	expires time.Time
}

// restCountry mirrors the slice of fields we read from the API response.
type restCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Capital    []string `json:"capital"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Flags struct {
		PNG string `json:"png"`
	} `json:"flags"`
}

// NewClient constructs a Client against baseURL (use DefaultBaseURL in
// production, an httptest server URL in tests). timeout applies per HTTP
// request, not per Lookup call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   make(map[string]cacheEntry),
	}
}

// Lookup fetches destination info for the named country. Transient failures
// (5xx, network errors) are retried twice with exponential backoff; a missing
// country or absent currency data fails immediately.
func (c *Client) Lookup(ctx context.Context, country string) (domain.DestinationInfo, error) {
	key := strings.ToLower(strings.TrimSpace(country))
	if key == "" {
		return domain.DestinationInfo{}, fmt.Errorf("destination.Client.Lookup: country name is empty")
	}

	if info, ok := c.cached(key); ok {
		return info, nil
	}

	var info domain.DestinationInfo
	backoff := retry.WithMaxRetries(2, retry.NewExponential(250*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		info, err = c.fetch(ctx, key)
		return err
	})
	if err != nil {
		return domain.DestinationInfo{}, fmt.Errorf("destination.Client.Lookup: %w", err)
	}

	c.store(key, info)
	return info, nil
}

// fetch performs one HTTP round trip and maps the response.
// Errors wrapped with retry.RetryableError are worth another attempt.
func (c *Client) fetch(ctx context.Context, country string) (domain.DestinationInfo, error) {
	u := c.baseURL + "/v3.1/name/" + url.PathEscape(country)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.DestinationInfo{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.DestinationInfo{}, retry.RetryableError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.DestinationInfo{}, fmt.Errorf("no country found for %q", country)
	case resp.StatusCode >= 500:
		return domain.DestinationInfo{}, retry.RetryableError(fmt.Errorf("fetch %s: status %d", u, resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return domain.DestinationInfo{}, fmt.Errorf("fetch %s: status %d", u, resp.StatusCode)
	}

	var countries []restCountry
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return domain.DestinationInfo{}, fmt.Errorf("decode response: %w", err)
	}
	if len(countries) == 0 {
		return domain.DestinationInfo{}, fmt.Errorf("no country found for %q", country)
	}

	return mapCountry(countries[0])
}

// mapCountry converts the first API match into a DestinationInfo.
func mapCountry(rc restCountry) (domain.DestinationInfo, error) {
	if len(rc.Currencies) == 0 {
		return domain.DestinationInfo{}, fmt.Errorf("currency information not available")
	}

	// The API keys currencies by code ("SEK", "EUR"); take the first code in
	// sorted order so the pick is deterministic.
	codes := make([]string, 0, len(rc.Currencies))
	for code := range rc.Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	currency := rc.Currencies[codes[0]]

	capital := "no capital found"
	if len(rc.Capital) > 0 {
		capital = rc.Capital[0]
	}

	return domain.DestinationInfo{
		Country: rc.Name.Common,
		Capital: capital,
		Currency: domain.Currency{
			Symbol: currency.Symbol,
			Name:   currency.Name,
		},
		Flag: rc.Flags.PNG,
	}, nil
}

func (c *Client) cached(key string) (domain.DestinationInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[key]
	if !ok || time.Now().After(entry.expires) {
		return domain.DestinationInfo{}, false
	}
	return entry.info, true
}

func (c *Client) store(key string, info domain.DestinationInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{info: info, expires: time.Now().Add(cacheTTL)}
}
