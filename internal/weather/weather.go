// Package weather fetches a one-line current-conditions string from the
// Open-Meteo public API. Results are cached per (city, unit system) for a
// fixed TTL and refreshed in the background, so callers are never blocked
// on network I/O.
package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/julianstephens/dailydash/internal/constants"
	"github.com/julianstephens/dailydash/internal/logger"
)

// Placeholder is shown while the first fetch for a key is in flight.
const Placeholder = "fetching weather..."

type cacheKey struct {
	city  string
	units string
}

type cacheEntry struct {
	display   string
	fetchedAt time.Time
	fetching  bool
}

// Client caches weather lookups.
type Client struct {
	mu    sync.Mutex
	cache map[cacheKey]*cacheEntry

	httpClient  *http.Client
	geocodeURL  string
	forecastURL string
	ttl         time.Duration
	now         func() time.Time
}

// NewClient returns a client with the default Open-Meteo endpoints.
func NewClient() *Client {
	return &Client{
		cache:       map[cacheKey]*cacheEntry{},
		httpClient:  &http.Client{Timeout: 5 * time.Second},
		geocodeURL:  "https://geocoding-api.open-meteo.com/v1/search",
		forecastURL: "https://api.open-meteo.com/v1/forecast",
		ttl:         constants.WeatherTTL,
		now:         time.Now,
	}
}

// Display returns the weather line for the city without blocking. A fresh
// cache hit is returned directly; a stale or missing entry kicks off a
// background refresh and returns the stale value or a placeholder.
func (c *Client) Display(city, units string) string {
	if city == "" {
		return "no city configured"
	}

	key := cacheKey{city: city, units: units}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.cache[key]
	if ok && c.now().Sub(entry.fetchedAt) < c.ttl {
		return entry.display
	}

	if entry == nil {
		entry = &cacheEntry{display: Placeholder}
		c.cache[key] = entry
	}
	if !entry.fetching {
		entry.fetching = true
		go c.refresh(key)
	}
	return entry.display
}

func (c *Client) refresh(key cacheKey) {
	display, err := c.fetch(key.city, key.units)

	c.mu.Lock()
	defer c.mu.Unlock()
	entry := c.cache[key]
	entry.fetching = false
	if err != nil {
		// Keep showing the stale value; retry after a full TTL elapses.
		logger.Warn("weather fetch failed", "city", key.city, "error", err)
		entry.fetchedAt = c.now()
		return
	}
	entry.display = display
	entry.fetchedAt = c.now()
}

type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

func (c *Client) fetch(city, units string) (string, error) {
	geoURL := fmt.Sprintf("%s?name=%s&count=1&language=en&format=json", c.geocodeURL, url.QueryEscape(city))
	var geo geocodeResponse
	if err := c.getJSON(geoURL, &geo); err != nil {
		return "", fmt.Errorf("geocode: %w", err)
	}
	if len(geo.Results) == 0 {
		return fmt.Sprintf("%s: not found", city), nil
	}

	fcURL := fmt.Sprintf("%s?latitude=%f&longitude=%f&current_weather=true",
		c.forecastURL, geo.Results[0].Latitude, geo.Results[0].Longitude)
	unitLabel := "°C"
	if units == constants.UnitImperial {
		fcURL += "&temperature_unit=fahrenheit"
		unitLabel = "°F"
	}

	var fc forecastResponse
	if err := c.getJSON(fcURL, &fc); err != nil {
		return "", fmt.Errorf("forecast: %w", err)
	}

	cw := fc.CurrentWeather
	return fmt.Sprintf("%s: %s %.1f%s", city, conditionIcon(cw.WeatherCode), cw.Temperature, unitLabel), nil
}

func (c *Client) getJSON(rawURL string, out interface{}) error {
	resp, err := c.httpClient.Get(rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// conditionIcon maps WMO weather codes to a rough glyph.
func conditionIcon(code int) string {
	switch {
	case code > 70:
		return "❄"
	case code > 50:
		return "🌧"
	case code > 3:
		return "☁"
	default:
		return "☀"
	}
}
