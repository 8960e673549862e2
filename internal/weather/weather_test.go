package weather

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/julianstephens/dailydash/internal/constants"
)

func newTestClient(t *testing.T, temperature float64, code int) (*Client, *atomic.Int32, *atomic.Int32) {
	t.Helper()
	var geoCalls, fcCalls atomic.Int32

	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geoCalls.Add(1)
		if r.URL.Query().Get("name") == "Nowhere" {
			fmt.Fprint(w, `{"results": []}`)
			return
		}
		fmt.Fprint(w, `{"results": [{"latitude": 38.7, "longitude": -9.1}]}`)
	}))
	t.Cleanup(geo.Close)

	fc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fcCalls.Add(1)
		temp := temperature
		if r.URL.Query().Get("temperature_unit") == "fahrenheit" {
			temp = temperature*9/5 + 32
		}
		fmt.Fprintf(w, `{"current_weather": {"temperature": %f, "weathercode": %d}}`, temp, code)
	}))
	t.Cleanup(fc.Close)

	c := NewClient()
	c.geocodeURL = geo.URL
	c.forecastURL = fc.URL
	return c, &geoCalls, &fcCalls
}

func waitForDisplay(t *testing.T, c *Client, city, units, placeholder string) string {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		got := c.Display(city, units)
		if got != placeholder {
			return got
		}
		select {
		case <-deadline:
			t.Fatalf("display never moved past %q", placeholder)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestDisplayReturnsPlaceholderThenValue(t *testing.T) {
	c, _, _ := newTestClient(t, 21.5, 1)

	if got := c.Display("Lisbon", constants.UnitMetric); got != Placeholder {
		t.Errorf("first call = %q, want placeholder", got)
	}

	got := waitForDisplay(t, c, "Lisbon", constants.UnitMetric, Placeholder)
	want := "Lisbon: ☀ 21.5°C"
	if got != want {
		t.Errorf("display = %q, want %q", got, want)
	}
}

func TestDisplayCachesWithinTTL(t *testing.T) {
	c, geoCalls, _ := newTestClient(t, 18.0, 61)
	c.Display("Lisbon", constants.UnitMetric)
	waitForDisplay(t, c, "Lisbon", constants.UnitMetric, Placeholder)

	for i := 0; i < 10; i++ {
		c.Display("Lisbon", constants.UnitMetric)
	}

	if calls := geoCalls.Load(); calls != 1 {
		t.Errorf("geocode called %d times within TTL, want 1", calls)
	}
}

func TestDisplayRefreshesAfterTTL(t *testing.T) {
	c, geoCalls, _ := newTestClient(t, 18.0, 61)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Display("Lisbon", constants.UnitMetric)
	stale := waitForDisplay(t, c, "Lisbon", constants.UnitMetric, Placeholder)

	// Past the TTL the stale value is returned immediately while a
	// background refresh runs.
	c.now = func() time.Time { return base.Add(constants.WeatherTTL + time.Minute) }
	if got := c.Display("Lisbon", constants.UnitMetric); got != stale {
		t.Errorf("stale read = %q, want previous value %q", got, stale)
	}

	waitFor := time.After(2 * time.Second)
	for geoCalls.Load() < 2 {
		select {
		case <-waitFor:
			t.Fatal("no background refresh after TTL")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestDisplayImperialUnits(t *testing.T) {
	c, _, _ := newTestClient(t, 20.0, 1)
	c.Display("Lisbon", constants.UnitImperial)
	got := waitForDisplay(t, c, "Lisbon", constants.UnitImperial, Placeholder)
	if !strings.Contains(got, "68.0°F") {
		t.Errorf("imperial display = %q, want Fahrenheit", got)
	}
}

func TestDisplayUnknownCity(t *testing.T) {
	c, _, _ := newTestClient(t, 20.0, 1)
	c.Display("Nowhere", constants.UnitMetric)
	got := waitForDisplay(t, c, "Nowhere", constants.UnitMetric, Placeholder)
	if got != "Nowhere: not found" {
		t.Errorf("display = %q", got)
	}
}

func TestDisplayEmptyCity(t *testing.T) {
	c := NewClient()
	if got := c.Display("", constants.UnitMetric); got != "no city configured" {
		t.Errorf("display = %q", got)
	}
}

func TestConditionIcon(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{code: 0, want: "☀"},
		{code: 3, want: "☀"},
		{code: 45, want: "☁"},
		{code: 61, want: "🌧"},
		{code: 75, want: "❄"},
	}
	for _, tt := range tests {
		if got := conditionIcon(tt.code); got != tt.want {
			t.Errorf("conditionIcon(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
