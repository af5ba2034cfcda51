package openmeteo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

const sampleResponse = `{
	"timezone": "Asia/Kolkata",
	"current": {
		"time": "2025-03-05T14:30",
		"temperature_2m": 31.2,
		"weather_code": 1,
		"wind_speed_10m": 11.2,
		"relative_humidity_2m": 58
	},
	"daily": {
		"time": ["2025-03-05", "2025-03-06"],
		"weather_code": [1, 61],
		"temperature_2m_max": [32.0, 28.5],
		"temperature_2m_min": [24.0, 22.5],
		"wind_speed_10m_max": [14.0, 22.0],
		"relative_humidity_2m_max": [70, 92]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *ForecastClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewForecastClient(srv.Client())
	c.baseURL = srv.URL
	return c
}

func TestGetForecastQueryParameters(t *testing.T) {
	var query url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(sampleResponse))
	})

	resp, err := c.GetForecast(context.Background(), 19.076, 72.8777, 5)
	if err != nil {
		t.Fatalf("GetForecast returned error: %v", err)
	}

	if got := query.Get("latitude"); got != "19.076000" {
		t.Errorf("latitude = %q, want %q", got, "19.076000")
	}
	if got := query.Get("current"); got != "temperature_2m,weather_code,wind_speed_10m,relative_humidity_2m" {
		t.Errorf("current = %q", got)
	}
	if got := query.Get("daily"); got != "weather_code,temperature_2m_max,temperature_2m_min,wind_speed_10m_max,relative_humidity_2m_max" {
		t.Errorf("daily = %q", got)
	}
	if got := query.Get("timezone"); got != "auto" {
		t.Errorf("timezone = %q, want %q", got, "auto")
	}
	if got := query.Get("forecast_days"); got != "5" {
		t.Errorf("forecast_days = %q, want %q", got, "5")
	}

	if resp.Timezone != "Asia/Kolkata" {
		t.Errorf("Timezone = %q, want %q", resp.Timezone, "Asia/Kolkata")
	}
	if resp.Current.Temperature2M == nil || *resp.Current.Temperature2M != 31.2 {
		t.Errorf("Current.Temperature2M = %v, want 31.2", resp.Current.Temperature2M)
	}
	if len(resp.Daily.Time) != 2 {
		t.Errorf("len(Daily.Time) = %d, want 2", len(resp.Daily.Time))
	}
}

func TestGetForecastOmittedCurrentFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"timezone":"UTC","current":{"time":"2025-03-05T14:30","weather_code":3},"daily":{"time":[]}}`))
	})

	resp, err := c.GetForecast(context.Background(), 0.5, 0.5, 5)
	if err != nil {
		t.Fatalf("GetForecast returned error: %v", err)
	}

	if resp.Current.Temperature2M != nil {
		t.Errorf("Temperature2M = %v, want nil when omitted", resp.Current.Temperature2M)
	}
	if resp.Current.RelativeHumidity2M != nil {
		t.Errorf("RelativeHumidity2M = %v, want nil when omitted", resp.Current.RelativeHumidity2M)
	}
	if resp.Current.WeatherCode != 3 {
		t.Errorf("WeatherCode = %d, want 3", resp.Current.WeatherCode)
	}
}

func TestGetForecastUnexpectedStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := c.GetForecast(context.Background(), 19.076, 72.8777, 5)
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("error = %v, want ErrUnexpectedStatus", err)
	}
}
