package fleetapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/autopeer-io/carview/internal/carview/client"
	"github.com/autopeer-io/carview/internal/carview/controller"
	"github.com/autopeer-io/carview/internal/carview/model"
	"github.com/autopeer-io/carview/internal/carview/render"
	"github.com/autopeer-io/carview/pkg/options"
)

func newTestServer(t *testing.T, records []model.CarRecord) *httptest.Server {
	t.Helper()
	store, err := NewStore(records)
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(NewServer(options.NewHttpOptions(), store).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestGetCarHandler(t *testing.T) {
	srv := newTestServer(t, SeedRecords())

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantOwner  string
		wantGPS    bool
	}{
		{"found", "/api/car/ABC-123", http.StatusOK, "John Doe", true},
		{"lower case", "/api/car/xyz-789", http.StatusOK, "Jane Smith", true},
		{"no gps", "/api/car/GPS-000", http.StatusOK, "Matti Meikäläinen", false},
		{"unknown", "/api/car/NOPE-1", http.StatusNotFound, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if resp.Header.Get(requestIDHeader) == "" {
				t.Error("missing request id")
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var raw map[string]any
			if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
				t.Fatal(err)
			}
			if raw["owner"] != tt.wantOwner {
				t.Errorf("owner = %v, want %q", raw["owner"], tt.wantOwner)
			}
			gps, present := raw["gps"]
			if !present {
				t.Fatal("gps key must always be present")
			}
			if (gps != nil) != tt.wantGPS {
				t.Errorf("gps = %v", gps)
			}
		})
	}
}

func TestRequestIDPropagation(t *testing.T) {
	srv := newTestServer(t, SeedRecords())

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/car/ABC-123", nil)
	req.Header.Set(requestIDHeader, "req-42")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if got := resp.Header.Get(requestIDHeader); got != "req-42" {
		t.Errorf("request id = %q, want req-42", got)
	}
}

func TestProbesAndMetrics(t *testing.T) {
	srv := newTestServer(t, SeedRecords())
	empty := newTestServer(t, nil)

	tests := []struct {
		url        string
		wantStatus int
		wantBody   string
	}{
		{srv.URL + "/healthz", http.StatusOK, "ok"},
		{srv.URL + "/readyz", http.StatusOK, "ok"},
		{empty.URL + "/readyz", http.StatusServiceUnavailable, "no car records loaded"},
		{srv.URL + "/metrics", http.StatusOK, "carview_fleet_records"},
	}

	for _, tt := range tests {
		resp, err := http.Get(tt.url)
		if err != nil {
			t.Fatal(err)
		}
		var body strings.Builder
		_, _ = io.Copy(&body, resp.Body)
		resp.Body.Close()

		if resp.StatusCode != tt.wantStatus || !strings.Contains(body.String(), tt.wantBody) {
			t.Errorf("GET %s = %d %q, want %d containing %q", tt.url, resp.StatusCode, body.String(), tt.wantStatus, tt.wantBody)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, SeedRecords())

	resp, err := http.Post(srv.URL+"/api/car/ABC-123", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

type alerts []string

func (a *alerts) Alert(title, message string) { *a = append(*a, title+": "+message) }

func TestControllerAgainstFleetAPI(t *testing.T) {
	srv := newTestServer(t, SeedRecords())

	var shown alerts
	c := controller.New(
		client.New(&options.CarAPIOptions{BaseURL: srv.URL, Timeout: 2 * time.Second}),
		&shown,
	)

	c.OnPlateChanged("ABC-123")
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit(ABC-123) error = %v", err)
	}
	v := render.NewView(c.Record())
	if v.OutdoorTemp != "22.5°C" || v.Latitude != "60.169900" {
		t.Errorf("view = %+v", v)
	}

	c.OnPlateChanged("NOPE-1")
	if err := c.Submit(context.Background()); !client.IsNotFound(err) {
		t.Fatalf("Submit(NOPE-1) error = %v, want 404", err)
	}
	if len(shown) != 1 || shown[0] != "Error: Failed to fetch car data: request failed with status code 404: car not found" {
		t.Errorf("alerts = %v", shown)
	}
	if got := c.Record().Owner; got != "John Doe" {
		t.Errorf("stale owner = %q", got)
	}

	c.OnPlateChanged("GPS-000")
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit(GPS-000) error = %v", err)
	}
	if v := render.NewView(c.Record()); v.HasGPS || v.Owner != "Matti Meikäläinen" {
		t.Errorf("view = %+v", v)
	}
}
