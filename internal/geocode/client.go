// Package geocode is the HTTP adapter for the place-search, reverse-geocode,
// and directions collaborators. The remote service is treated as a black box
// that returns (label, coordinate) pairs and polylines; its base URL is
// configuration, so deployments can front whichever provider they like with
// a thin gateway speaking this contract.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bhanukaonline/tripmate/internal/domain"
	"github.com/bhanukaonline/tripmate/internal/observability"
)

// Place is one candidate returned by the place search.
type Place struct {
	Label      string               `json:"label"`
	Coordinate domain.GeoCoordinate `json:"coordinate"`
}

var (
	// ErrNoResults is returned when the service answers cleanly but has
	// nothing for the query.
	ErrNoResults = errors.New("geocode: no results")
	// ErrUnavailable is returned for transport failures and non-2xx answers.
	ErrUnavailable = errors.New("geocode: service unavailable")
)

// Client talks to the geocoding gateway.
type Client struct {
	base string
	hc   *http.Client
}

// New returns a Client for the gateway at base (no trailing slash).
func New(base string) *Client {
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Search returns candidate places for a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	u := fmt.Sprintf("%s/search?q=%s", c.base, url.QueryEscape(query))

	var out []Place
	if err := c.get(ctx, "search", u, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoResults
	}
	return out, nil
}

// Reverse returns a human-readable address for a coordinate.
func (c *Client) Reverse(ctx context.Context, coord domain.GeoCoordinate) (string, error) {
	u := fmt.Sprintf("%s/reverse?lat=%s&lon=%s",
		c.base, formatCoord(coord.Latitude), formatCoord(coord.Longitude))

	var out struct {
		Label string `json:"label"`
	}
	if err := c.get(ctx, "reverse", u, &out); err != nil {
		return "", err
	}
	if out.Label == "" {
		return "", ErrNoResults
	}
	return out.Label, nil
}

// Route returns a polyline between two coordinates for the given mode.
// Callers are expected to fall back to a straight line on error.
func (c *Client) Route(ctx context.Context, start, end domain.GeoCoordinate, mode domain.TransportMode) ([]domain.GeoCoordinate, error) {
	u := fmt.Sprintf("%s/route?mode=%s&start_lat=%s&start_lon=%s&end_lat=%s&end_lon=%s",
		c.base, url.QueryEscape(string(mode)),
		formatCoord(start.Latitude), formatCoord(start.Longitude),
		formatCoord(end.Latitude), formatCoord(end.Longitude))

	var out struct {
		Polyline []domain.GeoCoordinate `json:"polyline"`
	}
	if err := c.get(ctx, "route", u, &out); err != nil {
		return nil, err
	}
	if len(out.Polyline) == 0 {
		return nil, ErrNoResults
	}
	return out.Polyline, nil
}

func (c *Client) get(ctx context.Context, endpoint, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(endpoint, 0, time.Since(start))
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal(endpoint, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: read body: %s", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode: %s", ErrUnavailable, err)
	}
	return nil
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
