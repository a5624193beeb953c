// Package geocoder resolves addresses to coordinates and fetches static map
// images from the Yandex geocoder and static maps APIs.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yigit/jobtracker/internal/pkg/apperrors"
)

// Service names used when reporting external calls
const (
	ServiceGeocode   = "geocoder"
	ServiceStaticMap = "static_map"
)

const maxMapBytes = 10 << 20

// Observer is notified after every external call
type Observer interface {
	ObserveExternal(service string, err error)
}

// Config holds the provider endpoints and keys
type Config struct {
	GeocodeURL   string
	GeocodeKey   string
	StaticMapURL string
	StaticMapKey string
	Span         string
	Timeout      time.Duration
}

// Coordinates is a "lon lat" pair as returned by the geocoder
type Coordinates struct {
	Lon string
	Lat string
}

// String renders "lon,lat"
func (c Coordinates) String() string {
	return c.Lon + "," + c.Lat
}

// Client calls the geocoding and static map services
type Client struct {
	config   Config
	http     *http.Client
	observer Observer
}

// NewClient creates a client. observer may be nil.
func NewClient(config Config, observer Observer) *Client {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.Span == "" {
		config.Span = "0.5,0.5"
	}
	return &Client{
		config:   config,
		http:     &http.Client{Timeout: config.Timeout},
		observer: observer,
	}
}

type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Geocode returns the coordinates of the first match for address
func (c *Client) Geocode(ctx context.Context, address string) (Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Coordinates{}, fmt.Errorf("%w: address is empty", apperrors.ErrGeocodingFailed)
	}

	coords, err := c.geocode(ctx, address)
	c.observe(ServiceGeocode, err)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", apperrors.ErrGeocodingFailed, err)
	}
	return coords, nil
}

func (c *Client) geocode(ctx context.Context, address string) (Coordinates, error) {
	params := url.Values{}
	params.Set("apikey", c.config.GeocodeKey)
	params.Set("geocode", address)
	params.Set("format", "json")

	body, err := c.get(ctx, c.config.GeocodeURL, params)
	if err != nil {
		return Coordinates{}, err
	}

	var payload geocodeResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return Coordinates{}, fmt.Errorf("malformed geocoder response: %w", err)
	}

	members := payload.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return Coordinates{}, fmt.Errorf("no results for %q", address)
	}

	parts := strings.Fields(members[0].GeoObject.Point.Pos)
	if len(parts) != 2 {
		return Coordinates{}, fmt.Errorf("unexpected position %q", members[0].GeoObject.Point.Pos)
	}
	return Coordinates{Lon: parts[0], Lat: parts[1]}, nil
}

// StaticMap fetches a map image centred on coords with a marker
func (c *Client) StaticMap(ctx context.Context, coords Coordinates) ([]byte, error) {
	params := url.Values{}
	params.Set("ll", coords.String())
	params.Set("spn", c.config.Span)
	params.Set("l", "map")
	params.Set("pt", coords.String()+",pm2rdm")
	params.Set("apikey", c.config.StaticMapKey)

	body, err := c.get(ctx, c.config.StaticMapURL, params)
	if err == nil && len(body) == 0 {
		err = fmt.Errorf("empty map image")
	}
	c.observe(ServiceStaticMap, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMapFetchFailed, err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMapBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

func (c *Client) observe(service string, err error) {
	if c.observer != nil {
		c.observer.ObserveExternal(service, err)
	}
}
