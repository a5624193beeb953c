package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
)

const geocodeBody = `{"response":{"GeoObjectCollection":{"featureMember":[
	{"GeoObject":{"Point":{"pos":"37.617698 55.755864"}}},
	{"GeoObject":{"Point":{"pos":"0 0"}}}
]}}}`

type recordingObserver struct {
	calls map[string][]error
}

func (r *recordingObserver) ObserveExternal(service string, err error) {
	if r.calls == nil {
		r.calls = map[string][]error{}
	}
	r.calls[service] = append(r.calls[service], err)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	observer := &recordingObserver{}
	client := NewClient(Config{
		GeocodeURL:   srv.URL + "/geocode",
		GeocodeKey:   "geo-key",
		StaticMapURL: srv.URL + "/map",
		StaticMapKey: "map-key",
		Timeout:      time.Second,
	}, observer)
	return client, observer
}

func TestGeocodeFirstResult(t *testing.T) {
	client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode", r.URL.Path)
		assert.Equal(t, "Moscow", r.URL.Query().Get("geocode"))
		assert.Equal(t, "geo-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(geocodeBody))
	})

	coords, err := client.Geocode(context.Background(), "Moscow")
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Lon: "37.617698", Lat: "55.755864"}, coords)
	assert.Equal(t, []error{nil}, observer.calls[ServiceGeocode])
}

func TestGeocodeFailures(t *testing.T) {
	tests := []struct {
		name    string
		address string
		status  int
		body    string
	}{
		{"empty address", "  ", http.StatusOK, geocodeBody},
		{"server error", "Moscow", http.StatusInternalServerError, ""},
		{"malformed json", "Moscow", http.StatusOK, "{"},
		{"no results", "Moscow", http.StatusOK, `{"response":{"GeoObjectCollection":{"featureMember":[]}}}`},
		{"bad position", "Moscow", http.StatusOK, `{"response":{"GeoObjectCollection":{"featureMember":[{"GeoObject":{"Point":{"pos":"37.6"}}}]}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Geocode(context.Background(), tt.address)
			assert.ErrorIs(t, err, apperrors.ErrGeocodingFailed)
		})
	}
}

func TestGeocodeHonoursContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Geocode(ctx, "Moscow")
	assert.ErrorIs(t, err, apperrors.ErrGeocodingFailed)
}

func TestStaticMap(t *testing.T) {
	client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/map", r.URL.Path)
		assert.Equal(t, "37.6,55.7", q.Get("ll"))
		assert.Equal(t, "0.5,0.5", q.Get("spn"))
		assert.Equal(t, "map", q.Get("l"))
		assert.Equal(t, "37.6,55.7,pm2rdm", q.Get("pt"))
		assert.Equal(t, "map-key", q.Get("apikey"))
		_, _ = w.Write([]byte("\x89PNG"))
	})

	img, err := client.StaticMap(context.Background(), Coordinates{Lon: "37.6", Lat: "55.7"})
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), img)
	assert.Len(t, observer.calls[ServiceStaticMap], 1)
}

func TestStaticMapFailure(t *testing.T) {
	client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.StaticMap(context.Background(), Coordinates{Lon: "1", Lat: "2"})
	assert.ErrorIs(t, err, apperrors.ErrMapFetchFailed)
	require.Len(t, observer.calls[ServiceStaticMap], 1)
	assert.Error(t, observer.calls[ServiceStaticMap][0])
}
