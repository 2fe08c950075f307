package geocode_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhanukaonline/tripmate/internal/domain"
	"github.com/bhanukaonline/tripmate/internal/geocode"
)

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "temple of the tooth", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"label":"Temple of the Tooth, Kandy","coordinate":{"latitude":7.2936,"longitude":80.6413}}]`))
	}))
	defer srv.Close()

	c := geocode.New(srv.URL)

	places, err := c.Search(context.Background(), "temple of the tooth")
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Temple of the Tooth, Kandy", places[0].Label)
	assert.InDelta(t, 7.2936, places[0].Coordinate.Latitude, 1e-9)
}

func TestClient_Search_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := geocode.New(srv.URL).Search(context.Background(), "nowhere")

	assert.ErrorIs(t, err, geocode.ErrNoResults)
}

func TestClient_Search_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := geocode.New(srv.URL).Search(context.Background(), "anywhere")

	assert.ErrorIs(t, err, geocode.ErrUnavailable)
}

func TestClient_Reverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "7.2906", r.URL.Query().Get("lat"))
		assert.Equal(t, "80.6337", r.URL.Query().Get("lon"))
		w.Write([]byte(`{"label":"Kandy, Central Province"}`))
	}))
	defer srv.Close()

	label, err := geocode.New(srv.URL).Reverse(context.Background(), domain.GeoCoordinate{Latitude: 7.2906, Longitude: 80.6337})
	require.NoError(t, err)
	assert.Equal(t, "Kandy, Central Province", label)
}

func TestClient_Route(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/route", r.URL.Path)
		assert.Equal(t, "train", r.URL.Query().Get("mode"))
		w.Write([]byte(`{"polyline":[{"latitude":6.9271,"longitude":79.8612},{"latitude":7.1,"longitude":80.2},{"latitude":7.2906,"longitude":80.6337}]}`))
	}))
	defer srv.Close()

	line, err := geocode.New(srv.URL).Route(context.Background(),
		domain.GeoCoordinate{Latitude: 6.9271, Longitude: 79.8612},
		domain.GeoCoordinate{Latitude: 7.2906, Longitude: 80.6337},
		domain.ModeTrain)
	require.NoError(t, err)
	assert.Len(t, line, 3)
}

func TestClient_Route_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately: connection refused

	_, err := geocode.New(srv.URL).Route(context.Background(),
		domain.GeoCoordinate{}, domain.GeoCoordinate{}, domain.ModeBus)

	assert.ErrorIs(t, err, geocode.ErrUnavailable)
}
