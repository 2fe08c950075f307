package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhanukaonline/tripmate/internal/domain"
	"github.com/bhanukaonline/tripmate/internal/geocode"
	"github.com/bhanukaonline/tripmate/internal/media"
	"github.com/bhanukaonline/tripmate/internal/reminder"
	"github.com/bhanukaonline/tripmate/internal/timeline"
)

// ---- GET /trips/{id}/timeline ----------------------------------------------

func TestGetTimeline_200(t *testing.T) {
	tripID := uuid.New()
	h := newHandler(deps{trips: &mockTripServicer{
		timeline: func(_ context.Context, id uuid.UUID) (timeline.Timeline, error) {
			return timeline.Timeline{
				TripID: id,
				Days: []timeline.Day{{
					Number: 1,
					Date:   time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
					Items:  []timeline.Item{},
				}},
			}, nil
		},
	}})

	rec := do(h, http.MethodGet, "/trips/"+tripID.String()+"/timeline", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got timeline.Timeline
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, tripID, got.TripID)
	require.Len(t, got.Days, 1)
	assert.Equal(t, 1, got.Days[0].Number)
}

func TestGetTimeline_404(t *testing.T) {
	h := newHandler(deps{trips: &mockTripServicer{
		timeline: func(_ context.Context, _ uuid.UUID) (timeline.Timeline, error) {
			return timeline.Timeline{}, domain.ErrNotFound
		},
	}})

	rec := do(h, http.MethodGet, "/trips/"+uuid.NewString()+"/timeline", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /trips/{id}/reminders ---------------------------------------------

func TestListReminders_200(t *testing.T) {
	tripID := uuid.New()
	h := newHandler(deps{trips: &mockTripServicer{
		reminders: func(_ context.Context, id uuid.UUID) ([]reminder.Reminder, error) {
			return []reminder.Reminder{{
				ID:     "pretrip-" + id.String(),
				TripID: id,
				Title:  "Trip coming up!",
				FireAt: time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
			}}, nil
		},
	}})

	rec := do(h, http.MethodGet, "/trips/"+tripID.String()+"/reminders", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []reminder.Reminder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, tripID, got[0].TripID)
}

// ---- GET /trips/{id}/calendar.ics ------------------------------------------

func TestGetCalendar_200(t *testing.T) {
	h := newHandler(deps{trips: &mockTripServicer{
		calendar: func(_ context.Context, _ uuid.UUID) ([]byte, error) {
			return []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil
		},
	}})

	rec := do(h, http.MethodGet, "/trips/"+uuid.NewString()+"/calendar.ics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
}

// ---- PUT/GET /trips/{id}/image ---------------------------------------------

func TestSetImage_200(t *testing.T) {
	fixture := tripFixture()
	fixture.ImageRef = "abc.png"
	h := newHandler(deps{trips: &mockTripServicer{
		setImage: func(_ context.Context, _ uuid.UUID, data []byte) (domain.Trip, error) {
			assert.Equal(t, []byte("fake-image"), data)
			return fixture, nil
		},
	}})

	rec := do(h, http.MethodPut, "/trips/"+fixture.ID.String()+"/image", bytes.NewBufferString("fake-image"))

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "abc.png", got.ImageRef)
}

func TestGetImage_200(t *testing.T) {
	fixture := tripFixture()
	fixture.ImageRef = "abc.png"
	h := newHandler(deps{
		trips: &mockTripServicer{
			getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) { return fixture, nil },
		},
		images: &mockImages{
			open: func(name string) ([]byte, string, error) {
				assert.Equal(t, "abc.png", name)
				return []byte{0x89, 'P', 'N', 'G'}, "image/png", nil
			},
		},
	})

	rec := do(h, http.MethodGet, "/trips/"+fixture.ID.String()+"/image", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestGetImage_404_NoImageSet(t *testing.T) {
	h := newHandler(deps{trips: &mockTripServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) { return tripFixture(), nil },
	}})

	rec := do(h, http.MethodGet, "/trips/"+uuid.NewString()+"/image", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetImage_404_FileMissing(t *testing.T) {
	fixture := tripFixture()
	fixture.ImageRef = "gone.png"
	h := newHandler(deps{
		trips: &mockTripServicer{
			getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) { return fixture, nil },
		},
		images: &mockImages{
			open: func(string) ([]byte, string, error) { return nil, "", media.ErrNotFound },
		},
	})

	rec := do(h, http.MethodGet, "/trips/"+fixture.ID.String()+"/image", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /places -----------------------------------------------------------

func TestSearchPlaces_200(t *testing.T) {
	h := newHandler(deps{places: &mockPlaces{
		search: func(_ context.Context, q string) ([]geocode.Place, error) {
			assert.Equal(t, "Kandy", q)
			return []geocode.Place{{
				Label:      "Kandy, Sri Lanka",
				Coordinate: domain.GeoCoordinate{Latitude: 7.2906, Longitude: 80.6337},
			}}, nil
		},
	}})

	rec := do(h, http.MethodGet, "/places?q=Kandy", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []geocode.Place
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Kandy, Sri Lanka", got[0].Label)
}

func TestSearchPlaces_400_MissingQuery(t *testing.T) {
	h := newHandler(deps{})

	rec := do(h, http.MethodGet, "/places", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchPlaces_404_NoResults(t *testing.T) {
	h := newHandler(deps{places: &mockPlaces{
		search: func(_ context.Context, _ string) ([]geocode.Place, error) {
			return nil, geocode.ErrNoResults
		},
	}})

	rec := do(h, http.MethodGet, "/places?q=nowhere", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchPlaces_502_Unavailable(t *testing.T) {
	h := newHandler(deps{places: &mockPlaces{
		search: func(_ context.Context, _ string) ([]geocode.Place, error) {
			return nil, geocode.ErrUnavailable
		},
	}})

	rec := do(h, http.MethodGet, "/places?q=Kandy", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestReversePlace_200(t *testing.T) {
	h := newHandler(deps{places: &mockPlaces{
		reverse: func(_ context.Context, c domain.GeoCoordinate) (string, error) {
			assert.InDelta(t, 7.2906, c.Latitude, 1e-9)
			return "Kandy, Sri Lanka", nil
		},
	}})

	rec := do(h, http.MethodGet, "/places/reverse?lat=7.2906&lon=80.6337", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kandy, Sri Lanka")
}

func TestReversePlace_400_MissingCoords(t *testing.T) {
	h := newHandler(deps{})

	rec := do(h, http.MethodGet, "/places/reverse?lat=7.29", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- GET /export -----------------------------------------------------------

func exportRows() []domain.ExportRow {
	date := time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC)
	return []domain.ExportRow{
		{
			TripID:        uuid.NewString(),
			TripName:      "Kandy Weekend",
			TripStartDate: "2025-07-10",
			TripEndDate:   "2025-07-12",
			TripBudget:    50000,
		},
		{
			TripID:        uuid.NewString(),
			TripName:      "Kandy Weekend",
			TripStartDate: "2025-07-10",
			TripEndDate:   "2025-07-12",
			TripBudget:    50000,
			ItemKind:      string(domain.KindTransport),
			ItemID:        uuid.NewString(),
			ItemName:      "Colombo Fort → Kandy",
			ItemDate:      &date,
			ItemBudget:    1500,
		},
	}
}

func TestExport_JSON(t *testing.T) {
	h := newHandler(deps{export: &mockExporter{
		export: func(_ context.Context) ([]domain.ExportRow, error) { return exportRows(), nil },
	}})

	rec := do(h, http.MethodGet, "/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	var got []domain.ExportRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestExport_CSV(t *testing.T) {
	h := newHandler(deps{export: &mockExporter{
		export: func(_ context.Context) ([]domain.ExportRow, error) { return exportRows(), nil },
	}})

	rec := do(h, http.MethodGet, "/export?format=csv", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3) // header + two rows
	assert.True(t, strings.HasPrefix(lines[0], "trip_id,trip_name"))
	assert.Contains(t, lines[2], "transport")
	assert.Contains(t, lines[2], "2025-07-10T08:00:00Z")
}
