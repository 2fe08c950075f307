package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhanukaonline/tripmate/internal/domain"
	"github.com/bhanukaonline/tripmate/internal/handler"
	"github.com/bhanukaonline/tripmate/internal/service"
)

func TestAddAccommodation_201(t *testing.T) {
	tripID := uuid.New()
	h := newHandler(deps{items: &mockItineraryServicer{
		addAccommodation: func(_ context.Context, gotTrip uuid.UUID, a domain.Accommodation) (domain.Accommodation, error) {
			assert.Equal(t, tripID, gotTrip)
			a.ID = uuid.New()
			return a, nil
		},
	}})

	rec := do(h, http.MethodPost, "/trips/"+tripID.String()+"/accommodations", jsonBody(t, map[string]any{
		"name":      "Hilltop Lodge",
		"check_in":  "2025-07-10T14:00:00Z",
		"check_out": "2025-07-12T11:00:00Z",
		"coordinate": map[string]float64{
			"latitude":  7.2906,
			"longitude": 80.6337,
		},
		"budget": 18000,
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Accommodation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Hilltop Lodge", got.Name)
}

func TestAddAccommodation_404_UnknownTrip(t *testing.T) {
	h := newHandler(deps{items: &mockItineraryServicer{
		addAccommodation: func(_ context.Context, _ uuid.UUID, _ domain.Accommodation) (domain.Accommodation, error) {
			return domain.Accommodation{}, domain.ErrNotFound
		},
	}})

	rec := do(h, http.MethodPost, "/trips/"+uuid.NewString()+"/accommodations", jsonBody(t, map[string]any{
		"name": "Hilltop Lodge",
	}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddActivity_422_Validation(t *testing.T) {
	h := newHandler(deps{items: &mockItineraryServicer{
		addActivity: func(_ context.Context, _ uuid.UUID, _ domain.Activity) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrValidation
		},
	}})

	rec := do(h, http.MethodPost, "/trips/"+uuid.NewString()+"/activities", jsonBody(t, map[string]any{
		"name": "",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAddTransport_201(t *testing.T) {
	var gotMode domain.TransportMode
	h := newHandler(deps{items: &mockItineraryServicer{
		addTransport: func(_ context.Context, _ uuid.UUID, tr domain.Transport) (domain.Transport, error) {
			gotMode = tr.Mode
			tr.ID = uuid.New()
			return tr, nil
		},
	}})

	rec := do(h, http.MethodPost, "/trips/"+uuid.NewString()+"/transports", jsonBody(t, map[string]any{
		"mode":           "train",
		"date_time":      "2025-07-10T08:00:00Z",
		"start_location": "Colombo Fort",
		"end_location":   "Kandy",
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.ModeTrain, gotMode)
}

func TestDeleteItem_204(t *testing.T) {
	tripID, itemID := uuid.New(), uuid.New()
	var called bool
	h := newHandler(deps{items: &mockItineraryServicer{
		deleteActivity: func(_ context.Context, gotTrip, gotItem uuid.UUID) error {
			called = true
			assert.Equal(t, tripID, gotTrip)
			assert.Equal(t, itemID, gotItem)
			return nil
		},
	}})

	rec := do(h, http.MethodDelete, "/trips/"+tripID.String()+"/activities/"+itemID.String(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)
}

func TestDeleteItem_404_MissingItem(t *testing.T) {
	h := newHandler(deps{items: &mockItineraryServicer{
		deleteTransport: func(_ context.Context, _, _ uuid.UUID) error { return domain.ErrNotFound },
	}})

	rec := do(h, http.MethodDelete, "/trips/"+uuid.NewString()+"/transports/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "transport not found", body.Error.Message)
}

func TestDeleteItem_400_BadItemID(t *testing.T) {
	h := newHandler(deps{})

	rec := do(h, http.MethodDelete, "/trips/"+uuid.NewString()+"/accommodations/nope", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRoute_200(t *testing.T) {
	h := newHandler(deps{items: &mockItineraryServicer{
		route: func(_ context.Context, _, _ uuid.UUID) (service.RouteResult, error) {
			return service.RouteResult{
				Mode:     domain.ModeTaxi,
				Polyline: []domain.GeoCoordinate{{Latitude: 6.9}, {Latitude: 7.2}},
				Fallback: true,
			}, nil
		},
	}})

	rec := do(h, http.MethodGet, "/trips/"+uuid.NewString()+"/transports/"+uuid.NewString()+"/route", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got service.RouteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Fallback)
	assert.Len(t, got.Polyline, 2)
}
