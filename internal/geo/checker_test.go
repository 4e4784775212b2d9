package geo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eatery/internal/config"
	"eatery/internal/entities"
	"eatery/internal/geo"

	"github.com/stretchr/testify/assert"
)

// Ресторан на Красной площади, лимит доставки 3 км.
const (
	storeLat = 55.7539
	storeLng = 37.6208
)

func newChecker(baseURL string) *geo.Checker {
	return geo.NewChecker(config.Geo{
		BaseURL:           baseURL,
		Key:               "test-key",
		StoreLat:          storeLat,
		StoreLng:          storeLng,
		MaxDistanceMeters: 3000,
		Timeout:           time.Second,
	})
}

func geocodeServer(t *testing.T, status string, locations ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/geocode/geo", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		geocodes := make([]map[string]string, 0, len(locations))
		for _, loc := range locations {
			geocodes = append(geocodes, map[string]string{"location": loc})
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status":   status,
			"geocodes": geocodes,
		})
	}))
}

func TestChecker_Check(t *testing.T) {
	testCases := []struct {
		name      string
		status    string
		locations []string
		wantErr   error
	}{
		{
			name:      "address in range",
			status:    "1",
			locations: []string{"37.6175,55.7520"}, // ~300 м от ресторана
		},
		{
			name:      "address out of range",
			status:    "1",
			locations: []string{"37.4100,55.9700"}, // ~27 км
			wantErr:   entities.ErrOutOfDeliveryRange,
		},
		{
			name:    "address not found",
			status:  "1",
			wantErr: entities.ErrAddressNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := geocodeServer(t, tc.status, tc.locations...)
			defer srv.Close()

			c := newChecker(srv.URL)
			err := c.Check(context.Background(), "some street 1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestChecker_Check_ProviderErrors(t *testing.T) {
	t.Run("provider status is not ok", func(t *testing.T) {
		srv := geocodeServer(t, "0")
		defer srv.Close()

		c := newChecker(srv.URL)
		err := c.Check(context.Background(), "some street 1")

		var external *entities.ExternalServiceError
		assert.ErrorAs(t, err, &external)
		assert.Equal(t, "geocoder", external.Service)
	})

	t.Run("provider unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := newChecker(srv.URL)
		err := c.Check(context.Background(), "some street 1")

		var external *entities.ExternalServiceError
		assert.ErrorAs(t, err, &external)
	})

	t.Run("malformed location", func(t *testing.T) {
		srv := geocodeServer(t, "1", "not-a-location")
		defer srv.Close()

		c := newChecker(srv.URL)
		err := c.Check(context.Background(), "some street 1")

		var external *entities.ExternalServiceError
		assert.ErrorAs(t, err, &external)
	})
}
