package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"eatery/internal/config"
	"eatery/internal/entities"
)

const earthRadiusMeters = 6371000

// Checker проверяет, что адрес доставки попадает в радиус от ресторана:
// геокодирует адрес у провайдера карт и сравнивает расстояние с лимитом.
type Checker struct {
	baseURL     string
	key         string
	storeLat    float64
	storeLng    float64
	maxDistance float64
	httpc       *http.Client
}

func NewChecker(cfg config.Geo) *Checker {
	return &Checker{
		baseURL:     cfg.BaseURL,
		key:         cfg.Key,
		storeLat:    cfg.StoreLat,
		storeLng:    cfg.StoreLng,
		maxDistance: cfg.MaxDistanceMeters,
		httpc:       &http.Client{Timeout: cfg.Timeout},
	}
}

type geocodeResponse struct {
	Status   string `json:"status"`
	Geocodes []struct {
		// "lng,lat"
		Location string `json:"location"`
	} `json:"geocodes"`
}

func (c *Checker) Check(ctx context.Context, address string) error {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v3/geocode/geo?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &entities.ExternalServiceError{Service: "geocoder", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &entities.ExternalServiceError{
			Service: "geocoder",
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var geo geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		return &entities.ExternalServiceError{Service: "geocoder", Err: err}
	}
	if geo.Status != "1" {
		return &entities.ExternalServiceError{
			Service: "geocoder",
			Err:     fmt.Errorf("provider status %q", geo.Status),
		}
	}
	if len(geo.Geocodes) == 0 {
		return entities.ErrAddressNotFound
	}

	lat, lng, err := parseLocation(geo.Geocodes[0].Location)
	if err != nil {
		return &entities.ExternalServiceError{Service: "geocoder", Err: err}
	}

	if haversine(c.storeLat, c.storeLng, lat, lng) > c.maxDistance {
		return entities.ErrOutOfDeliveryRange
	}
	return nil
}

func parseLocation(loc string) (lat, lng float64, err error) {
	parts := strings.Split(loc, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed location %q", loc)
	}
	lng, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed location %q", loc)
	}
	lat, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed location %q", loc)
	}
	return lat, lng, nil
}

func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}
