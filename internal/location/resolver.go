package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"nearmarket/utils"
)

const (
	// geocodeTimeout bounds a single reverse-geocoding round trip.
	geocodeTimeout = 4 * time.Second
	// fixTTL bounds how long a resolved fix is reused.
	fixTTL = 5 * time.Minute
)

// Fix is a resolved location: coordinates plus best-effort place labels.
// Coordinates are always sufficient for a fix to be complete; Approximate
// marks fixes whose labels were degraded because geocoding failed.
type Fix struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	City        string  `json:"city,omitempty"`
	Region      string  `json:"region,omitempty"`
	Country     string  `json:"country,omitempty"`
	Postcode    string  `json:"postcode,omitempty"`
	Label       string  `json:"label"`
	Approximate bool    `json:"approximate"`
}

// Resolver turns coordinates into fixes via an OSM-compatible reverse
// geocoder, caching results for fixTTL.
type Resolver struct {
	baseURL string
	client  *http.Client
	cache   Cache
}

// NewResolver creates a resolver against the given geocoder base URL.
func NewResolver(baseURL string, cache Cache) *Resolver {
	return &Resolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: geocodeTimeout},
		cache:   cache,
	}
}

// Resolve produces a fix for the given coordinates. Geocoding failures
// degrade to a generic label rather than failing: the caller always gets a
// usable fix back.
func (r *Resolver) Resolve(ctx context.Context, lat, lon float64) Fix {
	key := fmt.Sprintf("geo:%.4f:%.4f", lat, lon)
	if fix, ok := r.cache.Get(ctx, key); ok {
		return fix
	}

	fix, err := r.reverseGeocode(ctx, lat, lon)
	if err != nil {
		utils.Warn("location: reverse geocoding failed, degrading to coordinates", map[string]any{
			"lat":   lat,
			"lon":   lon,
			"error": err.Error(),
		})
		return Fix{
			Latitude:    lat,
			Longitude:   lon,
			Label:       fmt.Sprintf("Location (%.4f, %.4f)", lat, lon),
			Approximate: true,
		}
	}

	r.cache.Set(ctx, key, fix, fixTTL)
	return fix
}

// reverseGeocodeResponse mirrors the OSM reverse endpoint's address shape.
type reverseGeocodeResponse struct {
	Address struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		State    string `json:"state"`
		Country  string `json:"country"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

func (r *Resolver) reverseGeocode(ctx context.Context, lat, lon float64) (Fix, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("zoom", "18")
	q.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return Fix{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "nearmarket/1.0")

	res, err := r.client.Do(req)
	if err != nil {
		return Fix{}, fmt.Errorf("reverse geocode: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Fix{}, fmt.Errorf("reverse geocode: unexpected status %d", res.StatusCode)
	}

	var parsed reverseGeocodeResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return Fix{}, fmt.Errorf("decode geocode response: %w", err)
	}

	city := parsed.Address.City
	if city == "" {
		city = parsed.Address.Town
	}
	if city == "" {
		city = parsed.Address.Village
	}

	label := city
	if label == "" {
		label = "Nearby"
	}

	return Fix{
		Latitude:  lat,
		Longitude: lon,
		City:      city,
		Region:    parsed.Address.State,
		Country:   parsed.Address.Country,
		Postcode:  parsed.Address.Postcode,
		Label:     label,
	}, nil
}
