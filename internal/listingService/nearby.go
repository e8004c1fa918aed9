package listing

import (
	"fmt"
	"sort"

	"nearmarket/internal/geo"
	"nearmarket/internal/marketerrors"
	"nearmarket/internal/models"
)

// RankedListing is a listing annotated with its distance from the viewer.
// Listings without stored coordinates are kept but flagged instead of being
// given a made-up distance.
type RankedListing struct {
	models.Listing
	DistanceKm    float64 `json:"distance_km"`
	DistanceLabel string  `json:"distance_label"`
	DistanceKnown bool    `json:"distance_known"`
}

// Nearby returns active listings around the viewer, distance-sorted
// ascending and filtered to radiusKm when radiusKm > 0. The viewer's own
// listings are excluded. Listings with unknown coordinates sort after all
// known distances and are never radius-filtered.
func (s *ListingService) Nearby(viewerID string, lat, lon, radiusKm float64) ([]RankedListing, error) {
	if viewerID == "" {
		return nil, fmt.Errorf("service: %w - empty viewer ID", marketerrors.ErrValidation)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("service: %w - coordinates out of range", marketerrors.ErrValidation)
	}

	listings, err := s.repo.GetActiveListingsExcluding(viewerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load active listings: %w", err)
	}

	ranked := make([]RankedListing, 0, len(listings))
	for _, l := range listings {
		if !l.Location.HasCoordinates() {
			ranked = append(ranked, RankedListing{Listing: l})
			continue
		}

		d := geo.HaversineKm(lat, lon, *l.Location.Latitude, *l.Location.Longitude)
		if radiusKm > 0 && d > radiusKm {
			continue
		}
		ranked = append(ranked, RankedListing{
			Listing:       l,
			DistanceKm:    geo.RoundKm(d),
			DistanceLabel: geo.FormatDistance(d),
			DistanceKnown: true,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].DistanceKnown != ranked[j].DistanceKnown {
			return ranked[i].DistanceKnown
		}
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked, nil
}
