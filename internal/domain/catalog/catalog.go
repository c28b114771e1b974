// Package catalog filters and orders shop listings for browsing.
package catalog

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"showmyshop/internal/domain/entity"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusKm is the mean Earth radius used for great-circle distances.
	EarthRadiusKm = 6371.0

	// MissingDistanceKm is assigned to shops without coordinates so that
	// they sort after every located shop.
	MissingDistanceKm = 1e9
)

// SortKey selects the listing order.
type SortKey string

const (
	SortNone    SortKey = ""
	SortName    SortKey = "name"
	SortRating  SortKey = "rating"
	SortNearest SortKey = "nearest"
)

// ParseSortKey accepts the empty key and the three known keys.
func ParseSortKey(s string) (SortKey, bool) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case SortNone, SortName, SortRating, SortNearest:
		return key, true
	default:
		return SortNone, false
	}
}

// Query describes one search over the listing.
type Query struct {
	Text   string
	Sort   SortKey
	Origin *orb.Point
}

// Result is a shop annotated with its distance from the query origin.
type Result struct {
	*entity.Shop
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// Search filters shops by q.Text and orders them by q.Sort.
func Search(shops []*entity.Shop, q Query) []Result {
	return Sort(Filter(shops, q.Text), q.Sort, q.Origin)
}

// Filter keeps shops whose name, products or address contain text,
// ignoring case. An empty text keeps every shop.
func Filter(shops []*entity.Shop, text string) []*entity.Shop {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return slices.Clone(shops)
	}

	matched := make([]*entity.Shop, 0, len(shops))
	for _, shop := range shops {
		if containsFold(shop.Name, needle) ||
			containsFold(shop.Products, needle) ||
			containsFold(shop.Address, needle) {
			matched = append(matched, shop)
		}
	}

	return matched
}

// Sort returns the shops in the requested order. The input is not modified
// and ties keep their input order. Nearest without an origin keeps the input
// order but still leaves distances unset.
func Sort(shops []*entity.Shop, key SortKey, origin *orb.Point) []Result {
	results := make([]Result, len(shops))
	for i, shop := range shops {
		results[i] = Result{Shop: shop}
		if origin != nil {
			if d, ok := distance(shop, *origin); ok {
				results[i].DistanceKm = &d
			}
		}
	}

	switch key {
	case SortName:
		slices.SortStableFunc(results, func(a, b Result) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	case SortRating:
		slices.SortStableFunc(results, func(a, b Result) int {
			return cmp.Compare(b.AverageRating, a.AverageRating)
		})
	case SortNearest:
		if origin == nil {
			break
		}
		slices.SortStableFunc(results, func(a, b Result) int {
			return cmp.Compare(DistanceFrom(a.Shop, *origin), DistanceFrom(b.Shop, *origin))
		})
	}

	return results
}

// DistanceFrom returns the great-circle distance in km between origin and
// the shop, or MissingDistanceKm when the shop has no coordinates.
func DistanceFrom(shop *entity.Shop, origin orb.Point) float64 {
	if d, ok := distance(shop, origin); ok {
		return d
	}

	return MissingDistanceKm
}

func distance(shop *entity.Shop, origin orb.Point) (float64, bool) {
	loc, ok := shop.Location()
	if !ok {
		return 0, false
	}

	return Haversine(origin, loc), true
}

// Haversine returns the great-circle distance in km between two points.
func Haversine(a, b orb.Point) float64 {
	lat1Rad := a.Lat() * math.Pi / 180
	lat2Rad := b.Lat() * math.Pi / 180
	deltaLat := (b.Lat() - a.Lat()) * math.Pi / 180
	deltaLng := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// ValidCoordinate reports whether lat/lng are finite and within range.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func containsFold(field, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(field), lowerNeedle)
}
