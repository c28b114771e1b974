package catalog

import (
	"math"
	"testing"

	"showmyshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func newShop(name, products, address string, rating float64, lat, lng *float64) *entity.Shop {
	return &entity.Shop{
		ID:            uuid.New(),
		Name:          name,
		Products:      products,
		Address:       address,
		AverageRating: rating,
		Lat:           lat,
		Lng:           lng,
	}
}

func names(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}

	return out
}

func TestFilter(t *testing.T) {
	t.Parallel()

	shops := []*entity.Shop{
		newShop("Ravi Bakery", "cakes, pastry", "Abids", 4, nil, nil),
		newShop("Fresh Mart", "vegetables", "Kukatpally", 3, nil, nil),
		newShop("Aqua Point", "water cans", "Secunderabad", 5, nil, nil),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query keeps all", query: "", want: []string{"Ravi Bakery", "Fresh Mart", "Aqua Point"}},
		{name: "matches name ignoring case", query: "fresh", want: []string{"Fresh Mart"}},
		{name: "matches products", query: "PASTRY", want: []string{"Ravi Bakery"}},
		{name: "matches address", query: "secunder", want: []string{"Aqua Point"}},
		{name: "no match", query: "salon", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(shops, tt.query)
			gotNames := make([]string, 0, len(got))
			for _, s := range got {
				gotNames = append(gotNames, s.Name)
			}
			assert.Equal(t, tt.want, gotNames)
		})
	}
}

func TestSort_ByName(t *testing.T) {
	t.Parallel()

	shops := []*entity.Shop{
		newShop("zeta", "", "", 0, nil, nil),
		newShop("Alpha", "", "", 0, nil, nil),
		newShop("beta", "", "", 0, nil, nil),
	}

	assert.Equal(t, []string{"Alpha", "beta", "zeta"}, names(Sort(shops, SortName, nil)))
	assert.Equal(t, "zeta", shops[0].Name, "input must not be reordered")
}

func TestSort_ByRatingDescending(t *testing.T) {
	t.Parallel()

	shops := []*entity.Shop{
		newShop("A", "", "", 4, nil, nil),
		newShop("B", "", "", 5, nil, nil),
		newShop("C", "", "", 0, nil, nil),
		newShop("D", "", "", 4, nil, nil),
	}

	assert.Equal(t, []string{"B", "A", "D", "C"}, names(Sort(shops, SortRating, nil)))
}

func TestSort_NearestPutsMissingCoordinatesLast(t *testing.T) {
	t.Parallel()

	origin := orb.Point{78.4, 17.4}
	shops := []*entity.Shop{
		newShop("nowhere", "", "", 0, nil, nil),
		newShop("far", "", "", 0, ptr(17.9), ptr(78.9)),
		newShop("half", "", "", 0, ptr(17.5), nil),
		newShop("near", "", "", 0, ptr(17.41), ptr(78.41)),
		newShop("mid", "", "", 0, ptr(17.5), ptr(78.5)),
	}

	results := Sort(shops, SortNearest, &origin)
	require.Len(t, results, 5)
	assert.Equal(t, []string{"near", "mid", "far", "nowhere", "half"}, names(results))

	prev := -1.0
	for _, r := range results {
		d := DistanceFrom(r.Shop, origin)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}

	assert.NotNil(t, results[0].DistanceKm)
	assert.Nil(t, results[3].DistanceKm)
	assert.Nil(t, results[4].DistanceKm)
}

func TestSort_NearestWithoutOriginKeepsOrder(t *testing.T) {
	t.Parallel()

	shops := []*entity.Shop{
		newShop("b", "", "", 0, ptr(10), ptr(10)),
		newShop("a", "", "", 0, ptr(1), ptr(1)),
	}

	assert.Equal(t, []string{"b", "a"}, names(Sort(shops, SortNearest, nil)))
}

func TestHaversine(t *testing.T) {
	t.Parallel()

	// Hyderabad to Bengaluru is roughly 500 km.
	hyd := orb.Point{78.4867, 17.3850}
	blr := orb.Point{77.5946, 12.9716}
	assert.InDelta(t, 500, Haversine(hyd, blr), 15)

	assert.InDelta(t, 0, Haversine(hyd, hyd), 1e-9)
	assert.InDelta(t, Haversine(hyd, blr), Haversine(blr, hyd), 1e-9)

	// A quarter of the equator.
	assert.InDelta(t, math.Pi*EarthRadiusKm/2, Haversine(orb.Point{0, 0}, orb.Point{90, 0}), 1e-6)
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "name", "Rating", " nearest "} {
		_, ok := ParseSortKey(in)
		assert.True(t, ok, in)
	}

	_, ok := ParseSortKey("distance")
	assert.False(t, ok)
}

func TestValidCoordinate(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidCoordinate(17.4, 78.4))
	assert.False(t, ValidCoordinate(91, 0))
	assert.False(t, ValidCoordinate(0, -181))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
	assert.False(t, ValidCoordinate(0, math.Inf(1)))
}

func TestSearch_FiltersThenSorts(t *testing.T) {
	t.Parallel()

	shops := []*entity.Shop{
		newShop("Cake House", "cake", "", 3, nil, nil),
		newShop("Fruit Stall", "mango", "", 5, nil, nil),
		newShop("Cake World", "cake", "", 4, nil, nil),
	}

	got := Search(shops, Query{Text: "cake", Sort: SortRating})
	assert.Equal(t, []string{"Cake World", "Cake House"}, names(got))
}

func TestFeatureCollection_SkipsShopsWithoutLocation(t *testing.T) {
	t.Parallel()

	located := newShop("located", "tea", "", 4.5, ptr(17.4), ptr(78.4))
	shops := []*entity.Shop{located, newShop("unlocated", "", "", 0, nil, nil)}

	fc := FeatureCollection(shops)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, located.ID.String(), fc.Features[0].ID)
	assert.Equal(t, orb.Point{78.4, 17.4}, fc.Features[0].Geometry)
	assert.Equal(t, "located", fc.Features[0].Properties["name"])
}
