package catalog

import (
	"showmyshop/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// FeatureCollection renders located shops as map markers. Shops without
// coordinates are skipped.
func FeatureCollection(shops []*entity.Shop) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, shop := range shops {
		loc, ok := shop.Location()
		if !ok {
			continue
		}

		feature := geojson.NewFeature(loc)
		feature.ID = shop.ID.String()
		feature.Properties["name"] = shop.Name
		feature.Properties["products"] = shop.Products
		feature.Properties["address"] = shop.Address
		feature.Properties["number"] = shop.Number
		feature.Properties["averageRating"] = shop.AverageRating
		feature.Properties["ratingsCount"] = shop.RatingsCount
		feature.Properties["approved"] = shop.Approved
		fc.Append(feature)
	}

	return fc
}
