package entity

// Place is a point of interest tagged as a shop in OpenStreetMap.
type Place struct {
	ID   int64             `json:"id"`
	Name string            `json:"name"`
	Lat  float64           `json:"lat"`
	Lng  float64           `json:"lng"`
	Tags map[string]string `json:"tags"`
}

// GeocodeResult is a resolved address.
type GeocodeResult struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DisplayName string  `json:"displayName"`
}
