// Package places finds shop points of interest through the Overpass API.
package places

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"showmyshop/config"
	"showmyshop/internal/domain/entity"
	"showmyshop/internal/domain/service"
	"showmyshop/internal/errors"
	"showmyshop/internal/infra/httpclient"

	"go.uber.org/fx"
)

// UnnamedShop is used for nodes without a name tag.
const UnnamedShop = "Unnamed Shop"

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Cache  service.Cache
}

type overpass struct {
	endpoint string
	client   *httpclient.Client
	cache    service.Cache
	ttl      time.Duration
	logger   *slog.Logger
}

type response struct {
	Elements []element `json:"elements"`
}

type element struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// New creates the Overpass place finder.
func New(params Params) service.PlaceFinder {
	cfg := params.Config.Places
	client := httpclient.New(httpclient.Options{
		Name:      "overpass",
		UserAgent: params.Config.Geocoding.UserAgent,
		Timeout:   cfg.Timeout,
		RPS:       cfg.RPS,
		Burst:     cfg.Burst,
		Breaker:   *params.Config.Breaker,
	}, params.Logger)

	return NewWithClient(cfg.BaseURL, client, params.Cache, params.Config.Cache.TTL, params.Logger)
}

// NewWithClient assembles a place finder from its parts.
func NewWithClient(endpoint string, client *httpclient.Client, cache service.Cache, ttl time.Duration, logger *slog.Logger) service.PlaceFinder {
	return &overpass{
		endpoint: endpoint,
		client:   client,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

func (o *overpass) Nearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]*entity.Place, error) {
	key := CacheKey(lat, lng, radiusMeters)

	var cached []*entity.Place
	hit, err := o.cache.Get(ctx, key, &cached)
	if err != nil {
		o.logger.WarnContext(ctx, "Places cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if hit {
		return cached, nil
	}

	var res response
	form := url.Values{"data": {BuildQuery(lat, lng, radiusMeters)}}
	if err := o.client.PostFormJSON(ctx, o.endpoint, form, &res); err != nil {
		return nil, errors.Wrap(err, "overpass query")
	}

	places := make([]*entity.Place, 0, len(res.Elements))
	for _, el := range res.Elements {
		places = append(places, toPlace(el))
	}

	if err := o.cache.Set(ctx, key, places, o.ttl); err != nil {
		o.logger.WarnContext(ctx, "Places cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return places, nil
}

func toPlace(el element) *entity.Place {
	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	name := tags["name"]
	if name == "" {
		name = UnnamedShop
	}

	return &entity.Place{
		ID:   el.ID,
		Name: name,
		Lat:  el.Lat,
		Lng:  el.Lon,
		Tags: tags,
	}
}

// BuildQuery renders the Overpass QL query for shop nodes around a point.
func BuildQuery(lat, lng float64, radiusMeters int) string {
	return fmt.Sprintf(`[out:json];node["shop"](around:%d,%s,%s);out;`,
		radiusMeters,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64),
	)
}

// CacheKey identifies a lookup. Coordinates are rounded to about 10 m.
func CacheKey(lat, lng float64, radiusMeters int) string {
	return fmt.Sprintf("poi:v1:nearby:%.4f,%.4f:%d", lat, lng, radiusMeters)
}
