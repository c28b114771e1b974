// Package geocoding resolves addresses through a Nominatim-compatible API.
package geocoding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"showmyshop/config"
	"showmyshop/internal/domain/entity"
	"showmyshop/internal/domain/service"
	"showmyshop/internal/errors"
	"showmyshop/internal/infra/httpclient"

	"go.uber.org/fx"
)

const cacheKeyPrefix = "geo:v1:"

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Cache  service.Cache
}

type nominatim struct {
	baseURL string
	client  *httpclient.Client
	cache   service.Cache
	ttl     time.Duration
	logger  *slog.Logger
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// New creates the Nominatim geocoder.
func New(params Params) service.Geocoder {
	cfg := params.Config.Geocoding
	client := httpclient.New(httpclient.Options{
		Name:      "nominatim",
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		RPS:       cfg.RPS,
		Burst:     cfg.Burst,
		Breaker:   *params.Config.Breaker,
	}, params.Logger)

	return NewWithClient(cfg.BaseURL, client, params.Cache, params.Config.Cache.TTL, params.Logger)
}

// NewWithClient assembles a geocoder from its parts.
func NewWithClient(baseURL string, client *httpclient.Client, cache service.Cache, ttl time.Duration, logger *slog.Logger) service.Geocoder {
	return &nominatim{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
	}
}

func (n *nominatim) Forward(ctx context.Context, address string) (*entity.GeocodeResult, error) {
	query := strings.TrimSpace(address)
	if query == "" {
		return nil, service.ErrNoGeocodeResult
	}

	key := ForwardCacheKey(query)
	var cached entity.GeocodeResult
	if n.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	endpoint := n.baseURL + "/search?" + url.Values{
		"format": {"json"},
		"q":      {query},
	}.Encode()

	var results []searchResult
	if err := n.client.GetJSON(ctx, endpoint, &results); err != nil {
		return nil, errors.Wrap(err, "nominatim search")
	}
	if len(results) == 0 {
		return nil, service.ErrNoGeocodeResult
	}

	result, err := parseResult(results[0].Lat, results[0].Lon, results[0].DisplayName)
	if err != nil {
		return nil, err
	}

	n.store(ctx, key, result)

	return result, nil
}

func (n *nominatim) Reverse(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error) {
	key := ReverseCacheKey(lat, lng)
	var cached entity.GeocodeResult
	if n.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	endpoint := n.baseURL + "/reverse?" + url.Values{
		"format": {"json"},
		"lat":    {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(lng, 'f', -1, 64)},
	}.Encode()

	var res reverseResult
	if err := n.client.GetJSON(ctx, endpoint, &res); err != nil {
		return nil, errors.Wrap(err, "nominatim reverse")
	}
	// Nominatim answers 200 with an error field when nothing is there.
	if res.Error != "" || res.DisplayName == "" {
		return nil, service.ErrNoGeocodeResult
	}

	result := &entity.GeocodeResult{Lat: lat, Lng: lng, DisplayName: res.DisplayName}
	n.store(ctx, key, result)

	return result, nil
}

func (n *nominatim) lookup(ctx context.Context, key string, dest *entity.GeocodeResult) bool {
	hit, err := n.cache.Get(ctx, key, dest)
	if err != nil {
		n.logger.WarnContext(ctx, "Geocode cache read failed", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return hit
}

func (n *nominatim) store(ctx context.Context, key string, result *entity.GeocodeResult) {
	if err := n.cache.Set(ctx, key, result, n.ttl); err != nil {
		n.logger.WarnContext(ctx, "Geocode cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func parseResult(lat, lon, displayName string) (*entity.GeocodeResult, error) {
	parsedLat, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse latitude %q", lat)
	}
	parsedLng, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse longitude %q", lon)
	}

	return &entity.GeocodeResult{Lat: parsedLat, Lng: parsedLng, DisplayName: displayName}, nil
}

// ForwardCacheKey is the cache key of a forward lookup. Addresses that differ
// only in case or surrounding space share an entry.
func ForwardCacheKey(address string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(address))))

	return cacheKeyPrefix + "forward:" + hex.EncodeToString(sum[:])
}

// ReverseCacheKey is the cache key of a reverse lookup, rounded to 6 decimals.
func ReverseCacheKey(lat, lng float64) string {
	return fmt.Sprintf("%sreverse:%.6f,%.6f", cacheKeyPrefix, lat, lng)
}
