package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"showmyshop/config"
	"showmyshop/internal/domain/service"
	"showmyshop/internal/errors"
	"showmyshop/internal/infra/cache"
	"showmyshop/internal/infra/httpclient"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGeocoder(t *testing.T, handler http.HandlerFunc, c service.Cache) service.Geocoder {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := httpclient.New(httpclient.Options{
		Name:    "nominatim-test",
		Timeout: time.Second,
		Breaker: config.BreakerConfig{MaxRequests: 1, Timeout: time.Minute, FailureRatio: 1, MinRequests: 100},
	}, newDiscardLogger())

	return NewWithClient(srv.URL+"/", client, c, time.Hour, newDiscardLogger())
}

func TestNominatim_Forward(t *testing.T) {
	t.Parallel()

	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "Charminar, Hyderabad", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[{"lat":"17.3616","lon":"78.4747","display_name":"Charminar"},{"lat":"1","lon":"2"}]`))
	}, cache.NewNoop())

	res, err := geocoder.Forward(context.Background(), "  Charminar, Hyderabad ")
	require.NoError(t, err)
	assert.InDelta(t, 17.3616, res.Lat, 1e-9)
	assert.InDelta(t, 78.4747, res.Lng, 1e-9)
	assert.Equal(t, "Charminar", res.DisplayName)
}

func TestNominatim_ForwardNoResult(t *testing.T) {
	t.Parallel()

	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}, cache.NewNoop())

	_, err := geocoder.Forward(context.Background(), "nowhere at all")
	assert.True(t, errors.Is(err, service.ErrNoGeocodeResult))
}

func TestNominatim_ForwardEmptyAddress(t *testing.T) {
	t.Parallel()

	geocoder := newTestGeocoder(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}, cache.NewNoop())

	_, err := geocoder.Forward(context.Background(), "   ")
	assert.True(t, errors.Is(err, service.ErrNoGeocodeResult))
}

func TestNominatim_ForwardBadCoordinates(t *testing.T) {
	t.Parallel()

	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"lat":"north","lon":"78.4"}]`))
	}, cache.NewNoop())

	_, err := geocoder.Forward(context.Background(), "somewhere")
	assert.Error(t, err)
}

func TestNominatim_ForwardUpstreamError(t *testing.T) {
	t.Parallel()

	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, cache.NewNoop())

	_, err := geocoder.Forward(context.Background(), "somewhere")
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrNoGeocodeResult))
}

func TestNominatim_ForwardUsesCache(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	var calls atomic.Int32
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[{"lat":"17.4","lon":"78.5","display_name":"Ameerpet"}]`))
	}, cache.NewRedisCache(client, newDiscardLogger()))

	first, err := geocoder.Forward(context.Background(), "Ameerpet")
	require.NoError(t, err)
	second, err := geocoder.Forward(context.Background(), "  ameerpet")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, mr.Exists(ForwardCacheKey("AMEERPET")))
}

func TestNominatim_Reverse(t *testing.T) {
	t.Parallel()

	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "17.385", r.URL.Query().Get("lat"))
		assert.Equal(t, "78.4867", r.URL.Query().Get("lon"))
		_, _ = w.Write([]byte(`{"display_name":"Abids, Hyderabad"}`))
	}, cache.NewNoop())

	res, err := geocoder.Reverse(context.Background(), 17.385, 78.4867)
	require.NoError(t, err)
	assert.Equal(t, "Abids, Hyderabad", res.DisplayName)
	assert.InDelta(t, 17.385, res.Lat, 1e-9)
}

func TestNominatim_ReverseNotFound(t *testing.T) {
	t.Parallel()

	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}, cache.NewNoop())

	_, err := geocoder.Reverse(context.Background(), 0, 0)
	assert.True(t, errors.Is(err, service.ErrNoGeocodeResult))
}

func TestCacheKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ForwardCacheKey("Main St"), ForwardCacheKey(" main st "))
	assert.NotEqual(t, ForwardCacheKey("Main St"), ForwardCacheKey("Main Road"))
	assert.Equal(t, "geo:v1:reverse:17.385000,78.486700", ReverseCacheKey(17.385, 78.4867))
}
