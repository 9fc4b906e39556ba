package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/config"
)

func cacheConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:     true,
		Methods:     map[string]bool{"GET": true},
		TTL:         30 * time.Second,
		KeyStrategy: "route_query",
		Prefix:      "cache",
	}
}

// unreachableRedis returns a client whose every command fails fast.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func runThrough(t *testing.T, mw echo.MiddlewareFunc, method string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/v1/locations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, mw(h)(c))
	return rec
}

func TestNewRedisCache_DisabledPassesThrough(t *testing.T) {
	cfg := cacheConfig()
	cfg.Enabled = false

	mw := NewRedisCache(cfg, unreachableRedis())
	rec := runThrough(t, mw, http.MethodGet, func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"items": []string{}})
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("X-Cache"))
}

func TestNewRedisCache_NilClientPassesThrough(t *testing.T) {
	mw := NewRedisCache(cacheConfig(), nil)
	rec := runThrough(t, mw, http.MethodGet, func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"items": []string{}})
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRedisCache_RedisOutageStillServes(t *testing.T) {
	mw := NewRedisCache(cacheConfig(), unreachableRedis())
	rec := runThrough(t, mw, http.MethodGet, func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"name": "Alpine Lodge"})
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	require.Contains(t, rec.Body.String(), "Alpine Lodge")
}

func TestNewCacheInvalidator_DisabledPassesThrough(t *testing.T) {
	cfg := cacheConfig()
	cfg.Enabled = false

	mw := NewCacheInvalidator(cfg, unreachableRedis())
	rec := runThrough(t, mw, http.MethodPost, func(c echo.Context) error {
		return c.JSON(http.StatusCreated, echo.Map{"id": "loc-1"})
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestNewCacheInvalidator_FlushFailureNeverFailsWrite(t *testing.T) {
	// A broken Redis must not turn a committed catalog write into an
	// error response; the flush is best effort.
	mw := NewCacheInvalidator(cacheConfig(), unreachableRedis())
	rec := runThrough(t, mw, http.MethodPost, func(c echo.Context) error {
		return c.JSON(http.StatusCreated, echo.Map{"id": "loc-1"})
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "loc-1")
}

func TestNewCacheInvalidator_HandlerErrorPropagates(t *testing.T) {
	mw := NewCacheInvalidator(cacheConfig(), unreachableRedis())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/locations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(func(echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	})(c)
	require.Error(t, err)
}

func TestCacheKeyFrom_StableAcrossStrategies(t *testing.T) {
	e := echo.New()
	newCtx := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/v1/locations/:id/bedrooms")
		return c
	}

	cfg := cacheConfig()
	same := cacheKeyFrom(cfg, newCtx("/v1/locations/a/bedrooms?days=30"))
	require.Equal(t, same, cacheKeyFrom(cfg, newCtx("/v1/locations/a/bedrooms?days=30")))
	require.NotEqual(t, same, cacheKeyFrom(cfg, newCtx("/v1/locations/a/bedrooms?days=7")))

	// Every key lives under the prefix the invalidator flushes.
	require.Regexp(t, "^cache:", same)
}
