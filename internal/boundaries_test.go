package internal

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	setErr  error
	sets    int
	lastTTL time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.data[key], nil
}

func (c *memoryCache) Set(key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sets++
	c.lastTTL = ttl

	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = data
	return nil
}

type countingSource struct {
	data  []byte
	err   error
	calls int
}

func (s *countingSource) Name() string {
	return "counting"
}

func (s *countingSource) Fetch(ctx context.Context) ([]byte, error) {
	s.calls++
	return s.data, s.err
}

func geojsonServer(t *testing.T, status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestHttpBoundarySource(t *testing.T) {
	srv := geojsonServer(t, http.StatusOK, worldFixture)
	defer srv.Close()

	data, err := NewHttpBoundarySource(srv.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, worldFixture, string(data))
}

func TestHttpBoundarySourceBadStatus(t *testing.T) {
	srv := geojsonServer(t, http.StatusNotFound, "missing")
	defer srv.Close()

	_, err := NewHttpBoundarySource(srv.URL, time.Second).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFallbackUsesFileWhenRemoteFails(t *testing.T) {
	srv := geojsonServer(t, http.StatusInternalServerError, "")
	defer srv.Close()

	f, err := ioutil.TempFile("", "world-*.geojson")
	require.NoError(t, err)
	defer os.Remove(f.Name())

	_, err = f.WriteString(worldFixture)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	source := NewFallbackBoundarySource(quietLogger(),
		NewHttpBoundarySource(srv.URL, time.Second),
		NewFileBoundarySource(f.Name()),
	)

	data, err := source.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, worldFixture, string(data))
}

func TestFallbackSkipsUndecodableData(t *testing.T) {
	broken := &countingSource{data: []byte("<html>rate limited</html>")}
	good := &countingSource{data: []byte(worldFixture)}

	data, err := NewFallbackBoundarySource(quietLogger(), broken, good).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, worldFixture, string(data))
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 1, good.calls)
}

func TestFallbackTriesEachSourceOnce(t *testing.T) {
	first := &countingSource{err: errors.New("offline")}
	second := &countingSource{err: errors.New("no such file")}

	_, err := NewFallbackBoundarySource(quietLogger(), first, second).Fetch(context.Background())
	assert.Equal(t, ErrNoBoundaryData, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestCachedBoundarySource(t *testing.T) {
	next := &countingSource{data: []byte(worldFixture)}
	cache := newMemoryCache()

	source := NewCachedBoundarySource(&CachedBoundarySourceOptions{
		Next:   next,
		Cache:  cache,
		Key:    "boundaries",
		TTL:    time.Hour,
		Logger: quietLogger(),
	})

	for i := 0; i < 3; i++ {
		data, err := source.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, worldFixture, string(data))
	}

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, time.Hour, cache.lastTTL)
}

func TestCachedBoundarySourceCacheFailuresAreMisses(t *testing.T) {
	next := &countingSource{data: []byte(worldFixture)}
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")

	source := NewCachedBoundarySource(&CachedBoundarySourceOptions{
		Next:   next,
		Cache:  cache,
		Key:    "boundaries",
		Logger: quietLogger(),
	})

	_, err := source.Fetch(context.Background())
	require.NoError(t, err)
	_, err = source.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, next.calls)
}

func TestCachedBoundarySourceDoesNotCacheFailures(t *testing.T) {
	next := &countingSource{err: ErrNoBoundaryData}
	cache := newMemoryCache()

	source := NewCachedBoundarySource(&CachedBoundarySourceOptions{
		Next:   next,
		Cache:  cache,
		Key:    "boundaries",
		Logger: quietLogger(),
	})

	_, err := source.Fetch(context.Background())
	assert.Equal(t, ErrNoBoundaryData, err)
	assert.Equal(t, 0, cache.sets)
}
