package internal

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/segmentio/encoding/json"
	"github.com/sirupsen/logrus"
)

type Feature struct {
	Type       string                 `json:"type"`
	ID         interface{}            `json:"id,omitempty"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   interface{}            `json:"geometry"`
}

// Name returns the raw "name" property, which may be nil.
func (f *Feature) Name() interface{} {
	if f.Properties == nil {
		return nil
	}
	return f.Properties["name"]
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

var ErrNoBoundaryData = errors.New("no boundary data available")

func DecodeFeatureCollection(data []byte) (*FeatureCollection, error) {
	fc := &FeatureCollection{}

	if err := json.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("decoding boundary data: %v", err)
	}

	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("decoding boundary data: unexpected type %q", fc.Type)
	}

	return fc, nil
}

// BoundarySource yields the raw GeoJSON bytes of a feature collection.
type BoundarySource interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

type httpBoundarySource struct {
	url    string
	client *http.Client
}

func NewHttpBoundarySource(url string, timeout time.Duration) BoundarySource {
	return &httpBoundarySource{url: url, client: &http.Client{Timeout: timeout}}
}

func (s *httpBoundarySource) Name() string {
	return s.url
}

func (s *httpBoundarySource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)

	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", s.url, res.StatusCode)
	}

	return ioutil.ReadAll(res.Body)
}

type fileBoundarySource struct {
	path string
}

func NewFileBoundarySource(path string) BoundarySource {
	return &fileBoundarySource{path: path}
}

func (s *fileBoundarySource) Name() string {
	return s.path
}

func (s *fileBoundarySource) Fetch(ctx context.Context) ([]byte, error) {
	return ioutil.ReadFile(s.path)
}

// fallbackBoundarySource tries each source once, in order. There is no retry:
// a failing source is skipped for the rest of the call.
type fallbackBoundarySource struct {
	sources []BoundarySource
	log     *logrus.Logger
}

func NewFallbackBoundarySource(log *logrus.Logger, sources ...BoundarySource) BoundarySource {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &fallbackBoundarySource{sources: sources, log: log}
}

func (s *fallbackBoundarySource) Name() string {
	return "fallback"
}

func (s *fallbackBoundarySource) Fetch(ctx context.Context) ([]byte, error) {
	for _, source := range s.sources {
		data, err := source.Fetch(ctx)

		if err == nil {
			_, err = DecodeFeatureCollection(data)
		}

		if err != nil {
			s.log.WithError(err).WithField("source", source.Name()).Warn("Boundary source failed, trying next")
			continue
		}

		return data, nil
	}

	return nil, ErrNoBoundaryData
}

// BoundaryCache stores fetched boundary data. Get reports a miss with a nil
// slice and nil error.
type BoundaryCache interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte, ttl time.Duration) error
}

type cachedBoundarySource struct {
	next  BoundarySource
	cache BoundaryCache
	key   string
	ttl   time.Duration
	log   *logrus.Logger
}

type CachedBoundarySourceOptions struct {
	Next   BoundarySource
	Cache  BoundaryCache
	Key    string
	TTL    time.Duration
	Logger *logrus.Logger
}

func NewCachedBoundarySource(options *CachedBoundarySourceOptions) BoundarySource {
	s := &cachedBoundarySource{
		next:  options.Next,
		cache: options.Cache,
		key:   options.Key,
		ttl:   options.TTL,
		log:   options.Logger,
	}

	if s.log == nil {
		s.log = logrus.StandardLogger()
	}

	return s
}

func (s *cachedBoundarySource) Name() string {
	return "cache:" + s.key
}

func (s *cachedBoundarySource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := s.cache.Get(s.key)

	if err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("Boundary cache read failed")
	} else if data != nil {
		return data, nil
	}

	data, err = s.next.Fetch(ctx)

	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(s.key, data, s.ttl); err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("Boundary cache write failed")
	}

	return data, nil
}
