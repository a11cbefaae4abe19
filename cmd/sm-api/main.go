package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/evalphobia/logrus_sentry"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-redis/redis"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/screenmap/screenmap/internal"
	"github.com/screenmap/screenmap/internal/metrics"
	"github.com/sirupsen/logrus"
)

const boundaryCacheKey = "screenmap:boundaries"

func setupSentry(l *logrus.Logger, sentryDsn *string) {
	hook, err := logrus_sentry.NewSentryHook(*sentryDsn, []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	})

	if err != nil {
		l.WithError(err).Warn("Unable to set up Sentry, continuing without it")
		return
	}

	hook.Timeout = 2 * time.Second
	hook.StacktraceConfiguration.Enable = true

	if env := os.Getenv("APP_ENV"); env != "" {
		hook.SetEnvironment(env)
	}

	hook.SetRelease(fmt.Sprintf("%s@%s", internal.Version, internal.GitCommit))

	l.Hooks.Add(hook)
}

func main() {
	log := logrus.StandardLogger()

	log.Printf("Screenmap API Server\nVersion: %s\tSHA: %s\tBuilt: %s", internal.Version, internal.GitCommit, internal.BuildDate)

	listenAddr := flag.String("listen", ":8080", "address to serve HTTP on")
	redisAddr := flag.String("redis-addr", "127.0.0.1:6379", "the location at which Redis server can be found; empty disables the boundary cache")
	sentryDsn := flag.String("sentry-dsn", "", "Sentry/Raven DSN to send log/errors to")
	datasetDir := flag.String("dataset", "", "directory of dataset TSV files; the compiled-in dataset is used when empty")
	boundaryURL := flag.String("boundary-url", "https://raw.githubusercontent.com/holtzy/D3-graph-gallery/master/DATA/world.geojson", "remote GeoJSON world boundaries")
	boundaryFile := flag.String("boundary-file", "world.geojson", "local GeoJSON used when the remote fetch fails")
	boundaryTTL := flag.Duration("boundary-ttl", 24*time.Hour, "how long fetched boundaries stay cached")
	fetchTimeout := flag.Duration("fetch-timeout", 10*time.Second, "timeout for the remote boundary fetch")
	superset := flag.Bool("superset", false, "let parent territories resolve to regions they contain unless a request says otherwise")
	debug := flag.Bool("debug", false, "log at debug level")

	flag.Parse()

	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if sentryDsn != nil && *sentryDsn != "" {
		setupSentry(log, sentryDsn)
	}

	dataset := internal.DefaultDataset()

	if *datasetDir != "" {
		var err error
		dataset, err = internal.LoadDataset(*datasetDir, log)

		if err != nil {
			log.WithError(err).Fatalf("Unable to load dataset from %s", *datasetDir)
		}
	}

	var cache internal.BoundaryCache = internal.NoopCache()

	if *redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     *redisAddr,
			Password: "",
			DB:       0,
		})

		rc := internal.NewRedisCache(redisClient, log)

		if rc.WaitUntilReady(3, 5*time.Second) {
			cache = rc
		} else {
			log.Warn("Running without a boundary cache")
		}
	}

	boundaries := internal.NewCachedBoundarySource(&internal.CachedBoundarySourceOptions{
		Next: internal.NewFallbackBoundarySource(log,
			internal.NewHttpBoundarySource(*boundaryURL, *fetchTimeout),
			internal.NewFileBoundarySource(*boundaryFile),
		),
		Cache:  cache,
		Key:    boundaryCacheKey,
		TTL:    *boundaryTTL,
		Logger: log,
	})

	srv := internal.NewHttpServerHandlers(&internal.HttpServerOptions{
		Dataset:    dataset,
		Boundaries: boundaries,
		Logger:     log,
		Observer:   metrics.ObserveMatch,
	})

	r := chi.NewRouter()
	r.Use(internal.StampRequestStart)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(internal.SetSupersetPolicy(*superset))
	r.Use(metrics.CollectRequestDuration(log))

	r.Handle("/metrics", promhttp.Handler())

	srv.Routes(r)

	log.Infof("Listening on %s", *listenAddr)
	log.Fatal(http.ListenAndServe(*listenAddr, r))
}
