package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/screenmap/screenmap/internal"
	"github.com/sirupsen/logrus"
)

type responseObserver struct {
	http.ResponseWriter
	status      int
	written     int64
	wroteHeader bool
}

func (o *responseObserver) Write(p []byte) (n int, err error) {
	if !o.wroteHeader {
		o.WriteHeader(http.StatusOK)
	}
	n, err = o.ResponseWriter.Write(p)
	o.written += int64(n)
	return
}

func (o *responseObserver) WriteHeader(code int) {
	if o.wroteHeader {
		return
	}
	o.ResponseWriter.WriteHeader(code)
	o.wroteHeader = true
	o.status = code
}

func CollectRequestDuration(log *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {

			o := &responseObserver{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(o, r)

			ctx := chi.RouteContext(r.Context())

			if ctx == nil {
				log.Warn("Failed to get route context")
				return
			}

			path := ctx.RoutePattern()

			if path == "" || path == "/metrics" {
				return
			}

			start, ok := internal.GetRequestStart(r)

			if !ok {
				log.WithField("path", path).Warn("Unable to calculate request duration, requestStart is missing")
				return
			}

			labels := prometheus.Labels{
				"method":   r.Method,
				"path":     path,
				"superset": internal.SupersetLabel(r),
				"code":     fmt.Sprintf("%d", o.status),
			}

			RequestDuration.With(labels).Observe(time.Since(start).Seconds() * 1000)

			PayloadBytes.With(labels).Observe(float64(o.written))
		}

		return http.HandlerFunc(fn)
	}
}
