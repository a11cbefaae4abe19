package internal

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type contextKey string

const (
	supersetKey     contextKey = "SMSuperset"
	requestStartKey contextKey = "requestStart"
)

// SetSupersetPolicy decides per request whether superset aliases (a parent
// territory standing in for a region it contains) may resolve. The SM-Superset
// header wins over the superset query parameter; anything unparsable falls
// back to def.
func SetSupersetPolicy(def bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			requested := strings.TrimSpace(r.Header.Get("SM-Superset"))

			if requested == "" {
				requested = strings.TrimSpace(r.URL.Query().Get("superset"))
			}

			allow := def

			if requested != "" {
				if v, err := strconv.ParseBool(requested); err == nil {
					allow = v
				}
			}

			r = r.WithContext(context.WithValue(ctx, supersetKey, allow))

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

func GetSupersetPolicy(r *http.Request) bool {
	allow, ok := r.Context().Value(supersetKey).(bool)

	if !ok {
		return false
	}

	return allow
}

// SupersetLabel is the metrics label for the request's policy.
func SupersetLabel(r *http.Request) string {
	return strconv.FormatBool(GetSupersetPolicy(r))
}

// StampRequestStart records when the request entered the middleware stack.
func StampRequestStart(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		r = r.WithContext(context.WithValue(ctx, requestStartKey, time.Now()))
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}

func GetRequestStart(r *http.Request) (time.Time, bool) {
	t, ok := r.Context().Value(requestStartKey).(time.Time)
	return t, ok
}
