package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func policyFor(def bool, header, query string) bool {
	var got bool

	h := SetSupersetPolicy(def)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSupersetPolicy(r)
	}))

	target := "/map"
	if query != "" {
		target += "?superset=" + query
	}

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("SM-Superset", header)
	}

	h.ServeHTTP(httptest.NewRecorder(), req)

	return got
}

func TestSetSupersetPolicy(t *testing.T) {
	tests := []struct {
		name   string
		def    bool
		header string
		query  string
		want   bool
	}{
		{"default off", false, "", "", false},
		{"default on", true, "", "", true},
		{"header on", false, "true", "", true},
		{"header off", true, "0", "", false},
		{"query on", false, "", "1", true},
		{"header beats query", false, "false", "true", false},
		{"garbage keeps default", true, "sometimes", "", true},
		{"padded header", false, " TRUE ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policyFor(tt.def, tt.header, tt.query))
		})
	}
}

func TestGetSupersetPolicyWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.False(t, GetSupersetPolicy(req))
	assert.Equal(t, "false", SupersetLabel(req))
}

func TestStampRequestStart(t *testing.T) {
	before := time.Now()

	var start time.Time
	var ok bool

	h := StampRequestStart(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start, ok = GetRequestStart(r)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, ok)
	assert.False(t, start.Before(before))
}
