package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestURL(t *testing.T) {
	host = "http://lk.test"
	defer func() { dryRun, verbose = false, false }()

	assert.Equal(t, "http://lk.test/health", requestURL("/health"))

	dryRun = true
	assert.Equal(t, "http://lk.test/recalculate?dry_run=true", requestURL("/recalculate"))

	verbose = true
	assert.Equal(t, "http://lk.test/recalculate?dry_run=true&verbose=true", requestURL("/recalculate"))
}

func TestPerformRequest(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		if r.URL.Path == "/players/missing/rating" {
			http.Error(w, "player not found", http.StatusNotFound)
			return
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()
	host = srv.URL

	require.NoError(t, performRequest(http.MethodPost, "/players/p1/recalculate"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/players/p1/recalculate", gotPath)

	err := performRequest(http.MethodGet, "/players/missing/rating")
	assert.Error(t, err)
}
