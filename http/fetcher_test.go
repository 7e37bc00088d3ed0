package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopcrawl/shopcrawl"
	shophttp "github.com/shopcrawl/shopcrawl/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>product page</body></html>"))
	}))
	defer srv.Close()

	f := shophttp.NewFetcher()
	defer f.Close()

	html, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "product page")
}

func TestFetcher_Fetch_SendsBrowserUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	f := shophttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Contains(t, gotUA, "Chrome")
}

func TestFetcher_Fetch_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	f := shophttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, shopcrawl.EUNAVAILABLE, shopcrawl.ErrorCode(err))
	assert.Contains(t, shopcrawl.ErrorMessage(err), "HTTP 403")
}

func TestFetcher_Fetch_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := shophttp.NewFetcher(shophttp.WithTimeout(20 * time.Millisecond))
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, shopcrawl.EUNAVAILABLE, shopcrawl.ErrorCode(err))
}

func TestFetcher_Fetch_InvalidURL(t *testing.T) {
	t.Parallel()

	f := shophttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), "http://[::1]:namedport")

	require.Error(t, err)
	assert.Equal(t, shopcrawl.EINVALID, shopcrawl.ErrorCode(err))
}
