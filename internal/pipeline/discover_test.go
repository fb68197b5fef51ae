package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func htmlServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDiscover_FindsOnlyPDFLinks(t *testing.T) {
	srv := htmlServer(t, `<html><body>
		<a href="/docs/manual.pdf">Manual</a>
		<a href="/docs/readme.txt">Readme</a>
		<a href="/about">About</a>
	</body></html>`)

	d := NewDiscoverer(srv.Client())
	links, err := d.Discover(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, srv.URL+"/docs/manual.pdf", links[0].URL)
	assert.Equal(t, "Manual", links[0].Text)
}

func TestDiscover_DeduplicatesByResolvedURL(t *testing.T) {
	srv := htmlServer(t, `<html><body>
		<a href="/docs/a.pdf">First</a>
		<a href="/docs/a.pdf">Second mention</a>
		<a href="/docs/b.pdf">Other</a>
	</body></html>`)

	d := NewDiscoverer(srv.Client())
	links, err := d.Discover(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, links, 2)
	// First occurrence wins and order is preserved.
	assert.Equal(t, "First", links[0].Text)
	assert.Equal(t, srv.URL+"/docs/b.pdf", links[1].URL)
}

func TestDiscover_ResolvesRelativeURLs(t *testing.T) {
	srv := htmlServer(t, `<a href="files/report.pdf?v=2">Report</a>`)

	d := NewDiscoverer(srv.Client())
	links, err := d.Discover(context.Background(), srv.URL+"/section/page")
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, srv.URL+"/section/files/report.pdf?v=2", links[0].URL)
}

func TestDiscover_EmptyAnchorTextGetsPlaceholder(t *testing.T) {
	srv := htmlServer(t, `<a href="/x.pdf"><img src="icon.png"/></a>`)

	d := NewDiscoverer(srv.Client())
	links, err := d.Discover(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "PDF Document", links[0].Text)
}

func TestDiscover_SectionHeading(t *testing.T) {
	srv := htmlServer(t, `<html><body>
		<h2>Safe Sleep Resources</h2>
		<div><p><a href="/sleep.pdf">Policy</a></p></div>
	</body></html>`)

	d := NewDiscoverer(srv.Client())
	links, err := d.Discover(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Safe Sleep Resources", links[0].SectionHeading)
}

func TestDiscover_NoHeadingFound(t *testing.T) {
	srv := htmlServer(t, `<div><a href="/x.pdf">Doc</a></div>`)

	d := NewDiscoverer(srv.Client())
	links, err := d.Discover(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Empty(t, links[0].SectionHeading)
}

func TestDiscover_NearbyTextFeedsCategorization(t *testing.T) {
	// Exact nearby-text content is a heuristic; only the categorization
	// outcome it drives is asserted.
	srv := htmlServer(t, `<html><body>
		<p>Appendix listing</p>
		<p><a href="/doc-2024.pdf">Download</a></p>
	</body></html>`)

	d := NewDiscoverer(srv.Client())
	links, err := d.Discover(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, links, 1)

	section := Categorize(links[0].Text, links[0].URL, links[0].NearbyText+" "+links[0].SectionHeading)
	assert.Equal(t, "child-welfare-appendices", section)
}

func TestDiscover_FetchErrors(t *testing.T) {
	t.Run("NonOKStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		d := NewDiscoverer(srv.Client())
		_, err := d.Discover(context.Background(), srv.URL)
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
	})

	t.Run("Unreachable", func(t *testing.T) {
		d := NewDiscoverer(&http.Client{Timeout: 100 * time.Millisecond})
		_, err := d.Discover(context.Background(), "http://127.0.0.1:1/none")
		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
	})
}
