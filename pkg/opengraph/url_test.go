package opengraph

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ogmi/pkg/ogmi"
)

type stubFetcher struct {
	content string
	err     error
	got     ogmi.FetchRequest
}

func (f *stubFetcher) Fetch(_ context.Context, req ogmi.FetchRequest) (string, error) {
	f.got = req
	return f.content, f.err
}

func TestParseURL_UsesFetcher(t *testing.T) {
	f := &stubFetcher{content: spotifyAlbumHTML}

	g, err := ParseURL(context.Background(), "https://open.spotify.com/album/x",
		WithFetcher(f),
		WithReferrer("https://example.com/"),
		WithTimeout(5*time.Second))
	require.NoError(t, err)

	assert.Equal(t, "Salutations", g.Title())
	assert.Equal(t, "https://open.spotify.com/album/x", g.OriginalURL())
	assert.Equal(t, spotifyAlbumHTML, g.OriginalHTML())

	assert.Equal(t, "https://open.spotify.com/album/x", f.got.URL)
	assert.Equal(t, ogmi.DefaultUserAgent, f.got.UserAgent)
	assert.Equal(t, "https://example.com/", f.got.Referrer)
	assert.Equal(t, 5*time.Second, f.got.Timeout)
}

func TestParseURL_FetchErrorPropagatesUnchanged(t *testing.T) {
	fetchErr := errors.New("connection reset")
	f := &stubFetcher{err: fetchErr}

	g, err := ParseURL(context.Background(), "http://example.com/", WithFetcher(f))
	assert.Nil(t, g)
	assert.Same(t, fetchErr, err)
}

func TestParseURL_InvalidURL(t *testing.T) {
	f := &stubFetcher{content: spotifyAlbumHTML}

	for _, raw := range []string{"", "ftp://example.com/", "/relative"} {
		_, err := ParseURL(context.Background(), raw, WithFetcher(f))
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, ogmi.ErrInvalidConfig), raw)
	}
}

func TestParseURL_Validation(t *testing.T) {
	f := &stubFetcher{content: missingTypeHTML}

	_, err := ParseURL(context.Background(), "http://example.com/", WithFetcher(f), WithValidation(true))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ogmi.ErrSpecificationViolation))
}

func TestParseURLAsync(t *testing.T) {
	f := &stubFetcher{content: spotifyPlaylistHTML}

	res := <-ParseURLAsync(context.Background(), "http://example.com/", WithFetcher(f), WithUserAgent("ogmi-test"))
	require.NoError(t, res.Err)
	assert.Equal(t, "music.playlist", res.Graph.Type())
	assert.Equal(t, "ogmi-test", f.got.UserAgent)
}

func TestParseURL_DefaultFetcher(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(validProductHTML))
	}))
	srv.Config.SetKeepAlivesEnabled(false)
	defer srv.Close()

	g, err := ParseURL(context.Background(), srv.URL+"/product")
	require.NoError(t, err)

	assert.Equal(t, "Product Title", g.Title())
	assert.Equal(t, ogmi.DefaultUserAgent, gotUA)
	assert.Equal(t, srv.URL+"/product", g.OriginalURL())
}

func TestParseURL_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	srv.Config.SetKeepAlivesEnabled(false)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseURL(ctx, srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
