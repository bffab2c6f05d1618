package opengraph

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ogmi/pkg/ogmi"
)

func TestParseHTML_SpotifyAlbum(t *testing.T) {
	g, err := ParseHTML(spotifyAlbumHTML)
	require.NoError(t, err)

	assert.Equal(t, "Salutations", g.Title())
	assert.Equal(t, "music.album", g.Type())
	require.NotNil(t, g.URL())
	assert.Equal(t, "https://open.spotify.com/album/5YQGQfkjghbxW00eKy9YpJ", g.URL().String())
	assert.Nil(t, g.Image(), "blank og:image is dropped")
	assert.False(t, g.Metadata().Has("og:description"), "blank og:description is dropped")

	assert.Equal(t, "https://open.spotify.com/artist/2Z7gV3uEh1ckIaBzTUCE6R", g.Value("music:musician"))
	assert.Equal(t, "2017-03-17", g.Value("music:release_date"))

	songs := g.Elements("music:song")
	require.Len(t, songs, 2)
	assert.Equal(t, "https://open.spotify.com/track/1JJUbiYekbYkdDhK1kp3C9", songs[0].Value())
	assert.Equal(t, "1", songs[0].PropertyValue("disc"))
	assert.Equal(t, "1", songs[0].PropertyValue("track"))
	assert.Equal(t, "https://open.spotify.com/track/3eitV6XbyRW0FxKEUh60Pi", songs[1].Value())
	assert.Equal(t, "1", songs[1].PropertyValue("disc"))
	assert.Equal(t, "2", songs[1].PropertyValue("track"))

	locale := g.Elements("locale")
	require.Len(t, locale, 1)
	assert.Equal(t, "es", locale[0].Value())
	alternates := locale[0].Properties().Get("alternate")
	require.Len(t, alternates, 2)
	assert.Equal(t, "es_US", alternates[0].Value())
	assert.Equal(t, "es_ES", alternates[1].Value())
	assert.Same(t, locale[0], alternates[0].Parent())

	expected := `<meta property="og:title" content="Salutations">` +
		`<meta property="og:url" content="https://open.spotify.com/album/5YQGQfkjghbxW00eKy9YpJ">` +
		`<meta property="og:type" content="music.album">` +
		`<meta property="music:musician" content="https://open.spotify.com/artist/2Z7gV3uEh1ckIaBzTUCE6R">` +
		`<meta property="music:release_date" content="2017-03-17">` +
		`<meta property="music:song" content="https://open.spotify.com/track/1JJUbiYekbYkdDhK1kp3C9">` +
		`<meta property="music:song:disc" content="1">` +
		`<meta property="music:song:track" content="1">` +
		`<meta property="music:song" content="https://open.spotify.com/track/3eitV6XbyRW0FxKEUh60Pi">` +
		`<meta property="music:song:disc" content="1">` +
		`<meta property="music:song:track" content="2">` +
		`<meta property="og:locale" content="es">` +
		`<meta property="og:locale:alternate" content="es_US">` +
		`<meta property="og:locale:alternate" content="es_ES">`
	assert.Equal(t, expected, g.String())
	assert.Equal(t, "og: http://ogp.me/ns# music: http://ogp.me/ns/music#", g.HeadPrefixAttributeValue())
	assert.Equal(t, `xmlns:og="http://ogp.me/ns#" xmlns:music="http://ogp.me/ns/music#"`, g.HTMLXmlnsValues())
}

func TestParseHTML_SpotifyPlaylist(t *testing.T) {
	g, err := ParseHTML(spotifyPlaylistHTML)
	require.NoError(t, err)

	assert.Equal(t, "Programming Jams, a playlist by Jefe on Spotify", g.Title())
	assert.Equal(t, "music.playlist", g.Type())
	assert.Equal(t, "1020", g.Value("music:song_count"))

	songs := g.Elements("music:song")
	require.Len(t, songs, 2)
	assert.Equal(t, "1", songs[0].PropertyValue("track"))
	assert.Equal(t, "2", songs[1].PropertyValue("track"))

	allowed := g.Elements("og:restrictions:country:allowed")
	require.Len(t, allowed, 2)
	assert.Equal(t, "AD", allowed[0].Value())
	assert.Equal(t, "AR", allowed[1].Value())

	alternates := g.Elements("og:locale:alternate")
	require.Len(t, alternates, 2, "without og:locale the alternates are roots")
	assert.Equal(t, "en_US", alternates[0].Value())
	assert.Equal(t, "en_GB", alternates[1].Value())
}

func TestParseHTML_ValidProductWithCustomNamespace(t *testing.T) {
	reg := DefaultRegistry().With("gah", gahSchemaURI, "pea_brain:size")

	g, err := ParseHTML(validProductHTML, WithRegistry(reg), WithValidation(true))
	require.NoError(t, err)

	ns := g.Namespaces()
	assert.Equal(t, []string{"og", "product", "gah"}, ns.Keys())
	og, _ := ns.Get("og")
	assert.Equal(t, OpenGraphSchemaURI, og.SchemaURI)
	product, _ := ns.Get("product")
	assert.Equal(t, "http://ogp.me/ns/product#", product.SchemaURI)
	gah, _ := ns.Get("gah")
	assert.Equal(t, gahSchemaURI, gah.SchemaURI)

	assert.Equal(t, "product", g.Type())
	assert.Equal(t, "Product Title", g.Title())
	assert.Equal(t, "http://www.test.com/test.png", g.Image().String())
	assert.Equal(t, "http://www.test.com/", g.URL().String())
	assert.Equal(t, "My Description", g.Value("description"))
	assert.Equal(t, "Test Site", g.Value("og:site_name"))
	assert.Equal(t, "small", g.Value("gah:pea_brain:size"))
}

func TestParseHTML_UnregisteredNamespaceIsDropped(t *testing.T) {
	g, err := ParseHTML(validProductHTML)
	require.NoError(t, err)

	assert.False(t, g.Namespaces().Has("gah"))
	assert.False(t, g.Metadata().Has("gah:pea_brain:size"))
}

func TestParseHTML_MissingURLs(t *testing.T) {
	g, err := ParseHTML(missingURLsHTML)
	require.NoError(t, err)

	assert.Equal(t, []string{"og"}, g.Namespaces().Keys())
	assert.Equal(t, "product", g.Type())
	assert.Equal(t, "Product Title", g.Title())
	assert.Nil(t, g.Image())
	assert.Nil(t, g.URL())
	assert.Equal(t, "Test Site", g.Value("site_name"))
}

func TestParseHTML_Validation(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		wantElement string
	}{
		{name: "missing type", html: missingTypeHTML, wantElement: "type"},
		{name: "missing image and url", html: missingURLsHTML, wantElement: "image"},
		{name: "no meta at all", html: noMetaHTML, wantElement: "title"},
		{
			name: "missing og:url only",
			html: `<html><head>
				<meta property="og:title" content="T">
				<meta property="og:type" content="website">
				<meta property="og:image" content="http://i/1.png">
			</head></html>`,
			wantElement: "url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseHTML(tt.html, WithValidation(true))
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, ogmi.ErrSpecificationViolation))

			var specErr *SpecificationError
			require.True(t, errors.As(err, &specErr))
			assert.Equal(t, tt.wantElement, specErr.Element)
			assert.Equal(t, "og", specErr.Namespace.Prefix)
			assert.Contains(t, err.Error(), "missing element: "+tt.wantElement)
		})
	}
}

func TestParseHTML_WithoutValidationKeepsPartialGraph(t *testing.T) {
	g, err := ParseHTML(missingTypeHTML)
	require.NoError(t, err)

	assert.Equal(t, "", g.Type())
	assert.False(t, g.Metadata().Has("og:mistake"), "meta without content is dropped")
	assert.Equal(t, "Product Title", g.Title())
	assert.Equal(t, "http://www.test.com/test.png", g.Image().String())
	assert.Equal(t, "http://www.test.com/", g.URL().String())
	assert.Equal(t, "My Description", g.Value("og:description"))
}

func TestParseHTML_RepeatedImages(t *testing.T) {
	html := `<html><head>
		<meta property="og:image" content="http://i/1.png">
		<meta property="og:image:width" content="30">
		<meta property="og:image" content="http://i/2.png">
		<meta property="og:image:width" content="60">
	</head></html>`

	g, err := ParseHTML(html)
	require.NoError(t, err)

	images := g.Elements("og:image")
	require.Len(t, images, 2)
	assert.Equal(t, "http://i/1.png", images[0].Value())
	assert.Equal(t, "http://i/2.png", images[1].Value())
	require.Len(t, images[0].Properties().Get("width"), 1)
	require.Len(t, images[1].Properties().Get("width"), 1)
	assert.Equal(t, "30", images[0].PropertyValue("width"))
	assert.Equal(t, "60", images[1].PropertyValue("width"))
	assert.Equal(t, "http://i/1.png", g.Image().String())
}

func TestParseHTML_OutOfOrderProperties(t *testing.T) {
	html := `<html><head>
		<meta property="og:image" content="http://i/1.png">
		<meta property="og:image" content="http://i/2.png">
		<meta property="og:title" content="T">
		<meta property="og:image:width" content="30">
		<meta property="og:image:width" content="60">
		<meta property="og:image:height" content="10">
	</head></html>`

	g, err := ParseHTML(html)
	require.NoError(t, err)

	images := g.Elements("og:image")
	require.Len(t, images, 2)
	assert.Equal(t, "30", images[0].PropertyValue("width"))
	assert.Equal(t, "60", images[1].PropertyValue("width"))
	assert.Equal(t, "10", images[0].PropertyValue("height"))
	assert.False(t, images[1].HasProperty("height"))
}

func TestParseHTML_FallbackPrefersEarliestRoot(t *testing.T) {
	html := `<html><head>
		<meta property="og:locale:alternate" content="es_US">
		<meta property="og:locale" content="es">
		<meta property="og:title" content="T">
		<meta property="og:locale:alternate:region" content="x">
	</head></html>`

	g, err := ParseHTML(html)
	require.NoError(t, err)

	alternate := g.Elements("og:locale:alternate")
	require.Len(t, alternate, 1)
	locale := g.Elements("og:locale")
	require.Len(t, locale, 1)

	assert.Equal(t, "x", alternate[0].PropertyValue("region"))
	assert.Equal(t, 0, locale[0].Properties().Len())
}

func TestParseHTML_FallbackCreatesRootWhenAllOwnersFilled(t *testing.T) {
	html := `<html><head>
		<meta property="og:image" content="http://i/1.png">
		<meta property="og:image:width" content="30">
		<meta property="og:title" content="T">
		<meta property="og:image:width" content="60">
	</head></html>`

	g, err := ParseHTML(html)
	require.NoError(t, err)

	images := g.Elements("og:image")
	require.Len(t, images, 1)
	assert.Equal(t, "30", images[0].PropertyValue("width"))

	widths := g.Elements("og:image:width")
	require.Len(t, widths, 1)
	assert.Equal(t, "60", widths[0].Value())
}

func TestParseHTML_IgnoresUnprefixedKeys(t *testing.T) {
	html := `<html><head>
		<meta name="description" content="plain description">
		<meta name="viewport" content="width=device-width">
		<meta property="og:title" content="T">
		<meta charset="utf-8">
	</head></html>`

	g, err := ParseHTML(html)
	require.NoError(t, err)

	assert.Equal(t, []string{"og:title"}, g.Metadata().Keys())
}

func TestParseHTML_BlankContentDropped(t *testing.T) {
	html := `<html><head>
		<meta property="og:title" content="   ">
		<meta property="og:type">
		<meta property="og:site_name" content="S">
	</head></html>`

	g, err := ParseHTML(html)
	require.NoError(t, err)

	assert.Equal(t, []string{"og:site_name"}, g.Metadata().Keys())
	assert.Equal(t, "", g.Title())
}

func TestParseHTML_DecodesAmpersandOnlyForURLs(t *testing.T) {
	html := `<html><head>
		<meta property="og:image" content="http://i/1.png?a=1&amp;amp;b=2">
		<meta property="og:description" content="Tom &amp;amp; Jerry">
	</head></html>`

	g, err := ParseHTML(html)
	require.NoError(t, err)

	assert.Equal(t, "http://i/1.png?a=1&b=2", g.Value("og:image"))
	assert.Equal(t, "Tom &amp; Jerry", g.Value("og:description"))
}

func TestParseHTML_CaseInsensitiveKeys(t *testing.T) {
	html := `<html><head>
		<meta property="OG:Title" content="T">
		<meta property="og:IMAGE" content="http://i/1.png">
		<meta property="OG:image:Width" content="30">
	</head></html>`

	g, err := ParseHTML(html)
	require.NoError(t, err)

	assert.Equal(t, []string{"og:title", "og:image"}, g.Metadata().Keys())
	assert.Equal(t, "T", g.Title())
	assert.Equal(t, "30", g.Elements("og:image")[0].PropertyValue("width"))
}

func TestParseHTML_RelativeImageLeftUnset(t *testing.T) {
	html := `<html><head>
		<meta property="og:image" content="/static/1.png">
		<meta property="og:url" content="not a url">
	</head></html>`

	g, err := ParseHTML(html)
	require.NoError(t, err)

	assert.Nil(t, g.Image())
	assert.Nil(t, g.URL())
	assert.Equal(t, "/static/1.png", g.Value("og:image"))
}

func TestParseHTML_Idempotent(t *testing.T) {
	first, err := ParseHTML(spotifyAlbumHTML)
	require.NoError(t, err)
	second, err := ParseHTML(spotifyAlbumHTML)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, first.Snapshot(), second.Snapshot())
}

func TestParseHTML_RoundTrip(t *testing.T) {
	for name, html := range map[string]string{
		"album":    spotifyAlbumHTML,
		"playlist": spotifyPlaylistHTML,
		"product":  validProductHTML,
	} {
		t.Run(name, func(t *testing.T) {
			original, err := ParseHTML(html)
			require.NoError(t, err)

			rendered := "<html><head>" + original.String() + "</head></html>"
			reparsed, err := ParseHTML(rendered)
			require.NoError(t, err)

			assert.Equal(t, original.String(), reparsed.String())
			assert.Equal(t, original.Metadata().Keys(), reparsed.Metadata().Keys())
		})
	}
}

func TestParseHTML_RoundTripEscapesValues(t *testing.T) {
	g, err := MakeGraph(`Say "hi" <now>`, "website", "http://i/1.png", "http://u/")
	require.NoError(t, err)

	reparsed, err := ParseHTML("<html><head>" + g.String() + "</head></html>")
	require.NoError(t, err)
	assert.Equal(t, `Say "hi" <now>`, reparsed.Title())
}

type recordingLogger struct {
	mu      sync.Mutex
	verbose []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(string, ...interface{})  {}
func (l *recordingLogger) Error(string, ...interface{}) {}

func TestParseHTML_LogsDroppedNodes(t *testing.T) {
	logger := &recordingLogger{}
	_, err := ParseHTML(validProductHTML, WithLogger(logger))
	require.NoError(t, err)

	require.Len(t, logger.verbose, 1)
	assert.True(t, strings.Contains(logger.verbose[0], `unknown namespace "gah"`))
}

func TestParseHTML_OriginalContent(t *testing.T) {
	g, err := ParseHTML(validProductHTML, WithOriginalURL("http://www.test.com/page"))
	require.NoError(t, err)

	assert.Equal(t, validProductHTML, g.OriginalHTML())
	assert.Equal(t, "http://www.test.com/page", g.OriginalURL())
}

func TestParseHTML_ConcurrentParsesShareRegistry(t *testing.T) {
	reg := DefaultRegistry().With("gah", gahSchemaURI, "pea_brain:size")

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, err := ParseHTML(validProductHTML, WithRegistry(reg), WithValidation(true))
			if err != nil {
				errs <- err
				return
			}
			if g.Value("gah:pea_brain:size") != "small" {
				errs <- fmt.Errorf("unexpected value %q", g.Value("gah:pea_brain:size"))
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
