package opengraph

const spotifyAlbumHTML = `<!DOCTYPE html>
<html lang=en class="">
<head>
    <meta charset="UTF-8">
    <meta property="og:title" content="Salutations">
    <meta property="og:description" content="">
    <meta property="og:url" content="https://open.spotify.com/album/5YQGQfkjghbxW00eKy9YpJ">
    <meta property="og:image" content="">
    <meta property="og:type" content="music.album">
    <meta property="music:musician" content="https://open.spotify.com/artist/2Z7gV3uEh1ckIaBzTUCE6R">
    <meta property="music:release_date" content="2017-03-17">
    <meta property="music:song" content="https://open.spotify.com/track/1JJUbiYekbYkdDhK1kp3C9">
    <meta property="music:song:disc" content="1">
    <meta property="music:song:track" content="1">
    <meta property="music:song" content="https://open.spotify.com/track/3eitV6XbyRW0FxKEUh60Pi">
    <meta property="music:song:disc" content="1">
    <meta property="music:song:track" content="2">
    <title>Spotify Web Player</title>
    <link rel="icon" href="https://open.scdn.co/static/images/favicon.png ">
    <meta property="og:locale" content="es">
    <meta property="og:locale:alternate" content="es_US">
    <meta property="og:locale:alternate" content="es_ES">
</head>
<body class="env-prod " data-locale="en" data-market="US"></body></html>`

const spotifyPlaylistHTML = `<!DOCTYPE html>
<html lang=en class="">
<head>
    <meta charset="UTF-8">
    <meta property="og:title" content="Programming Jams, a playlist by Jefe on Spotify">
    <meta property="og:description" content="">
    <meta property="og:url" content="https://open.spotify.com/user/er811nzvdw2cy2qgkrlei9sqe/playlist/2lzTTRqhYS6AkHPIvdX9u3">
    <meta property="og:image" content="">
    <meta property="og:type" content="music.playlist">
    <meta property="music:creator" content="https://open.spotify.com/user/er811nzvdw2cy2qgkrlei9sqe">
    <meta property="music:song_count" content="1020">
    <meta property="music:song" content="https://open.spotify.com/track/3RL1cNdki1AsOLCMinb60a">
    <meta property="music:song:track" content="1">
    <meta property="music:song" content="https://open.spotify.com/track/4yVfG04odefa7JanoF5r86">
    <meta property="music:song:track" content="2">
    <meta property="og:restrictions:country:allowed" content="AD">
    <meta property="og:restrictions:country:allowed" content="AR">
    <title>Spotify Web Player</title>
    <meta property="og:locale:alternate" content="en_US">
    <meta property="og:locale:alternate" content="en_GB">
</head>
<body></body>
</html>`

const validProductHTML = `<!DOCTYPE HTML>
<html>
<head prefix="og: http://ogp.me/ns# product: http://ogp.me/ns/product#">
    <meta property="og:type" content="product" />
    <meta property="og:title" cOntent="Product Title" />
    <meta name="og:image" content="http://www.test.com/test.png"/>
    <meta propErty="og:uRl" content="http://www.test.com" />
    <meta property="og:description" content="My Description"/>
    <meta property="og:site_Name" content="Test Site">
    <meta property="gah:pea_brain:size" content="small">
</head>
<body>
</body>
</html>`

const missingTypeHTML = `<!DOCTYPE HTML>
<html>
<head>
    <meta property="og:title" cOntent="Product Title" />
    <meta name="og:image" content="http://www.test.com/test.png"/>
    <meta propErty="og:uRl" content="http://www.test.com" />
    <meta property="og:description" content="My Description"/>
    <meta property="og:site_Name" content="Test Site">
    <meta property="og:mistake" value="not included">
</head>
<body>
</body>
</html>`

const missingURLsHTML = `<!DOCTYPE HTML>
<html>
<head>
    <meta property="og:type" content="product" />
    <meta property="og:title" cOntent="Product Title" />
    <meta property="og:description" content="My Description"/>
    <meta property="og:site_Name" content="Test Site">
</head>
<body>
</body>
</html>`

const noMetaHTML = `<!DOCTYPE HTML>
<html>
<head>
    <title>some title</title>
</head>
<body>
</body>
</html>`

const gahSchemaURI = "http://www.geoffhorsey.com/ogp/pea_brain#"
