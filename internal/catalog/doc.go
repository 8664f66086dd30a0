// Package catalog implements the music-catalog client used to fetch an
// artist's albums and their cover art.
//
// The API follows the Spotify Web API shape:
//
//  1. POST {token_url} with grant_type=client_credentials and HTTP Basic
//     credentials returns an access token
//  2. GET {api}/search?q=<name>&type=artist&limit=1 returns the top artist
//  3. GET {api}/artists/{id}/albums returns the albums, each with a list of
//     cover images
//
// # Usage
//
//	client := catalog.NewClient(settings, http.NewClient(settings.HTTPTimeout()))
//
//	albums, err := client.LoadAlbums(ctx, "Daft Punk")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cover, err := client.FetchCover(ctx, albums[0])
//
// # Errors
//
// Failures are classified with the sentinels from package model:
// ErrAuth for the token exchange, ErrArtistNotFound for an empty search
// and ErrNetwork for transport failures. JSON shapes live in the dto
// subpackage.
package catalog
