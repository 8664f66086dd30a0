package dto

import "github.com/handiism/coverquiz/internal/model"

// JSONImage is one size of an album cover. The API lists the largest
// image first.
type JSONImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// JSONAlbum is a simplified album object from the catalog API.
type JSONAlbum struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Images []JSONImage `json:"images"`
}

// AlbumsResponse is one page of an artist's albums.
type AlbumsResponse struct {
	Items []JSONAlbum `json:"items"`
	Total int         `json:"total"`
}

// ToAlbum converts JSONAlbum to a model.Album.
//
// The cover URL is the first listed image; it is empty when the album has
// no images.
func (ja *JSONAlbum) ToAlbum() model.Album {
	var coverURL string
	if len(ja.Images) > 0 {
		coverURL = ja.Images[0].URL
	}

	return model.Album{
		ID:       ja.ID,
		Name:     ja.Name,
		CoverURL: coverURL,
	}
}
