package dto

import "github.com/handiism/coverquiz/internal/model"

// JSONArtist is an artist object from the catalog API.
type JSONArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchResponse is the body of an artist search.
type SearchResponse struct {
	Artists struct {
		Items []JSONArtist `json:"items"`
	} `json:"artists"`
}

// ToArtist converts JSONArtist to a model.Artist.
func (ja *JSONArtist) ToArtist() model.Artist {
	return model.Artist{ID: ja.ID, Name: ja.Name}
}
