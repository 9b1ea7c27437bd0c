package dto

import (
	"time"

	"mindhaven.app/server/internal/model"
)

type PlaceResponse struct {
	Name string  `json:"name"`
	Kind string  `json:"kind"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type ArticleResponse struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
}

func ToPlaceResponses(places []model.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		out = append(out, PlaceResponse(p))
	}
	return out
}

func ToArticleResponses(articles []model.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, ArticleResponse(a))
	}
	return out
}
