package model

import "time"

// Article is one news search result.
type Article struct {
	Title       string
	Description string
	URL         string
	Source      string
	PublishedAt time.Time
}
