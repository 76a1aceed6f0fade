package model

import "time"

// ProcessedArticle is the staging-ready output of one pipeline item:
// a rewritten article plus the lead image carried over from the feed.
type ProcessedArticle struct {
	Title    string
	Tags     []string
	Abstract string
	Content  string
	ImageURL string
}

// StagedArticle is the unit held in the staging cache awaiting review.
// The id is generated at staging time; the source URL is not retained.
type StagedArticle struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Abstract string   `json:"abstract"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	ImageURL string   `json:"image_url"`
}

// PublishedArticle is the permanent record a staged article is promoted into.
type PublishedArticle struct {
	ID        int64
	Title     string
	Abstract  string
	Content   string
	Tags      []string
	ImageURL  string
	CreatedAt time.Time
}
