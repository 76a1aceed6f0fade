package pipeline

import (
	"strings"

	"technews/pkg/news"
)

const (
	// feedPageSize is how many candidates one run pulls from the feed.
	feedPageSize = 20
	// maxSurvivors caps the batch to bound extraction and model cost.
	maxSurvivors = 10
)

// skipKeywords reject a candidate outright; they outrank any tech signal so
// that e.g. an "AI Museum Exhibition" piece never enters the pipeline.
var skipKeywords = []string{
	"architecture", "museum", "art gallery", "exhibition", "design festival",
	"building", "construction", "placemaking", "urban planning",
}

var techKeywords = []string{
	"ai", "artificial intelligence", "machine learning", "deep learning",
	"software", "programming", "coding", "developer", "tech", "technology",
	"computer", "digital", "data science", "algorithm", "startup",
	"cybersecurity", "blockchain", "cloud", "automation", "robot",
}

var techSources = []string{
	"techcrunch.com", "arstechnica.com", "wired.com", "theverge.com",
	"engadget.com", "venturebeat.com", "zdnet.com", "cnet.com",
	"reuters.com", "bloomberg.com", "cnbc.com", "techradar.com",
	"spectrum.ieee.org", "nature.com", "science.org",
}

// Relevant decides keep/drop for one candidate. Pure, no I/O.
func Relevant(c news.Candidate) bool {
	title := strings.ToLower(c.Title)
	description := strings.ToLower(c.Description)

	for _, skip := range skipKeywords {
		if strings.Contains(title, skip) || strings.Contains(description, skip) {
			return false
		}
	}

	domain := strings.ToLower(c.SourceDomain)
	for _, source := range techSources {
		if strings.Contains(domain, source) {
			return true
		}
	}

	for _, keyword := range techKeywords {
		if strings.Contains(title, keyword) || strings.Contains(description, keyword) {
			return true
		}
	}

	return false
}

// FilterCandidates applies Relevant over one feed page and caps survivors.
func FilterCandidates(candidates []news.Candidate) []news.Candidate {
	survivors := make([]news.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !Relevant(c) {
			continue
		}
		survivors = append(survivors, c)
		if len(survivors) >= maxSurvivors {
			break
		}
	}
	return survivors
}
