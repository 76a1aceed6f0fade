package news

// Candidate is a raw feed entry before relevance filtering. It only lives
// for the duration of one ingestion run.
type Candidate struct {
	URL          string
	Title        string
	Description  string
	SourceName   string
	SourceDomain string
	ImageURL     string
}

type FeedClient interface {
	FetchTop(limit int) ([]Candidate, error)
	Name() string
}
