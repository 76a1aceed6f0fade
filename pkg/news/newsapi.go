package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const newsAPIEndpoint = "https://newsapi.org/v2/everything"

// topicQuery narrows the feed to AI and IT coverage server-side.
const topicQuery = `("artificial intelligence" OR "machine learning" OR "deep learning" OR "AI technology" OR "software development" OR "programming" OR "computer science" OR "data science" OR "cybersecurity" OR "cloud computing" OR "blockchain" OR "robotics" OR "automation" OR "tech startup" OR "digital transformation")`

type NewsAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) FetchTop(limit int) ([]Candidate, error) {
	params := url.Values{}
	params.Set("q", topicQuery)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(limit))

	req, err := http.NewRequest(http.MethodGet, newsAPIEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	if raw.Status != "ok" {
		return nil, fmt.Errorf("newsapi error: %s (%s)", raw.Code, raw.Message)
	}

	candidates := make([]Candidate, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		candidates = append(candidates, Candidate{
			URL:          item.URL,
			Title:        item.Title,
			Description:  item.Description,
			SourceName:   item.Source.Name,
			SourceDomain: domainOf(item.URL),
			ImageURL:     item.URLToImage,
		})
	}

	return candidates, nil
}

func domainOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}
