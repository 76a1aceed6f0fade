package extract

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrEmptyText marks a page that parsed cleanly but yielded no article body.
// Empty text is a failure, never a valid empty result.
var ErrEmptyText = errors.New("extracted text is empty")

// Article is the normalized result of extracting one web page.
type Article struct {
	URL             string
	Title           string
	Text            string
	Summary         string
	Authors         []string
	PublishedAt     *time.Time
	TopImage        string
	Keywords        []string
	MetaDescription string
	WordCount       int
}

type Extractor struct {
	httpClient *http.Client
}

func NewExtractor(client *http.Client) *Extractor {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Extractor{httpClient: client}
}

// Extract downloads the page at url and parses it into an Article.
// One fetch, no retries; any network or parse error fails this URL only.
func (e *Extractor) Extract(ctx context.Context, url string) (*Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "technews/1.0")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	doc.Find("script, style, nav, header, footer, aside, form, noscript, iframe").Remove()

	text := mainText(doc)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%s: %w", url, ErrEmptyText)
	}

	article := &Article{
		URL:             url,
		Title:           pageTitle(doc),
		Text:            text,
		Summary:         leadingSentences(text, 3, 500),
		Authors:         pageAuthors(doc),
		PublishedAt:     publishDate(doc),
		TopImage:        metaContent(doc, `meta[property="og:image"]`),
		Keywords:        metaKeywords(doc),
		MetaDescription: pageDescription(doc),
		WordCount:       len(strings.Fields(text)),
	}

	return article, nil
}

// mainText joins the paragraphs of the most article-like container.
func mainText(doc *goquery.Document) string {
	for _, selector := range []string{"article", `[role="main"]`, "main", "body"} {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}

		var paragraphs []string
		container.Find("p").Each(func(i int, p *goquery.Selection) {
			line := strings.TrimSpace(p.Text())
			// Very short fragments are boilerplate (captions, cookie notices).
			if len(line) >= 25 {
				paragraphs = append(paragraphs, line)
			}
		})

		if len(paragraphs) > 0 {
			return strings.Join(paragraphs, "\n\n")
		}
	}
	return ""
}

func pageTitle(doc *goquery.Document) string {
	if title := metaContent(doc, `meta[property="og:title"]`); title != "" {
		return title
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

func pageDescription(doc *goquery.Document) string {
	if desc := metaContent(doc, `meta[name="description"]`); desc != "" {
		return desc
	}
	return metaContent(doc, `meta[property="og:description"]`)
}

func pageAuthors(doc *goquery.Document) []string {
	var authors []string
	seen := map[string]struct{}{}

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		authors = append(authors, name)
	}

	doc.Find(`meta[name="author"]`).Each(func(i int, s *goquery.Selection) {
		content, _ := s.Attr("content")
		add(content)
	})
	doc.Find(`a[rel="author"], [itemprop="author"]`).Each(func(i int, s *goquery.Selection) {
		add(s.Text())
	})

	return authors
}

func publishDate(doc *goquery.Document) *time.Time {
	raw := metaContent(doc, `meta[property="article:published_time"]`)
	if raw == "" {
		raw, _ = doc.Find("time[datetime]").First().Attr("datetime")
	}
	if raw == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed
		}
	}
	return nil
}

func metaKeywords(doc *goquery.Document) []string {
	raw := metaContent(doc, `meta[name="keywords"]`)
	if raw == "" {
		return nil
	}

	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// leadingSentences builds a short extractive summary from the opening of text.
func leadingSentences(text string, maxSentences, maxChars int) string {
	flat := strings.Join(strings.Fields(text), " ")

	var (
		summary   strings.Builder
		sentences int
	)
	for i, r := range flat {
		summary.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			// Skip decimals like "3.5".
			if r == '.' && i+1 < len(flat) && flat[i+1] != ' ' {
				continue
			}
			sentences++
			if sentences >= maxSentences {
				break
			}
		}
		if summary.Len() >= maxChars {
			break
		}
	}

	return strings.TrimSpace(summary.String())
}
