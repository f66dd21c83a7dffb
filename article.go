package pressclip

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// FetchInfo carries the network collaborator's metadata about how a
// document was obtained. This component never fetches anything itself.
type FetchInfo struct {
	URL       string    `json:"url"`
	Domain    string    `json:"domain"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Article is the external composition of one scraped piece: metadata
// fields merged with the extraction result's clean text plus fetch
// metadata.
type Article struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	Domain      string     `json:"domain"`
	Title       string     `json:"title,omitempty"`
	Author      string     `json:"author,omitempty"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
	CleanText   string     `json:"cleanText"`
	ContentHash string     `json:"contentHash"`
	WordCount   int        `json:"wordCount"`
	Method      Method     `json:"extractionMethod"`
	Confidence  float64    `json:"confidenceScore"`
	FetchedAt   time.Time  `json:"fetchedAt"`
	ErrorInfo   *ErrorInfo `json:"errorInfo,omitempty"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALIDINPUT, "article URL required")
	}
	return nil
}

// ComposeArticle merges a metadata parse with an extraction result and
// fetch metadata into a single article. The extraction result's clean
// text and method win; metadata contributes title, author, and date.
// The reported confidence is the higher of the two passes.
func ComposeArticle(meta *Metadata, res *ExtractionResult, fetch FetchInfo) *Article {
	a := &Article{
		ID:        uuid.New().String(),
		URL:       fetch.URL,
		Domain:    fetch.Domain,
		FetchedAt: fetch.FetchedAt,
	}
	if meta != nil {
		a.Title = meta.Title
		a.Author = meta.Author
		a.PublishDate = meta.PublishDate
		a.Confidence = meta.Confidence
	}
	if res != nil {
		a.CleanText = res.CleanText
		a.WordCount = res.WordCount
		a.Method = res.Method
		a.ErrorInfo = res.ErrorInfo
		if res.Confidence > a.Confidence {
			a.Confidence = res.Confidence
		}
	}
	a.ContentHash = ContentHash(a.CleanText)
	return a
}

// ContentHash computes a hash of the clean text using xxhash,
// hex-encoded for storage and comparison.
func ContentHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
