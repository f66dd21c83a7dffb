package pressclip

import "time"

// Metadata holds the article fields parsed from a document, computed
// independently of the content extraction result.
type Metadata struct {
	Title          string     `json:"title,omitempty"`
	Author         string     `json:"author,omitempty"`
	PublishDate    *time.Time `json:"publishDate,omitempty"`
	Content        string     `json:"content,omitempty"`
	WordCount      int        `json:"wordCount"`
	ParagraphCount int        `json:"paragraphCount"`
	Method         Method     `json:"extractionMethod"`
	Confidence     float64    `json:"confidenceScore"`
}

// MetadataParser extracts title, author, publish date, and content
// from raw HTML using a site profile with generic fallbacks.
//
// Parse never panics on malformed input; failures surface as a
// zero-confidence Metadata value.
type MetadataParser interface {
	Parse(html string, profile *Profile) *Metadata
}
