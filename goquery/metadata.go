package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/rkaczmarek/pressclip"
)

// Plausibility thresholds for metadata fields.
const (
	minTitleLen  = 10
	maxAuthorLen = 100
)

// fallbackPenalty discounts confidence for genuinely-fallback metadata
// results. Tunable; the value carries over from the system this engine
// replaces.
const fallbackPenalty = 0.7

// Generic selector lists tried in order when site-specific selectors
// yield nothing plausible.
var (
	genericTitleSelectors = []string{
		"h1", ".title", ".headline", "[class*='title']", "[class*='headline']",
	}
	genericContentSelectors = []string{
		"article p", ".content p", ".article-body p", ".story p", "main p", "p",
	}
	genericAuthorSelectors = []string{
		".author", ".byline", ".writer", "[class*='author']", "[class*='byline']",
	}
	genericDateSelectors = []string{
		"time", ".date", ".published", "[class*='date']", "[class*='time']",
	}
)

// dateFormats is the fixed set of accepted publish-date layouts,
// attribute-based ISO forms first.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"January 2, 2006",
	"2 January 2006",
}

// Ensure MetadataParser implements pressclip.MetadataParser at compile time.
var _ pressclip.MetadataParser = (*MetadataParser)(nil)

// MetadataParser extracts title, author, publish date, and content
// from a document using a two-tier strategy: site-specific selectors
// first, generic selector lists as fallback. It parses its own tree,
// unfiltered, so headline or byline markup inside page chrome is still
// reachable.
type MetadataParser struct {
	sanitizer *Sanitizer
}

// NewMetadataParser creates a MetadataParser.
func NewMetadataParser() *MetadataParser {
	return &MetadataParser{sanitizer: NewSanitizer()}
}

// Parse extracts metadata from raw HTML. If the site-specific pass
// scores below 0.5 combined confidence, a generic-only pass runs and
// the higher-confidence result is kept; fallback results carry a
// penalty. Parse never panics; unusable input yields a
// zero-confidence Metadata.
func (p *MetadataParser) Parse(html string, profile *pressclip.Profile) (meta *pressclip.Metadata) {
	defer func() {
		if recover() != nil {
			meta = &pressclip.Metadata{Method: pressclip.MethodError}
		}
	}()

	doc, err := p.sanitizer.SanitizeString(html, nil)
	if err != nil {
		return &pressclip.Metadata{Method: pressclip.MethodError}
	}

	primary := p.siteParse(doc, profile)
	if primary.Confidence >= 0.5 {
		return primary
	}

	fallback := p.genericParse(doc, profile)
	if fallback.Confidence > primary.Confidence {
		return fallback
	}
	return primary
}

// siteParse runs the profile's own selectors.
func (p *MetadataParser) siteParse(doc *goquery.Document, profile *pressclip.Profile) *pressclip.Metadata {
	meta := &pressclip.Metadata{Method: pressclip.MethodSiteSpecific}
	if profile == nil {
		meta.Confidence = 0
		return meta
	}

	meta.Title = selectTitle(doc, profile.TitleSelector)
	meta.Author = selectAuthor(doc, profile.AuthorSelector)
	meta.PublishDate = selectDate(doc, profile.DateSelector)

	paragraphs := selectParagraphs(doc, profile.ContentSelector)
	meta.Content = strings.Join(paragraphs, "\n\n")
	meta.WordCount = pressclip.WordCount(meta.Content)
	meta.ParagraphCount = len(paragraphs)

	meta.Confidence = pressclip.MetadataConfidence(
		meta.Title != "", meta.WordCount, meta.Author != "", meta.PublishDate != nil)
	return meta
}

// genericParse runs the profile's fallback selectors and the generic
// selector lists, with the fallback confidence penalty applied.
func (p *MetadataParser) genericParse(doc *goquery.Document, profile *pressclip.Profile) *pressclip.Metadata {
	meta := &pressclip.Metadata{Method: pressclip.MethodGenericFallback}

	var paragraphs []string
	if profile != nil {
		for _, selector := range profile.FallbackSelectors {
			found := selectParagraphs(doc, selector)
			if len(found) >= siteMinFallbackParagraphs {
				paragraphs = found
				break
			}
		}
	}
	if len(paragraphs) == 0 {
		for _, selector := range genericContentSelectors {
			found := selectParagraphs(doc, selector)
			if len(found) >= siteMinFallbackParagraphs {
				paragraphs = found
				break
			}
		}
	}

	for _, selector := range genericTitleSelectors {
		if meta.Title = selectTitle(doc, selector); meta.Title != "" {
			break
		}
	}
	for _, selector := range genericAuthorSelectors {
		if meta.Author = selectAuthor(doc, selector); meta.Author != "" {
			break
		}
	}
	for _, selector := range genericDateSelectors {
		if meta.PublishDate = selectDate(doc, selector); meta.PublishDate != nil {
			break
		}
	}

	meta.Content = strings.Join(paragraphs, "\n\n")
	meta.WordCount = pressclip.WordCount(meta.Content)
	meta.ParagraphCount = len(paragraphs)

	meta.Confidence = pressclip.MetadataConfidence(
		meta.Title != "", meta.WordCount, meta.Author != "", meta.PublishDate != nil) * fallbackPenalty
	return meta
}

// selectTitle returns the first match with a plausible headline
// length.
func selectTitle(doc *goquery.Document, selector string) string {
	if selector == "" {
		return ""
	}
	var title string
	forEachMatch(doc, selector, func(sel *goquery.Selection) {
		if title != "" {
			return
		}
		text := cleanParagraph(sel.Text())
		if len([]rune(text)) > minTitleLen {
			title = text
		}
	})
	return title
}

// selectAuthor returns the first match with a plausible byline
// length, stripped of "By"-style prefixes.
func selectAuthor(doc *goquery.Document, selector string) string {
	if selector == "" {
		return ""
	}
	var author string
	forEachMatch(doc, selector, func(sel *goquery.Selection) {
		if author != "" {
			return
		}
		text := cleanParagraph(sel.Text())
		if text != "" && len([]rune(text)) < maxAuthorLen {
			author = text
		}
	})
	return author
}

// selectDate returns the first parseable date, preferring a datetime
// attribute over element text.
func selectDate(doc *goquery.Document, selector string) *time.Time {
	if selector == "" {
		return nil
	}
	var date *time.Time
	forEachMatch(doc, selector, func(sel *goquery.Selection) {
		if date != nil {
			return
		}
		if attr, ok := sel.Attr("datetime"); ok {
			if t := ParseDate(attr); t != nil {
				date = t
				return
			}
		}
		date = ParseDate(cleanParagraph(sel.Text()))
	})
	return date
}

// ParseDate parses a publish-date string against the fixed format
// table, then falls back to lenient free-text parsing. Returns nil
// when nothing matches.
func ParseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	if t, err := dateparse.ParseAny(value); err == nil {
		return &t
	}
	return nil
}
