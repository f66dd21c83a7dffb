package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rkaczmarek/pressclip"
)

// Minimum words for a selector-matched block to count as a paragraph,
// and minimum paragraphs for a fallback selector to win.
const (
	siteMinParagraphWords     = 5
	siteMinFallbackParagraphs = 3
)

// Ensure SiteStrategy implements Strategy at compile time.
var _ Strategy = (*SiteStrategy)(nil)

// SiteStrategy extracts content with the profile's site-specific
// content selector, trying the profile's ordered fallback selectors
// when the primary selector yields nothing usable.
type SiteStrategy struct{}

// NewSiteStrategy creates a SiteStrategy.
func NewSiteStrategy() *SiteStrategy {
	return &SiteStrategy{}
}

// Method returns the strategy's result label.
func (s *SiteStrategy) Method() pressclip.Method {
	return pressclip.MethodSiteSpecific
}

// Locate concatenates the texts of elements matched by the profile's
// content selector, with paragraph breaks between them. Returns nil
// when the profile has no usable selector or nothing matched.
func (s *SiteStrategy) Locate(doc *goquery.Document, profile *pressclip.Profile) *pressclip.ContentCandidate {
	if doc == nil || profile == nil || profile.ContentSelector == "" {
		return nil
	}

	parts := selectParagraphs(doc, profile.ContentSelector)
	if len(parts) == 0 {
		for _, selector := range profile.FallbackSelectors {
			fallback := selectParagraphs(doc, selector)
			if len(fallback) >= siteMinFallbackParagraphs {
				parts = fallback
				break
			}
		}
	}
	if len(parts) == 0 {
		return nil
	}

	text := CleanText(strings.Join(parts, "\n\n"))
	if text == "" {
		return nil
	}
	return pressclip.NewCandidate(text, pressclip.MethodSiteSpecific)
}

// selectParagraphs runs a CSS selector and returns the cleaned text of
// each matched element that carries enough words. Invalid selectors
// are treated as matching nothing.
func selectParagraphs(doc *goquery.Document, selector string) []string {
	var parts []string
	forEachMatch(doc, selector, func(sel *goquery.Selection) {
		text := extractText(sel)
		if pressclip.WordCount(text) > siteMinParagraphWords {
			parts = append(parts, text)
		}
	})
	return parts
}

// forEachMatch is a fail-open selector iteration: a selector that
// cannot be compiled, or a callback that panics on one element, is
// skipped without aborting the pass.
func forEachMatch(doc *goquery.Document, selector string, fn func(*goquery.Selection)) {
	defer func() {
		_ = recover()
	}()
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		defer func() {
			_ = recover()
		}()
		fn(sel)
	})
}
