package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rkaczmarek/pressclip"
)

// Word thresholds for the generic harvest: paragraphs must carry more
// than genericMinParagraphWords, container fallbacks more than
// genericMinContainerWords.
const (
	genericMinParagraphWords = 10
	genericMinContainerWords = 20
)

// Ensure GenericStrategy implements Strategy at compile time.
var _ Strategy = (*GenericStrategy)(nil)

// GenericStrategy is the last-resort harvest: collect every paragraph
// with enough words, or failing that the first div/section/article
// with substantial text.
type GenericStrategy struct{}

// NewGenericStrategy creates a GenericStrategy.
func NewGenericStrategy() *GenericStrategy {
	return &GenericStrategy{}
}

// Method returns the strategy's result label.
func (s *GenericStrategy) Method() pressclip.Method {
	return pressclip.MethodGenericFallback
}

// Locate harvests qualifying paragraphs; if none qualify it takes the
// first qualifying container element only. Returns nil when the
// document has no harvestable text.
func (s *GenericStrategy) Locate(doc *goquery.Document, _ *pressclip.Profile) *pressclip.ContentCandidate {
	if doc == nil {
		return nil
	}

	var parts []string
	forEachMatch(doc, "p", func(sel *goquery.Selection) {
		text := extractText(sel)
		if pressclip.WordCount(text) > genericMinParagraphWords {
			parts = append(parts, text)
		}
	})

	if len(parts) == 0 {
		for _, tag := range []string{"div", "section", "article"} {
			forEachMatch(doc, tag, func(sel *goquery.Selection) {
				if len(parts) > 0 {
					return
				}
				text := extractText(sel)
				if pressclip.WordCount(text) > genericMinContainerWords {
					parts = append(parts, text)
				}
			})
			if len(parts) > 0 {
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
	return pressclip.NewCandidate(text, pressclip.MethodGenericFallback)
}
