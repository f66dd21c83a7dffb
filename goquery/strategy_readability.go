package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/rkaczmarek/pressclip"
)

// Ensure ReadabilityStrategy implements Strategy at compile time.
var _ Strategy = (*ReadabilityStrategy)(nil)

// ReadabilityStrategy ranks candidate containers by text density, link
// density, and class/id naming patterns, and extracts the best-scoring
// one.
type ReadabilityStrategy struct{}

// NewReadabilityStrategy creates a ReadabilityStrategy.
func NewReadabilityStrategy() *ReadabilityStrategy {
	return &ReadabilityStrategy{}
}

// Method returns the strategy's result label.
func (s *ReadabilityStrategy) Method() pressclip.Method {
	return pressclip.MethodReadability
}

// Locate scores every article/main/section/div container and extracts
// the highest-scoring one. Ties keep the first-seen container. Returns
// nil when no container scores above zero.
func (s *ReadabilityStrategy) Locate(doc *goquery.Document, _ *pressclip.Profile) *pressclip.ContentCandidate {
	if doc == nil {
		return nil
	}

	var best *goquery.Selection
	bestScore := 0.0
	forEachMatch(doc, "article, main, section, div", func(sel *goquery.Selection) {
		score := scoreContainer(sel)
		if score > bestScore {
			best = sel
			bestScore = score
		}
	})
	if best == nil {
		return nil
	}

	text := extractText(best)
	if text == "" {
		return nil
	}
	return pressclip.NewCandidate(text, pressclip.MethodReadability)
}

// scoreContainer rates how likely an element is to hold the article
// body. Class/id naming contributes through the static rule table,
// substantial text and paragraph structure add, and link-heavy
// containers (likely navigation) subtract. Floored at zero.
func scoreContainer(sel *goquery.Selection) float64 {
	score := patternScore(sel)

	words := pressclip.WordCount(sel.Text())
	switch {
	case words > 200:
		score += 20
	case words > 100:
		score += 10
	case words > 50:
		score += 5
	}

	paragraphs := sel.Find("p").Length()
	if paragraphs > 3 {
		score += 15
	} else if paragraphs > 1 {
		score += 5
	}

	if sel.Find("a").Length() > 10 {
		score -= 10
	}

	if score < 0 {
		return 0
	}
	return score
}
