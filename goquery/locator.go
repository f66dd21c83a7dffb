package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/rkaczmarek/pressclip"
)

// Strategy locates one content candidate in a parsed document. A nil
// candidate means the strategy found nothing; strategies are fail-open
// and never panic outward.
type Strategy interface {
	// Method returns the label stamped on candidates this strategy
	// produces.
	Method() pressclip.Method

	// Locate proposes an article body from the document, or nil.
	Locate(doc *goquery.Document, profile *pressclip.Profile) *pressclip.ContentCandidate
}

// Locator runs the strategy cascade in priority order: site-specific
// selectors, readability-style scoring, then the generic harvest. The
// first candidate clearing the quality gate wins. When nothing clears
// the gate, the best heuristic candidate is returned so callers can
// render degraded output; a site-specific candidate that failed the
// gate is discarded outright, since stale selectors matching junk are
// exactly what the gate exists to catch.
type Locator struct {
	strategies []Strategy
}

// NewLocator creates a Locator with the default cascade.
func NewLocator() *Locator {
	return &Locator{
		strategies: []Strategy{
			NewSiteStrategy(),
			NewReadabilityStrategy(),
			NewGenericStrategy(),
		},
	}
}

// NewLocatorWithStrategies creates a Locator with a custom cascade,
// tried in the given order.
func NewLocatorWithStrategies(strategies ...Strategy) *Locator {
	return &Locator{strategies: strategies}
}

// Locate runs the cascade and returns the chosen candidate. It
// returns an EEXTRACTION error when every strategy comes up empty.
func (l *Locator) Locate(doc *goquery.Document, profile *pressclip.Profile) (*pressclip.ContentCandidate, error) {
	var best *pressclip.ContentCandidate
	var bestConfidence float64
	for _, strategy := range l.strategies {
		candidate := strategy.Locate(doc, profile)
		if candidate == nil || candidate.Text == "" {
			continue
		}
		if pressclip.PassesQualityGate(candidate.Text) {
			return candidate, nil
		}
		if candidate.Method == pressclip.MethodSiteSpecific {
			continue
		}
		if confidence := pressclip.ContentConfidence(candidate.Method, candidate.Text); best == nil || confidence > bestConfidence {
			best = candidate
			bestConfidence = confidence
		}
	}
	if best != nil {
		return best, nil
	}
	return nil, pressclip.Errorf(pressclip.EEXTRACTION, "all extraction strategies produced nothing usable")
}
