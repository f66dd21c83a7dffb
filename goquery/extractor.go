package goquery

import (
	"github.com/rkaczmarek/pressclip"
)

// Ensure Extractor implements pressclip.Extractor at compile time.
var _ pressclip.Extractor = (*Extractor)(nil)

// Extractor sequences one extraction call: sanitize, filter
// boilerplate, locate content, score. Each call owns its document
// tree and removal log; an Extractor holds no mutable state and is
// safe for concurrent use across documents.
type Extractor struct {
	sanitizer *Sanitizer
	filter    *Filter
	locator   *Locator
}

// NewExtractor creates an Extractor with the default pipeline.
func NewExtractor() *Extractor {
	return &Extractor{
		sanitizer: NewSanitizer(),
		filter:    NewFilter(),
		locator:   NewLocator(),
	}
}

// Extract turns raw HTML into a clean article body. It never panics
// and always returns a well-formed result; terminal failures surface
// as zero-confidence results carrying ErrorInfo.
func (e *Extractor) Extract(html string, profile *pressclip.Profile) *pressclip.ExtractionResult {
	return e.ExtractBytes([]byte(html), profile)
}

// ExtractBytes is Extract for raw fetched bytes, running encoding
// normalization before parsing. A nil input yields an ENULLINPUT
// result.
func (e *Extractor) ExtractBytes(input []byte, profile *pressclip.Profile) (result *pressclip.ExtractionResult) {
	log := &pressclip.RemovalLog{}

	defer func() {
		if r := recover(); r != nil {
			result = pressclip.ErrorResult(
				pressclip.Errorf(pressclip.EINTERNAL, "unexpected error during extraction: %v", r),
				log,
			)
		}
	}()

	doc, err := e.sanitizer.Sanitize(input, log)
	if err != nil {
		return pressclip.ErrorResult(err, log)
	}

	e.filter.Apply(doc, log)

	candidate, err := e.locator.Locate(doc, profile)
	if err != nil {
		return pressclip.ErrorResult(err, log)
	}

	return pressclip.NewResult(candidate, log)
}
