// Package mock provides function-field mock implementations of the
// domain interfaces for use in tests.
package mock

import "github.com/rkaczmarek/pressclip"

var _ pressclip.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pressclip.Extractor.
type Extractor struct {
	ExtractFn func(html string, profile *pressclip.Profile) *pressclip.ExtractionResult
}

func (e *Extractor) Extract(html string, profile *pressclip.Profile) *pressclip.ExtractionResult {
	return e.ExtractFn(html, profile)
}
