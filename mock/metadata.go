package mock

import "github.com/rkaczmarek/pressclip"

var _ pressclip.MetadataParser = (*MetadataParser)(nil)

// MetadataParser is a mock implementation of pressclip.MetadataParser.
type MetadataParser struct {
	ParseFn func(html string, profile *pressclip.Profile) *pressclip.Metadata
}

func (p *MetadataParser) Parse(html string, profile *pressclip.Profile) *pressclip.Metadata {
	return p.ParseFn(html, profile)
}
