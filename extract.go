package pressclip

// Method identifies which strategy produced an extraction.
type Method string

// Extraction methods in cascade priority order.
const (
	MethodSiteSpecific    Method = "site_specific"
	MethodReadability     Method = "readability"
	MethodGenericFallback Method = "generic_fallback"
	MethodError           Method = "error"
)

// BaseConfidence returns the starting confidence for content produced
// by this method, before quality adjustments.
func (m Method) BaseConfidence() float64 {
	switch m {
	case MethodSiteSpecific:
		return 0.8
	case MethodReadability:
		return 0.6
	case MethodGenericFallback:
		return 0.4
	case MethodError:
		return 0.0
	}
	return 0.3
}

// ContentCandidate is one proposed article-body extraction from one
// strategy. Multiple candidates may be produced per call; at most one
// becomes the final result.
type ContentCandidate struct {
	Text           string
	Method         Method
	WordCount      int
	ParagraphCount int
}

// RemovalLog is an append-only record of what the boilerplate filter
// stripped from one document. Entries are cause tags such as
// "tag:nav" or "pattern:advertisement". The log is scoped to a single
// extraction call and passed explicitly so the engine stays reentrant.
type RemovalLog struct {
	entries []string
}

// Add appends a removal cause tag.
func (l *RemovalLog) Add(cause string) {
	l.entries = append(l.entries, cause)
}

// Entries returns the recorded removals in order.
func (l *RemovalLog) Entries() []string {
	return l.entries
}

// Len returns the number of recorded removals.
func (l *RemovalLog) Len() int {
	return len(l.entries)
}

// ErrorInfo describes a terminal extraction failure carried inside a
// zero-confidence result. It is data, not a fault: callers always
// receive a well-formed ExtractionResult.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StructuralFlags records shape observations about the extracted text.
type StructuralFlags struct {
	HasParagraphs      bool    `json:"hasParagraphs"`
	HasProperSentences bool    `json:"hasProperSentences"`
	AvgParagraphWords  float64 `json:"avgParagraphWords"`
}

// ExtractionResult is the immutable outcome of one extraction call.
//
// Confidence is a 0.0-1.0 heuristic quality estimate, not a
// probability. ErrorInfo present with confidence 0.0 means "no usable
// content"; confidence below 0.3 means "degraded extraction, use with
// caution".
type ExtractionResult struct {
	CleanText       string          `json:"cleanText"`
	WordCount       int             `json:"wordCount"`
	ParagraphCount  int             `json:"paragraphCount"`
	Method          Method          `json:"extractionMethod"`
	Confidence      float64         `json:"confidenceScore"`
	RemovedElements []string        `json:"removedElements,omitempty"`
	Flags           StructuralFlags `json:"structuralFlags"`
	ErrorInfo       *ErrorInfo      `json:"errorInfo,omitempty"`
}

// DegradedConfidence is the threshold below which extracted content
// should be rendered with a quality warning.
const DegradedConfidence = 0.3

// Degraded reports whether the result should be used with caution.
func (r *ExtractionResult) Degraded() bool {
	return r.Confidence < DegradedConfidence
}

// Failed reports whether the call produced no usable content.
func (r *ExtractionResult) Failed() bool {
	return r.ErrorInfo != nil && r.Confidence == 0
}

// ErrorResult builds the terminal zero-confidence result for an
// extraction that could not produce usable content.
func ErrorResult(err error, log *RemovalLog) *ExtractionResult {
	res := &ExtractionResult{
		Method: MethodError,
		ErrorInfo: &ErrorInfo{
			Code:    ErrorCode(err),
			Message: ErrorMessage(err),
		},
	}
	if log != nil {
		res.RemovedElements = log.Entries()
	}
	return res
}

// Extractor extracts a clean article body from raw HTML.
//
// Extract never panics on malformed input and always returns a
// well-formed result; terminal failures surface as zero-confidence
// results carrying ErrorInfo.
type Extractor interface {
	Extract(html string, profile *Profile) *ExtractionResult
}
