package pressclip

import (
	"strings"
)

// Quality gate thresholds for accepting a content candidate.
const (
	gateMinWords     = 50
	gateMinSentences = 3
	gateMinTokenLen  = 3.0
	gateMaxTokenLen  = 15.0
)

// WordCount counts whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ParagraphCount counts non-blank blocks delimited by blank lines.
func ParagraphCount(text string) int {
	n := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

// SentenceCount counts segments delimited by sentence terminators
// (".", "!", "?"). Runs of terminators count as a single boundary.
func SentenceCount(text string) int {
	n := 0
	inSegment := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if inSegment {
				n++
				inSegment = false
			}
		default:
			if !isSpaceRune(r) {
				inSegment = true
			}
		}
	}
	if inSegment {
		n++
	}
	return n
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// meanTokenLength returns the mean rune length of whitespace-delimited
// tokens, or 0 for empty text.
func meanTokenLength(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len([]rune(w))
	}
	return float64(total) / float64(len(words))
}

// PassesQualityGate reports whether candidate text clears the minimum
// thresholds for word count, sentence structure, and mean token length
// (the last rejects gibberish and garbled encodings).
func PassesQualityGate(text string) bool {
	if text == "" {
		return false
	}
	if WordCount(text) < gateMinWords {
		return false
	}
	if SentenceCount(text) < gateMinSentences {
		return false
	}
	mean := meanTokenLength(text)
	return mean >= gateMinTokenLen && mean <= gateMaxTokenLen
}

// ContentConfidence composes the confidence score for extracted
// content: the method's base score adjusted by word-count tiers,
// sentence structure, and paragraph structure, clamped to [0, 1].
func ContentConfidence(method Method, text string) float64 {
	if text == "" {
		return 0
	}
	score := method.BaseConfidence()

	words := WordCount(text)
	switch {
	case words > 200:
		score += 0.2
	case words > 100:
		score += 0.1
	case words < 50:
		score -= 0.2
	}

	if SentenceCount(text) > 5 {
		score += 0.1
	}
	if ParagraphCount(text) > 2 {
		score += 0.1
	}

	return clamp01(score)
}

// MetadataConfidence composes the confidence score for a metadata
// parse: title contributes 0.25, content up to 0.5 by word-count tier,
// author 0.15, and date 0.1, capped at 1.0.
func MetadataConfidence(hasTitle bool, wordCount int, hasAuthor, hasDate bool) float64 {
	score := 0.0
	if hasTitle {
		score += 0.25
	}
	switch {
	case wordCount > 100:
		score += 0.5
	case wordCount > 50:
		score += 0.3
	case wordCount > 20:
		score += 0.1
	}
	if hasAuthor {
		score += 0.15
	}
	if hasDate {
		score += 0.1
	}
	return min(score, 1.0)
}

// NewCandidate builds a candidate with its derived counts.
func NewCandidate(text string, method Method) *ContentCandidate {
	return &ContentCandidate{
		Text:           text,
		Method:         method,
		WordCount:      WordCount(text),
		ParagraphCount: ParagraphCount(text),
	}
}

// NewResult builds the final result for an accepted candidate.
func NewResult(c *ContentCandidate, log *RemovalLog) *ExtractionResult {
	res := &ExtractionResult{
		CleanText:      c.Text,
		WordCount:      c.WordCount,
		ParagraphCount: c.ParagraphCount,
		Method:         c.Method,
		Confidence:     ContentConfidence(c.Method, c.Text),
		Flags: StructuralFlags{
			HasParagraphs:      c.ParagraphCount > 1,
			HasProperSentences: strings.ContainsAny(c.Text, ".!?"),
		},
	}
	if c.ParagraphCount > 0 {
		res.Flags.AvgParagraphWords = float64(c.WordCount) / float64(c.ParagraphCount)
	}
	if log != nil {
		res.RemovedElements = log.Entries()
	}
	return res
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
