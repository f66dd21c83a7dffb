package goquery

import (
	"regexp"
	"strings"
)

// Boilerplate phrase markers stripped from candidate text before
// quality evaluation.
var (
	leadingMarkerRe = regexp.MustCompile(`(?i)^(Advertisement|Sponsored|Related:|Share:|Follow:|Subscribe:)\s*`)
	bylinePrefixRe  = regexp.MustCompile(`(?i)^(By|Author:|Written by)\s+`)
	trailingMoreRe  = regexp.MustCompile(`(?i)(Click here|Read more|Continue reading).*$`)
	trailingShareRe = regexp.MustCompile(`(?i)\s*(Share on|Follow us|Subscribe to).*$`)

	spaceRunRe = regexp.MustCompile(`[ \t]+`)
	blankRunRe = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// CleanText normalizes extracted text: collapses whitespace runs,
// strips leading advertisement/byline markers and trailing
// read-more/share suffixes per paragraph, and collapses excess blank
// lines. Paragraph breaks (blank lines) are preserved.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	paragraphs := strings.Split(text, "\n\n")
	cleaned := paragraphs[:0]
	for _, p := range paragraphs {
		p = cleanParagraph(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}

	out := strings.Join(cleaned, "\n\n")
	return strings.TrimSpace(blankRunRe.ReplaceAllString(out, "\n\n"))
}

// cleanParagraph normalizes one block of text to a single line.
func cleanParagraph(p string) string {
	p = spaceRunRe.ReplaceAllString(p, " ")
	p = strings.Join(strings.Fields(p), " ")
	p = leadingMarkerRe.ReplaceAllString(p, "")
	p = bylinePrefixRe.ReplaceAllString(p, "")
	p = trailingMoreRe.ReplaceAllString(p, "")
	p = trailingShareRe.ReplaceAllString(p, "")
	return strings.TrimSpace(p)
}
