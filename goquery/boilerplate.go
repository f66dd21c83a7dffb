package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rkaczmarek/pressclip"
)

// boilerplateTags are removed by tag identity alone. Script, style,
// and noscript are already gone by the time the filter runs.
var boilerplateTags = []string{
	"nav", "header", "footer", "aside", "menu", "menuitem",
	"iframe", "embed", "object",
	"form", "input", "button", "select", "textarea", "label",
}

// patternRule is one entry in the static class/id rule table. The
// weight feeds readability scoring; the filter only cares about a
// match. Rules are evaluated once per element, in order.
type patternRule struct {
	name   string
	re     *regexp.Regexp
	weight float64
}

// boilerplateRules match class/id text of navigational, promotional,
// and templated page furniture. Case-insensitive; the name becomes the
// removal log cause.
var boilerplateRules = []patternRule{
	{"navigation", regexp.MustCompile(`(?i)nav|menu|sidebar|aside|breadcrumb|pagination|pager|toolbar`), -5},
	{"chrome", regexp.MustCompile(`(?i)header|footer|banner`), -5},
	{"advertising", regexp.MustCompile(`(?i)\bads?\b|advert|promo|sponsor`), -5},
	{"social", regexp.MustCompile(`(?i)social|share|sharing|follow`), -5},
	{"comments", regexp.MustCompile(`(?i)comment|discussion|feedback`), -5},
	{"related", regexp.MustCompile(`(?i)related|recommend|suggestion`), -5},
	{"widget", regexp.MustCompile(`(?i)widget|plugin|embed`), -5},
	{"search", regexp.MustCompile(`(?i)search|filter|sort`), -5},
	{"cookie", regexp.MustCompile(`(?i)cookie|gdpr|consent|privacy`), -5},
	{"subscription", regexp.MustCompile(`(?i)newsletter|subscribe|signup`), -5},
}

// contentRules match class/id text that indicates article content.
// They only contribute positive weight to readability scoring; the
// filter never removes on their account.
var contentRules = []patternRule{
	{"article", regexp.MustCompile(`(?i)article|story|post`), 10},
	{"content", regexp.MustCompile(`(?i)content|main|body`), 10},
	{"text", regexp.MustCompile(`(?i)\btext\b|paragraph|section`), 10},
}

// Filter removes boilerplate elements from a sanitized document in two
// passes: first by tag identity, then by class/id pattern matching
// plus inline-hidden and ad-marker attribute checks. Every removal is
// recorded in the log with a cause tag. Per-element failures are
// swallowed and the element is left in place; a single misbehaving
// element never aborts a pass.
type Filter struct{}

// NewFilter creates a Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// Apply runs both removal passes against the document. Running Apply
// again on an already-filtered tree removes nothing further.
func (f *Filter) Apply(doc *goquery.Document, log *pressclip.RemovalLog) {
	f.removeByTag(doc, log)
	f.removeByPattern(doc, log)
}

func (f *Filter) removeByTag(doc *goquery.Document, log *pressclip.RemovalLog) {
	for _, tag := range boilerplateTags {
		doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
			visit(sel, func() bool { return true }, "tag:"+tag, log)
		})
	}
}

func (f *Filter) removeByPattern(doc *goquery.Document, log *pressclip.RemovalLog) {
	doc.Find("body *").Each(func(_ int, sel *goquery.Selection) {
		cause, match := boilerplateCause(sel)
		if !match {
			return
		}
		visit(sel, func() bool { return true }, cause, log)
	})
}

// visit applies a removal decision to one element, best-effort. A
// panic inside the check or removal marks the element skipped and the
// traversal continues.
func visit(sel *goquery.Selection, remove func() bool, cause string, log *pressclip.RemovalLog) (outcome nodeOutcome) {
	defer func() {
		if recover() != nil {
			outcome = nodeSkipped
		}
	}()
	if !remove() {
		return nodeKept
	}
	sel.Remove()
	if log != nil {
		log.Add(cause)
	}
	return nodeRemoved
}

// nodeOutcome describes what happened to one element during a
// best-effort traversal.
type nodeOutcome int

const (
	nodeKept nodeOutcome = iota
	nodeRemoved
	nodeSkipped
)

// boilerplateCause reports whether an element should be removed by the
// pattern pass and, if so, the removal log cause.
func boilerplateCause(sel *goquery.Selection) (string, bool) {
	attrText := classIDText(sel)
	for _, rule := range boilerplateRules {
		if rule.re.MatchString(attrText) {
			return "pattern:" + rule.name, true
		}
	}

	// Ad and widget marker attributes.
	if _, ok := sel.Attr("data-ad"); ok {
		return "pattern:ad-marker", true
	}
	if _, ok := sel.Attr("data-widget"); ok {
		return "pattern:widget-marker", true
	}

	// Inline-hidden elements carry no visible content.
	if style, ok := sel.Attr("style"); ok {
		s := strings.ToLower(strings.ReplaceAll(style, " ", ""))
		if strings.Contains(s, "display:none") || strings.Contains(s, "visibility:hidden") {
			return "pattern:hidden", true
		}
	}

	return "", false
}

// classIDText joins an element's class list and id for pattern
// matching.
func classIDText(sel *goquery.Selection) string {
	class, _ := sel.Attr("class")
	id, _ := sel.Attr("id")
	return class + " " + id
}

// patternScore sums rule weights matching an element's class/id text.
// Content rules add, boilerplate rules subtract.
func patternScore(sel *goquery.Selection) float64 {
	attrText := classIDText(sel)
	score := 0.0
	for _, rule := range contentRules {
		if rule.re.MatchString(attrText) {
			score += rule.weight
		}
	}
	for _, rule := range boilerplateRules {
		if rule.re.MatchString(attrText) {
			score += rule.weight
		}
	}
	return score
}
