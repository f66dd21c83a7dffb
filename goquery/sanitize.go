// Package goquery implements the content extraction engine on top of
// github.com/PuerkitoBio/goquery: DOM sanitization, boilerplate
// filtering, the content-locating strategy cascade, and metadata
// extraction.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/rkaczmarek/pressclip"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding/charmap"
)

// DefaultMaxInputBytes bounds how much HTML one call will process.
// Pathologically large payloads are rejected rather than parsed.
const DefaultMaxInputBytes = 10 << 20 // 10 MB

// Sanitizer parses raw HTML bytes into a traversable document. It
// normalizes encoding, strips control characters, removes
// comment/script/style nodes, and never panics on malformed or
// truncated input. The resulting document is owned by the caller and
// lives only for one extraction call.
type Sanitizer struct {
	// MaxInputBytes limits input size. Zero means DefaultMaxInputBytes.
	MaxInputBytes int
}

// NewSanitizer creates a Sanitizer with default limits.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize decodes, pre-cleans, and parses raw HTML. Removals of
// comments and script/style nodes are recorded in log when non-nil.
//
// It tries parser backends in order, accepting the first that yields
// a non-empty tree or any extractable text. On total failure it
// returns an EPARSE error; nil input returns ENULLINPUT; input that is
// not decodable text returns EINVALIDINPUT.
func (s *Sanitizer) Sanitize(input []byte, log *pressclip.RemovalLog) (*goquery.Document, error) {
	if input == nil {
		return nil, pressclip.Errorf(pressclip.ENULLINPUT, "HTML input is nil")
	}

	limit := s.MaxInputBytes
	if limit == 0 {
		limit = DefaultMaxInputBytes
	}
	if len(input) > limit {
		return nil, pressclip.Errorf(pressclip.EMEMORY, "HTML input of %d bytes exceeds %d byte limit", len(input), limit)
	}

	text, err := decodeText(input)
	if err != nil {
		return nil, err
	}
	text = stripControlChars(text)
	if strings.TrimSpace(text) == "" {
		return nil, pressclip.Errorf(pressclip.ENULLINPUT, "HTML input is empty")
	}

	doc, err := parseWithBackends(text)
	if err != nil {
		return nil, err
	}

	removeComments(doc, log)
	removeScriptStyle(doc, log)
	return doc, nil
}

// SanitizeString is Sanitize for callers that already hold a string.
func (s *Sanitizer) SanitizeString(html string, log *pressclip.RemovalLog) (*goquery.Document, error) {
	return s.Sanitize([]byte(html), log)
}

// decodeText converts raw bytes to valid UTF-8. It accepts UTF-8
// as-is, decodes legacy single-byte encodings (Windows-1252 covers
// Latin-1 and ISO-8859-1 for practical inputs), and falls back to
// best-effort byte replacement. Inputs that decode to mostly
// non-textual garbage are rejected as EINVALIDINPUT.
func decodeText(input []byte) (string, error) {
	var text string
	if utf8.Valid(input) {
		text = string(input)
	} else if decoded, err := charmap.Windows1252.NewDecoder().Bytes(input); err == nil {
		text = string(decoded)
	} else if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(input); err == nil {
		text = string(decoded)
	} else {
		text = strings.ToValidUTF8(string(input), "�")
	}

	if looksBinary(text) {
		return "", pressclip.Errorf(pressclip.EINVALIDINPUT, "input does not look like text")
	}
	return text, nil
}

// looksBinary reports whether decoded input is dominated by control
// bytes or replacement characters, i.e. was never HTML text.
func looksBinary(text string) bool {
	if text == "" {
		return false
	}
	bad := 0
	total := 0
	for _, r := range text {
		total++
		if r == '�' || (r < 0x20 && r != '\t' && r != '\n' && r != '\r') {
			bad++
		}
	}
	return total > 0 && float64(bad)/float64(total) > 0.3
}

// stripControlChars removes null bytes and non-printing control
// characters that break parsers, preserving tab/newline/CR.
func stripControlChars(text string) string {
	return strings.Map(func(r rune) rune {
		if r == 0x00 || r == 0x7F {
			return -1
		}
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, text)
}

// parseWithBackends tries the full document parser first, then a
// lenient body-fragment parse for truncated or fragmentary markup.
func parseWithBackends(text string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err == nil && hasUsableTree(doc) {
		return doc, nil
	}

	doc, err = parseFragment(text)
	if err == nil && hasUsableTree(doc) {
		return doc, nil
	}

	return nil, pressclip.Errorf(pressclip.EPARSE, "failed to parse HTML content")
}

// parseFragment parses markup as body content and wraps it into a
// minimal document tree.
func parseFragment(text string) (*goquery.Document, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(text), body)
	if err != nil {
		return nil, err
	}

	root := &html.Node{Type: html.DocumentNode}
	htmlNode := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	root.AppendChild(htmlNode)
	htmlNode.AppendChild(body)
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// hasUsableTree reports whether parsing produced at least one element
// or any extractable text.
func hasUsableTree(doc *goquery.Document) bool {
	if doc == nil {
		return false
	}
	if doc.Find("*").Length() > 0 {
		return true
	}
	return strings.TrimSpace(doc.Text()) != ""
}

// removeComments strips HTML comment nodes from the tree.
func removeComments(doc *goquery.Document, log *pressclip.RemovalLog) {
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling
			if c.Type == html.CommentNode {
				n.RemoveChild(c)
				if log != nil {
					log.Add("comment")
				}
			} else {
				walk(c)
			}
			c = next
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}
}

// removeScriptStyle strips script, style, and noscript subtrees.
func removeScriptStyle(doc *goquery.Document, log *pressclip.RemovalLog) {
	for _, tag := range []string{"script", "style", "noscript"} {
		doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
			sel.Remove()
			if log != nil {
				log.Add("tag:" + tag)
			}
		})
	}
}
