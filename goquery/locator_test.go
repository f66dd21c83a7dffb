package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rkaczmarek/pressclip"
	"github.com/rkaczmarek/pressclip/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// articleHTML builds a document with n plausible paragraphs inside the
// given wrapper markup.
func paragraphsHTML(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "<p>Paragraph %d covers the city council vote and what residents said about it afterwards.</p>", i+1)
	}
	return b.String()
}

func locateIn(t *testing.T, html string, profile *pressclip.Profile) (*pressclip.ContentCandidate, error) {
	t.Helper()

	doc, err := goquery.NewSanitizer().SanitizeString(html, nil)
	require.NoError(t, err)
	goquery.NewFilter().Apply(doc, nil)
	return goquery.NewLocator().Locate(doc, profile)
}

func genericProfile() *pressclip.Profile {
	return &pressclip.Profile{
		Domain:            pressclip.WildcardDomain,
		TitleSelector:     "h1, .title, .headline",
		ContentSelector:   "article p, .content p, .article-body p, .story p",
		AuthorSelector:    ".author, .byline, .writer",
		DateSelector:      "time, .date, .published",
		FallbackSelectors: []string{"p", "div p", "main p", "section p"},
	}
}

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("site-specific wins when it clears the gate", func(t *testing.T) {
		t.Parallel()

		html := "<body><article>" + paragraphsHTML(6) + "</article></body>"

		candidate, err := locateIn(t, html, genericProfile())

		require.NoError(t, err)
		assert.Equal(t, pressclip.MethodSiteSpecific, candidate.Method)
		assert.Greater(t, candidate.WordCount, 50)
	})

	t.Run("never reports generic when site-specific clears the gate", func(t *testing.T) {
		t.Parallel()

		html := "<body><div class='story'>" + paragraphsHTML(8) + "</div></body>"

		candidate, err := locateIn(t, html, genericProfile())

		require.NoError(t, err)
		assert.NotEqual(t, pressclip.MethodGenericFallback, candidate.Method)
	})

	t.Run("falls through to readability when selectors miss", func(t *testing.T) {
		t.Parallel()

		// Content lives in a container none of the profile selectors match.
		profile := &pressclip.Profile{
			Domain:          "example.com",
			TitleSelector:   "h1.none",
			ContentSelector: "div.no-such-thing p",
		}
		html := "<body><main class='article-text'>" + paragraphsHTML(6) + "</main></body>"

		candidate, err := locateIn(t, html, profile)

		require.NoError(t, err)
		assert.Equal(t, pressclip.MethodReadability, candidate.Method)
	})

	t.Run("readability prefers content-indicating container", func(t *testing.T) {
		t.Parallel()

		profile := &pressclip.Profile{
			Domain:          "example.com",
			TitleSelector:   "h1.none",
			ContentSelector: "div.no-such-thing p",
		}
		html := `<body>
			<div class="linkfarm">` + strings.Repeat("<a href='/x'>link</a>", 15) + `</div>
			<div class="article-content">` + paragraphsHTML(6) + `</div>
		</body>`

		candidate, err := locateIn(t, html, profile)

		require.NoError(t, err)
		assert.Equal(t, pressclip.MethodReadability, candidate.Method)
		assert.Contains(t, candidate.Text, "city council vote")
		assert.NotContains(t, candidate.Text, "link")
	})

	t.Run("generic fallback harvests loose paragraphs", func(t *testing.T) {
		t.Parallel()

		// No article/main/section/div wrappers with positive scores:
		// paragraphs sit directly in body.
		profile := &pressclip.Profile{
			Domain:          "example.com",
			TitleSelector:   "h1.none",
			ContentSelector: "div.no-such-thing p",
		}
		html := "<body>" + paragraphsHTML(6) + "</body>"

		candidate, err := locateIn(t, html, profile)

		require.NoError(t, err)
		assert.NotEqual(t, pressclip.MethodSiteSpecific, candidate.Method)
		assert.Greater(t, candidate.WordCount, 50)
	})

	t.Run("empty document yields extraction failed", func(t *testing.T) {
		t.Parallel()

		_, err := locateIn(t, "<body><div></div></body>", genericProfile())

		assert.Equal(t, pressclip.EEXTRACTION, pressclip.ErrorCode(err))
	})

	t.Run("gate-failing site candidate is discarded, not chosen", func(t *testing.T) {
		t.Parallel()

		// The profile selector matches a thin teaser; the real body is
		// elsewhere and only reachable heuristically.
		profile := &pressclip.Profile{
			Domain:          "example.com",
			TitleSelector:   "h1",
			ContentSelector: ".teaser p",
		}
		html := `<body>
			<div class="teaser"><p>Short teaser sentence about the story here today.</p></div>
			<main class="article-body">` + paragraphsHTML(6) + `</main>
		</body>`

		candidate, err := locateIn(t, html, profile)

		require.NoError(t, err)
		assert.Equal(t, pressclip.MethodReadability, candidate.Method)
		assert.Contains(t, candidate.Text, "city council vote")
	})
}

func TestGenericStrategy_ContainerFallback(t *testing.T) {
	t.Parallel()

	// All paragraphs are too short to harvest individually, but a
	// container crosses the word threshold.
	html := `<body><section>
		<p>Short one here.</p>
		<p>Another short line.</p>
		<p>Brief closing words.</p>
		<p>More tiny fragments now.</p>
		<p>Final little piece there.</p>
		<p>Extra words to cross twenty.</p>
	</section></body>`

	doc, err := goquery.NewSanitizer().SanitizeString(html, nil)
	require.NoError(t, err)

	candidate := goquery.NewGenericStrategy().Locate(doc, nil)

	require.NotNil(t, candidate)
	assert.Equal(t, pressclip.MethodGenericFallback, candidate.Method)
	assert.Greater(t, candidate.WordCount, 20)
}
