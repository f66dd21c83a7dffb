package pressclip_test

import (
	"strings"
	"testing"

	"github.com/rkaczmarek/pressclip"
	"github.com/stretchr/testify/assert"
)

// goodText builds plausible article text with the given number of
// sentences, each carrying enough ordinary words to read as prose.
func goodText(sentences int) string {
	var b strings.Builder
	for i := 0; i < sentences; i++ {
		b.WriteString("The city council approved the new transit plan after hours of debate. ")
	}
	return strings.TrimSpace(b.String())
}

func TestPassesQualityGate(t *testing.T) {
	t.Parallel()

	t.Run("accepts plausible article text", func(t *testing.T) {
		t.Parallel()

		assert.True(t, pressclip.PassesQualityGate(goodText(6)))
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		assert.False(t, pressclip.PassesQualityGate(""))
	})

	t.Run("rejects short text", func(t *testing.T) {
		t.Parallel()

		assert.False(t, pressclip.PassesQualityGate("Ten words of a single sentence are not an article."))
	})

	t.Run("rejects text without sentence structure", func(t *testing.T) {
		t.Parallel()

		// 60 words, zero terminators, one trailing segment.
		text := strings.TrimSpace(strings.Repeat("word ", 60))
		assert.False(t, pressclip.PassesQualityGate(text))
	})

	t.Run("rejects gibberish with long tokens", func(t *testing.T) {
		t.Parallel()

		token := strings.Repeat("x", 40)
		text := strings.TrimSpace(strings.Repeat(token+". ", 60))
		assert.False(t, pressclip.PassesQualityGate(text))
	})

	t.Run("rejects garbled short tokens", func(t *testing.T) {
		t.Parallel()

		text := strings.TrimSpace(strings.Repeat("a b. ", 60))
		assert.False(t, pressclip.PassesQualityGate(text))
	})
}

func TestContentConfidence(t *testing.T) {
	t.Parallel()

	t.Run("empty text scores zero", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, pressclip.ContentConfidence(pressclip.MethodSiteSpecific, ""))
	})

	t.Run("method ordering holds for equal text", func(t *testing.T) {
		t.Parallel()

		text := goodText(8)
		site := pressclip.ContentConfidence(pressclip.MethodSiteSpecific, text)
		readability := pressclip.ContentConfidence(pressclip.MethodReadability, text)
		generic := pressclip.ContentConfidence(pressclip.MethodGenericFallback, text)

		assert.GreaterOrEqual(t, site, readability)
		assert.GreaterOrEqual(t, readability, generic)
	})

	t.Run("clamped to one", func(t *testing.T) {
		t.Parallel()

		text := goodText(30) // >200 words, >5 sentences
		assert.LessOrEqual(t, pressclip.ContentConfidence(pressclip.MethodSiteSpecific, text), 1.0)
	})

	t.Run("short text is penalized", func(t *testing.T) {
		t.Parallel()

		short := pressclip.ContentConfidence(pressclip.MethodSiteSpecific, "Very short. Not much here. Three sentences though.")
		long := pressclip.ContentConfidence(pressclip.MethodSiteSpecific, goodText(20))
		assert.Less(t, short, long)
	})

	t.Run("error method scores zero base", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 0.0, pressclip.ContentConfidence(pressclip.MethodError, "some text here."), 0.01)
	})
}

func TestMetadataConfidence(t *testing.T) {
	t.Parallel()

	t.Run("all fields cap at one", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 1.0, pressclip.MetadataConfidence(true, 500, true, true), 0.001)
	})

	t.Run("title alone", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 0.25, pressclip.MetadataConfidence(true, 0, false, false), 0.001)
	})

	t.Run("content tiers", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 0.5, pressclip.MetadataConfidence(false, 150, false, false), 0.001)
		assert.InDelta(t, 0.3, pressclip.MetadataConfidence(false, 80, false, false), 0.001)
		assert.InDelta(t, 0.1, pressclip.MetadataConfidence(false, 30, false, false), 0.001)
		assert.Zero(t, pressclip.MetadataConfidence(false, 10, false, false))
	})
}

func TestCounts(t *testing.T) {
	t.Parallel()

	t.Run("word count", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 5, pressclip.WordCount("one two  three\nfour\tfive"))
		assert.Zero(t, pressclip.WordCount("   "))
	})

	t.Run("paragraph count skips blank blocks", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 2, pressclip.ParagraphCount("first block\n\n\n\nsecond block"))
		assert.Equal(t, 1, pressclip.ParagraphCount("only one"))
		assert.Zero(t, pressclip.ParagraphCount(""))
	})

	t.Run("sentence count", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 3, pressclip.SentenceCount("One. Two! Three?"))
		assert.Equal(t, 1, pressclip.SentenceCount("no terminator at all"))
		assert.Equal(t, 2, pressclip.SentenceCount("Ellipsis... then more."))
		assert.Zero(t, pressclip.SentenceCount(""))
	})
}

func TestNewResult(t *testing.T) {
	t.Parallel()

	log := &pressclip.RemovalLog{}
	log.Add("tag:nav")
	log.Add("pattern:advertising")

	text := "First paragraph about the matter at hand today.\n\nSecond paragraph with a proper ending."
	c := pressclip.NewCandidate(text, pressclip.MethodReadability)
	res := pressclip.NewResult(c, log)

	assert.Equal(t, text, res.CleanText)
	assert.Equal(t, pressclip.MethodReadability, res.Method)
	assert.Equal(t, 2, res.ParagraphCount)
	assert.True(t, res.Flags.HasParagraphs)
	assert.True(t, res.Flags.HasProperSentences)
	assert.Equal(t, []string{"tag:nav", "pattern:advertising"}, res.RemovedElements)
	assert.Nil(t, res.ErrorInfo)
}

func TestErrorResult(t *testing.T) {
	t.Parallel()

	res := pressclip.ErrorResult(pressclip.Errorf(pressclip.EEXTRACTION, "nothing usable"), nil)

	assert.True(t, res.Failed())
	assert.True(t, res.Degraded())
	assert.Zero(t, res.Confidence)
	assert.Equal(t, pressclip.MethodError, res.Method)
	assert.Equal(t, pressclip.EEXTRACTION, res.ErrorInfo.Code)
}
