package config

import "github.com/rkaczmarek/pressclip"

// builtinProfiles returns the selector profiles shipped with the
// engine: the explicitly supported news sites plus the wildcard
// generic default.
func builtinProfiles() []*pressclip.Profile {
	return []*pressclip.Profile{
		{
			Domain:          "theguardian.com",
			TitleSelector:   "h1[data-gu-name='headline'], h1.content__headline",
			ContentSelector: "div[data-gu-name='body'] p, div.content__article-body p",
			AuthorSelector:  "a[rel='author'], .byline a, address a",
			DateSelector:    "time[datetime], .content__dateline time",
			FallbackSelectors: []string{
				"article p",
				".article-body p",
				".content p",
				"main p",
			},
		},
		{
			Domain:          "timesofindia.indiatimes.com",
			TitleSelector:   "h1.HNMDR, h1._2yWcd, h1",
			ContentSelector: "div._s30J p, div.ga-headlines p, .Normal p",
			AuthorSelector:  ".byline, .author-name, .writer-name",
			DateSelector:    ".publish-date, .date-line, time",
			FallbackSelectors: []string{
				"article p",
				".story-content p",
				".article-content p",
				"main p",
			},
		},
		{
			Domain:          pressclip.WildcardDomain,
			TitleSelector:   "h1, .title, .headline",
			ContentSelector: "article p, .content p, .article-body p, .story p",
			AuthorSelector:  ".author, .byline, .writer",
			DateSelector:    "time, .date, .published",
			FallbackSelectors: []string{
				"p",
				"div p",
				"main p",
				"section p",
			},
		},
	}
}
