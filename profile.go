package pressclip

import "strings"

// WildcardDomain is the registry key for the generic default profile
// used when no site-specific profile matches.
const WildcardDomain = "*"

// Profile holds the per-domain CSS selectors used to locate article
// content and metadata on a news site. Profiles are immutable after
// construction at config-load time.
type Profile struct {
	// Domain is the registry key ("*" selects the generic default).
	Domain string `yaml:"domain"`

	// TitleSelector locates the article headline.
	TitleSelector string `yaml:"title_selector"`

	// ContentSelector locates the article body elements.
	ContentSelector string `yaml:"content_selector"`

	// AuthorSelector locates the byline. Optional.
	AuthorSelector string `yaml:"author_selector,omitempty"`

	// DateSelector locates the publish timestamp. Optional.
	DateSelector string `yaml:"date_selector,omitempty"`

	// FallbackSelectors are tried in order when ContentSelector
	// matches nothing usable.
	FallbackSelectors []string `yaml:"fallback_selectors,omitempty"`
}

// Validate returns an error if the profile is missing required fields.
// The wildcard profile is exempt from the selector requirements.
func (p *Profile) Validate() error {
	if p.Domain == "" {
		return Errorf(EINVALIDINPUT, "profile domain required")
	}
	if p.Domain == WildcardDomain {
		return nil
	}
	if p.TitleSelector == "" {
		return Errorf(EINVALIDINPUT, "profile %q: title selector required", p.Domain)
	}
	if p.ContentSelector == "" {
		return Errorf(EINVALIDINPUT, "profile %q: content selector required", p.Domain)
	}
	return nil
}

// ProfileRegistry looks up selector profiles by domain.
type ProfileRegistry interface {
	// Lookup returns the profile for a domain, falling back to the
	// wildcard profile for unknown domains. Lookup order is the
	// normalized domain (www.-stripped), then the www-prefixed form,
	// then the wildcard.
	Lookup(domain string) *Profile

	// Domains returns all explicitly registered domains, excluding
	// the wildcard.
	Domains() []string
}

// NormalizeDomain lowercases a domain and strips a leading "www."
// prefix so that profile lookups are host-form independent.
func NormalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	return strings.TrimPrefix(d, "www.")
}
