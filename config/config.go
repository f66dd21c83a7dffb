// Package config provides the site selector profile registry:
// built-in profiles for supported news sites, a wildcard generic
// default, and YAML profile file loading.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/rkaczmarek/pressclip"
	"gopkg.in/yaml.v3"
)

// Ensure Registry implements pressclip.ProfileRegistry at compile time.
var _ pressclip.ProfileRegistry = (*Registry)(nil)

// Registry holds immutable selector profiles keyed by domain.
// Construct it once at config-load time; lookups are read-only and
// safe for concurrent use.
type Registry struct {
	profiles map[string]*pressclip.Profile
}

// NewRegistry creates a Registry from the given profiles. Every
// profile must validate, and a wildcard profile must be present so
// lookups always resolve.
func NewRegistry(profiles ...*pressclip.Profile) (*Registry, error) {
	r := &Registry{profiles: make(map[string]*pressclip.Profile)}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		r.profiles[pressclip.NormalizeDomain(p.Domain)] = p
	}
	if _, ok := r.profiles[pressclip.WildcardDomain]; !ok {
		return nil, pressclip.Errorf(pressclip.EINVALIDINPUT, "registry requires a %q wildcard profile", pressclip.WildcardDomain)
	}
	return r, nil
}

// Default creates a Registry with the built-in profiles.
func Default() *Registry {
	r, err := NewRegistry(builtinProfiles()...)
	if err != nil {
		// Built-in profiles are validated by tests; this is unreachable.
		panic(fmt.Sprintf("config: invalid builtin profile: %v", err))
	}
	return r
}

// Lookup returns the profile for a domain: normalized exact match
// first, then the www-prefixed form, then the wildcard default.
func (r *Registry) Lookup(domain string) *pressclip.Profile {
	normalized := pressclip.NormalizeDomain(domain)
	if p, ok := r.profiles[normalized]; ok {
		return p
	}
	if p, ok := r.profiles["www."+normalized]; ok {
		return p
	}
	return r.profiles[pressclip.WildcardDomain]
}

// Domains returns all explicitly registered domains, sorted, excluding
// the wildcard.
func (r *Registry) Domains() []string {
	var domains []string
	for d := range r.profiles {
		if d != pressclip.WildcardDomain {
			domains = append(domains, d)
		}
	}
	sort.Strings(domains)
	return domains
}

// profileFile is the YAML shape of a profile config file.
type profileFile struct {
	Profiles []*pressclip.Profile `yaml:"profiles"`
}

// LoadFile reads selector profiles from a YAML file and merges them
// over the built-in profiles. File profiles win on domain collision.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	return Parse(data)
}

// Parse builds a Registry from YAML profile data merged over the
// built-ins.
func Parse(data []byte) (*Registry, error) {
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}
	return NewRegistry(append(builtinProfiles(), file.Profiles...)...)
}
