package mock

import "github.com/rkaczmarek/pressclip"

var _ pressclip.ProfileRegistry = (*ProfileRegistry)(nil)

// ProfileRegistry is a mock implementation of pressclip.ProfileRegistry.
type ProfileRegistry struct {
	LookupFn  func(domain string) *pressclip.Profile
	DomainsFn func() []string
}

func (r *ProfileRegistry) Lookup(domain string) *pressclip.Profile {
	return r.LookupFn(domain)
}

func (r *ProfileRegistry) Domains() []string {
	return r.DomainsFn()
}
