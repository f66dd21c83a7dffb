package slog

import (
	"log/slog"

	"github.com/rkaczmarek/pressclip"
)

// Ensure LoggingRegistry implements pressclip.ProfileRegistry.
var _ pressclip.ProfileRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ProfileRegistry with debug logging for
// profile lookups, recording whether a site-specific profile or the
// wildcard default matched.
type LoggingRegistry struct {
	next   pressclip.ProfileRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a LoggingRegistry.
func NewLoggingRegistry(next pressclip.ProfileRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Lookup delegates to the wrapped registry and logs the match.
func (r *LoggingRegistry) Lookup(domain string) *pressclip.Profile {
	profile := r.next.Lookup(domain)
	matched := "(none)"
	if profile != nil {
		matched = profile.Domain
	}
	r.logger.Debug("profile lookup",
		"domain", domain,
		"matched", matched,
		"wildcard", profile != nil && profile.Domain == pressclip.WildcardDomain,
	)
	return profile
}

// Domains delegates to the wrapped registry.
func (r *LoggingRegistry) Domains() []string {
	return r.next.Domains()
}
