// Package pressclip turns raw, messy news-site HTML into a clean article
// body with metadata and a confidence estimate. It sanitizes the DOM,
// strips boilerplate, locates content through a ranked strategy cascade
// (site-specific selectors, readability-style scoring, generic paragraph
// harvesting), and extracts title/author/date with selector fallbacks.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g., goquery/, config/, slog/).
//
// Input is always already-fetched static HTML text. Fetching, retry
// logic, summarization, and response assembly are external
// collaborators and have no representation here.
package pressclip
