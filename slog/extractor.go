// Package slog provides log/slog-based logging decorators for the
// extraction interfaces. Core packages stay logger-free; wrap them
// with these decorators where observability is wanted.
package slog

import (
	"log/slog"
	"time"

	"github.com/rkaczmarek/pressclip"
)

// Ensure LoggingExtractor implements pressclip.Extractor.
var _ pressclip.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-call logging of the
// chosen method, confidence, and removal count.
type LoggingExtractor struct {
	next   pressclip.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a LoggingExtractor.
func NewLoggingExtractor(next pressclip.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string, profile *pressclip.Profile) *pressclip.ExtractionResult {
	begin := time.Now()
	result := e.next.Extract(html, profile)

	attrs := []any{
		"method", string(result.Method),
		"confidence", result.Confidence,
		"words", result.WordCount,
		"removed", len(result.RemovedElements),
		"duration", time.Since(begin),
	}
	switch {
	case result.Failed():
		e.logger.Warn("extraction failed",
			append(attrs, "code", result.ErrorInfo.Code, "error", result.ErrorInfo.Message)...)
	case result.Degraded():
		e.logger.Warn("degraded extraction", attrs...)
	default:
		e.logger.Info("extraction", attrs...)
	}
	return result
}

// Ensure LoggingMetadataParser implements pressclip.MetadataParser.
var _ pressclip.MetadataParser = (*LoggingMetadataParser)(nil)

// LoggingMetadataParser wraps a MetadataParser with per-call logging
// of which fields were found.
type LoggingMetadataParser struct {
	next   pressclip.MetadataParser
	logger *slog.Logger
}

// NewLoggingMetadataParser creates a LoggingMetadataParser.
func NewLoggingMetadataParser(next pressclip.MetadataParser, logger *slog.Logger) *LoggingMetadataParser {
	return &LoggingMetadataParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the outcome.
func (p *LoggingMetadataParser) Parse(html string, profile *pressclip.Profile) *pressclip.Metadata {
	begin := time.Now()
	meta := p.next.Parse(html, profile)
	p.logger.Info("metadata parse",
		"method", string(meta.Method),
		"confidence", meta.Confidence,
		"title", meta.Title != "",
		"author", meta.Author != "",
		"date", meta.PublishDate != nil,
		"duration", time.Since(begin),
	)
	return meta
}
