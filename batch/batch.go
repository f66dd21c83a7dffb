// Package batch runs the extraction engine across many fetched
// documents with bounded concurrency. Extraction calls share no
// mutable state, so cross-document parallelism is safe; within one
// document the pipeline stays sequential.
package batch

import (
	"context"
	"net/url"
	"time"

	"github.com/rkaczmarek/pressclip"
	"golang.org/x/sync/errgroup"
)

// Document is one fetched page awaiting extraction.
type Document struct {
	URL       string
	HTML      string
	FetchedAt time.Time
}

// Runner extracts articles from documents concurrently. Results keep
// input order. Per-document failures never fail the batch; they
// surface as zero-confidence articles carrying ErrorInfo.
type Runner struct {
	Extractor pressclip.Extractor
	Metadata  pressclip.MetadataParser
	Registry  pressclip.ProfileRegistry

	// Concurrency bounds parallel extractions. Zero or negative
	// means DefaultConcurrency.
	Concurrency int
}

// DefaultConcurrency is the worker limit when none is configured.
const DefaultConcurrency = 4

// Run extracts every document and returns articles in input order.
// It stops early only when the context is canceled.
func (r *Runner) Run(ctx context.Context, docs []Document) ([]*pressclip.Article, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	articles := make([]*pressclip.Article, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			articles[i] = r.process(doc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return articles, nil
}

// process extracts one document.
func (r *Runner) process(doc Document) *pressclip.Article {
	domain := domainOf(doc.URL)
	profile := r.Registry.Lookup(domain)

	result := r.Extractor.Extract(doc.HTML, profile)

	var meta *pressclip.Metadata
	if r.Metadata != nil {
		meta = r.Metadata.Parse(doc.HTML, profile)
	}

	return pressclip.ComposeArticle(meta, result, pressclip.FetchInfo{
		URL:       doc.URL,
		Domain:    domain,
		FetchedAt: doc.FetchedAt,
	})
}

// domainOf extracts the host from a URL, empty on parse failure. The
// registry resolves empty domains to the wildcard profile.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
