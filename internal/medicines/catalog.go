package medicines

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
)

//go:embed data/medicines.csv
var bundledCSV []byte

// ErrNotFound is reported when neither dataset contains a match.
var ErrNotFound = errors.New("medicine not found")

// DocumentFetcher loads the fallback CSV document, typically over HTTP.
type DocumentFetcher func(ctx context.Context) ([]byte, error)

// Catalog answers lookups from the bundled dataset first and the fallback
// document second. The fallback is fetched lazily on the first miss and
// kept for the lifetime of the catalog.
type Catalog struct {
	primary      []Medicine
	fetch        DocumentFetcher
	fallback     []Medicine
	fallbackDone bool
}

// NewCatalog parses the bundled dataset. fetch may be nil, disabling the
// fallback.
func NewCatalog(fetch DocumentFetcher) (*Catalog, error) {
	primary, err := ParseCSV(bytes.NewReader(bundledCSV))
	if err != nil {
		return nil, fmt.Errorf("parse bundled dataset: %w", err)
	}
	return &Catalog{primary: primary, fetch: fetch}, nil
}

// Lookup resolves query to a single medicine record. A fallback that cannot
// be fetched or parsed is treated as a miss, not a hard failure, matching
// the screen behavior of showing "no medicine found".
func (c *Catalog) Lookup(ctx context.Context, query string) (Medicine, error) {
	if m, ok := Search(query, c.primary); ok {
		return m, nil
	}

	if err := c.loadFallback(ctx); err != nil {
		return Medicine{}, ErrNotFound
	}
	if m, ok := Search(query, c.fallback); ok {
		return m, nil
	}
	return Medicine{}, ErrNotFound
}

func (c *Catalog) loadFallback(ctx context.Context) error {
	if c.fallbackDone {
		return nil
	}
	if c.fetch == nil {
		return errors.New("no fallback dataset configured")
	}

	data, err := c.fetch(ctx)
	if err != nil {
		return err
	}
	parsed, err := ParseCSV(bytes.NewReader(data))
	if err != nil {
		return err
	}

	c.fallback = parsed
	c.fallbackDone = true
	return nil
}
