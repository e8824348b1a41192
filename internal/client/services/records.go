package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Aneeb1231/rxease/internal/client/api"
)

// Entity is a backend-owned record manageable through a Collection.
type Entity interface {
	// EntityID returns the backend-assigned id, "" for unsaved drafts.
	EntityID() string
	// MissingFields names the required fields that are blank.
	MissingFields() []string
}

// ValidationError is a client-side required-field failure, detected before
// any network call is issued.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Collection is a CRUD facade over one backend collection. The local cache
// reflects confirmed backend state only: mutations apply to it after the
// backend acknowledges, and a failed List leaves the previous cache intact.
// Overlapping calls for the same id are not serialized; the last response
// to resolve wins.
type Collection[T Entity] struct {
	client api.Client
	path   string
	cache  []T
}

func NewCollection[T Entity](client api.Client, path string) *Collection[T] {
	return &Collection[T]{client: client, path: path}
}

// List fetches the full collection and replaces the cache.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := c.client.Do(ctx, http.MethodGet, c.path, nil, &items); err != nil {
		return nil, err
	}
	c.cache = items
	return items, nil
}

// Create validates the draft locally, then persists it. The returned record
// carries the backend-assigned id and is appended to the cache.
func (c *Collection[T]) Create(ctx context.Context, draft T) (T, error) {
	var created T
	if missing := draft.MissingFields(); len(missing) > 0 {
		return created, &ValidationError{Fields: missing}
	}

	if err := c.client.Do(ctx, http.MethodPost, c.path, draft, &created); err != nil {
		return created, err
	}
	c.cache = append(c.cache, created)
	return created, nil
}

// Update validates the draft, persists it, and replaces the matching cached
// record by id.
func (c *Collection[T]) Update(ctx context.Context, id string, draft T) (T, error) {
	var updated T
	if missing := draft.MissingFields(); len(missing) > 0 {
		return updated, &ValidationError{Fields: missing}
	}

	if err := c.client.Do(ctx, http.MethodPut, c.itemPath(id), draft, &updated); err != nil {
		return updated, err
	}
	c.Replace(updated)
	return updated, nil
}

// Delete removes the record from the backend, then from the cache.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := c.client.Do(ctx, http.MethodDelete, c.itemPath(id), nil, nil); err != nil {
		return err
	}
	kept := c.cache[:0]
	for _, item := range c.cache {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	c.cache = kept
	return nil
}

// Cached returns the last confirmed state of the collection.
func (c *Collection[T]) Cached() []T { return c.cache }

// Reset drops the cache. Called on logout so records of a previous session
// are never displayed.
func (c *Collection[T]) Reset() { c.cache = nil }

// Replace swaps the cached record whose id matches item; other entries are
// untouched. A record unknown to the cache is ignored.
func (c *Collection[T]) Replace(item T) {
	for i := range c.cache {
		if c.cache[i].EntityID() == item.EntityID() {
			c.cache[i] = item
			return
		}
	}
}

func (c *Collection[T]) itemPath(id string) string {
	return fmt.Sprintf("%s/%s", c.path, id)
}
