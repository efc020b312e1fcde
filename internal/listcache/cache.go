// Package listcache provides a client-held, paginated mirror of a remote
// collection. The cache is the single source of truth for views; it is
// kept consistent after local mutations through explicit mutation methods
// rather than full refetches.
package listcache

import (
	"sync"

	"github.com/jonathan/talent-console/internal/types"
)

// Entity is the contract cached items must satisfy.
type Entity interface {
	EntityID() string
}

// CreatePolicy controls how ApplyCreated reconciles the page window.
type CreatePolicy int

const (
	// PolicyPrepend inserts the new item at the head of the current page
	// without shifting the pagination window. The page may temporarily
	// exceed its limit until the next fetch.
	PolicyPrepend CreatePolicy = iota
	// PolicyRefetch marks the cache stale instead of splicing, for
	// callers that need strict page-size adherence and prefer an eager
	// reload.
	PolicyRefetch
)

// Cache holds the last known page of entities plus pagination metadata.
// Every mutation is a single critical section: totals and derived flags
// are adjusted together with the items, never left stale.
type Cache[T Entity] struct {
	mu     sync.Mutex
	items  []T
	page   types.Pagination
	policy CreatePolicy
	stale  bool
}

// Option configures a Cache.
type Option[T Entity] func(*Cache[T])

// WithCreatePolicy selects the ApplyCreated reconciliation policy.
func WithCreatePolicy[T Entity](policy CreatePolicy) Option[T] {
	return func(c *Cache[T]) { c.policy = policy }
}

// New creates an empty cache. It holds no data until the first
// ReplacePage.
func New[T Entity](opts ...Option[T]) *Cache[T] {
	c := &Cache[T]{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReplacePage replaces the whole page after a fresh fetch.
func (c *Cache[T]) ReplacePage(items []T, page types.Pagination) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append([]T(nil), items...)
	c.page = page
	c.stale = false
	c.recomputePages()
}

// ApplyCreated splices a newly created item into the cache and adjusts
// the total. Applying the same id twice replaces in place without
// inflating the total.
func (c *Cache[T]) ApplyCreated(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOf(item.EntityID()); idx >= 0 {
		c.items[idx] = item
		return
	}

	c.page.Total++
	c.recomputePages()

	if c.policy == PolicyRefetch {
		c.stale = true
		return
	}
	c.items = append([]T{item}, c.items...)
}

// ApplyUpdated replaces the element with a matching id. An absent id is
// not an error: the item may live on another page. Reports whether the
// current page changed.
func (c *Cache[T]) ApplyUpdated(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(item.EntityID())
	if idx < 0 {
		return false
	}
	c.items[idx] = item
	return true
}

// RemoveResult reports the outcome of ApplyRemoved.
type RemoveResult struct {
	Removed bool
	// NeedsPreviousPage is set when the removal emptied the current page
	// and an earlier page exists. Navigating there is the caller's
	// decision, not the cache's.
	NeedsPreviousPage bool
}

// ApplyRemoved removes at most one element with the given id and
// decrements the total. A second call with the same id is a no-op.
func (c *Cache[T]) ApplyRemoved(id string) RemoveResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return RemoveResult{}
	}

	c.items = append(c.items[:idx], c.items[idx+1:]...)
	if c.page.Total > 0 {
		c.page.Total--
	}
	c.recomputePages()

	return RemoveResult{
		Removed:           true,
		NeedsPreviousPage: len(c.items) == 0 && c.page.Page > 1,
	}
}

// Items returns a copy of the current page.
func (c *Cache[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// Get returns the cached element with the given id, if present.
func (c *Cache[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOf(id); idx >= 0 {
		return c.items[idx], true
	}
	var zero T
	return zero, false
}

// Len returns the number of items on the current page.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Pagination returns the current pagination metadata.
func (c *Cache[T]) Pagination() types.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Stale reports whether a refetch is pending under PolicyRefetch.
func (c *Cache[T]) Stale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stale
}

// Filter returns the cached items matching pred, as a copy. Projections
// never mutate the cache.
func (c *Cache[T]) Filter(pred func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// indexOf must be called with the lock held.
func (c *Cache[T]) indexOf(id string) int {
	for i, item := range c.items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}

// recomputePages must be called with the lock held.
func (c *Cache[T]) recomputePages() {
	if c.page.Limit <= 0 {
		c.page.TotalPages = 0
		if c.page.Total > 0 {
			c.page.TotalPages = 1
		}
		return
	}
	c.page.TotalPages = (c.page.Total + c.page.Limit - 1) / c.page.Limit
}
