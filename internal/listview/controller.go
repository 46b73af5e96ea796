// Package listview implements the list state shared by every management
// screen: free-text search, categorical filters with an "all" sentinel,
// and a selection set that bulk actions operate on. Selection-wide
// operations are scoped to the rows the current filters make visible;
// rows hidden by a filter are never touched.
//
// The controller owns no items. Stores hold the records; callers pass
// the current collection into Visible and ToggleAllVisible.
package listview

import (
	"sort"
	"strings"
	"sync"
)

// FilterAll is the sentinel value that deactivates a filter.
const FilterAll = "all"

// Row is any record addressable by a stable id.
type Row interface {
	RowID() string
}

// Config parameterizes a controller for one entity type.
type Config[T Row] struct {
	// SearchFields extracts the text fields the search query is matched
	// against. A row matches if any field contains the query as a
	// case-insensitive substring.
	SearchFields func(T) []string

	// MatchFilter evaluates one categorical filter against a row. It is
	// only consulted for filters whose value is set and not FilterAll.
	MatchFilter func(item T, name, value string) bool
}

type Controller[T Row] struct {
	mu       sync.Mutex
	cfg      Config[T]
	search   string
	filters  map[string]string
	selected map[string]struct{}
}

func New[T Row](cfg Config[T]) *Controller[T] {
	return &Controller[T]{
		cfg:      cfg,
		filters:  make(map[string]string),
		selected: make(map[string]struct{}),
	}
}

// SetSearch replaces the free-text query. The query is trimmed and
// case-folded once here, not on every match.
func (c *Controller[T]) SetSearch(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = strings.ToLower(strings.TrimSpace(q))
}

func (c *Controller[T]) Search() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

// SetFilter sets a categorical filter. An empty value or FilterAll
// deactivates it.
func (c *Controller[T]) SetFilter(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" || value == FilterAll {
		delete(c.filters, name)
		return
	}
	c.filters[name] = value
}

func (c *Controller[T]) Filter(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.filters[name]; ok {
		return v
	}
	return FilterAll
}

// Visible applies the categorical filters and then the search query to
// items, preserving order.
func (c *Controller[T]) Visible(items []T) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibleLocked(items)
}

func (c *Controller[T]) visibleLocked(items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if c.matchesLocked(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Controller[T]) matchesLocked(item T) bool {
	for name, value := range c.filters {
		if c.cfg.MatchFilter == nil || !c.cfg.MatchFilter(item, name, value) {
			return false
		}
	}
	if c.search == "" {
		return true
	}
	if c.cfg.SearchFields == nil {
		return false
	}
	for _, field := range c.cfg.SearchFields(item) {
		if strings.Contains(strings.ToLower(field), c.search) {
			return true
		}
	}
	return false
}

// ToggleOne flips membership of id in the selection set.
func (c *Controller[T]) ToggleOne(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
	} else {
		c.selected[id] = struct{}{}
	}
}

// ToggleAllVisible selects every currently visible row, or deselects
// exactly the visible rows if all of them are already selected. Ids
// outside the current filter are left alone either way.
func (c *Controller[T]) ToggleAllVisible(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := c.visibleLocked(items)
	allSelected := len(visible) > 0
	for _, item := range visible {
		if _, ok := c.selected[item.RowID()]; !ok {
			allSelected = false
			break
		}
	}

	for _, item := range visible {
		if allSelected {
			delete(c.selected, item.RowID())
		} else {
			c.selected[item.RowID()] = struct{}{}
		}
	}
}

func (c *Controller[T]) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = make(map[string]struct{})
}

// Deselect removes a single id, used when its row is deleted.
func (c *Controller[T]) Deselect(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.selected, id)
}

func (c *Controller[T]) IsSelected(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.selected[id]
	return ok
}

func (c *Controller[T]) SelectedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.selected)
}

// SelectedIDs returns the selection sorted for deterministic output.
func (c *Controller[T]) SelectedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.selected))
	for id := range c.selected {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
