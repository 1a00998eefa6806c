package content

import (
	"sync/atomic"

	"ausverity-backend/models"
)

// Table maps a state code to its practice area blocks, keyed by slug
type Table map[string]map[string]models.ContentBlock

// Len returns the number of blocks in the table
func (t Table) Len() int {
	n := 0
	for _, areas := range t {
		n += len(areas)
	}
	return n
}

// Clone returns a deep copy of the table
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for state, areas := range t {
		inner := make(map[string]models.ContentBlock, len(areas))
		for slug, block := range areas {
			inner[slug] = block.Clone()
		}
		out[state] = inner
	}
	return out
}

// Resolver looks up content blocks in the current table snapshot. The
// snapshot is replaced whole by Swap; a lookup never observes a partial table.
type Resolver struct {
	table atomic.Pointer[Table]
}

// NewResolver creates a resolver over a copy of t
func NewResolver(t Table) *Resolver {
	r := &Resolver{}
	r.Swap(t)
	return r
}

// Swap replaces the resolver's table with a copy of t
func (r *Resolver) Swap(t Table) {
	clone := t.Clone()
	r.table.Store(&clone)
}

// Snapshot returns a copy of the current table
func (r *Resolver) Snapshot() Table {
	if r == nil {
		return Table{}
	}
	t := r.table.Load()
	if t == nil {
		return Table{}
	}
	return t.Clone()
}

// Len returns the number of blocks in the current table
func (r *Resolver) Len() int {
	if r == nil {
		return 0
	}
	t := r.table.Load()
	if t == nil {
		return 0
	}
	return t.Len()
}

// Resolve returns the block for (stateCode, slug), or nil when the state has
// no table or the slug has no entry. Inputs are not validated.
func (r *Resolver) Resolve(stateCode, slug string) *models.ContentBlock {
	if r == nil {
		return nil
	}
	t := r.table.Load()
	if t == nil {
		return nil
	}
	areas, ok := (*t)[stateCode]
	if !ok {
		return nil
	}
	block, ok := areas[slug]
	if !ok {
		return nil
	}
	// callers get their own copy; the snapshot is shared by every request
	out := block.Clone()
	return &out
}
