// Package feed holds the single content-filter entry point every listing
// surface goes through. Filtering is a pure function over a materialized
// block set; the set itself is loaded per request by the block service.
package feed

import (
	"github.com/google/uuid"
	"github.com/rdsimon13/sif-backend/internal/models"
)

// BlockSet is a materialized set of user IDs excluded from a viewer's feeds.
type BlockSet map[uuid.UUID]struct{}

func NewBlockSet(ids ...uuid.UUID) BlockSet {
	s := make(BlockSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s BlockSet) Add(id uuid.UUID) {
	s[id] = struct{}{}
}

func (s BlockSet) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

func (s BlockSet) Len() int {
	return len(s)
}

// Union returns a new set containing the members of both sets.
func Union(a, b BlockSet) BlockSet {
	out := make(BlockSet, len(a)+len(b))
	for id := range a {
		out[id] = struct{}{}
	}
	for id := range b {
		out[id] = struct{}{}
	}
	return out
}

// FilterMessages returns the messages whose author is not in excluded,
// preserving input order. It never mutates its input.
func FilterMessages(items []models.Message, excluded BlockSet) []models.Message {
	if len(excluded) == 0 {
		return items
	}
	out := make([]models.Message, 0, len(items))
	for _, m := range items {
		if excluded.Contains(m.AuthorID) {
			continue
		}
		out = append(out, m)
	}
	return out
}
