package moderator

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Entry is one configured moderator.
type Entry struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	Note   string    `json:"note,omitempty"`
}

type rosterFile struct {
	Moderators []Entry `json:"moderators"`
}

// Roster is a file-backed set of moderator identities, checked by the
// moderator middleware in addition to the user directory's role column.
// An empty path yields an empty roster (file-based moderators disabled).
type Roster struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]Entry
	byEmail map[string]Entry
	entries []Entry
}

func NewRoster() *Roster {
	return &Roster{
		byID:    make(map[uuid.UUID]Entry),
		byEmail: make(map[string]Entry),
	}
}

func LoadFromFile(path string) (*Roster, error) {
	r := NewRoster()
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read moderators file: %w", err)
	}

	var file rosterFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse moderators file: %w", err)
	}

	for i := range file.Moderators {
		e := file.Moderators[i]
		if e.UserID == uuid.Nil && e.Email == "" {
			return nil, fmt.Errorf("moderators file: entry %d has neither user_id nor email", i)
		}
		r.add(e)
	}
	return r, nil
}

func (r *Roster) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	if e.UserID != uuid.Nil {
		r.byID[e.UserID] = e
	}
	if e.Email != "" {
		r.byEmail[e.Email] = e
	}
}

func (r *Roster) ContainsID(id uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok
}

func (r *Roster) ContainsEmail(email string) bool {
	if email == "" {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email]
	return ok
}

func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// All returns a copy of the configured entries.
func (r *Roster) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Entry, len(r.entries))
	copy(result, r.entries)
	return result
}
