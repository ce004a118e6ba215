package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/noemalabs/noema/internal/domain"
)

// GraphStore is the authoritative in-memory arena of thoughts and sessions.
// Thoughts are addressed by opaque id; parent/children are id references, so
// the single-parent forest plus free cross-reference lists never forms an
// ownership cycle. State lives only as long as the process.
//
// Every accessor returns detached copies: callers never hold a pointer into
// the store's mutable state, so reads stay safe while a concurrent create
// appends children to the same thought.
type GraphStore struct {
	mu       sync.Mutex
	thoughts map[string]*domain.Thought
	sessions map[string][]string
	counter  uint64
}

func NewGraphStore() *GraphStore {
	s := &GraphStore{
		thoughts: make(map[string]*domain.Thought),
		sessions: make(map[string][]string),
	}
	// The default session exists from the start so analyzing or exporting it
	// before the first thought is not a not-found condition.
	s.sessions[domain.DefaultSessionID] = nil
	return s
}

// Create assigns a fresh id, stores the thought, links it under its parent
// when the parent is known, and appends it to the session. Id assignment,
// parent linking and session append happen under one lock so concurrent
// creations cannot interleave.
func (s *GraphStore) Create(draft domain.ThoughtDraft, sessionID string) *domain.Thought {
	if sessionID == "" {
		sessionID = domain.DefaultSessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	metrics := domain.NewThoughtMetrics()
	if draft.Metrics != nil {
		metrics = *draft.Metrics
	}
	t := &domain.Thought{
		ID:              fmt.Sprintf("thought_%d", s.counter),
		Content:         draft.Content,
		Type:            draft.Type,
		Strategy:        draft.Strategy,
		ParentID:        draft.ParentID,
		BranchID:        draft.BranchID,
		RevisionOf:      draft.RevisionOf,
		Timestamp:       time.Now(),
		Metrics:         metrics,
		CognitiveBiases: draft.CognitiveBiases,
		Supports:        draft.Supports,
		Contradicts:     draft.Contradicts,
		BuildsOn:        draft.BuildsOn,
		Tags:            draft.Tags,
	}

	// Unknown parent ids are stored as-is with no reciprocal update.
	if t.ParentID != "" {
		if parent, ok := s.thoughts[t.ParentID]; ok {
			parent.ChildrenIDs = append(parent.ChildrenIDs, t.ID)
		}
	}

	s.thoughts[t.ID] = t
	s.sessions[sessionID] = append(s.sessions[sessionID], t.ID)
	return cloneThought(t)
}

func (s *GraphStore) GetByID(id string) (*domain.Thought, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.thoughts[id]
	if !ok {
		return nil, false
	}
	return cloneThought(t), true
}

// Snapshot returns a deep value copy of the thought, safe to hand to
// background workers while the original keeps accumulating children.
func (s *GraphStore) Snapshot(id string) (domain.Thought, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.thoughts[id]
	if !ok {
		return domain.Thought{}, false
	}
	return *cloneThought(t), true
}

// cloneThought deep-copies a thought, including every id and tag slice, so
// the copy shares no memory with the stored original. Callers must hold the
// store lock.
func cloneThought(t *domain.Thought) *domain.Thought {
	cp := *t
	cp.ChildrenIDs = append([]string(nil), t.ChildrenIDs...)
	cp.CognitiveBiases = append([]string(nil), t.CognitiveBiases...)
	cp.Tags = append([]string(nil), t.Tags...)
	cp.Supports = append([]string(nil), t.Supports...)
	cp.Contradicts = append([]string(nil), t.Contradicts...)
	cp.BuildsOn = append([]string(nil), t.BuildsOn...)
	return &cp
}

// PathTo walks parent links from the given thought up to its root ancestor
// and returns the path root-first. Unknown ids yield an empty path. The walk
// is bounded by the total thought count so a corrupted parent cycle cannot
// loop forever.
func (s *GraphStore) PathTo(id string) []*domain.Thought {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.thoughts[id]
	if !ok {
		return nil
	}

	var path []*domain.Thought
	for steps := 0; current != nil && steps < len(s.thoughts); steps++ {
		path = append([]*domain.Thought{cloneThought(current)}, path...)
		if current.ParentID == "" {
			break
		}
		current = s.thoughts[current.ParentID]
	}
	return path
}

// SessionThoughts returns the session's thoughts in insertion order. The
// second return reports whether the session exists at all.
func (s *GraphStore) SessionThoughts(sessionID string) ([]*domain.Thought, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	thoughts := make([]*domain.Thought, 0, len(ids))
	for _, id := range ids {
		if t, exists := s.thoughts[id]; exists {
			thoughts = append(thoughts, cloneThought(t))
		}
	}
	return thoughts, true
}

// Touch makes sure the session exists, creating it empty on first reference.
func (s *GraphStore) Touch(sessionID string) {
	if sessionID == "" {
		sessionID = domain.DefaultSessionID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		s.sessions[sessionID] = nil
	}
}

func (s *GraphStore) SessionIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *GraphStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.thoughts)
}
