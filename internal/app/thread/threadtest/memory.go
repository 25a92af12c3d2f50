// Package threadtest provides an in-memory thread.Repository for tests.
package threadtest

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"messageboard/internal/app/thread"
)

type MemoryRepository struct {
	mu      sync.Mutex
	threads map[string]*thread.Thread
	nextID  int

	// Err, when set, is returned by every call.
	Err error
	// SaveCalls counts successful Save calls.
	SaveCalls int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{threads: make(map[string]*thread.Thread)}
}

func (m *MemoryRepository) newID() string {
	m.nextID++
	return strconv.Itoa(m.nextID)
}

func (m *MemoryRepository) assignReplyIDs(t *thread.Thread) {
	for i := range t.Replies {
		if t.Replies[i].ID == "" {
			t.Replies[i].ID = m.newID()
		}
		t.Replies[i].ThreadID = t.ID
		t.Replies[i].Position = i
	}
}

func clone(t *thread.Thread) *thread.Thread {
	c := *t
	c.Replies = append([]thread.Reply{}, t.Replies...)
	return &c
}

func (m *MemoryRepository) Create(_ context.Context, t *thread.Thread) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if t.ID == "" {
		t.ID = m.newID()
	}
	m.assignReplyIDs(t)
	m.threads[t.ID] = clone(t)
	return nil
}

func (m *MemoryRepository) FindByID(_ context.Context, board, id string) (*thread.Thread, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	t, ok := m.threads[id]
	if !ok || t.Board != board {
		return nil, thread.ErrThreadNotFound
	}
	return clone(t), nil
}

func (m *MemoryRepository) ListByBoard(_ context.Context, board string, limit int) ([]*thread.Thread, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*thread.Thread
	for _, t := range m.threads {
		if t.Board == board {
			out = append(out, clone(t))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].BumpedOn.Equal(out[j].BumpedOn) {
			return out[i].ID > out[j].ID
		}
		return out[i].BumpedOn.After(out[j].BumpedOn)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryRepository) Save(_ context.Context, t *thread.Thread) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.threads[t.ID]; !ok {
		return thread.ErrThreadNotFound
	}
	m.assignReplyIDs(t)
	m.threads[t.ID] = clone(t)
	m.SaveCalls++
	return nil
}

func (m *MemoryRepository) SetReported(_ context.Context, board, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	t, ok := m.threads[id]
	if !ok || t.Board != board {
		return thread.ErrThreadNotFound
	}
	t.Reported = true
	return nil
}

func (m *MemoryRepository) Delete(_ context.Context, board, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	t, ok := m.threads[id]
	if !ok || t.Board != board {
		return thread.ErrThreadNotFound
	}
	delete(m.threads, id)
	return nil
}

func (m *MemoryRepository) ListBoards(_ context.Context) ([]thread.BoardSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	byName := make(map[string]*thread.BoardSummary)
	for _, t := range m.threads {
		b, ok := byName[t.Board]
		if !ok {
			b = &thread.BoardSummary{Name: t.Board}
			byName[t.Board] = b
		}
		b.ThreadCount++
		if t.BumpedOn.After(b.BumpedOn) {
			b.BumpedOn = t.BumpedOn
		}
	}
	out := make([]thread.BoardSummary, 0, len(byName))
	for _, b := range byName {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BumpedOn.After(out[j].BumpedOn) })
	return out, nil
}

func (m *MemoryRepository) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Err
}

// Get returns the stored copy of a thread regardless of board, or nil.
func (m *MemoryRepository) Get(id string) *thread.Thread {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.threads[id]
	if !ok {
		return nil
	}
	return clone(t)
}
