package notification

import (
	"context"
	"sort"
	"sync"
)

// memoryRepository is an in-memory Repository used by the tests. It applies
// the same filter, ordering, and windowing semantics as the postgres
// implementation.
type memoryRepository struct {
	mu            sync.Mutex
	notifications map[string]*Notification
	addErr        error
	getErr        error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{notifications: make(map[string]*Notification)}
}

func (r *memoryRepository) matching(query Query) []*Notification {
	var matched []*Notification
	for _, n := range r.notifications {
		if query.Read != nil && n.Read != *query.Read {
			continue
		}
		if query.FilterByType() && n.Type != query.Type {
			continue
		}
		matched = append(matched, n)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched
}

func (r *memoryRepository) GetPaged(ctx context.Context, query Query) ([]*Notification, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.getErr != nil {
		return nil, 0, r.getErr
	}

	matched := r.matching(query)
	total := len(matched)

	start := query.Offset()
	if start > total {
		start = total
	}
	end := start + query.PageSize
	if end > total {
		end = total
	}

	page := make([]*Notification, 0, end-start)
	for _, n := range matched[start:end] {
		copied := *n
		page = append(page, &copied)
	}

	return page, total, nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.getErr != nil {
		return nil, r.getErr
	}

	n, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	copied := *n
	return &copied, nil
}

func (r *memoryRepository) Add(ctx context.Context, n *Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.addErr != nil {
		return r.addErr
	}

	copied := *n
	r.notifications[n.ID] = &copied
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, n *Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *n
	r.notifications[n.ID] = &copied
	return nil
}
