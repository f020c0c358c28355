package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

// entry is a stored value together with its insertion sequence, which
// breaks ordering ties the way an auto-increment key would.
type entry[T any] struct {
	seq int64
	val T
}

// table is a mutex guarded map of records keyed by a generated id.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[string]*entry[T]
	seq    int64
	entity string
	// unique, when set, returns the value that must be unique across rows.
	unique func(*T) string
	// conflict is the message reported on a uniqueness violation.
	conflict string
	clone    func(T) T
}

func newTable[T any](entity string) *table[T] {
	return &table[T]{rows: make(map[string]*entry[T]), entity: entity}
}

func (t *table[T]) withUnique(key func(*T) string, conflict string) *table[T] {
	t.unique = key
	t.conflict = conflict
	return t
}

func (t *table[T]) withClone(clone func(T) T) *table[T] {
	t.clone = clone
	return t
}

func alive(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func (t *table[T]) copyOf(v T) *T {
	if t.clone != nil {
		v = t.clone(v)
	}
	return &v
}

// taken reports whether another row already holds v's unique key.
func (t *table[T]) taken(v *T, exceptID string) bool {
	if t.unique == nil {
		return false
	}
	k := t.unique(v)
	for id, e := range t.rows {
		if id != exceptID && t.unique(&e.val) == k {
			return true
		}
	}
	return false
}

func (t *table[T]) insert(ctx context.Context, build func(id string) T) (*T, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	id := strconv.FormatInt(t.seq+1, 10)
	v := build(id)
	if t.taken(&v, "") {
		return nil, domain.Conflict("%s", t.conflict)
	}
	t.seq++
	t.rows[id] = &entry[T]{seq: t.seq, val: *t.copyOf(v)}
	return t.copyOf(v), nil
}

func (t *table[T]) get(ctx context.Context, id string) (*T, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.rows[id]
	if !ok {
		return nil, domain.NotFound(t.entity)
	}
	return t.copyOf(e.val), nil
}

func (t *table[T]) findOne(ctx context.Context, match func(*T) bool) (*T, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, e := range t.rows {
		if match(&e.val) {
			return t.copyOf(e.val), nil
		}
	}
	return nil, domain.NotFound(t.entity)
}

// list returns matching rows sorted by cmp, truncated to limit when positive.
func (t *table[T]) list(ctx context.Context, match func(*T) bool, cmp func(a, b *entry[T]) int, limit int) ([]*T, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	t.mu.RLock()
	matched := make([]*entry[T], 0, len(t.rows))
	for _, e := range t.rows {
		if match == nil || match(&e.val) {
			matched = append(matched, &entry[T]{seq: e.seq, val: e.val})
		}
	}
	t.mu.RUnlock()

	slices.SortFunc(matched, cmp)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]*T, len(matched))
	for i, e := range matched {
		out[i] = t.copyOf(e.val)
	}
	return out, nil
}

func (t *table[T]) update(ctx context.Context, id string, apply func(*T)) (*T, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.rows[id]
	if !ok {
		return nil, domain.NotFound(t.entity)
	}
	next := *t.copyOf(e.val)
	apply(&next)
	if t.taken(&next, id) {
		return nil, domain.Conflict("%s", t.conflict)
	}
	e.val = next
	return t.copyOf(next), nil
}

func (t *table[T]) remove(ctx context.Context, id string) error {
	if err := alive(ctx); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return domain.NotFound(t.entity)
	}
	delete(t.rows, id)
	return nil
}

func (t *table[T]) count(match func(*T) bool) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, e := range t.rows {
		if match(&e.val) {
			n++
		}
	}
	return n
}

func bySeqAsc[T any](a, b *entry[T]) int { return cmpInt64(a.seq, b.seq) }

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func eqPtr(p *string, v string) bool { return p != nil && *p == v }
