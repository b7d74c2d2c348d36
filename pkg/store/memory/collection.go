package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrymomot/clubledger/pkg/store"
)

type entry struct {
	revision int64
	data     []byte
}

// collection keeps JSON encoded documents in insertion order.
type collection[T any, PT store.DocPtr[T]] struct {
	mu    sync.RWMutex
	docs  map[string]entry
	order []string
}

func newCollection[T any, PT store.DocPtr[T]]() *collection[T, PT] {
	return &collection[T, PT]{docs: make(map[string]entry)}
}

func (c *collection[T, PT]) decode(e entry) (T, error) {
	var v T
	if err := json.Unmarshal(e.data, &v); err != nil {
		return v, err
	}
	PT(&v).SetDocRevision(e.revision)
	return v, nil
}

func (c *collection[T, PT]) Get(_ context.Context, id string) (T, error) {
	c.mu.RLock()
	e, ok := c.docs[id]
	c.mu.RUnlock()
	if !ok {
		var zero T
		return zero, store.ErrNotFound
	}
	return c.decode(e)
}

func (c *collection[T, PT]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		v, err := c.decode(c.docs[id])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *collection[T, PT]) Put(_ context.Context, doc T) (T, error) {
	p := PT(&doc)
	id := p.DocID()
	if id == "" {
		return doc, store.ErrMissingID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cur, exists := c.docs[id]
	if cur.revision != p.DocRevision() {
		return doc, store.ErrRevisionConflict
	}
	p.SetDocRevision(cur.revision + 1)
	data, err := json.Marshal(doc)
	if err != nil {
		return doc, err
	}
	c.docs[id] = entry{revision: cur.revision + 1, data: data}
	if !exists {
		c.order = append(c.order, id)
	}
	return doc, nil
}

func (c *collection[T, PT]) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return store.ErrNotFound
	}
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}
