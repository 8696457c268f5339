package memory

import (
	"errors"
	"strings"
	"sync"
)

var (
	errIDRequired   = errors.New("id required")
	errAlreadyExist = errors.New("already exists")
)

// collection es la lista en memoria que respalda cada repo.
// Conserva el orden de inserción: Update reemplaza en su lugar y Remove filtra.
type collection[T any] struct {
	mu    sync.RWMutex
	idOf  func(T) string
	items []T
	index map[string]int
}

func newCollection[T any](idOf func(T) string) *collection[T] {
	return &collection[T]{
		idOf:  idOf,
		items: make([]T, 0),
		index: make(map[string]int),
	}
}

func (c *collection[T]) add(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(v)
	if strings.TrimSpace(id) == "" {
		return errIDRequired
	}
	if _, exists := c.index[id]; exists {
		return errAlreadyExist
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, v)
	return nil
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// replace devuelve false si el id no existe (no-op).
func (c *collection[T]) replace(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[c.idOf(v)]
	if !ok {
		return false
	}
	c.items[i] = v
	return true
}

// remove devuelve false si el id no existe (no-op).
func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return false
	}

	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.idOf(c.items[j])] = j
	}
	return true
}

// list devuelve una copia con los items que cumplen keep (todos si keep es nil).
func (c *collection[T]) list(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, v := range c.items {
		if keep != nil && !keep(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
