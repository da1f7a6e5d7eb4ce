// Package remotelist keeps a local copy of a server-owned collection and
// applies edits to it only after the server confirms them.
package remotelist

import (
	"context"
	"slices"
	"sync"
)

// List is an ordered collection of items identified by a comparable key.
type List[T any, K comparable] struct {
	items []T
	key   func(T) K
}

func New[T any, K comparable](key func(T) K) *List[T, K] {
	return &List[T, K]{key: key}
}

func (l *List[T, K]) Set(items []T) {
	l.items = slices.Clone(items)
}

func (l *List[T, K]) Items() []T {
	return slices.Clone(l.items)
}

func (l *List[T, K]) Len() int {
	return len(l.items)
}

// At returns the i-th item.
func (l *List[T, K]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

func (l *List[T, K]) Get(k K) (T, bool) {
	if i := l.index(k); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// Replace swaps the item with key k for item. Other items are untouched.
func (l *List[T, K]) Replace(k K, item T) bool {
	i := l.index(k)
	if i < 0 {
		return false
	}
	l.items[i] = item
	return true
}

// Remove drops the item with key k.
func (l *List[T, K]) Remove(k K) bool {
	i := l.index(k)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

func (l *List[T, K]) Append(item T) {
	l.items = append(l.items, item)
}

func (l *List[T, K]) index(k K) int {
	return slices.IndexFunc(l.items, func(item T) bool { return l.key(item) == k })
}

type (
	FetchFunc[T any]                func(ctx context.Context) ([]T, error)
	UpdateFunc[T any, K comparable] func(ctx context.Context, k K, item T) (T, error)
	DeleteFunc[K comparable]        func(ctx context.Context, k K) error
)

// Controller binds a List to its remote operations.
// The list changes only when an operation succeeds. Remote calls run
// without the lock held so a view may keep reading while one is in flight.
type Controller[T any, K comparable] struct {
	mu   sync.RWMutex
	list *List[T, K]

	fetch  FetchFunc[T]
	update UpdateFunc[T, K]
	delete DeleteFunc[K]
}

func NewController[T any, K comparable](
	key func(T) K,
	fetch FetchFunc[T],
	update UpdateFunc[T, K],
	del DeleteFunc[K],
) *Controller[T, K] {
	return &Controller[T, K]{
		list:   New(key),
		fetch:  fetch,
		update: update,
		delete: del,
	}
}

func (c *Controller[T, K]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.Items()
}

func (c *Controller[T, K]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.Len()
}

func (c *Controller[T, K]) At(i int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.At(i)
}

func (c *Controller[T, K]) Get(k K) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.Get(k)
}

// Append adds an item created elsewhere, such as by a create form.
func (c *Controller[T, K]) Append(item T) {
	c.mu.Lock()
	c.list.Append(item)
	c.mu.Unlock()
}

// Refresh replaces the whole list with the server's copy.
func (c *Controller[T, K]) Refresh(ctx context.Context) ([]T, error) {
	items, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.list.Set(items)
	return c.list.Items(), nil
}

// Update sends item for key k and stores the server-returned version.
func (c *Controller[T, K]) Update(ctx context.Context, k K, item T) (T, error) {
	updated, err := c.update(ctx, k, item)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	c.list.Replace(k, updated)
	c.mu.Unlock()
	return updated, nil
}

func (c *Controller[T, K]) Delete(ctx context.Context, k K) error {
	if err := c.delete(ctx, k); err != nil {
		return err
	}

	c.mu.Lock()
	c.list.Remove(k)
	c.mu.Unlock()
	return nil
}
