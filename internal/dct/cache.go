package dct

import (
	"fmt"
	"sync"
)

// Cache memoizes Transform instances by plane size. Building the basis
// matrices is quadratic in each dimension, so repeated calls on same-sized
// images share one Transform. Safe for concurrent use.
type Cache struct {
	data sync.Map
}

func NewCache() *Cache {
	var c Cache
	return &c
}

func (c *Cache) Get(w, h int) *Transform {
	key := fmt.Sprintf("%d-%d", w, h)
	if v, ok := c.data.Load(key); ok {
		return v.(*Transform)
	}
	t := New(w, h)
	actual, loaded := c.data.LoadOrStore(key, t)
	if loaded {
		return actual.(*Transform)
	}
	return t
}
