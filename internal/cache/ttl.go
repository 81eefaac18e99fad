package cache

import (
	"sync"
	"time"
)

// TTLCache é um cache em memória com expiração por chave.
// Usado para respostas que podem ser reaproveitadas por alguns minutos
// sem bater na API do Meta novamente.
type TTLCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration

	// nowFunc permite injetar o relógio nos testes
	nowFunc func() time.Time
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

func NewTTLCache[V any](ttl time.Duration) *TTLCache[V] {
	return &TTLCache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V

	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}

	if c.nowFunc().After(e.expiresAt) {
		return zero, false
	}

	return e.value, true
}

func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.nowFunc().Add(c.ttl),
	}
}

func (c *TTLCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Cleanup remove as entradas expiradas e retorna quantas foram removidas
func (c *TTLCache[V]) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.nowFunc()
	removed := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

func (c *TTLCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
