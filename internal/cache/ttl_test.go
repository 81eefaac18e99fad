package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache_GetSet(t *testing.T) {
	c := NewTTLCache[string](5 * time.Minute)

	_, ok := c.Get("conta_1")
	assert.False(t, ok, "cache vazio não deve retornar valor")

	c.Set("conta_1", "resultado")

	got, ok := c.Get("conta_1")
	assert.True(t, ok)
	assert.Equal(t, "resultado", got)
}

func TestTTLCache_Expiracao(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base

	c := NewTTLCache[string](5 * time.Minute)
	c.nowFunc = func() time.Time { return now }

	c.Set("conta_1", "resultado")

	// Dentro da janela de validade
	now = base.Add(4*time.Minute + 59*time.Second)
	got, ok := c.Get("conta_1")
	assert.True(t, ok)
	assert.Equal(t, "resultado", got)

	// Depois da janela de validade
	now = base.Add(5*time.Minute + 1*time.Second)
	_, ok = c.Get("conta_1")
	assert.False(t, ok, "entrada expirada não deve ser retornada")
}

func TestTTLCache_Cleanup(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base

	c := NewTTLCache[int](5 * time.Minute)
	c.nowFunc = func() time.Time { return now }

	c.Set("expirada", 1)

	now = base.Add(10 * time.Minute)
	c.Set("valida", 2)

	removed := c.Cleanup()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("valida")
	assert.True(t, ok)
}

func TestTTLCache_Delete(t *testing.T) {
	c := NewTTLCache[string](5 * time.Minute)

	c.Set("conta_1", "resultado")
	c.Delete("conta_1")

	_, ok := c.Get("conta_1")
	assert.False(t, ok)
}
