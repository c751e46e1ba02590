package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 2)

	ok, err := rl.Allow("1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rl.Allow("1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rl.Allow("1.2.3.4")
	assert.False(t, ok)
	assert.Error(t, err)

	// Otro identificador tiene su propia ventana
	ok, err = rl.Allow("5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_VentanaExpira(t *testing.T) {
	rl := NewRateLimiter(50*time.Millisecond, 1)

	ok, err := rl.Allow("1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = rl.Allow("1.2.3.4")
	assert.False(t, ok)

	time.Sleep(60 * time.Millisecond)

	ok, err = rl.Allow("1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStatsCache(t *testing.T) {
	c := NewStatsCache(time.Minute)

	_, ok := c.Get("postulantes")
	assert.False(t, ok)

	c.Set("postulantes", 42)
	v, ok := c.Get("postulantes")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	c.Invalidate("postulantes")
	_, ok = c.Get("postulantes")
	assert.False(t, ok)

	c.Set("a", 1)
	c.Set("b", 2)
	assert.Equal(t, 2, c.Size())
	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestStatsCache_Expira(t *testing.T) {
	c := NewStatsCache(10 * time.Millisecond)

	c.Set("postulantes", 42)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("postulantes")
	assert.False(t, ok)
}
