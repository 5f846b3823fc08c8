package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("api_url", "http://localhost:8000/api"))

	val, ok := store.Get("api_url")
	assert.True(t, ok)
	assert.Equal(t, "http://localhost:8000/api", val)
	assert.Equal(t, "http://localhost:8000/api", store.GetString("api_url"))
}

func TestConfigStore_GetString_WrongType(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("api_rate", 5.0))

	assert.Equal(t, "", store.GetString("api_rate"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("a", 1.5))
	require.NoError(t, store.Set("b", 2))
	require.NoError(t, store.Set("c", int64(3)))
	require.NoError(t, store.Set("d", "x"))

	assert.InDelta(t, 1.5, store.GetFloat("a"), 0.0001)
	assert.InDelta(t, 2.0, store.GetFloat("b"), 0.0001)
	assert.InDelta(t, 3.0, store.GetFloat("c"), 0.0001)
	assert.Zero(t, store.GetFloat("d"))
	assert.Zero(t, store.GetFloat("missing"))
}

func TestConfigStore_DeleteAndAll(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("locale", "es-CO"))
	require.NoError(t, store.Set("currency", "COP"))

	require.NoError(t, store.Delete("locale"))
	require.NoError(t, store.Delete("missing"))

	assert.Equal(t, map[string]any{"currency": "COP"}, store.All())
}

func TestConfigStore_LoadAndPath(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Load())
	assert.Empty(t, store.Path())
}

func TestConfigStore_Watch_ReturnsOnCancel(t *testing.T) {
	store := NewConfigStore()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx, func() { t.Error("unexpected change") }) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Watch did not return")
	}
}
