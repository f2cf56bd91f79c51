package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemorySetAndGet(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	require.NoError(t, gw.Set(ctx, "clients/c1", map[string]string{"name": "Juan"}))

	var client map[string]string
	found, err := gw.Get(ctx, "clients/c1", &client)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Juan", client["name"])
}

func TestMemoryGetAbsent(t *testing.T) {
	gw := NewMemory()

	var dest map[string]interface{}
	found, err := gw.Get(context.Background(), "nada/por/aqui", &dest)
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryGetSubtree(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	require.NoError(t, gw.Set(ctx, "products/p1", map[string]interface{}{"name": "Soda"}))
	require.NoError(t, gw.Set(ctx, "products/p2", map[string]interface{}{"name": "Almuerzo"}))

	var products map[string]map[string]interface{}
	found, err := gw.Get(ctx, "products", &products)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, products, 2)
	require.Equal(t, "Almuerzo", products["p2"]["name"])
}

func TestMemorySetReplacesSubtree(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	require.NoError(t, gw.Set(ctx, "intents", map[string]string{"a": "uno", "b": "dos"}))
	require.NoError(t, gw.Set(ctx, "intents", map[string]string{"c": "tres"}))

	var intents map[string]string
	found, err := gw.Get(ctx, "intents", &intents)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, intents, 1)
	require.Equal(t, "tres", intents["c"])
}

func TestMemoryPush(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	id, err := gw.Push(ctx, "chat_history/s1", map[string]string{"text": "hola"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	var message map[string]string
	found, err := gw.Get(ctx, "chat_history/s1/"+id, &message)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "hola", message["text"])
}

func TestMemoryUpdate(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	require.NoError(t, gw.Update(ctx, map[string]interface{}{
		"clients/c1/name": "Juan",
		"clients/c2/name": "María",
	}))

	var name string
	found, err := gw.Get(ctx, "clients/c2/name", &name)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "María", name)
}

func TestMemoryRemove(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	require.NoError(t, gw.Set(ctx, "sales/s1", map[string]interface{}{"total": 10}))
	require.NoError(t, gw.Remove(ctx, "sales/s1"))

	var dest map[string]interface{}
	found, err := gw.Get(ctx, "sales/s1", &dest)
	require.NoError(t, err)
	require.False(t, found)

	// Borrar algo inexistente no es un error
	require.NoError(t, gw.Remove(ctx, "sales/s999"))
}

func TestMemoryHonorsCanceledContext(t *testing.T) {
	gw := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.Get(ctx, "clients", &map[string]interface{}{})
	require.Error(t, err)
	require.Error(t, gw.Set(ctx, "clients/c1", "x"))
	require.Error(t, gw.Update(ctx, map[string]interface{}{"a": 1}))
	require.Error(t, gw.Remove(ctx, "clients/c1"))
}

func TestMemoryNormalizesStructs(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	type sale struct {
		Total float64 `json:"total"`
		Date  string  `json:"date"`
	}
	require.NoError(t, gw.Set(ctx, "sales/s1", sale{Total: 12.5, Date: "2026-08-30"}))

	// Se puede leer como mapa genérico, igual que desde el backend real
	var raw map[string]interface{}
	found, err := gw.Get(ctx, "sales/s1", &raw)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 12.5, raw["total"])

	var decoded sale
	found, err = gw.Get(ctx, "sales/s1", &decoded)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "2026-08-30", decoded.Date)
}
