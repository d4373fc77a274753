package session

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, 24*time.Hour, 10*time.Minute, logging.Default()), mr
}

func TestAppendMessageAndHistory(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.Empty(t, store.History(ctx, "u1"))

	require.NoError(t, store.AppendMessage(ctx, "u1", RoleUser, "hola"))
	require.NoError(t, store.AppendMessage(ctx, "u1", RoleAssistant, "buenas"))

	history := store.History(ctx, "u1")
	require.Len(t, history, 2)
	assert.Equal(t, RoleUser, history[0].Role)
	assert.Equal(t, "hola", history[0].Text)
	assert.Equal(t, RoleAssistant, history[1].Role)
	assert.NotEmpty(t, history[0].ID)
	assert.False(t, history[0].Timestamp.IsZero())
}

func TestHistoryIsolatedPerUser(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendMessage(ctx, "u1", RoleUser, "hola"))

	assert.Len(t, store.History(ctx, "u1"), 1)
	assert.Empty(t, store.History(ctx, "u2"))
}

func TestSaveContextAndFlag(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveContext(ctx, "u1", "esperando_ubicacion", "true"))
	require.NoError(t, store.SaveContext(ctx, "u1", "tema_consulta", "ubicaciones"))

	contexts := store.Context(ctx, "u1")
	require.Len(t, contexts, 2)
	assert.Equal(t, "ubicaciones", contexts["tema_consulta"].Value)
	assert.False(t, contexts["tema_consulta"].UpdatedAt.IsZero())

	assert.True(t, store.Flag(ctx, "u1", "esperando_ubicacion"))

	require.NoError(t, store.SaveContext(ctx, "u1", "esperando_ubicacion", "false"))
	assert.False(t, store.Flag(ctx, "u1", "esperando_ubicacion"))
	assert.False(t, store.Flag(ctx, "u1", "never_set"))
}

func TestContextExpiresBeforeHistory(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendMessage(ctx, "u1", RoleUser, "hola"))
	require.NoError(t, store.SaveContext(ctx, "u1", "esperando_ubicacion", "true"))
	require.NoError(t, store.SaveLocations(ctx, "u1", []string{"ALMACÉN ULÚA"}))

	mr.FastForward(11 * time.Minute)

	assert.False(t, store.Flag(ctx, "u1", "esperando_ubicacion"))
	assert.Empty(t, store.Context(ctx, "u1"))
	assert.Nil(t, store.Locations(ctx, "u1"))
	assert.Len(t, store.History(ctx, "u1"), 1, "transcript must survive the short TTL")

	mr.FastForward(25 * time.Hour)
	assert.Empty(t, store.History(ctx, "u1"))
}

func TestSaveContextRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveContext(ctx, "u1", "a", "1"))
	mr.FastForward(6 * time.Minute)
	require.NoError(t, store.SaveContext(ctx, "u1", "b", "2"))
	mr.FastForward(6 * time.Minute)

	contexts := store.Context(ctx, "u1")
	assert.Equal(t, "1", contexts["a"].Value, "earlier keys ride on the refreshed TTL")
	assert.Equal(t, "2", contexts["b"].Value)
}

func TestResolveReference(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	names := []string{"CORPORATIVO CÓRDOBA", "ALMACÉN PEÑUELA", "ALMACÉN ULÚA"}
	require.NoError(t, store.SaveLocations(ctx, "u1", names))

	tests := []struct {
		reference string
		want      string
		ok        bool
	}{
		{"la primera", "CORPORATIVO CÓRDOBA", true},
		{"2", "ALMACÉN PEÑUELA", true},
		{"la 2da opción", "ALMACÉN PEÑUELA", true},
		{"la última", "ALMACÉN ULÚA", true},
		{"la décima", "", false},
		{"ulua", "ALMACÉN ULÚA", true},
		{"algo sin sentido", "", false},
	}

	for _, tc := range tests {
		got, ok := store.ResolveReference(ctx, "u1", tc.reference)
		assert.Equal(t, tc.ok, ok, "reference %q", tc.reference)
		assert.Equal(t, tc.want, got, "reference %q", tc.reference)
	}
}

func TestResolveReferenceWithoutList(t *testing.T) {
	store, _ := newTestStore(t)

	_, ok := store.ResolveReference(context.Background(), "u1", "la primera")
	assert.False(t, ok)
}
