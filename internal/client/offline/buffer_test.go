package offline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logifrete/protocolos/internal/client/kv"
	"github.com/logifrete/protocolos/internal/client/models"
	"github.com/logifrete/protocolos/internal/client/notify"
	"github.com/logifrete/protocolos/internal/common"
	"github.com/logifrete/protocolos/internal/logging"
)

func newTestBuffer(t *testing.T) (*Buffer, *kv.MemoryStore, *notify.Spy) {
	t.Helper()
	store := kv.NewMemoryStore()
	spy := notify.NewSpy()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewBuffer(store, spy, log), store, spy
}

func storedList(t *testing.T, store kv.Store) []models.OfflineProtocolo {
	t.Helper()
	raw, err := store.Get(context.Background(), common.OfflineStorageKey)
	require.NoError(t, err)
	var list []models.OfflineProtocolo
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	return list
}

func TestSaveOffline_FirstEntry(t *testing.T) {
	b, store, spy := newTestBuffer(t)
	ctx := context.Background()

	p := models.Protocolo{ID: "x1", Numero: "PROTOC-1"}
	entry, err := b.SaveOffline(ctx, p)
	require.NoError(t, err)

	assert.False(t, entry.Synced)
	assert.False(t, entry.CreatedAt.IsZero())

	list := storedList(t, store)
	require.Len(t, list, 1)
	assert.Equal(t, "x1", list[0].Protocolo.ID)
	assert.False(t, list[0].Synced)

	flag, err := store.Get(ctx, common.SyncStatusKey)
	require.NoError(t, err)
	assert.Equal(t, "true", flag)

	assert.Equal(t, 1, b.PendingCount())
	assert.True(t, b.HasPending())
	assert.Contains(t, spy.Titles(), "Salvo localmente")
}

func TestSaveOffline_AppendOnly(t *testing.T) {
	b, store, _ := newTestBuffer(t)
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		_, err := b.SaveOffline(ctx, models.NovoProtocolo("PROTOC-1", "", ""))
		require.NoError(t, err)
	}

	list := storedList(t, store)
	require.Len(t, list, n)
	for _, e := range list {
		assert.False(t, e.Synced)
	}
	assert.Equal(t, n, b.PendingCount())
}

func TestLoad_EmptyStorage(t *testing.T) {
	b, _, _ := newTestBuffer(t)

	require.NoError(t, b.Load(context.Background()))
	assert.Zero(t, b.PendingCount())
	assert.False(t, b.HasPending())
}

func TestLoad_CorruptListIsDiscarded(t *testing.T) {
	b, store, _ := newTestBuffer(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, common.OfflineStorageKey, "{not json["))

	require.NoError(t, b.Load(ctx))
	assert.Zero(t, b.PendingCount())

	_, err := store.Get(ctx, common.OfflineStorageKey)
	assert.ErrorIs(t, err, common.ErrorNotFound, "corrupt key must be deleted")
}

func TestLoad_FiltersSyncedEntries(t *testing.T) {
	b, store, _ := newTestBuffer(t)
	ctx := context.Background()

	list := []models.OfflineProtocolo{
		{Protocolo: models.Protocolo{ID: "a"}, CreatedAt: time.Now(), Synced: true},
		{Protocolo: models.Protocolo{ID: "b"}, CreatedAt: time.Now(), Synced: false},
	}
	raw, err := json.Marshal(list)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, common.OfflineStorageKey, string(raw)))

	require.NoError(t, b.Load(ctx))
	require.Equal(t, 1, b.PendingCount())
	assert.Equal(t, "b", b.Pending()[0].Protocolo.ID)
}

func TestPending_ReturnsCopy(t *testing.T) {
	b, _, _ := newTestBuffer(t)
	ctx := context.Background()

	_, err := b.SaveOffline(ctx, models.Protocolo{ID: "a", Numero: "PROTOC-1"})
	require.NoError(t, err)

	got := b.Pending()
	got[0].Protocolo.ID = "mutated"

	assert.Equal(t, "a", b.Pending()[0].Protocolo.ID)
}
