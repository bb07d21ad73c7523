// Package offline implements the write buffer that keeps protocolos the
// driver submitted without connectivity, and the reconciler that replays
// them against the backend once the link is back.
//
// The persisted list in the key-value store is the source of truth. The
// in-memory pending slice is always a recomputed projection of it, never
// maintained incrementally, so the two cannot drift.
package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/logifrete/protocolos/internal/client/kv"
	"github.com/logifrete/protocolos/internal/client/models"
	"github.com/logifrete/protocolos/internal/client/notify"
	"github.com/logifrete/protocolos/internal/common"
	"github.com/logifrete/protocolos/internal/logging"
)

// CreateFunc is the injected remote create operation: it pushes one
// protocolo to the authoritative backend and returns the stored version.
type CreateFunc func(ctx context.Context, p models.Protocolo) (models.Protocolo, error)

// Buffer is the offline write buffer. A single Buffer instance owns the
// persisted list for its process; concurrent processes are not coordinated.
type Buffer struct {
	store    kv.Store
	notifier notify.Notifier
	log      logging.Logger
	now      func() time.Time

	mu      sync.Mutex
	syncing bool
	pending []models.OfflineProtocolo

	// storeMu serializes every read-modify-write of the persisted list.
	// SaveOffline may run on the REPL goroutine while a sync pass runs on
	// the monitor goroutine; an unguarded write from either side would
	// clobber the other's entries.
	storeMu sync.Mutex
}

func NewBuffer(store kv.Store, notifier notify.Notifier, log logging.Logger) *Buffer {
	return &Buffer{
		store:    store,
		notifier: notifier,
		log:      log.With("component", "offline"),
		now:      time.Now,
	}
}

// readAll loads the full persisted list. A missing key yields an empty list.
// An unparseable value is treated as corruption: the key is deleted and the
// buffer degrades to empty instead of failing.
func (b *Buffer) readAll(ctx context.Context) ([]models.OfflineProtocolo, error) {
	raw, err := b.store.Get(ctx, common.OfflineStorageKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var list []models.OfflineProtocolo
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		b.log.Warn(ctx, "discarding corrupt offline list", "error", fmt.Errorf("%w: %v", common.ErrCorruptState, err))
		if delErr := b.store.Delete(ctx, common.OfflineStorageKey); delErr != nil {
			return nil, delErr
		}
		return nil, nil
	}
	return list, nil
}

func (b *Buffer) writeAll(ctx context.Context, list []models.OfflineProtocolo) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode offline list: %w", err)
	}
	return b.store.Set(ctx, common.OfflineStorageKey, string(raw))
}

func onlyUnsynced(list []models.OfflineProtocolo) []models.OfflineProtocolo {
	out := make([]models.OfflineProtocolo, 0, len(list))
	for _, e := range list {
		if !e.Synced {
			out = append(out, e)
		}
	}
	return out
}

// Load initializes the in-memory pending projection from the persisted list.
func (b *Buffer) Load(ctx context.Context) error {
	list, err := b.readAll(ctx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.pending = onlyUnsynced(list)
	b.mu.Unlock()
	return nil
}

// SaveOffline appends the protocolo to the persisted list with synced=false,
// marks the pending flag, and notifies the driver that submission was
// deferred.
func (b *Buffer) SaveOffline(ctx context.Context, p models.Protocolo) (models.OfflineProtocolo, error) {
	entry := models.OfflineProtocolo{
		Protocolo: p,
		CreatedAt: b.now(),
		Synced:    false,
	}

	b.storeMu.Lock()
	list, err := b.readAll(ctx)
	if err != nil {
		b.storeMu.Unlock()
		return models.OfflineProtocolo{}, err
	}
	list = append(list, entry)

	if err := b.writeAll(ctx, list); err != nil {
		b.storeMu.Unlock()
		return models.OfflineProtocolo{}, err
	}
	if err := b.store.Set(ctx, common.SyncStatusKey, "true"); err != nil {
		b.storeMu.Unlock()
		return models.OfflineProtocolo{}, err
	}
	b.storeMu.Unlock()

	b.mu.Lock()
	b.pending = onlyUnsynced(list)
	b.mu.Unlock()

	b.notifier.Notify(ctx, "Salvo localmente", "O protocolo será enviado quando a conexão for restaurada")
	b.log.Info(ctx, "protocolo buffered for later sync", "numero", p.Numero)

	return entry, nil
}

// Pending returns a copy of the unsynced projection.
func (b *Buffer) Pending() []models.OfflineProtocolo {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.OfflineProtocolo, len(b.pending))
	copy(out, b.pending)
	return out
}

func (b *Buffer) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *Buffer) HasPending() bool {
	return b.PendingCount() > 0
}
