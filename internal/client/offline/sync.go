package offline

import (
	"context"
	"fmt"

	"github.com/logifrete/protocolos/internal/common"
)

// SyncPending runs one reconciliation pass: re-reads the persisted list
// fresh, attempts the remote create for every unsynced entry in order, and
// persists the outcome in a single write at the end.
//
// The pass is skipped while offline, while another pass is in flight, or
// when nothing is pending. One failing entry never blocks the rest; it is
// left unsynced for the next pass.
func (b *Buffer) SyncPending(ctx context.Context, online bool, create CreateFunc) error {
	b.mu.Lock()
	if !online || b.syncing || len(b.pending) == 0 {
		b.mu.Unlock()
		return nil
	}
	b.syncing = true
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.syncing = false
		b.mu.Unlock()
	}()

	// The projection used for the guard above may be stale; the pass itself
	// always works on a fresh read of the durable list.
	b.storeMu.Lock()
	list, err := b.readAll(ctx)
	b.storeMu.Unlock()
	if err != nil {
		return err
	}

	syncedIDs := make(map[string]bool, len(list))
	synced := 0
	for i := range list {
		if list[i].Synced {
			continue
		}

		if _, err := create(ctx, list[i].Protocolo); err != nil {
			b.log.Error(ctx, "failed to sync protocolo",
				"numero", list[i].Protocolo.Numero,
				"error", fmt.Errorf("%w: %v", common.ErrCreate, err))
			continue
		}

		syncedIDs[list[i].Protocolo.ID] = true
		synced++
	}

	// SaveOffline may have appended entries while the creates were in
	// flight. Re-read the list under the store lock and fold the pass
	// outcome into it, so the single write never drops a concurrent save.
	b.storeMu.Lock()
	list, err = b.readAll(ctx)
	if err != nil {
		b.storeMu.Unlock()
		return err
	}

	allSynced := true
	for i := range list {
		if syncedIDs[list[i].Protocolo.ID] {
			list[i].Synced = true
		}
		if !list[i].Synced {
			allSynced = false
		}
	}

	if err := b.writeAll(ctx, list); err != nil {
		b.storeMu.Unlock()
		return err
	}
	if allSynced {
		if err := b.store.Delete(ctx, common.SyncStatusKey); err != nil {
			b.storeMu.Unlock()
			return err
		}
	}
	b.storeMu.Unlock()

	b.mu.Lock()
	b.pending = onlyUnsynced(list)
	b.mu.Unlock()

	if synced > 0 {
		b.notifier.Notify(ctx, "Sincronização concluída",
			fmt.Sprintf("%d protocolo(s) enviado(s) com sucesso", synced))
		b.log.Info(ctx, "sync pass finished", "synced", synced, "pending", b.PendingCount())
	}

	return nil
}
