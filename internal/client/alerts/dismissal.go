// Package alerts persists which operational alerts the user dismissed today.
// Dismissals are scoped to a calendar day: tomorrow the alert shows again.
package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/logifrete/protocolos/internal/client/kv"
	"github.com/logifrete/protocolos/internal/common"
)

// DismissalStore records per-day alert dismissals in the local store.
type DismissalStore struct {
	store kv.Store
}

func NewDismissalStore(store kv.Store) *DismissalStore {
	return &DismissalStore{store: store}
}

func dayKey(day time.Time) string {
	return common.DismissedAlertsKeyPrefix + day.Format("2006-01-02")
}

// Dismissed returns the alert ids dismissed on the given day. A missing or
// corrupt value reads as empty.
func (s *DismissalStore) Dismissed(ctx context.Context, day time.Time) ([]string, error) {
	raw, err := s.store.Get(ctx, dayKey(day))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, nil
	}
	return ids, nil
}

// Dismiss records alertID as dismissed for the given day. Repeated
// dismissals are deduplicated.
func (s *DismissalStore) Dismiss(ctx context.Context, alertID string, day time.Time) error {
	ids, err := s.Dismissed(ctx, day)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if id == alertID {
			return nil
		}
	}
	ids = append(ids, alertID)

	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, dayKey(day), string(raw))
}

// IsDismissed reports whether alertID was dismissed on the given day.
func (s *DismissalStore) IsDismissed(ctx context.Context, alertID string, day time.Time) (bool, error) {
	ids, err := s.Dismissed(ctx, day)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == alertID {
			return true, nil
		}
	}
	return false, nil
}
