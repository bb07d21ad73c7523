package common

// Keys in the durable local key-value store.
const (
	// OfflineStorageKey holds the JSON array of buffered protocolos.
	OfflineStorageKey = "offline_protocolos"

	// SyncStatusKey is present (value "true") while unsynced protocolos exist.
	SyncStatusKey = "offline_sync_pending"

	// DismissedAlertsKeyPrefix is completed with a yyyy-MM-dd date to form
	// the per-day dismissed alerts key.
	DismissedAlertsKeyPrefix = "dismissed_alerts_"
)

// FotosBucket is the object-store bucket holding protocolo photos.
const FotosBucket = "fotos-protocolos"
