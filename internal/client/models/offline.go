package models

import "time"

// OfflineProtocolo wraps a Protocolo with the bookkeeping the offline write
// buffer needs. The JSON tags are the persisted wire format; changing them
// invalidates data already sitting in local storage.
type OfflineProtocolo struct {
	Protocolo Protocolo `json:"protocolo"`
	CreatedAt time.Time `json:"createdAt"`
	Synced    bool      `json:"synced"`
}
