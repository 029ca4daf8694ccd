package storage

import (
	"sync"

	"gopkg.in/yaml.v3"

	"tomatick/internal/core/model"
)

const historyKey = "history"

// HistoryStore keeps the ordered session log, newest first, and
// mirrors it into the key-value store. Storage failures stay inside
// this package: a failed load yields an empty history and a failed
// save is dropped.
type HistoryStore struct {
	mu      sync.Mutex
	kv      KeyValue
	entries []model.HistoryEntry
}

// NewHistoryStore loads the persisted session log once.
func NewHistoryStore(kv KeyValue) *HistoryStore {
	store := &HistoryStore{kv: kv}
	if rawData, ok := kv.Get(historyKey); ok {
		var entries []model.HistoryEntry
		if err := yaml.Unmarshal(rawData, &entries); err == nil {
			store.entries = entries
		}
	}
	return store
}

// Append prepends the entry and persists the full list.
func (store *HistoryStore) Append(entry model.HistoryEntry) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.entries = append([]model.HistoryEntry{entry}, store.entries...)
	store.persistLocked()
}

// All returns a copy of the session log, newest first.
func (store *HistoryStore) All() []model.HistoryEntry {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]model.HistoryEntry(nil), store.entries...)
}

// Clear empties the session log and persists the empty list.
func (store *HistoryStore) Clear() {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.entries = nil
	store.persistLocked()
}

func (store *HistoryStore) persistLocked() {
	serialized, err := yaml.Marshal(store.entries)
	if err != nil {
		return
	}
	_ = store.kv.Set(historyKey, serialized)
}
