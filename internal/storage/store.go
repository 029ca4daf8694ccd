package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const stateFileName = "state.yaml"

// KeyValue is the flat storage surface shared by settings and history.
type KeyValue interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// FileStore is a KeyValue backed by a single YAML file in the user
// config directory. The file is read once at open time; every Set
// rewrites it in full.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// OpenFileStore opens the state file for the given application name.
// A missing or unparsable file yields an empty store.
func OpenFileStore(appName string) (*FileStore, error) {
	path, err := resolveStatePath(appName)
	if err != nil {
		return nil, err
	}
	return openFileStoreAt(path), nil
}

func openFileStoreAt(path string) *FileStore {
	store := &FileStore{
		path:   path,
		values: map[string]string{},
	}
	if rawData, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(rawData, &store.values)
		if store.values == nil {
			store.values = map[string]string{}
		}
	}
	return store
}

// Get returns the stored value for key.
func (store *FileStore) Get(key string) ([]byte, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	value, ok := store.values[key]
	if !ok {
		return nil, false
	}
	return []byte(value), true
}

// Set stores the value and rewrites the state file.
func (store *FileStore) Set(key string, value []byte) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values[key] = string(value)

	serialized, err := yaml.Marshal(store.values)
	if err != nil {
		return fmt.Errorf("marshal state yaml: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

func resolveStatePath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, stateFileName), nil
}

// MemoryStore is an in-memory KeyValue for tests.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

// Get returns the stored value for key.
func (store *MemoryStore) Get(key string) ([]byte, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	value, ok := store.values[key]
	if !ok {
		return nil, false
	}
	return []byte(value), true
}

// Set stores the value.
func (store *MemoryStore) Set(key string, value []byte) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values[key] = string(value)
	return nil
}
