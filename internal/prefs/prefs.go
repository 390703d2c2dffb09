// Package prefs is the persistence adapter behind appearance state: a small
// key/value store that survives restarts.
package prefs

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned by Get when a key has never been written or was deleted.
var ErrNotFound = errors.New("preference not found")

// Setting is a stored key/value pair.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists opaque string values under stable keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context, prefix string) ([]Setting, error)
}

// Compile-time interface guards.
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*namespaced)(nil)
)

// MemoryStore keeps preferences in process memory. Used by the CLI and in
// tests, and as the "memory" backend for ephemeral deployments.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Setting
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]Setting)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return s.Value, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.data[key] = Setting{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.data, k)
	}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) List(_ context.Context, prefix string) ([]Setting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Setting, 0)
	for k, s := range m.data {
		if strings.HasPrefix(k, prefix) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Namespace returns a view of s where every key is prefixed. List results
// have the prefix stripped.
func Namespace(s Store, prefix string) Store {
	return &namespaced{inner: s, prefix: prefix}
}

type namespaced struct {
	inner  Store
	prefix string
}

func (n *namespaced) Get(ctx context.Context, key string) (string, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, keys ...string) error {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = n.prefix + k
	}
	return n.inner.Delete(ctx, full...)
}

func (n *namespaced) List(ctx context.Context, prefix string) ([]Setting, error) {
	all, err := n.inner.List(ctx, n.prefix+prefix)
	if err != nil {
		return nil, err
	}
	for i := range all {
		all[i].Key = strings.TrimPrefix(all[i].Key, n.prefix)
	}
	return all, nil
}
