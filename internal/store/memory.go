package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryCollections is an in-memory Collections implementation with
// the same whole-snapshot semantics as the SQLite-backed one. Used by
// package tests across the engine.
type MemoryCollections struct {
	mu   sync.Mutex
	data map[Key]json.RawMessage
}

// NewMemoryCollections creates an empty in-memory store.
func NewMemoryCollections() *MemoryCollections {
	return &MemoryCollections{data: make(map[Key]json.RawMessage)}
}

func (m *MemoryCollections) Save(_ context.Context, key Key, data json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make(json.RawMessage, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}

func (m *MemoryCollections) Load(_ context.Context, key Key) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return data, nil
}

// NopEvents is an EventRepo that discards appends and returns no
// records. Test stand-in where the audit trail is irrelevant.
type NopEvents struct{}

func (NopEvents) AppendLLMRequest(context.Context, LLMRequestEventData) error { return nil }
func (NopEvents) QueryLLMEvents(context.Context, QueryOpts) ([]LLMRequestEventRecord, error) {
	return nil, nil
}
func (NopEvents) GetLLMEvent(context.Context, int) (*LLMRequestEventRecord, error) {
	return nil, nil
}
func (NopEvents) AppendPointAward(context.Context, PointEventData) error { return nil }
func (NopEvents) QueryPointAwards(context.Context, QueryOpts) ([]PointEventRecord, error) {
	return nil, nil
}
