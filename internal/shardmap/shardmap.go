// Package shardmap provides a fixed-shard-count, hash-partitioned map
// guarded by one sync.RWMutex per shard, so readers never contend with
// writers working on a different shard. It backs the progress tree's
// task storage, where many producer goroutines each own exactly one key
// and mutate it independently.
package shardmap

import (
	"sync"

	"github.com/ShayCichocki/prodash/key"
)

const shardCount = 16

// Map is a concurrent map keyed by key.Key, partitioned into shardCount
// independently-locked buckets.
type Map[V any] struct {
	shards [shardCount]shard[V]
}

type shard[V any] struct {
	mu   sync.RWMutex
	data map[key.Key]V
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	m := &Map[V]{}
	for i := range m.shards {
		m.shards[i].data = make(map[key.Key]V)
	}
	return m
}

func (m *Map[V]) shardFor(k key.Key) *shard[V] {
	slot, _ := k.At(1)
	return &m.shards[uint32(slot)%shardCount]
}

// Store inserts or overwrites the value for k.
func (m *Map[V]) Store(k key.Key, v V) {
	s := m.shardFor(k)
	s.mu.Lock()
	s.data[k] = v
	s.mu.Unlock()
}

// Load returns the value for k and whether it was present.
func (m *Map[V]) Load(k key.Key) (V, bool) {
	s := m.shardFor(k)
	s.mu.RLock()
	v, ok := s.data[k]
	s.mu.RUnlock()
	return v, ok
}

// Delete removes k, if present.
func (m *Map[V]) Delete(k key.Key) {
	s := m.shardFor(k)
	s.mu.Lock()
	delete(s.data, k)
	s.mu.Unlock()
}

// Mutate applies f to the value stored for k while holding the shard's
// write lock, then stores the result. It is a no-op if k is absent.
func (m *Map[V]) Mutate(k key.Key, f func(v V) V) {
	s := m.shardFor(k)
	s.mu.Lock()
	if v, ok := s.data[k]; ok {
		s.data[k] = f(v)
	}
	s.mu.Unlock()
}

// Len returns the total number of entries across all shards. Like the
// teacher's DashMap-backed count, this is at best a guess under
// concurrent mutation.
func (m *Map[V]) Len() int {
	n := 0
	for i := range m.shards {
		m.shards[i].mu.RLock()
		n += len(m.shards[i].data)
		m.shards[i].mu.RUnlock()
	}
	return n
}

// Range calls f for every entry, shard by shard. f must not call back into
// the Map. Range does not provide a consistent snapshot across shards:
// entries may be added or removed in other shards while it runs.
func (m *Map[V]) Range(f func(k key.Key, v V)) {
	for i := range m.shards {
		m.shards[i].mu.RLock()
		for k, v := range m.shards[i].data {
			f(k, v)
		}
		m.shards[i].mu.RUnlock()
	}
}

// DeleteMatching removes every entry for which match returns true,
// evaluated under each shard's write lock.
func (m *Map[V]) DeleteMatching(match func(k key.Key, v V) bool) {
	for i := range m.shards {
		m.shards[i].mu.Lock()
		for k, v := range m.shards[i].data {
			if match(k, v) {
				delete(m.shards[i].data, k)
			}
		}
		m.shards[i].mu.Unlock()
	}
}
