// Package sync provides sharded locking for per-resource serialization.
package sync

import (
	"hash/fnv"
	"sync"
)

const shardCount = 64

// KeyedMutex serializes operations on a resource identified by a string key.
// Locks are distributed across a fixed set of shards by key hash, so distinct
// vaults rarely contend while operations on the same vault always do. The
// vault service uses it as the mutating-operation guard: a caller that
// re-enters with the same key while an operation is in flight blocks until
// the first operation has committed or rolled back.
type KeyedMutex struct {
	shards [shardCount]sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock acquires the shard lock for key.
func (m *KeyedMutex) Lock(key string) {
	m.shards[m.shardFor(key)].Lock()
}

// Unlock releases the shard lock for key.
func (m *KeyedMutex) Unlock(key string) {
	m.shards[m.shardFor(key)].Unlock()
}

func (m *KeyedMutex) shardFor(key string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32() % shardCount
}
