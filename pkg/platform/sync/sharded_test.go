package sync

import (
	stdsync "sync"
	"testing"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	m := NewKeyedMutex()
	counter := 0

	var wg stdsync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Lock("vault-a")
			counter++
			m.Unlock("vault-a")
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Fatalf("expected 100 serialized increments, got %d", counter)
	}
}

func TestKeyedMutexShardIsStable(t *testing.T) {
	m := NewKeyedMutex()
	if m.shardFor("vault-a") != m.shardFor("vault-a") {
		t.Fatalf("shard assignment must be deterministic")
	}
}
