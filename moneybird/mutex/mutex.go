package mutex

import "sync"

// KeyedMutex serializes work per key. An entry is created on first use of
// a key and retained for the lifetime of the mutex; the key space is one
// entry per scanned invoice path, so nothing bothers reclaiming them.
type KeyedMutex[K comparable] struct {
	table sync.Map // map[K]*sync.Mutex
}

func (m *KeyedMutex[K]) Lock(key K) {
	v, _ := m.table.LoadOrStore(key, &sync.Mutex{})
	v.(*sync.Mutex).Lock()
}

// Unlock releases the key's lock. Unlocking a key that was never locked
// panics, same as an unlocked sync.Mutex would.
func (m *KeyedMutex[K]) Unlock(key K) {
	v, ok := m.table.Load(key)
	if !ok {
		panic("mutex: unlock of unknown key")
	}
	v.(*sync.Mutex).Unlock()
}
