package usecase

import "sync"

// keyedLocks serializes work per string key. Resolution must not race for
// the same (app, visitor), and crash/goal find-or-create must not race for
// the same (app, signature); a plain lock registry restores the
// at-most-one-per-key invariant inside this process, while the storage
// layer's unique constraints cover other processes.
type keyedLocks struct {
	locks sync.Map // key -> *sync.Mutex
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *keyedLocks) Lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
