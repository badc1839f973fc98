package concurrency

import (
	"strconv"
	"sync"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockRoulette acquires the lock serializing counter updates on one roulette.
// The returned func releases it.
func (lm *LockManager) LockRoulette(rouletteID int64) func() {
	mu := lm.GetLock(RouletteKey(rouletteID))
	mu.Lock()
	return mu.Unlock
}

// RouletteKey is the lock key for a roulette
func RouletteKey(rouletteID int64) string {
	return "roulette:" + strconv.FormatInt(rouletteID, 10)
}
