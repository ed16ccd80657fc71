package testutil

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrInjected is the default error returned by FailingKV.
var ErrInjected = errors.New("injected failure")

// FailingKV is an in-memory key/value store that injects errors on demand.
// It satisfies repository.KVStore without importing it.
//
// FailSetOn makes the Nth Set call fail (counted from 1, 0 disables).
// FailAllSets and FailGets fail every call of that kind.
type FailingKV struct {
	FailSetOn   int32
	FailAllSets bool
	FailGets    bool
	Err         error

	mu       sync.Mutex
	data     map[string]string
	setCount atomic.Int32
}

// NewFailingKV returns a FailingKV seeded with the given entries.
func NewFailingKV(seed map[string]string) *FailingKV {
	data := make(map[string]string, len(seed))
	for k, v := range seed {
		data[k] = v
	}
	return &FailingKV{data: data}
}

func (f *FailingKV) err() error {
	if f.Err != nil {
		return f.Err
	}
	return ErrInjected
}

func (f *FailingKV) Get(_ context.Context, key string) (string, error) {
	if f.FailGets {
		return "", f.err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return "", errKeyMissing
	}
	return v, nil
}

func (f *FailingKV) Set(_ context.Context, key, value string) error {
	n := f.setCount.Add(1)
	if f.FailAllSets || n == f.FailSetOn {
		return f.err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.data == nil {
		f.data = map[string]string{}
	}
	f.data[key] = value
	return nil
}

func (f *FailingKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

// Value returns the stored value for key, for assertions.
func (f *FailingKV) Value(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

// SetCalls reports how many Set calls have been made.
func (f *FailingKV) SetCalls() int {
	return int(f.setCount.Load())
}

var errKeyMissing = errors.New("key missing")
