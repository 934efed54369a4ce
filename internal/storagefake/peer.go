package storagefake

import (
	"context"
	"sync"

	"kvmesh/internal/manager"
)

// pendingOp is a prepared-but-not-yet-finished mutation, keyed by the
// key it targets.
type pendingOp struct {
	value    string
	isDelete bool
}

// Storage is an in-memory stand-in for a Storage Node's on-disk KV
// engine, implementing manager.StoragePeer. It records every call via
// the embedded CallRecorder so tests can assert exactly which peers
// received commit vs. abort (scenarios S6/S7).
type Storage struct {
	CallRecorder

	mu      sync.Mutex
	data    map[string]string
	pending map[string]pendingOp

	refusePrepare bool
}

// NewStorage returns an empty Storage fake.
func NewStorage() *Storage {
	return &Storage{
		data:    make(map[string]string),
		pending: make(map[string]pendingOp),
	}
}

// Seed pre-populates a key, simulating a value a real node already
// holds locally.
func (s *Storage) Seed(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// SetRefusePrepare makes every subsequent PrepareAPut/PrepareADel
// return ok=false, simulating a peer that refuses a mutation.
func (s *Storage) SetRefusePrepare(refuse bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refusePrepare = refuse
}

// Value returns the current value for key and whether it is present.
func (s *Storage) Value(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *Storage) GetData(_ context.Context, key string) (string, bool, error) {
	s.record("GetData", key)
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Storage) PrepareAPut(_ context.Context, key, value string) (bool, error) {
	s.record("PrepareAPut", key, value)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refusePrepare {
		return false, nil
	}
	s.pending[key] = pendingOp{value: value}
	return true, nil
}

func (s *Storage) PrepareADel(_ context.Context, key string) (bool, error) {
	s.record("PrepareADel", key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refusePrepare {
		return false, nil
	}
	s.pending[key] = pendingOp{isDelete: true}
	return true, nil
}

func (s *Storage) Commit(_ context.Context, key string, del bool) error {
	s.record("Commit", key, del)
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ok := s.pending[key]
	if !ok {
		return nil
	}
	delete(s.pending, key)
	if op.isDelete {
		delete(s.data, key)
	} else {
		s.data[key] = op.value
	}
	return nil
}

func (s *Storage) Abort(_ context.Context, key string, del bool) error {
	s.record("Abort", key, del)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, key)
	return nil
}

var _ manager.StoragePeer = (*Storage)(nil)
