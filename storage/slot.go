// Package storage provides the persistent key-value slots the site content
// lives in, and the generic load/save layer that serializes whole collections
// into them.
package storage

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/dsartorelli/book-site-backend/errs"
)

// Slot is a single named persistent key-value entry. Get returns
// errs.ErrSlotEmpty when nothing is stored under the key; any other error
// means the backing store itself failed.
type Slot interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// MemorySlot is a process-local Slot. It backs tests and acts as the fallback
// tier behind FallbackSlot.
type MemorySlot struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string]string)}
}

func (s *MemorySlot) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", errs.ErrSlotEmpty
	}
	return value, nil
}

func (s *MemorySlot) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemorySlot) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// FallbackSlot wraps a primary Slot and absorbs its failures into an
// in-memory map, so callers always get an answer. Durability is traded for
// availability: the site keeps working when the backing store is down, at the
// cost of losing fallback-held writes on restart.
type FallbackSlot struct {
	primary  Slot
	fallback *MemorySlot
	logger   zerolog.Logger

	// Keys removed while the primary was down. The removal is retried on the
	// next read so a recovered primary cannot resurrect the old value.
	mu      sync.Mutex
	pending map[string]bool
}

func NewFallbackSlot(primary Slot, logger zerolog.Logger) *FallbackSlot {
	return &FallbackSlot{
		primary:  primary,
		fallback: NewMemorySlot(),
		logger:   logger.With().Str("component", "fallbackSlot").Logger(),
		pending:  make(map[string]bool),
	}
}

func (s *FallbackSlot) Get(key string) (string, error) {
	if s.retryRemoval(key) {
		return "", errs.ErrSlotEmpty
	}

	value, err := s.primary.Get(key)
	if err == nil {
		return value, nil
	}
	if errs.IsSlotEmpty(err) {
		// An absent key is an answer, not a failure. The fallback may still
		// hold a value written while the primary was down.
		if v, ferr := s.fallback.Get(key); ferr == nil {
			return v, nil
		}
		return "", errs.ErrSlotEmpty
	}
	s.logger.Warn().Err(err).Str("key", key).Msg("primary storage read failed, using memory fallback")
	return s.fallback.Get(key)
}

func (s *FallbackSlot) Set(key, value string) error {
	// A fresh write supersedes any removal still waiting on the primary
	s.mu.Lock()
	delete(s.pending, key)
	s.mu.Unlock()

	if err := s.primary.Set(key, value); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("primary storage write failed, using memory fallback")
		return s.fallback.Set(key, value)
	}
	// Keep the fallback coherent so a later primary outage serves fresh data.
	_ = s.fallback.Set(key, value)
	return nil
}

func (s *FallbackSlot) Remove(key string) error {
	if err := s.primary.Remove(key); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("primary storage remove failed, removal queued for retry")
		s.mu.Lock()
		s.pending[key] = true
		s.mu.Unlock()
	} else {
		s.mu.Lock()
		delete(s.pending, key)
		s.mu.Unlock()
	}
	_ = s.fallback.Remove(key)
	return nil
}

// retryRemoval reports whether key holds a removal the primary has not yet
// accepted, re-attempting it so the primary converges once it recovers.
func (s *FallbackSlot) retryRemoval(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pending[key] {
		return false
	}
	if err := s.primary.Remove(key); err == nil {
		delete(s.pending, key)
	}
	return true
}

// Available probes the primary store with a throwaway write and delete. It is
// diagnostic only; no call path gates on it.
func (s *FallbackSlot) Available() bool {
	const probeKey = "__storage_probe__"
	if err := s.primary.Set(probeKey, "ok"); err != nil {
		return false
	}
	return s.primary.Remove(probeKey) == nil
}
