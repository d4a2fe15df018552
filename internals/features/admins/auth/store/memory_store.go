package store

import (
	"context"
	"sync"
	"time"

	"schoolsite_backend/internals/features/admins/auth/model"
	"schoolsite_backend/internals/features/admins/auth/service"
)

// MemoryStore untuk dev dan test. Hilang saat proses restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]model.AdminSessionModel
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]model.AdminSessionModel)}
}

func (s *MemoryStore) Get(_ context.Context, tokenHash string) (*model.AdminSessionModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[tokenHash]
	if !ok {
		return nil, service.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *MemoryStore) Set(_ context.Context, sess *model.AdminSessionModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.AdminSessionTokenHash] = *sess
	return nil
}

func (s *MemoryStore) Touch(_ context.Context, sess *model.AdminSessionModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.sessions[sess.AdminSessionTokenHash]
	if !ok {
		return service.ErrSessionNotFound
	}
	cur.AdminSessionLastActivityAt = sess.AdminSessionLastActivityAt
	s.sessions[sess.AdminSessionTokenHash] = cur
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenHash)
	return nil
}

func (s *MemoryStore) DeleteIdleBefore(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for k, sess := range s.sessions {
		if sess.AdminSessionLastActivityAt.Before(before) {
			delete(s.sessions, k)
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
