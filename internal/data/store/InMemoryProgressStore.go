package store

import (
	"context"
	"sync"
)

type InMemoryProgressStore struct {
	mu       sync.RWMutex
	progress map[string][]string
}

func InitInMemoryProgressStore() *InMemoryProgressStore {
	return &InMemoryProgressStore{
		progress: make(map[string][]string),
	}
}

func (s *InMemoryProgressStore) AppendProgress(ctx context.Context, jobId string, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[jobId] = append(s.progress[jobId], message)
	return nil
}

func (s *InMemoryProgressStore) GetProgress(ctx context.Context, jobId string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := s.progress[jobId]
	out := make([]string, len(messages))
	copy(out, messages)
	return out, nil
}
