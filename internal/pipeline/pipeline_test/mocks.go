package pipeline_test

import (
	"context"
	"sync"
)

// MockObjectStore implements storage.ObjectStore
type MockObjectStore struct {
	// Control fields to simulate different behaviors
	OnExists     func(ctx context.Context, bucket string, key string) (bool, error)
	OnUploadFile func(ctx context.Context, bucket string, key string, path string) error
	OnPutText    func(ctx context.Context, bucket string, key string, text string) error

	UploadCalls  []string
	PutTextCalls map[string]string
}

func (m *MockObjectStore) Exists(ctx context.Context, bucket string, key string) (bool, error) {
	if m.OnExists != nil {
		return m.OnExists(ctx, bucket, key)
	}
	return false, nil
}

func (m *MockObjectStore) UploadFile(ctx context.Context, bucket string, key string, path string) error {
	m.UploadCalls = append(m.UploadCalls, key)
	if m.OnUploadFile != nil {
		return m.OnUploadFile(ctx, bucket, key, path)
	}
	return nil
}

func (m *MockObjectStore) PutText(ctx context.Context, bucket string, key string, text string) error {
	if m.PutTextCalls == nil {
		m.PutTextCalls = make(map[string]string)
	}
	m.PutTextCalls[key] = text
	if m.OnPutText != nil {
		return m.OnPutText(ctx, bucket, key, text)
	}
	return nil
}

type MockExtractor struct {
	OnExtract func(path string) (string, error)
}

func (m *MockExtractor) Extract(path string) (string, error) {
	if m.OnExtract != nil {
		return m.OnExtract(path)
	}
	return "default extracted text", nil
}

// MockProgressStore records every progress message in order
type MockProgressStore struct {
	mu       sync.Mutex
	Messages []string
}

func (m *MockProgressStore) AppendProgress(ctx context.Context, jobId string, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, message)
	return nil
}

func (m *MockProgressStore) GetProgress(ctx context.Context, jobId string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.Messages...), nil
}
