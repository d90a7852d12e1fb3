package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// BlobRepository is a mock for repository.BlobRepository.
type BlobRepository struct {
	mock.Mock
}

func (m *BlobRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BlobRepository) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
