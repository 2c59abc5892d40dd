package moderation

import (
	"github.com/stretchr/testify/mock"

	"github.com/toshiba/sw360/pkg/model"
)

// MockCollection implements store.Collection for testing using testify/mock
type MockCollection[T any] struct {
	mock.Mock
}

func (m *MockCollection[T]) Get(id string) (*T, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCollection[T]) GetMany(ids []string) ([]T, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCollection[T]) GetAll() ([]T, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCollection[T]) Add(doc *T) error {
	args := m.Called(doc)
	return args.Error(0)
}

func (m *MockCollection[T]) Update(doc *T) error {
	args := m.Called(doc)
	return args.Error(0)
}

func (m *MockCollection[T]) Remove(doc *T) error {
	args := m.Called(doc)
	return args.Error(0)
}

func (m *MockCollection[T]) QueryByIndex(index, key string) ([]T, error) {
	args := m.Called(index, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

// MockRequestsStore implements RequestsStore for testing using testify/mock
type MockRequestsStore struct {
	mock.Mock
}

func (m *MockRequestsStore) CreateRequest(req *model.ModerationRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockRequestsStore) RequestsForDocument(documentID string) ([]model.ModerationRequest, error) {
	args := m.Called(documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ModerationRequest), args.Error(1)
}

func (m *MockRequestsStore) UpdateRequest(req *model.ModerationRequest) error {
	args := m.Called(req)
	return args.Error(0)
}
