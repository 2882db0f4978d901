package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"solidguide/internal/model"
	"solidguide/internal/repository"
)

type MockRevisionRepository struct {
	mock.Mock
}

func (m *MockRevisionRepository) Create(ctx context.Context, rev *model.Revision) (*model.Revision, error) {
	args := m.Called(ctx, rev)
	if f, ok := args.Get(0).(func(context.Context, *model.Revision) *model.Revision); ok {
		return f(ctx, rev), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Revision), args.Error(1)
}

func (m *MockRevisionRepository) FindByID(ctx context.Context, id string) (*model.Revision, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Revision), args.Error(1)
}

func (m *MockRevisionRepository) FindLatest(ctx context.Context) (*model.Revision, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Revision), args.Error(1)
}

func (m *MockRevisionRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Revision], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Revision]), args.Error(1)
}

func (m *MockRevisionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
