package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"solidguide/internal/guide"
	"solidguide/internal/model"
	"solidguide/internal/service"
)

type MockGuideService struct {
	mock.Mock
}

var _ service.GuideService = (*MockGuideService)(nil)

func (m *MockGuideService) Check(ctx context.Context, r io.Reader) (*guide.Report, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guide.Report), args.Error(1)
}

func (m *MockGuideService) Publish(ctx context.Context, r io.Reader, size int64) (*model.Revision, *guide.Report, error) {
	args := m.Called(ctx, r, size)
	var rev *model.Revision
	if v := args.Get(0); v != nil {
		rev = v.(*model.Revision)
	}
	var report *guide.Report
	if v := args.Get(1); v != nil {
		report = v.(*guide.Report)
	}
	return rev, report, args.Error(2)
}

func (m *MockGuideService) GuideHTML(ctx context.Context) ([]byte, *model.Revision, error) {
	args := m.Called(ctx)
	var html []byte
	if v := args.Get(0); v != nil {
		html = v.([]byte)
	}
	var rev *model.Revision
	if v := args.Get(1); v != nil {
		rev = v.(*model.Revision)
	}
	return html, rev, args.Error(2)
}

func (m *MockGuideService) List(ctx context.Context, limit, offset int) (*service.RevisionListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RevisionListResult), args.Error(1)
}

func (m *MockGuideService) Get(ctx context.Context, id string) (*model.Revision, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Revision), args.Error(1)
}

func (m *MockGuideService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGuideService) SourceURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
