package service

import (
	"context"
	"io"
	"log/slog"

	"adminguard/internal/authz/model"

	"github.com/stretchr/testify/mock"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) InsertAuditRecord(ctx context.Context, record *model.AuditRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAuditRepository) FindRecentAuditRecords(ctx context.Context, limit int) ([]*model.AuditRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AuditRecord), args.Error(1)
}

func (m *MockAuditRepository) EnsureAuditIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestService(profiles *MockProfileRepository, audits *MockAuditRepository) *Service {
	svc, err := NewService(profiles, audits, Options{AuditDefaultLimit: 50, AuditMaxLimit: 500})
	if err != nil {
		panic(err)
	}
	svc.Audit.Logger = discardLogger
	svc.Guard.Logger = discardLogger
	return svc
}

func profile(id string, role model.Role, superAdmin bool) *model.Profile {
	return &model.Profile{ID: id, Role: string(role), IsSuperAdmin: superAdmin}
}
