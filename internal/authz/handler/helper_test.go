package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"

	"adminguard/internal/authz/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

type MockAuthzService struct {
	mock.Mock
}

func (m *MockAuthzService) ValidateAdminAccess(ctx context.Context, principalID string) model.AccessDecision {
	args := m.Called(ctx, principalID)
	return args.Get(0).(model.AccessDecision)
}

func (m *MockAuthzService) ValidateAdminEdit(ctx context.Context, actorID, targetID string, targetRole model.Role) model.AccessDecision {
	args := m.Called(ctx, actorID, targetID, targetRole)
	return args.Get(0).(model.AccessDecision)
}

func (m *MockAuthzService) AuthorizeAction(ctx context.Context, req model.AdminActionRequest, claimedTargetRole string) model.AccessDecision {
	args := m.Called(ctx, req, claimedTargetRole)
	return args.Get(0).(model.AccessDecision)
}

func (m *MockAuthzService) LogAdminAction(ctx context.Context, req model.AdminActionRequest, isAllowed bool, reason string) model.LogResult {
	args := m.Called(ctx, req, isAllowed, reason)
	return args.Get(0).(model.LogResult)
}

func (m *MockAuthzService) GetRecentActions(ctx context.Context, limit int) ([]*model.AuditRecord, int, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.AuditRecord), args.Int(1), args.Error(2)
}

func setupServer() *echo.Echo {
	return echo.New()
}

func performRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](rec *httptest.ResponseRecorder) T {
	var out T
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return out
}

func caller(id string) map[string]string {
	return map[string]string{HeaderCallerID: id}
}
