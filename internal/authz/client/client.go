// Package client is the HTTP client other services use to ask for admin
// decisions and read the audit trail.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"adminguard/internal/authz/model"
)

// APIError is returned for non-2xx responses that carry an error body.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("request failed with status: %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// ActionRequest is the body for AuthorizeAction.
type ActionRequest = model.GuardActionReq

// LogRequest is the body for LogAdminAction.
type LogRequest = model.LogAdminActionReq

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL. A nil httpClient
// uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ValidateAdminAccess asks whether callerID may use admin functionality.
func (c *Client) ValidateAdminAccess(ctx context.Context, callerID string) (*model.AccessDecision, error) {
	var out model.AccessDecision
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/access", callerID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateAdminEdit asks whether callerID may modify targetID holding targetRole.
func (c *Client) ValidateAdminEdit(ctx context.Context, callerID, targetID string, targetRole model.Role) (*model.AccessDecision, error) {
	body := model.ValidateEditReq{TargetID: targetID, TargetRole: targetRole.String()}
	var out model.AccessDecision
	if err := c.do(ctx, http.MethodPost, "/api/v1/admin/edits/validate", callerID, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AuthorizeAction evaluates and records an admin action in one call.
func (c *Client) AuthorizeAction(ctx context.Context, callerID string, req ActionRequest) (*model.AccessDecision, error) {
	var out model.AccessDecision
	if err := c.do(ctx, http.MethodPost, "/api/v1/admin/actions", callerID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LogAdminAction records an action decided elsewhere.
func (c *Client) LogAdminAction(ctx context.Context, callerID string, req LogRequest) (*model.LogResult, error) {
	var out model.LogResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/audit/logs", callerID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRecentActions reads the newest audit records. limit <= 0 uses the
// server default.
func (c *Client) GetRecentActions(ctx context.Context, callerID string, limit int) (*model.GetRecentActionsResp, error) {
	path := "/api/v1/audit/logs"
	if limit > 0 {
		path += "?" + url.Values{"limit": []string{strconv.Itoa(limit)}}.Encode()
	}
	var out model.GetRecentActionsResp
	if err := c.do(ctx, http.MethodGet, path, callerID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path, callerID string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("x-user-id", callerID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var envelope model.ErrorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Code != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.RequestID = envelope.Error.RequestID
		return apiErr
	}

	// audit write failures answer with a LogResult body
	var result model.LogResult
	if err := json.Unmarshal(raw, &result); err == nil && result.Error != "" {
		apiErr.Code = "audit_error"
		apiErr.Message = result.Error
	}
	return apiErr
}
