// Package client is a typed client for the patrol-reports HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zombor/patrol-reports/internal/auth"
	"github.com/zombor/patrol-reports/internal/report"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
	// Fields lists rejected fields on a 400.
	Fields []report.FieldError
	// Roles are the caller's roles on a 403.
	Roles []string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "server returned %d: %s", e.Status, e.Message)
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "\n  %s: %s", f.Field, f.Message)
	}
	if e.Status == http.StatusForbidden {
		fmt.Fprintf(&b, " (your roles: %s)", strings.Join(e.Roles, ", "))
	}
	return b.String()
}

// Unauthorized reports whether the server did not recognize the caller.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// Forbidden reports whether the caller lacks a permitted role.
func (e *APIError) Forbidden() bool {
	return e.Status == http.StatusForbidden
}

// Client calls the server on behalf of one officer.
type Client struct {
	baseURL  string
	identity auth.Identity
	token    string
	client   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithIdentity sends the caller's identity in the proxy headers.
func WithIdentity(id auth.Identity) Option {
	return func(c *Client) {
		c.identity = id
	}
}

// WithToken sends a bearer token instead of identity headers.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type citationResponse struct {
	Citation *report.Citation `json:"citation"`
}

// SubmitCitation validates req locally and files it. Local validation failures
// are returned as *report.ValidationError without contacting the server.
func (c *Client) SubmitCitation(ctx context.Context, req report.CitationRequest) (*report.Citation, error) {
	if _, err := report.AssembleCitation(req); err != nil {
		return nil, err
	}

	var resp citationResponse
	if err := c.do(ctx, http.MethodPost, "/api/citations", req, &resp); err != nil {
		return nil, err
	}
	return resp.Citation, nil
}

type arrestResponse struct {
	Arrest *report.Arrest `json:"arrest"`
	ID     string         `json:"id"`
}

// SubmitArrest validates req locally and files it.
func (c *Client) SubmitArrest(ctx context.Context, req report.ArrestRequest) (*report.Arrest, error) {
	if _, err := report.AssembleArrest(req); err != nil {
		return nil, err
	}

	var resp arrestResponse
	if err := c.do(ctx, http.MethodPost, "/api/arrests", req, &resp); err != nil {
		return nil, err
	}
	if resp.Arrest != nil && resp.Arrest.ID == "" {
		resp.Arrest.ID = resp.ID
	}
	return resp.Arrest, nil
}

// ListCitations returns every stored citation.
func (c *Client) ListCitations(ctx context.Context) ([]*report.Citation, error) {
	var citations []*report.Citation
	if err := c.do(ctx, http.MethodGet, "/api/citations", nil, &citations); err != nil {
		return nil, err
	}
	return citations, nil
}

// GetCitation returns one citation.
func (c *Client) GetCitation(ctx context.Context, id int64) (*report.Citation, error) {
	var citation report.Citation
	if err := c.do(ctx, http.MethodGet, "/api/citations/"+strconv.FormatInt(id, 10), nil, &citation); err != nil {
		return nil, err
	}
	return &citation, nil
}

// errorBody covers both the submission and the gate error shapes.
type errorBody struct {
	Message   string              `json:"message"`
	Error     string              `json:"error"`
	Errors    []report.FieldError `json:"errors"`
	UserRoles []string            `json:"userRoles"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authenticate(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) authenticate(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
		return
	}
	if c.identity.UserID == "" {
		return
	}
	req.Header.Set(auth.HeaderUserID, c.identity.UserID)
	if c.identity.Username != "" {
		req.Header.Set(auth.HeaderUserName, c.identity.Username)
	}
	if len(c.identity.Roles) > 0 {
		req.Header.Set(auth.HeaderUserRoles, strings.Join(c.identity.Roles, ","))
	}
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		if s := strings.TrimSpace(string(data)); s != "" {
			apiErr.Message = s
		}
		return apiErr
	}

	switch {
	case body.Error != "" && body.Message != "":
		apiErr.Message = body.Error + ": " + body.Message
	case body.Error != "":
		apiErr.Message = body.Error
	case body.Message != "":
		apiErr.Message = body.Message
	}
	apiErr.Fields = body.Errors
	apiErr.Roles = body.UserRoles
	return apiErr
}

// IsAPIError unwraps err into an *APIError.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
