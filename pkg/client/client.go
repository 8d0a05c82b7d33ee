// Package client is a typed HTTP client for the teacher dashboard API.
// Every method maps to one REST operation and classifies failures into the
// taxonomy callers act on: network, validation, auth, not-found. Server
// error messages are passed through verbatim.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strings"
)

// Client calls the dashboard REST API. It keeps session cookies in a jar,
// mirroring how the browser dashboard authenticates. Methods never retry;
// every failure is terminal for that call and reported once.
type Client struct {
	baseURL string
	hc      *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// New constructs a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{baseURL: strings.TrimRight(baseURL, "/")}
	for _, opt := range opts {
		opt(c)
	}
	if c.hc == nil {
		jar, _ := cookiejar.New(nil)
		c.hc = &http.Client{Jar: jar}
	}
	return c
}

// LoadDashboard fetches the composed dashboard payload.
func (c *Client) LoadDashboard(ctx context.Context) (*Dashboard, error) {
	var out Dashboard
	if err := c.do(ctx, http.MethodGet, "/teacher/dashboard", nil, &out); err != nil {
		return nil, err
	}
	if out.Classes == nil {
		out.Classes = []ClassItem{}
	}
	return &out, nil
}

// GetClass fetches a single class with its roster.
func (c *Client) GetClass(ctx context.Context, id int64) (*ClassItem, error) {
	var out ClassItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teacher/class/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClass creates a class and returns the canonical entity.
func (c *Client) CreateClass(ctx context.Context, input CreateClassInput) (*ClassItem, error) {
	var out ClassItem
	if err := c.do(ctx, http.MethodPost, "/teacher/class", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClass removes a class and returns the server's acknowledgement message.
func (c *Client) DeleteClass(ctx context.Context, id int64) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/teacher/class/%d", id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListStudents fetches every student across the teacher's classes.
func (c *Client) ListStudents(ctx context.Context) ([]StudentItem, error) {
	out := []StudentItem{}
	if err := c.do(ctx, http.MethodGet, "/teacher/students", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProfile fetches the teacher profile.
func (c *Client) GetProfile(ctx context.Context) (*TeacherProfile, error) {
	var out TeacherProfile
	if err := c.do(ctx, http.MethodGet, "/teacher/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile applies a partial update and returns the canonical profile.
func (c *Client) UpdateProfile(ctx context.Context, patch ProfilePatch) (*TeacherProfile, error) {
	var out TeacherProfile
	if err := c.do(ctx, http.MethodPut, "/teacher/profile", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadAvatar uploads a profile picture and returns the refreshed profile.
func (c *Client) UploadAvatar(ctx context.Context, filename string, file io.Reader) (*TeacherProfile, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, networkError(err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, networkError(err)
	}
	if err := writer.Close(); err != nil {
		return nil, networkError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/teacher/profile/upload", body)
	if err != nil {
		return nil, networkError(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out TeacherProfile
	if err := c.send(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitQuestionPaper submits a flattened question paper draft.
func (c *Client) SubmitQuestionPaper(ctx context.Context, submission QuestionPaperSubmission) error {
	return c.do(ctx, http.MethodPost, "/teacher/question-paper", submission, nil)
}

// Login authenticates; the session cookie lands in the client's jar.
func (c *Client) Login(ctx context.Context, creds Credentials) (*TeacherProfile, error) {
	var out struct {
		Teacher TeacherProfile `json:"teacher"`
	}
	if err := c.do(ctx, http.MethodPost, "/teacher/login", creds, &out); err != nil {
		return nil, err
	}
	return &out.Teacher, nil
}

// RestoreSession rebuilds a session from the remember cookie, if any.
func (c *Client) RestoreSession(ctx context.Context) (*TeacherProfile, error) {
	var out struct {
		Teacher TeacherProfile `json:"teacher"`
	}
	if err := c.do(ctx, http.MethodGet, "/teacher/session", nil, &out); err != nil {
		return nil, err
	}
	return &out.Teacher, nil
}

// Logout ends the current session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Register creates a teacher account.
func (c *Client) Register(ctx context.Context, reg Registration) (*TeacherProfile, error) {
	var out struct {
		Message string         `json:"message"`
		Teacher TeacherProfile `json:"teacher"`
	}
	if err := c.do(ctx, http.MethodPost, "/teacher/register", reg, &out); err != nil {
		return nil, err
	}
	return &out.Teacher, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return NewClientValidation("invalid request payload")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return networkError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	res, err := c.hc.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer res.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return networkError(err)
	}

	if res.StatusCode >= 400 {
		return statusError(res.StatusCode, errorMessage(raw))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return statusError(res.StatusCode, "malformed server response")
		}
	}
	return nil
}

// errorMessage extracts the user-facing message from an error body,
// falling back to empty when the field is absent.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}
