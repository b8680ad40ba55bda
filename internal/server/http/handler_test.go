package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/users"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type stubUserService struct {
	registerOut *users.User
	registerErr error

	loginOut string
	loginErr error

	registerCalls int
	loginCalls    int
}

func (s *stubUserService) Register(ctx context.Context, userName, password, email string) (*users.User, error) {
	s.registerCalls++
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.registerOut, nil
}

func (s *stubUserService) Login(ctx context.Context, userName, password string) (string, error) {
	s.loginCalls++
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return s.loginOut, nil
}

// --- helpers ---

func testConfig() *config.Config {
	return &config.Config{
		RunAddress:                  "127.0.0.1:0",
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
		CORSAllowedOrigins:          []string{"http://localhost:5173"},
		GinMode:                     gin.TestMode,
	}
}

func newTestServer(t *testing.T, us UserService) *HTTPServer {
	t.Helper()
	srv, err := NewHTTPServer(testConfig(), nopLogger{}, us)
	if err != nil {
		t.Fatalf("NewHTTPServer error: %v", err)
	}
	return srv
}

func doRequest(t *testing.T, srv *HTTPServer, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v (%q)", err, w.Body.String())
	}
	return out
}

func TestRegister_Created(t *testing.T) {
	stub := &stubUserService{registerOut: &users.User{ID: "u1", UserName: "alice"}}
	srv := newTestServer(t, stub)

	w := doRequest(t, srv, http.MethodPost, "/register/",
		`{"username": "alice", "password": "secret123", "email": "alice@example.com"}`, nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["message"] != "User created successfully" {
		t.Fatalf("unexpected body: %v", body)
	}
	if stub.registerCalls != 1 {
		t.Fatalf("registerCalls = %d, want 1", stub.registerCalls)
	}
}

func TestRegister_MalformedJSON(t *testing.T) {
	stub := &stubUserService{}
	srv := newTestServer(t, stub)

	w := doRequest(t, srv, http.MethodPost, "/register/", `{"username": }`, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "All fields are required" {
		t.Fatalf("unexpected body: %v", body)
	}
	if stub.registerCalls != 0 {
		t.Fatalf("service must not be called on malformed input")
	}
}

func TestRegister_MissingField(t *testing.T) {
	stub := &stubUserService{registerErr: common.ErrorValidation}
	srv := newTestServer(t, stub)

	w := doRequest(t, srv, http.MethodPost, "/register/",
		`{"username": "alice", "password": "secret123"}`, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "All fields are required" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRegister_DuplicateUserName(t *testing.T) {
	stub := &stubUserService{registerErr: common.ErrorAlreadyExists}
	srv := newTestServer(t, stub)

	w := doRequest(t, srv, http.MethodPost, "/register/",
		`{"username": "alice", "password": "secret123", "email": "alice@example.com"}`, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Username already taken" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRegister_InternalError(t *testing.T) {
	stub := &stubUserService{registerErr: errBoom{}}
	srv := newTestServer(t, stub)

	w := doRequest(t, srv, http.MethodPost, "/register/",
		`{"username": "alice", "password": "secret123", "email": "alice@example.com"}`, nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Internal server error" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestLogin_Success(t *testing.T) {
	stub := &stubUserService{loginOut: "tok-123"}
	srv := newTestServer(t, stub)

	w := doRequest(t, srv, http.MethodPost, "/login/",
		`{"username": "alice", "password": "secret123"}`, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["access_token"] != "tok-123" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no username", body: `{"password": "secret123"}`},
		{name: "no password", body: `{"username": "alice"}`},
		{name: "malformed", body: `{"username": }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubUserService{}
			srv := newTestServer(t, stub)

			w := doRequest(t, srv, http.MethodPost, "/login/", tt.body, nil)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if body := decodeBody(t, w); body["error"] != "Both username and password are required" {
				t.Fatalf("unexpected body: %v", body)
			}
			if stub.loginCalls != 0 {
				t.Fatalf("service must not be called")
			}
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	stub := &stubUserService{loginErr: common.ErrorUnauthorized}
	srv := newTestServer(t, stub)

	w := doRequest(t, srv, http.MethodPost, "/login/",
		`{"username": "alice", "password": "wrong"}`, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Invalid credentials" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestLogin_InternalError(t *testing.T) {
	stub := &stubUserService{loginErr: common.ErrorInternal}
	srv := newTestServer(t, stub)

	w := doRequest(t, srv, http.MethodPost, "/login/",
		`{"username": "alice", "password": "secret123"}`, nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Internal server error" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubUserService{})

	w := doRequest(t, srv, http.MethodGet, "/health", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}
