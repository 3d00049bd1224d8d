package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/reut-b/profile-site/internal/logger"
	"github.com/reut-b/profile-site/internal/service"
	"github.com/reut-b/profile-site/internal/session"
	"github.com/reut-b/profile-site/models"
)

const testCookieName = "session_id"

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService with per-test overrides.
type mockAuthService struct {
	signupFn       func(ctx context.Context, input service.SignupInput) (models.UserView, error)
	authenticateFn func(ctx context.Context, username, password string) (models.UserView, error)
	getUserByIDFn  func(ctx context.Context, id int64) (models.UserView, error)
}

func (m *mockAuthService) Signup(ctx context.Context, input service.SignupInput) (models.UserView, error) {
	return m.signupFn(ctx, input)
}

func (m *mockAuthService) Authenticate(ctx context.Context, username, password string) (models.UserView, error) {
	return m.authenticateFn(ctx, username, password)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, id int64) (models.UserView, error) {
	return m.getUserByIDFn(ctx, id)
}

// mockPicturesStorage resolves any stored name to a fixed path.
type mockPicturesStorage struct {
	saveFn func(ctx context.Context, fileName string, src io.Reader) error
	pathFn func(fileName string) (string, error)
}

func (m *mockPicturesStorage) Save(ctx context.Context, fileName string, src io.Reader) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, fileName, src)
	}
	return nil
}

func (m *mockPicturesStorage) Path(fileName string) (string, error) {
	if m.pathFn != nil {
		return m.pathFn(fileName)
	}
	return fileName, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testEnv struct {
	auth     *mockAuthService
	sessions *session.MemoryStore
	pictures *mockPicturesStorage
	router   *chi.Mux
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		auth:     &mockAuthService{},
		sessions: session.NewMemoryStore(time.Hour),
		pictures: &mockPicturesStorage{},
	}

	h := NewHandler(
		&service.Services{Auth: env.auth},
		env.sessions,
		env.pictures,
		testCookieName,
		logger.Nop(),
	)
	env.router = h.Init()

	return env
}

// loggedIn seeds a session for user and returns the matching cookie.
func (env *testEnv) loggedIn(user models.UserView) *http.Cookie {
	sessionID := session.NewSessionID()
	env.sessions.Set(sessionID, user)

	return &http.Cookie{Name: testCookieName, Value: sessionID}
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	return rec
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

// signupRequest builds the multipart POST the signup form submits. An empty
// pictureName leaves the file part out entirely.
func signupRequest(t *testing.T, fields map[string]string, pictureName string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}

	if pictureName != "" {
		part, err := mw.CreateFormFile("profilePicture", pictureName)
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/signup", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func validSignupFields() map[string]string {
	return map[string]string{
		"username":  "alice",
		"password":  "p1",
		"firstName": "Alice",
		"lastName":  "Liddell",
		"email":     "alice@example.com",
		"birthDate": "1990-01-01",
	}
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
