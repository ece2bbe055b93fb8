package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bandoggie/backend/internal/hash"
	authmw "github.com/bandoggie/backend/internal/middleware/auth"
	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/repo"
	"github.com/bandoggie/backend/internal/service"
	"github.com/bandoggie/backend/internal/transport"
)

func newHandlerRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return &repo.GormRepo{DB: db}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestAuthHTTP_Login(t *testing.T) {
	r := newHandlerRepo(t)
	pwHash, err := hash.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	client := &models.Client{Name: "Alex", Email: "alex@pets.com", PasswordHash: pwHash}
	require.NoError(t, r.DB.Create(client).Error)

	h := &AuthHTTP{Svc: &service.AuthService{Repo: r, SessionSecret: []byte("test-secret")}}
	e := echo.New()

	req := jsonRequest(t, http.MethodPost, "/login", transport.LoginRequest{
		Email: "alex@pets.com", Password: "hunter2hunter2",
	})
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.KindClient, resp.UserType)
	assert.Equal(t, client.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	cookie := findCookie(t, rec, authmw.SessionCookie)
	assert.Equal(t, resp.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHTTP_Login_BadCredentials(t *testing.T) {
	r := newHandlerRepo(t)
	pwHash, err := hash.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	require.NoError(t, r.DB.Create(&models.Client{Name: "Alex", Email: "alex@pets.com", PasswordHash: pwHash}).Error)

	h := &AuthHTTP{Svc: &service.AuthService{Repo: r, SessionSecret: []byte("test-secret")}}
	e := echo.New()

	req := jsonRequest(t, http.MethodPost, "/login", transport.LoginRequest{
		Email: "alex@pets.com", Password: "wrongpassword",
	})
	rec := httptest.NewRecorder()

	err = h.Login(e.NewContext(req, rec))
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAuthHTTP_Logout_ClearsCookie(t *testing.T) {
	h := &AuthHTTP{}
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Logout(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, authmw.SessionCookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}
