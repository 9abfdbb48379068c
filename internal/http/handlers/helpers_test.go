package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/moneybridge/backend/internal/auth"
	"github.com/moneybridge/backend/internal/middleware"
	"github.com/moneybridge/backend/internal/models"
	"github.com/moneybridge/backend/internal/storage/memory"
)

const testSecret = "handler-test-secret"

type testEnv struct {
	router *mux.Router
	tokens *auth.TokenManager
	store  *memory.Store
	gate   *middleware.Auth
	log    *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.New()
	tokens := auth.NewTokenManager(testSecret)
	return &testEnv{
		router: mux.NewRouter(),
		tokens: tokens,
		store:  store,
		gate:   middleware.NewAuth(tokens, store),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (e *testEnv) addUser(t *testing.T, name, email, password string, admin bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	e.store.AddUser(models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		IsAdmin:  admin,
	})
}

func (e *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := e.tokens.Issue(email, auth.LoginTTL)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}
