package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moneybridge/backend/internal/models/dto"
)

func newContactEnv(t *testing.T) *testEnv {
	env := newTestEnv(t)
	env.addUser(t, "John Doe", "john@example.com", "password123", false)
	env.addUser(t, "Support Admin", "admin@example.com", "adminpass", true)
	NewContactHandler(env.store, env.log).Register(env.router, env.gate)
	return env
}

func submitContact(t *testing.T, env *testEnv, token, firstName string) dto.ContactResponse {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/api/contact", token, dto.ContactSubmission{
		ContactInfo: dto.ContactInfo{
			FirstName: firstName,
			LastName:  "Doe",
			Email:     "john@example.com",
			Phone:     "555-0101",
			Message:   "please call me",
		},
		TransferDetails: map[string]any{
			"recipient": map[string]any{"name": "Sarah", "country": "Germany"},
			"amount":    2500,
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.ContactResponse
	decodeBody(t, rec, &resp)
	return resp
}

func TestSubmitContactSanitizesIdentifiers(t *testing.T) {
	env := newContactEnv(t)
	token := env.tokenFor(t, "john@example.com")

	resp := submitContact(t, env, token, "John")

	// both ids must cross the boundary as plain hex strings
	id, err := primitive.ObjectIDFromHex(resp.Contact.ID)
	require.NoError(t, err)
	assert.False(t, id.IsZero())

	userID, err := primitive.ObjectIDFromHex(resp.Contact.UserID)
	require.NoError(t, err)
	assert.False(t, userID.IsZero())

	assert.Equal(t, "john@example.com", resp.Contact.UserEmail)
	assert.Equal(t, "please call me", resp.Contact.Message)
	assert.NotNil(t, resp.Contact.TransferDetails)
}

func TestListContactsForbiddenForNonAdmin(t *testing.T) {
	env := newContactEnv(t)
	token := env.tokenFor(t, "john@example.com")

	rec := env.do(t, http.MethodGet, "/api/contact", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListContactsPagination(t *testing.T) {
	env := newContactEnv(t)
	userToken := env.tokenFor(t, "john@example.com")
	adminToken := env.tokenFor(t, "admin@example.com")

	names := []string{"First", "Second", "Third", "Fourth"}
	for _, name := range names {
		submitContact(t, env, userToken, name)
	}

	rec := env.do(t, http.MethodGet, "/api/contact?skip=1&limit=2", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ContactListResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Requests, 2)
	assert.Equal(t, "Second", resp.Requests[0].FirstName)
	assert.Equal(t, "Third", resp.Requests[1].FirstName)
}

func TestListContactsDefaults(t *testing.T) {
	env := newContactEnv(t)
	userToken := env.tokenFor(t, "john@example.com")
	adminToken := env.tokenFor(t, "admin@example.com")

	submitContact(t, env, userToken, "Only")

	rec := env.do(t, http.MethodGet, "/api/contact", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ContactListResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Requests, 1)
	assert.Equal(t, "Only", resp.Requests[0].FirstName)
}
