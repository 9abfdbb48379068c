package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneybridge/backend/internal/models"
	"github.com/moneybridge/backend/internal/models/dto"
	"github.com/moneybridge/backend/internal/storage"
)

func newLedgerEnv(t *testing.T) *testEnv {
	env := newTestEnv(t)
	env.addUser(t, "John Doe", "john@example.com", "password123", false)
	env.addUser(t, "Alice Smith", "alice@example.com", "alicepass", false)
	NewLedgerHandler(env.store, env.log).Register(env.router, env.gate)
	return env
}

func amount(f float64) *float64 { return &f }

func TestSubmitDepositRoundTrip(t *testing.T) {
	env := newLedgerEnv(t)
	token := env.tokenFor(t, "john@example.com")
	start := time.Now().UTC()

	rec := env.do(t, http.MethodPost, "/api/deposits", token, dto.DepositSubmission{
		Bank:      "Chase",
		Amount:    amount(500.0),
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Phone:     "123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var submitted dto.DepositResponse
	decodeBody(t, rec, &submitted)
	require.NotEmpty(t, submitted.Deposit.ID)
	assert.False(t, submitted.Deposit.SubmittedAt.Before(start))

	rec = env.do(t, http.MethodGet, "/api/deposits/"+submitted.Deposit.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched struct {
		Deposit models.DepositRequest `json:"deposit"`
	}
	decodeBody(t, rec, &fetched)
	assert.Equal(t, submitted.Deposit.ID, fetched.Deposit.ID)
	assert.Equal(t, "Chase", fetched.Deposit.Bank)
	assert.Equal(t, 500.0, fetched.Deposit.Amount)
	assert.Equal(t, "A", fetched.Deposit.FirstName)
	assert.Equal(t, "B", fetched.Deposit.LastName)
	assert.Equal(t, "a@b.com", fetched.Deposit.Email)
	assert.Equal(t, "123", fetched.Deposit.Phone)
}

func TestGetDepositNeverCrossesUsers(t *testing.T) {
	env := newLedgerEnv(t)
	johnToken := env.tokenFor(t, "john@example.com")
	aliceToken := env.tokenFor(t, "alice@example.com")

	rec := env.do(t, http.MethodPost, "/api/deposits", johnToken, dto.DepositSubmission{
		Bank: "Chase", Amount: amount(100),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var submitted dto.DepositResponse
	decodeBody(t, rec, &submitted)

	// Alice guessing John's id must read as absent, not forbidden.
	rec = env.do(t, http.MethodGet, "/api/deposits/"+submitted.Deposit.ID, aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitDepositAmountValidation(t *testing.T) {
	env := newLedgerEnv(t)
	token := env.tokenFor(t, "john@example.com")

	rec := env.do(t, http.MethodPost, "/api/deposits", token, dto.DepositSubmission{Bank: "Chase"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// sign and zero are accepted as given
	for _, a := range []float64{-25, 0} {
		rec = env.do(t, http.MethodPost, "/api/deposits", token, dto.DepositSubmission{
			Bank: "Chase", Amount: amount(a),
		})
		assert.Equal(t, http.StatusCreated, rec.Code, "amount %v", a)
	}
}

func TestSubmitTransferStampsSender(t *testing.T) {
	env := newLedgerEnv(t)
	token := env.tokenFor(t, "john@example.com")

	// a client-supplied sender field must be ignored outright
	rec := env.do(t, http.MethodPost, "/api/transfers", token, map[string]any{
		"recipient_name": "Sarah Johnson",
		"account_number": "DE8937040044",
		"amount":         725.50,
		"sender_email":   "attacker@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.TransferResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "john@example.com", resp.Transfer.SenderEmail)
	assert.Equal(t, "Sarah Johnson", resp.Transfer.RecipientName)
	assert.Equal(t, "DE8937040044", resp.Transfer.AccountNumber)
	assert.NotEmpty(t, resp.Transfer.ID)
}

func TestConcurrentDepositsBothSurvive(t *testing.T) {
	env := newLedgerEnv(t)
	token := env.tokenFor(t, "john@example.com")

	const workers = 8
	ids := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := env.do(t, http.MethodPost, "/api/deposits", token, dto.DepositSubmission{
				Bank: "HSBC", Amount: amount(float64(i + 1)),
			})
			if rec.Code == http.StatusCreated {
				var resp dto.DepositResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err == nil {
					ids[i] = resp.Deposit.ID
				}
			}
		}()
	}
	wg.Wait()

	user, err := env.store.FindByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	require.Len(t, user.DepositRequests, workers)

	seen := make(map[string]bool)
	for _, id := range ids {
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

// flakyStore reports matched-but-unmodified pushes to exercise the
// defensive check against silent no-op appends.
type flakyStore struct {
	storage.UserStore
}

func (f *flakyStore) AppendDepositRequest(context.Context, string, models.DepositRequest) error {
	return storage.ErrNotModified
}

func TestSubmitDepositAppendFailed(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "John Doe", "john@example.com", "password123", false)
	NewLedgerHandler(&flakyStore{UserStore: env.store}, env.log).Register(env.router, env.gate)

	token := env.tokenFor(t, "john@example.com")
	rec := env.do(t, http.MethodPost, "/api/deposits", token, dto.DepositSubmission{
		Bank: "Chase", Amount: amount(10),
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
