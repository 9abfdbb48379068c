package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moneybridge/backend/internal/models"
	"github.com/moneybridge/backend/internal/storage"
)

var (
	_ storage.UserStore    = (*Store)(nil)
	_ storage.ContactStore = (*Store)(nil)
)

// Store keeps users and contact requests in memory behind a mutex. It
// mirrors the per-document atomicity of the real store and backs the
// handler tests.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*models.User
	contacts []models.ContactRequest
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{users: make(map[string]*models.User)}
}

// AddUser inserts or replaces a user keyed by email.
func (s *Store) AddUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.Email] = &user
}

// FindByEmail returns a copy of the stored user.
func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return *user, nil
}

// AppendDepositRequest appends under the lock, so concurrent appends for
// the same user both survive.
func (s *Store) AppendDepositRequest(_ context.Context, email string, req models.DepositRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return storage.ErrNotFound
	}
	user.DepositRequests = append(user.DepositRequests, req)
	return nil
}

// AppendTransferRequest appends under the lock.
func (s *Store) AppendTransferRequest(_ context.Context, email string, req models.TransferRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return storage.ErrNotFound
	}
	user.TransferRequests = append(user.TransferRequests, req)
	return nil
}

// InsertContactRequest assigns an ObjectID and appends the document in
// insertion order.
func (s *Store) InsertContactRequest(_ context.Context, req models.ContactRequest) (models.ContactRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	s.contacts = append(s.contacts, req)
	return req, nil
}

// ListContactRequests pages through contacts in insertion order.
func (s *Store) ListContactRequests(_ context.Context, skip, limit int64) ([]models.ContactRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if skip >= int64(len(s.contacts)) {
		return []models.ContactRequest{}, nil
	}
	end := skip + limit
	if limit <= 0 || end > int64(len(s.contacts)) {
		end = int64(len(s.contacts))
	}
	out := make([]models.ContactRequest, end-skip)
	copy(out, s.contacts[skip:end])
	return out, nil
}
