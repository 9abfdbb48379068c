package storage

import (
	"context"
	"errors"

	"github.com/moneybridge/backend/internal/models"
)

// ErrNotFound indicates no document matched the query.
var ErrNotFound = errors.New("record not found")

// ErrNotModified indicates an update matched a document but the store
// reported no modification, so the append silently did not happen.
var ErrNotModified = errors.New("document matched but not modified")

// UserStore captures persistence operations against the users collection.
// Appends must be single-document atomic: a concurrent pair of appends to
// the same user may land in either order but both entries must survive.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	AppendDepositRequest(ctx context.Context, email string, req models.DepositRequest) error
	AppendTransferRequest(ctx context.Context, email string, req models.TransferRequest) error
}

// ContactStore captures persistence operations against the contact
// request collection.
type ContactStore interface {
	InsertContactRequest(ctx context.Context, req models.ContactRequest) (models.ContactRequest, error)
	ListContactRequests(ctx context.Context, skip, limit int64) ([]models.ContactRequest, error)
}
