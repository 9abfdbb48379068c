package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moneybridge/backend/internal/models"
	"github.com/moneybridge/backend/internal/storage"
)

const (
	usersCollection    = "mbusers"
	contactsCollection = "contact_requests"
)

// Compile-time interface checks.
var (
	_ storage.UserStore    = (*Store)(nil)
	_ storage.ContactStore = (*Store)(nil)
)

// Store provides MongoDB-backed persistence for users and contact requests.
type Store struct {
	client   *mongo.Client
	users    *mongo.Collection
	contacts *mongo.Collection
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(database)
	return &Store{
		client:   client,
		users:    db.Collection(usersCollection),
		contacts: db.Collection(contactsCollection),
	}, nil
}

// Close releases the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// FindByEmail fetches the full user document for an email, including its
// transaction and request sequences.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// AppendDepositRequest pushes a deposit request onto the user's sequence.
func (s *Store) AppendDepositRequest(ctx context.Context, email string, req models.DepositRequest) error {
	return s.push(ctx, email, "deposit_requests", req)
}

// AppendTransferRequest pushes a transfer request onto the user's sequence.
func (s *Store) AppendTransferRequest(ctx context.Context, email string, req models.TransferRequest) error {
	return s.push(ctx, email, "transfer_requests", req)
}

// push performs the match-and-append as one update so no read-modify-write
// window exists. The matched/modified counts are inspected separately:
// no match means the user document is gone, matched-but-unmodified means
// the store acknowledged the update without appending.
func (s *Store) push(ctx context.Context, email, field string, record any) error {
	res, err := s.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$push": bson.M{field: record}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return storage.ErrNotModified
	}
	return nil
}

// InsertContactRequest stores a contact request as its own document and
// returns it with the generated ObjectID filled in.
func (s *Store) InsertContactRequest(ctx context.Context, req models.ContactRequest) (models.ContactRequest, error) {
	res, err := s.contacts.InsertOne(ctx, req)
	if err != nil {
		return models.ContactRequest{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		req.ID = id
	}
	return req, nil
}

// ListContactRequests returns a page of contact requests ordered by _id
// ascending. ObjectIDs embed their creation instant, so this is insertion
// time ascending.
func (s *Store) ListContactRequests(ctx context.Context, skip, limit int64) ([]models.ContactRequest, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := s.contacts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.ContactRequest
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertUser replaces the document matching the user's email, inserting it
// if absent. Used by the seeding tool; the API itself never writes whole
// user documents.
func (s *Store) UpsertUser(ctx context.Context, user models.User) error {
	_, err := s.users.ReplaceOne(ctx,
		bson.M{"email": user.Email},
		user,
		options.Replace().SetUpsert(true),
	)
	return err
}
