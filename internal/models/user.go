package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the per-customer document in the users collection. Email is the
// lookup key; the request sequences are append-only and grow via atomic
// array pushes, never via whole-document rewrites.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"password" json:"-"`
	Balance          float64            `bson:"balance" json:"balance"`
	Transactions     []Transaction      `bson:"transactions" json:"transactions"`
	DepositRequests  []DepositRequest   `bson:"deposit_requests,omitempty" json:"-"`
	TransferRequests []TransferRequest  `bson:"transfer_requests,omitempty" json:"-"`
	IsAdmin          bool               `bson:"is_admin,omitempty" json:"-"`
}

// Transaction is historical ledger data shown on the dashboard. Nothing in
// this service creates or mutates these entries.
type Transaction struct {
	ID          int64   `bson:"id" json:"id"`
	Type        string  `bson:"type" json:"type"`
	Amount      float64 `bson:"amount" json:"amount"`
	Date        string  `bson:"date" json:"date"`
	Description string  `bson:"description" json:"description"`
	Status      string  `bson:"status" json:"status"`
}

// DepositRequest is a customer-submitted funding request appended to the
// owning user's document. ID and SubmittedAt are server-assigned.
type DepositRequest struct {
	ID          string    `bson:"id" json:"id"`
	Bank        string    `bson:"bank" json:"bank"`
	Amount      float64   `bson:"amount" json:"amount"`
	FirstName   string    `bson:"first_name" json:"firstName"`
	LastName    string    `bson:"last_name" json:"lastName"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	Message     string    `bson:"message,omitempty" json:"message,omitempty"`
	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
}

// TransferRequest is an outbound-transfer request appended to the owning
// user's document. SenderEmail always comes from the authenticated caller.
type TransferRequest struct {
	ID            string    `bson:"id" json:"id"`
	RecipientName string    `bson:"recipient_name" json:"recipient_name"`
	AccountNumber string    `bson:"account_number" json:"account_number"`
	Amount        float64   `bson:"amount" json:"amount"`
	Message       string    `bson:"message,omitempty" json:"message,omitempty"`
	SenderEmail   string    `bson:"sender_email" json:"sender_email"`
	SubmittedAt   time.Time `bson:"submitted_at" json:"submitted_at"`
}
