package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactRequest is a single document in the contact_requests collection.
// It is written once at submission and never updated afterwards.
type ContactRequest struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	FirstName       string             `bson:"first_name"`
	LastName        string             `bson:"last_name"`
	Email           string             `bson:"email"`
	Phone           string             `bson:"phone"`
	Message         string             `bson:"message,omitempty"`
	TransferDetails map[string]any     `bson:"transfer_details,omitempty"`
	UserID          string             `bson:"user_id"`
	UserEmail       string             `bson:"user_email"`
	SubmittedAt     time.Time          `bson:"submitted_at"`
}

// ContactRecord is the boundary shape of a ContactRequest: the ObjectID is
// rendered as its hex string so no store-native type leaks into responses.
type ContactRecord struct {
	ID              string         `json:"id"`
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Message         string         `json:"message,omitempty"`
	TransferDetails map[string]any `json:"transferDetails,omitempty"`
	UserID          string         `json:"userId"`
	UserEmail       string         `json:"userEmail"`
	SubmittedAt     time.Time      `json:"submitted_at"`
}

// Record converts the stored document into its sanitized boundary form.
func (c ContactRequest) Record() ContactRecord {
	return ContactRecord{
		ID:              c.ID.Hex(),
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Email:           c.Email,
		Phone:           c.Phone,
		Message:         c.Message,
		TransferDetails: c.TransferDetails,
		UserID:          c.UserID,
		UserEmail:       c.UserEmail,
		SubmittedAt:     c.SubmittedAt,
	}
}
