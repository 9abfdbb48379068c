package dto

import "github.com/moneybridge/backend/internal/models"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ProfileResponse struct {
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Balance      float64              `json:"balance"`
	Transactions []models.Transaction `json:"transactions"`
}

type DepositSubmission struct {
	Bank      string   `json:"bank"`
	Amount    *float64 `json:"amount"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Message   string   `json:"message"`
}

type DepositResponse struct {
	Message string                `json:"message"`
	Deposit models.DepositRequest `json:"deposit"`
}

// TransferSubmission intentionally carries no sender field; any sender value
// in the request body is discarded and the authenticated caller is stamped
// on the stored record instead.
type TransferSubmission struct {
	RecipientName string   `json:"recipient_name"`
	AccountNumber string   `json:"account_number"`
	Amount        *float64 `json:"amount"`
	Message       string   `json:"message"`
}

type TransferResponse struct {
	Message  string                 `json:"message"`
	Transfer models.TransferRequest `json:"transfer"`
}

type ContactInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

type ContactSubmission struct {
	ContactInfo     ContactInfo    `json:"contactInfo"`
	TransferDetails map[string]any `json:"transferDetails"`
}

type ContactResponse struct {
	Message string               `json:"message"`
	Contact models.ContactRecord `json:"contact"`
}

type ContactListResponse struct {
	Requests []models.ContactRecord `json:"requests"`
}
