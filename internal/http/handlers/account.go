package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/moneybridge/backend/internal/http/respond"
	"github.com/moneybridge/backend/internal/middleware"
	"github.com/moneybridge/backend/internal/models"
	"github.com/moneybridge/backend/internal/models/dto"
)

// AccountHandler serves the authenticated user's profile.
type AccountHandler struct{}

// NewAccountHandler constructs the handler.
func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// Register attaches the profile route behind the auth gate.
func (h *AccountHandler) Register(r *mux.Router, gate *middleware.Auth) {
	r.HandleFunc("/api/me", gate.Require(h.handleProfile)).Methods(http.MethodGet)
}

func (h *AccountHandler) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	transactions := user.Transactions
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	respond.JSON(w, http.StatusOK, dto.ProfileResponse{
		Name:         user.Name,
		Email:        user.Email,
		Balance:      user.Balance,
		Transactions: transactions,
	})
}
