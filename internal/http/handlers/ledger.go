package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/moneybridge/backend/internal/http/respond"
	"github.com/moneybridge/backend/internal/middleware"
	"github.com/moneybridge/backend/internal/models"
	"github.com/moneybridge/backend/internal/models/dto"
	"github.com/moneybridge/backend/internal/storage"
)

// LedgerHandler appends deposit and transfer requests to the caller's own
// document and reads them back.
type LedgerHandler struct {
	users storage.UserStore
	log   *slog.Logger
}

// NewLedgerHandler constructs the handler.
func NewLedgerHandler(users storage.UserStore, log *slog.Logger) *LedgerHandler {
	return &LedgerHandler{users: users, log: log}
}

// Register attaches ledger routes behind the auth gate.
func (h *LedgerHandler) Register(r *mux.Router, gate *middleware.Auth) {
	r.HandleFunc("/api/deposits", gate.Require(h.handleSubmitDeposit)).Methods(http.MethodPost)
	r.HandleFunc("/api/deposits/{id}", gate.Require(h.handleGetDeposit)).Methods(http.MethodGet)
	r.HandleFunc("/api/transfers", gate.Require(h.handleSubmitTransfer)).Methods(http.MethodPost)
}

func (h *LedgerHandler) handleSubmitDeposit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	var req dto.DepositSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Amount == nil || !isFinite(*req.Amount) {
		respond.Error(w, http.StatusBadRequest, "amount must be a finite number")
		return
	}

	record := models.DepositRequest{
		ID:          uuid.NewString(),
		Bank:        req.Bank,
		Amount:      *req.Amount,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		SubmittedAt: time.Now().UTC(),
	}

	if err := h.users.AppendDepositRequest(r.Context(), user.Email, record); err != nil {
		h.appendError(w, "deposit", err)
		return
	}

	respond.JSON(w, http.StatusCreated, dto.DepositResponse{
		Message: "Deposit request submitted",
		Deposit: record,
	})
}

// handleGetDeposit scans only the caller's own sequence, so a guessed id
// belonging to another account still reads as absent.
func (h *LedgerHandler) handleGetDeposit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	id := mux.Vars(r)["id"]
	for _, deposit := range user.DepositRequests {
		if deposit.ID == id {
			respond.JSON(w, http.StatusOK, map[string]models.DepositRequest{"deposit": deposit})
			return
		}
	}
	respond.Error(w, http.StatusNotFound, "deposit request not found")
}

func (h *LedgerHandler) handleSubmitTransfer(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	var req dto.TransferSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Amount == nil || !isFinite(*req.Amount) {
		respond.Error(w, http.StatusBadRequest, "amount must be a finite number")
		return
	}

	record := models.TransferRequest{
		ID:            uuid.NewString(),
		RecipientName: req.RecipientName,
		AccountNumber: req.AccountNumber,
		Amount:        *req.Amount,
		Message:       req.Message,
		SenderEmail:   user.Email,
		SubmittedAt:   time.Now().UTC(),
	}

	if err := h.users.AppendTransferRequest(r.Context(), user.Email, record); err != nil {
		h.appendError(w, "transfer", err)
		return
	}

	respond.JSON(w, http.StatusCreated, dto.TransferResponse{
		Message:  "Transfer request submitted",
		Transfer: record,
	})
}

// appendError maps the three push outcomes: the user document vanished
// after auth, the store matched without appending, or the call itself
// failed.
func (h *LedgerHandler) appendError(w http.ResponseWriter, kind string, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "user not found")
	case errors.Is(err, storage.ErrNotModified):
		h.log.Error("append acknowledged but not applied", "kind", kind, "error", err)
		respond.Error(w, http.StatusInternalServerError, kind+" request was not recorded")
	default:
		h.log.Error("append failed", "kind", kind, "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to submit "+kind+" request")
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
