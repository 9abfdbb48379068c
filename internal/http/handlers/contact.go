package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/moneybridge/backend/internal/http/respond"
	"github.com/moneybridge/backend/internal/middleware"
	"github.com/moneybridge/backend/internal/models"
	"github.com/moneybridge/backend/internal/models/dto"
	"github.com/moneybridge/backend/internal/storage"
)

const (
	defaultContactLimit = 50
	maxContactLimit     = 200
)

// ContactHandler stores contact submissions and serves the admin listing.
type ContactHandler struct {
	contacts storage.ContactStore
	log      *slog.Logger
}

// NewContactHandler constructs the handler.
func NewContactHandler(contacts storage.ContactStore, log *slog.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, log: log}
}

// Register attaches contact routes. Submission needs any authenticated
// user; listing needs the admin flag.
func (h *ContactHandler) Register(r *mux.Router, gate *middleware.Auth) {
	r.HandleFunc("/api/contact", gate.Require(h.handleSubmit)).Methods(http.MethodPost)
	r.HandleFunc("/api/contact", gate.RequireAdmin(h.handleList)).Methods(http.MethodGet)
}

func (h *ContactHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	var req dto.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	record := models.ContactRequest{
		FirstName:       req.ContactInfo.FirstName,
		LastName:        req.ContactInfo.LastName,
		Email:           req.ContactInfo.Email,
		Phone:           req.ContactInfo.Phone,
		Message:         req.ContactInfo.Message,
		TransferDetails: req.TransferDetails,
		UserID:          user.ID.Hex(),
		UserEmail:       user.Email,
		SubmittedAt:     time.Now().UTC(),
	}

	stored, err := h.contacts.InsertContactRequest(r.Context(), record)
	if err != nil {
		h.log.Error("insert contact request", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to submit contact request")
		return
	}

	respond.JSON(w, http.StatusCreated, dto.ContactResponse{
		Message: "Contact request submitted",
		Contact: stored.Record(),
	})
}

func (h *ContactHandler) handleList(w http.ResponseWriter, r *http.Request) {
	skip := parseQueryInt(r, "skip", 0)
	limit := parseQueryInt(r, "limit", defaultContactLimit)
	if limit <= 0 {
		limit = defaultContactLimit
	}
	if limit > maxContactLimit {
		limit = maxContactLimit
	}

	requests, err := h.contacts.ListContactRequests(r.Context(), skip, limit)
	if err != nil {
		h.log.Error("list contact requests", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list contact requests")
		return
	}

	records := make([]models.ContactRecord, 0, len(requests))
	for _, req := range requests {
		records = append(records, req.Record())
	}

	respond.JSON(w, http.StatusOK, dto.ContactListResponse{Requests: records})
}

func parseQueryInt(r *http.Request, key string, def int64) int64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return def
	}
	return value
}
