package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"enlace/internal/auth"
	"enlace/internal/feedback"
)

// FeedbackHandler takes product feedback. Submission works with or without
// a session; listing and deletion require one.
type FeedbackHandler struct {
	DB       *gorm.DB
	Feedback *feedback.Service
}

type feedbackReq struct {
	Content string `json:"content"`
}

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var userID uint64
	var email string
	if uid, ok := auth.UserIDFromContext(r.Context()); ok {
		userID = uid
		var u auth.User
		if err := h.DB.First(&u, uid).Error; err == nil {
			email = u.Email
		}
	}

	if err := h.Feedback.Submit(r.Context(), userID, email, req.Content); err != nil {
		if errors.Is(err, feedback.ErrEmptyContent) {
			http.Error(w, "content required", http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Feedback.List(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *FeedbackHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.Feedback.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
