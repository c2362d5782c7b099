package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"enlace/internal/store"
	"enlace/internal/wedding"
)

type GuestHandler struct {
	Stores *store.Manager
}

func (h *GuestHandler) Add(w http.ResponseWriter, r *http.Request) {
	var g wedding.Guest
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if g.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	if err := st.AddGuest(r.Context(), g); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st.Snapshot().Guests)
}

func (h *GuestHandler) AddBulk(w http.ResponseWriter, r *http.Request) {
	var guests []wedding.Guest
	if err := json.NewDecoder(r.Body).Decode(&guests); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	if err := st.AddGuests(r.Context(), guests); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st.Snapshot().Guests)
}

type guestPatchReq struct {
	Name        *string             `json:"name"`
	RSVPStatus  *wedding.RSVPStatus `json:"rsvpStatus"`
	Side        *wedding.GuestSide  `json:"type"`
	IsGodparent *bool               `json:"isGodparent"`
	PlusOnes    *int                `json:"plusOnes"`
}

func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req guestPatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	err := st.UpdateGuest(r.Context(), chi.URLParam(r, "id"), store.GuestPatch{
		Name:        req.Name,
		RSVPStatus:  req.RSVPStatus,
		Side:        req.Side,
		IsGodparent: req.IsGodparent,
		PlusOnes:    req.PlusOnes,
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GuestHandler) Remove(w http.ResponseWriter, r *http.Request) {
	st := sessionStore(h.Stores, r)
	if err := st.RemoveGuest(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type removeGuestsReq struct {
	IDs []string `json:"ids"`
}

func (h *GuestHandler) RemoveBulk(w http.ResponseWriter, r *http.Request) {
	var req removeGuestsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	if err := st.RemoveGuests(r.Context(), req.IDs); err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats reports the attendance numbers the dashboard shows.
func (h *GuestHandler) Stats(w http.ResponseWriter, r *http.Request) {
	guests := sessionStore(h.Stores, r).Snapshot().Guests
	writeJSON(w, http.StatusOK, map[string]any{
		"invited":   len(guests),
		"total":     wedding.TotalAttendance(guests),
		"confirmed": wedding.ConfirmedAttendance(guests),
	})
}
