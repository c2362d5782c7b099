package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"enlace/internal/auth"
	"enlace/internal/store"
	"enlace/internal/wedding"
)

// WeddingHandler exposes the aggregate snapshot and the parent-record
// mutations. All state lives in the session store; handlers are thin
// translation over it.
type WeddingHandler struct {
	Stores *store.Manager
}

func sessionStore(stores *store.Manager, r *http.Request) *store.Store {
	uid, _ := auth.UserIDFromContext(r.Context())
	return stores.ForUser(r.Context(), uid)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeStoreErr(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrPendingSync) {
		http.Error(w, "entity not yet synced", http.StatusConflict)
		return
	}
	http.Error(w, "server error", http.StatusInternalServerError)
}

// Get returns the full aggregate plus the loading flag.
func (h *WeddingHandler) Get(w http.ResponseWriter, r *http.Request) {
	st := sessionStore(h.Stores, r)
	writeJSON(w, http.StatusOK, map[string]any{
		"wedding": st.Snapshot(),
		"loading": st.Loading(),
	})
}

// Refresh forces a full reload from the remote store.
func (h *WeddingHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	st := sessionStore(h.Stores, r)
	st.Refresh(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"wedding": st.Snapshot(),
		"loading": st.Loading(),
	})
}

type createWeddingReq struct {
	CoupleName  string  `json:"coupleName"`
	WeddingDate string  `json:"weddingDate"`
	Budget      float64 `json:"budget"`
	GuestCount  int     `json:"guestCount"`
}

func (h *WeddingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWeddingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.CoupleName == "" {
		http.Error(w, "coupleName required", http.StatusBadRequest)
		return
	}

	st := sessionStore(h.Stores, r)
	if err := st.CreateWedding(r.Context(), store.CreateWeddingInput{
		CoupleName:  req.CoupleName,
		WeddingDate: req.WeddingDate,
		Budget:      req.Budget,
		GuestCount:  req.GuestCount,
	}); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st.Snapshot())
}

type updateWeddingReq struct {
	CoupleName  *string  `json:"coupleName"`
	WeddingDate *string  `json:"weddingDate"`
	Budget      *float64 `json:"budget"`
	GuestCount  *int     `json:"guestCount"`
	GiftPhone   *string  `json:"giftPhone"`
}

func (h *WeddingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateWeddingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	st := sessionStore(h.Stores, r)
	if err := st.UpdateWedding(r.Context(), store.WeddingPatch{
		CoupleName:  req.CoupleName,
		WeddingDate: req.WeddingDate,
		Budget:      req.Budget,
		GuestCount:  req.GuestCount,
		GiftPhone:   req.GiftPhone,
	}); err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WeddingHandler) UpdateCoupleItems(w http.ResponseWriter, r *http.Request) {
	var items wedding.CoupleItems
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	if err := st.UpdateCoupleItems(r.Context(), items); err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WeddingHandler) ReplaceSeatingTables(w http.ResponseWriter, r *http.Request) {
	var tables []wedding.SeatingTable
	if err := json.NewDecoder(r.Body).Decode(&tables); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	if err := st.ReplaceSeatingTables(r.Context(), tables); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st.Snapshot().SeatingTables)
}

// SetVendors replaces the client-only vendor list.
func (h *WeddingHandler) SetVendors(w http.ResponseWriter, r *http.Request) {
	var vendors []wedding.Vendor
	if err := json.NewDecoder(r.Body).Decode(&vendors); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	st.SetVendors(vendors)
	writeJSON(w, http.StatusOK, st.Snapshot().Vendors)
}

type categoryReq struct {
	Name string `json:"name"`
}

func (h *WeddingHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}
	sessionStore(h.Stores, r).AddCategory(req.Name)
	w.WriteHeader(http.StatusNoContent)
}

func (h *WeddingHandler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}
	sessionStore(h.Stores, r).RemoveCategory(req.Name)
	w.WriteHeader(http.StatusNoContent)
}
