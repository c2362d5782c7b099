package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"enlace/internal/store"
	"enlace/internal/wedding"
)

// PlanningHandler covers the remaining child collections: tasks, budget
// items, songs and gifts.
type PlanningHandler struct {
	Stores *store.Manager
}

// --- Tasks ---

func (h *PlanningHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var t wedding.Task
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if t.Title == "" {
		http.Error(w, "title required", http.StatusBadRequest)
		return
	}
	if t.Status == "" {
		t.Status = wedding.TaskPending
	}
	st := sessionStore(h.Stores, r)
	if err := st.AddTask(r.Context(), t); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st.Snapshot().Tasks)
}

type taskPatchReq struct {
	Title    *string             `json:"title"`
	Category *string             `json:"category"`
	Status   *wedding.TaskStatus `json:"status"`
	Subtasks *[]wedding.SubTask  `json:"subtasks"`
}

func (h *PlanningHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req taskPatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	err := st.UpdateTask(r.Context(), chi.URLParam(r, "id"), store.TaskPatch{
		Title:    req.Title,
		Category: req.Category,
		Status:   req.Status,
		Subtasks: req.Subtasks,
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlanningHandler) RemoveTask(w http.ResponseWriter, r *http.Request) {
	st := sessionStore(h.Stores, r)
	if err := st.RemoveTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Budget items ---

func (h *PlanningHandler) AddBudgetItem(w http.ResponseWriter, r *http.Request) {
	var b wedding.BudgetItem
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if b.Category == "" {
		http.Error(w, "category required", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	if err := st.AddBudgetItem(r.Context(), b); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st.Snapshot().BudgetItems)
}

type budgetPatchReq struct {
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Planned     *float64 `json:"planned"`
	Spent       *float64 `json:"spent"`
}

func (h *PlanningHandler) UpdateBudgetItem(w http.ResponseWriter, r *http.Request) {
	var req budgetPatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	err := st.UpdateBudgetItem(r.Context(), chi.URLParam(r, "id"), store.BudgetItemPatch{
		Category:    req.Category,
		Description: req.Description,
		Planned:     req.Planned,
		Spent:       req.Spent,
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlanningHandler) RemoveBudgetItem(w http.ResponseWriter, r *http.Request) {
	st := sessionStore(h.Stores, r)
	if err := st.RemoveBudgetItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Songs ---

func (h *PlanningHandler) AddSong(w http.ResponseWriter, r *http.Request) {
	var s wedding.Song
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if s.Title == "" {
		http.Error(w, "title required", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	if err := st.AddSong(r.Context(), s); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st.Snapshot().Songs)
}

type songPatchReq struct {
	Title  *string `json:"title"`
	URL    *string `json:"url"`
	Moment *string `json:"moment"`
}

func (h *PlanningHandler) UpdateSong(w http.ResponseWriter, r *http.Request) {
	var req songPatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	err := st.UpdateSong(r.Context(), chi.URLParam(r, "id"), store.SongPatch{
		Title:  req.Title,
		URL:    req.URL,
		Moment: req.Moment,
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlanningHandler) RemoveSong(w http.ResponseWriter, r *http.Request) {
	st := sessionStore(h.Stores, r)
	if err := st.RemoveSong(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Gifts ---

func (h *PlanningHandler) AddGift(w http.ResponseWriter, r *http.Request) {
	var g wedding.Gift
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if g.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	if err := st.AddGift(r.Context(), g); err != nil {
		writeStoreErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st.Snapshot().Gifts)
}

type giftPatchReq struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Price       *float64            `json:"price"`
	ImageURL    *string             `json:"imageUrl"`
	Status      *wedding.GiftStatus `json:"status"`
}

func (h *PlanningHandler) UpdateGift(w http.ResponseWriter, r *http.Request) {
	var req giftPatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	st := sessionStore(h.Stores, r)
	err := st.UpdateGift(r.Context(), chi.URLParam(r, "id"), store.GiftPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlanningHandler) RemoveGift(w http.ResponseWriter, r *http.Request) {
	st := sessionStore(h.Stores, r)
	if err := st.RemoveGift(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GiftLink builds the wa.me link used to offer a gift to the couple.
func (h *PlanningHandler) GiftLink(w http.ResponseWriter, r *http.Request) {
	snap := sessionStore(h.Stores, r).Snapshot()
	if snap.GiftPhone == "" {
		http.Error(w, "gift phone not configured", http.StatusNotFound)
		return
	}
	id := chi.URLParam(r, "id")
	for _, g := range snap.Gifts {
		if g.ID == id {
			writeJSON(w, http.StatusOK, map[string]any{
				"url": wedding.GiftWhatsAppLink(snap.GiftPhone, g.Name, g.Price),
			})
			return
		}
	}
	http.Error(w, "gift not found", http.StatusNotFound)
}
