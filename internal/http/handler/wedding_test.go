package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enlace/internal/auth"
	"enlace/internal/remote"
	"enlace/internal/store"
	"enlace/internal/wedding"
)

// testRouter wires the wedding routes behind a fixed authenticated user,
// backed by the in-memory remote.
func testRouter(t *testing.T) (http.Handler, *store.Manager) {
	t.Helper()
	stores := store.NewManager(remote.NewMemory(), zerolog.Nop())

	asUser := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), 1)))
		})
	}

	wh := &WeddingHandler{Stores: stores}
	gh := &GuestHandler{Stores: stores}
	ph := &PlanningHandler{Stores: stores}

	r := chi.NewRouter()
	r.Use(asUser)
	r.Get("/wedding", wh.Get)
	r.Post("/wedding", wh.Create)
	r.Patch("/wedding", wh.Update)
	r.Put("/wedding/vendors", wh.SetVendors)
	r.Post("/guests", gh.Add)
	r.Get("/guests/stats", gh.Stats)
	r.Patch("/guests/{id}", gh.Update)
	r.Get("/gifts/{id}/link", ph.GiftLink)
	return r, stores
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestWeddingLifecycle(t *testing.T) {
	h, _ := testRouter(t)

	rec := do(t, h, http.MethodGet, "/wedding", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Wedding wedding.Data `json:"wedding"`
		Loading bool         `json:"loading"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Wedding.Onboarded)

	rec = do(t, h, http.MethodPost, "/wedding",
		`{"coupleName":"Ana & Bruno","weddingDate":"2027-05-15","budget":50000,"guestCount":120}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, "/wedding", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Wedding.Onboarded)
	assert.Equal(t, "Ana & Bruno", got.Wedding.CoupleName)
	assert.Len(t, got.Wedding.Tasks, 5)
}

func TestCreateWeddingRequiresName(t *testing.T) {
	h, _ := testRouter(t)
	rec := do(t, h, http.MethodPost, "/wedding", `{"coupleName":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGuestEndpoints(t *testing.T) {
	h, _ := testRouter(t)
	do(t, h, http.MethodPost, "/wedding", `{"coupleName":"Ana & Bruno"}`)

	rec := do(t, h, http.MethodPost, "/guests", `{"name":"Clara","rsvpStatus":"confirmed","plusOnes":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var guests []wedding.Guest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guests))
	require.Len(t, guests, 1)
	assert.False(t, wedding.IsTempID(guests[0].ID))

	rec = do(t, h, http.MethodGet, "/guests/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats["invited"])
	assert.Equal(t, 3, stats["total"])
	assert.Equal(t, 3, stats["confirmed"])
}

func TestSetVendors(t *testing.T) {
	h, _ := testRouter(t)
	do(t, h, http.MethodPost, "/wedding", `{"coupleName":"Ana & Bruno"}`)

	rec := do(t, h, http.MethodPut, "/wedding/vendors",
		`[{"name":"Buffet da Praça","service":"Buffet","cost":15000,"status":"booked"}]`)
	require.Equal(t, http.StatusOK, rec.Code)
	var vendors []wedding.Vendor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vendors))
	require.Len(t, vendors, 1)
	assert.NotEmpty(t, vendors[0].ID)
	assert.Equal(t, wedding.VendorBooked, vendors[0].Status)
}

func TestUpdateGuestPendingSyncConflict(t *testing.T) {
	h, _ := testRouter(t)
	do(t, h, http.MethodPost, "/wedding", `{"coupleName":"Ana & Bruno"}`)

	rec := do(t, h, http.MethodPatch, "/guests/"+wedding.NewTempID(), `{"name":"Nova"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGiftLink(t *testing.T) {
	h, _ := testRouter(t)
	do(t, h, http.MethodPost, "/wedding", `{"coupleName":"Ana & Bruno"}`)

	// seeded gifts exist, but no phone is configured yet
	rec := do(t, h, http.MethodGet, "/wedding", "")
	var got struct {
		Wedding wedding.Data `json:"wedding"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotEmpty(t, got.Wedding.Gifts)
	giftID := got.Wedding.Gifts[0].ID

	rec = do(t, h, http.MethodGet, "/gifts/"+giftID+"/link", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPatch, "/wedding", `{"giftPhone":"(11) 98888-7777"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/gifts/"+giftID+"/link", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var link map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &link))
	assert.Contains(t, link["url"], "https://wa.me/5511988887777")
}
