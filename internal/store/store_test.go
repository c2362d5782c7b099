package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enlace/internal/remote"
	"enlace/internal/wedding"
)

func newTestStore(t *testing.T) (*Store, *remote.Memory) {
	t.Helper()
	mem := remote.NewMemory()
	return New(mem, zerolog.Nop(), 1), mem
}

// onboarded creates the wedding and returns a store holding it.
func onboarded(t *testing.T) (*Store, *remote.Memory) {
	t.Helper()
	s, mem := newTestStore(t)
	require.NoError(t, s.CreateWedding(context.Background(), CreateWeddingInput{
		CoupleName:  "Ana & Bruno",
		WeddingDate: "2027-05-15",
		Budget:      50000,
		GuestCount:  120,
	}))
	return s, mem
}

func TestRefreshBeforeOnboarding(t *testing.T) {
	s, _ := newTestStore(t)
	s.Refresh(context.Background())

	d := s.Snapshot()
	assert.False(t, d.Onboarded)
	assert.Empty(t, d.ID)
	assert.Len(t, d.Tasks, 5)
	assert.Len(t, d.BudgetItems, 4)
	assert.Empty(t, d.Guests)
	assert.False(t, s.Loading())
}

func TestCreateWeddingSeedsAndReloads(t *testing.T) {
	s, mem := onboarded(t)

	d := s.Snapshot()
	assert.True(t, d.Onboarded)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "Ana & Bruno", d.CoupleName)
	assert.Equal(t, float64(50000), d.Budget)

	assert.Len(t, d.Tasks, 5)
	assert.Len(t, d.BudgetItems, 4)
	assert.Len(t, d.Songs, 3)
	assert.Len(t, d.Gifts, 4)
	assert.Len(t, d.CoupleItems.Bride, 8)
	assert.Len(t, d.CoupleItems.Groom, 6)

	// everything came back from the store with server identities
	for _, task := range d.Tasks {
		assert.False(t, wedding.IsTempID(task.ID))
		assert.NotEmpty(t, task.ID)
	}
	assert.Equal(t, 1, mem.Count("weddings"))
	assert.Equal(t, 5, mem.Count("tasks"))
	assert.Equal(t, 4, mem.Count("budget_items"))
}

func TestCreateWeddingFailureReturnsError(t *testing.T) {
	s, mem := newTestStore(t)
	boom := errors.New("boom")
	mem.Err = func(op, collection string) error {
		if op == "insert" && collection == "weddings" {
			return boom
		}
		return nil
	}

	err := s.CreateWedding(context.Background(), CreateWeddingInput{CoupleName: "x"})
	assert.ErrorIs(t, err, boom)
	assert.False(t, s.Snapshot().Onboarded)
}

func TestAddGuestReconcilesServerID(t *testing.T) {
	s, mem := onboarded(t)

	require.NoError(t, s.AddGuest(context.Background(), wedding.Guest{
		Name:       "Clara",
		RSVPStatus: wedding.RSVPPending,
		Side:       wedding.SideBride,
	}))

	d := s.Snapshot()
	require.Len(t, d.Guests, 1)
	assert.Equal(t, "Clara", d.Guests[0].Name)
	assert.False(t, wedding.IsTempID(d.Guests[0].ID), "temp id swapped for the server one")
	assert.NotEmpty(t, d.Guests[0].ID)
	assert.Equal(t, 1, mem.Count("guests"))
}

func TestAddGuestWithoutWeddingStaysLocal(t *testing.T) {
	s, mem := newTestStore(t)
	s.Refresh(context.Background())

	require.NoError(t, s.AddGuest(context.Background(), wedding.Guest{Name: "Clara"}))

	d := s.Snapshot()
	require.Len(t, d.Guests, 1)
	assert.True(t, wedding.IsTempID(d.Guests[0].ID))
	assert.Equal(t, 0, mem.Count("guests"))
}

func TestAddGuestInsertFailureKeepsOptimisticRow(t *testing.T) {
	s, mem := onboarded(t)
	mem.Err = func(op, collection string) error {
		if op == "insert" && collection == "guests" {
			return errors.New("boom")
		}
		return nil
	}

	require.NoError(t, s.AddGuest(context.Background(), wedding.Guest{Name: "Clara"}))

	d := s.Snapshot()
	require.Len(t, d.Guests, 1)
	assert.True(t, wedding.IsTempID(d.Guests[0].ID), "never synced, keeps its temp id")
	assert.Equal(t, 0, mem.Count("guests"))
}

func TestAddGuestsBulkPicksUpServerIDs(t *testing.T) {
	s, mem := onboarded(t)

	require.NoError(t, s.AddGuests(context.Background(), []wedding.Guest{
		{Name: "Clara", Side: wedding.SideBride},
		{Name: "Diego", Side: wedding.SideGroom},
		{Name: "Elisa", Side: wedding.SideBride},
	}))

	d := s.Snapshot()
	require.Len(t, d.Guests, 3)
	for _, g := range d.Guests {
		assert.False(t, wedding.IsTempID(g.ID))
		assert.NotEmpty(t, g.ID)
	}
	assert.Equal(t, 3, mem.Count("guests"))
}

func TestUpdateGuestPendingSync(t *testing.T) {
	s, _ := onboarded(t)

	name := "Nova"
	err := s.UpdateGuest(context.Background(), wedding.NewTempID(), GuestPatch{Name: &name})
	assert.ErrorIs(t, err, ErrPendingSync)

	err = s.RemoveGuest(context.Background(), wedding.NewTempID())
	assert.ErrorIs(t, err, ErrPendingSync)

	err = s.RemoveGuests(context.Background(), []string{"real", wedding.NewTempID()})
	assert.ErrorIs(t, err, ErrPendingSync)
}

func TestUpdateGuestPersists(t *testing.T) {
	s, _ := onboarded(t)
	ctx := context.Background()
	require.NoError(t, s.AddGuest(ctx, wedding.Guest{Name: "Clara", RSVPStatus: wedding.RSVPPending}))
	id := s.Snapshot().Guests[0].ID

	confirmed := wedding.RSVPConfirmed
	plus := 2
	require.NoError(t, s.UpdateGuest(ctx, id, GuestPatch{RSVPStatus: &confirmed, PlusOnes: &plus}))

	d := s.Snapshot()
	assert.Equal(t, wedding.RSVPConfirmed, d.Guests[0].RSVPStatus)
	assert.Equal(t, 2, d.Guests[0].PlusOnes)

	// the change survives a reload
	s.Refresh(ctx)
	d = s.Snapshot()
	require.Len(t, d.Guests, 1)
	assert.Equal(t, wedding.RSVPConfirmed, d.Guests[0].RSVPStatus)
	assert.Equal(t, 2, d.Guests[0].PlusOnes)
}

func TestRemoveGuestUnknownIDIsNoop(t *testing.T) {
	s, _ := onboarded(t)
	require.NoError(t, s.RemoveGuest(context.Background(), "missing"))
	assert.Empty(t, s.Snapshot().Guests)
}

func TestRefreshParentFetchFailureKeepsSnapshot(t *testing.T) {
	s, mem := onboarded(t)
	mem.Err = func(op, collection string) error {
		if op == "select" && collection == "weddings" {
			return errors.New("boom")
		}
		return nil
	}

	s.Refresh(context.Background())

	d := s.Snapshot()
	assert.True(t, d.Onboarded, "previous snapshot retained")
	assert.Equal(t, "Ana & Bruno", d.CoupleName)
	assert.Len(t, d.Tasks, 5)
	assert.False(t, s.Loading(), "loading cleared even on failure")
}

func TestRefreshChildFetchFailureKeepsPartial(t *testing.T) {
	s, mem := onboarded(t)
	mem.Err = func(op, collection string) error {
		if op == "select" && collection == "songs" {
			return errors.New("boom")
		}
		return nil
	}

	s.Refresh(context.Background())

	d := s.Snapshot()
	assert.True(t, d.Onboarded)
	assert.Equal(t, "Ana & Bruno", d.CoupleName)
	assert.Empty(t, d.Songs, "failed collection comes back empty")
	assert.Len(t, d.Tasks, 5, "other collections still load")
	assert.Len(t, d.BudgetItems, 4)
	assert.False(t, s.Loading())
}

func TestUpdateWeddingPersists(t *testing.T) {
	s, _ := onboarded(t)
	ctx := context.Background()

	name := "Ana & Bruno Oliveira"
	budget := 60000.0
	require.NoError(t, s.UpdateWedding(ctx, WeddingPatch{CoupleName: &name, Budget: &budget}))

	s.Refresh(ctx)
	d := s.Snapshot()
	assert.Equal(t, name, d.CoupleName)
	assert.Equal(t, budget, d.Budget)
}

func TestUpdateWeddingFailureRevertsAndReturns(t *testing.T) {
	s, mem := onboarded(t)
	mem.Err = func(op, collection string) error {
		if op == "update" && collection == "weddings" {
			return errors.New("boom")
		}
		return nil
	}

	name := "Outro Nome"
	err := s.UpdateWedding(context.Background(), WeddingPatch{CoupleName: &name})
	require.Error(t, err)
	assert.Equal(t, "Ana & Bruno", s.Snapshot().CoupleName, "optimistic patch reverted by refresh")
}

func TestUpdateWeddingBeforeOnboardingIsNoop(t *testing.T) {
	s, mem := newTestStore(t)
	s.Refresh(context.Background())

	name := "Ninguém"
	require.NoError(t, s.UpdateWedding(context.Background(), WeddingPatch{CoupleName: &name}))

	assert.Empty(t, s.Snapshot().CoupleName, "no optimistic patch without a wedding")
	assert.Equal(t, 0, mem.Count("weddings"))
}

func TestUpdateBudgetItemRebuildsCombinedField(t *testing.T) {
	s, mem := onboarded(t)
	ctx := context.Background()

	d := s.Snapshot()
	var item wedding.BudgetItem
	for _, b := range d.BudgetItems {
		if b.Category == "Buffet" {
			item = b
		}
	}
	require.NotEmpty(t, item.ID)

	desc := "200 convidados"
	spent := 8000.0
	require.NoError(t, s.UpdateBudgetItem(ctx, item.ID, BudgetItemPatch{Description: &desc, Spent: &spent}))

	var rows []BudgetItemRow
	require.NoError(t, mem.Select(ctx, "budget_items", &rows, remote.Eq("id", item.ID)))
	require.Len(t, rows, 1)
	assert.Equal(t, "Buffet ::: 200 convidados", rows[0].Category)
	assert.Equal(t, 8000.0, rows[0].Spent)

	s.Refresh(ctx)
	for _, b := range s.Snapshot().BudgetItems {
		if b.ID == item.ID {
			assert.Equal(t, "Buffet", b.Category)
			assert.Equal(t, desc, b.Description)
		}
	}
}

func TestAddSongDerivesYoutubeID(t *testing.T) {
	s, _ := onboarded(t)
	ctx := context.Background()

	require.NoError(t, s.AddSong(ctx, wedding.Song{
		Title:  "Perfect",
		URL:    "https://www.youtube.com/watch?v=2Vv-BfVoq4g",
		Moment: "Primeira Dança",
	}))

	d := s.Snapshot()
	require.Len(t, d.Songs, 4)
	assert.Equal(t, "2Vv-BfVoq4g", d.Songs[0].YoutubeID)

	// derivation also holds across a reload, from the stored url
	s.Refresh(ctx)
	for _, song := range s.Snapshot().Songs {
		if song.Title == "Perfect" {
			assert.Equal(t, "2Vv-BfVoq4g", song.YoutubeID)
		}
	}
}

func TestReplaceSeatingTablesRoundTrips(t *testing.T) {
	s, mem := onboarded(t)
	ctx := context.Background()

	require.NoError(t, s.AddGuests(ctx, []wedding.Guest{{Name: "Clara"}, {Name: "Diego"}}))
	guests := s.Snapshot().Guests
	require.Len(t, guests, 2)

	require.NoError(t, s.ReplaceSeatingTables(ctx, []wedding.SeatingTable{
		{Name: "Mesa 1", GuestIDs: []string{guests[0].ID}},
		{Name: "Mesa 2", GuestIDs: []string{guests[1].ID}},
	}))

	d := s.Snapshot()
	require.Len(t, d.SeatingTables, 2)
	for _, tb := range d.SeatingTables {
		assert.False(t, wedding.IsTempID(tb.ID))
		assert.NotEmpty(t, tb.ID)
		assert.Len(t, tb.GuestIDs, 1)
	}
	assert.Equal(t, 2, mem.Count("seating_tables"))

	// replacing again swaps the whole set
	require.NoError(t, s.ReplaceSeatingTables(ctx, []wedding.SeatingTable{
		{Name: "Única", GuestIDs: []string{guests[0].ID, guests[1].ID}},
	}))
	d = s.Snapshot()
	require.Len(t, d.SeatingTables, 1)
	assert.Equal(t, "Única", d.SeatingTables[0].Name)
	assert.Equal(t, 1, mem.Count("seating_tables"))

	// and an empty replacement clears everything
	require.NoError(t, s.ReplaceSeatingTables(ctx, nil))
	assert.Empty(t, s.Snapshot().SeatingTables)
	assert.Equal(t, 0, mem.Count("seating_tables"))
}

func TestUpdateCoupleItemsPersists(t *testing.T) {
	s, _ := onboarded(t)
	ctx := context.Background()

	items := wedding.CoupleItems{
		Bride: []wedding.PersonalItem{{ID: "br1", Name: "Vestido", Completed: true}},
	}
	require.NoError(t, s.UpdateCoupleItems(ctx, items))

	s.Refresh(ctx)
	d := s.Snapshot()
	require.Len(t, d.CoupleItems.Bride, 1)
	assert.True(t, d.CoupleItems.Bride[0].Completed)
	assert.Empty(t, d.CoupleItems.Groom)
}

func TestCategoriesAreLocalOnly(t *testing.T) {
	s, _ := onboarded(t)

	s.AddCategory("Transporte")
	s.AddCategory("Transporte") // duplicate ignored
	d := s.Snapshot()
	assert.Len(t, d.Categories, 9)

	s.RemoveCategory("Transporte")
	assert.Len(t, s.Snapshot().Categories, 8)

	s.AddCategory("Transporte")
	s.Refresh(context.Background())
	assert.Len(t, s.Snapshot().Categories, 8, "reload resets to the fixed list")
}

func TestVendorsAreLocalOnly(t *testing.T) {
	s, _ := onboarded(t)

	s.SetVendors([]wedding.Vendor{
		{Name: "Buffet da Praça", Service: "Buffet", Cost: 15000, Status: wedding.VendorBooked},
		{Name: "Foto & Luz", Service: "Fotografia"},
	})

	d := s.Snapshot()
	require.Len(t, d.Vendors, 2)
	assert.NotEmpty(t, d.Vendors[0].ID)
	assert.Equal(t, wedding.VendorContacted, d.Vendors[1].Status, "missing status defaults")

	s.SetVendors(nil)
	assert.Empty(t, s.Snapshot().Vendors)

	s.SetVendors([]wedding.Vendor{{Name: "Foto & Luz", Service: "Fotografia"}})
	s.Refresh(context.Background())
	assert.Empty(t, s.Snapshot().Vendors, "reload resets the client-only list")
}

func TestSnapshotIsIsolated(t *testing.T) {
	s, _ := onboarded(t)

	d := s.Snapshot()
	d.CoupleName = "Mutado"
	d.Tasks[0].Title = "Mutado"

	fresh := s.Snapshot()
	assert.Equal(t, "Ana & Bruno", fresh.CoupleName)
	assert.NotEqual(t, "Mutado", fresh.Tasks[0].Title)
}

func TestManagerSessionLifecycle(t *testing.T) {
	mem := remote.NewMemory()
	m := NewManager(mem, zerolog.Nop())
	ctx := context.Background()

	a := m.ForUser(ctx, 1)
	b := m.ForUser(ctx, 1)
	assert.Same(t, a, b, "one store per session")

	other := m.ForUser(ctx, 2)
	assert.NotSame(t, a, other)

	m.Drop(1)
	c := m.ForUser(ctx, 1)
	assert.NotSame(t, a, c, "logout discards the session store")
}
