package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"enlace/internal/remote"
	"enlace/internal/wedding"
)

// Refresh re-derives the whole aggregate from the remote store and replaces
// the snapshot atomically. Remote failures are logged, never returned: the
// caller always gets back a store holding whatever could be assembled, with
// the loading flag cleared.
func (s *Store) Refresh(ctx context.Context) {
	if s.userID == 0 {
		s.replace(wedding.DefaultData(), "")
		return
	}

	s.setLoading(true)
	defer s.setLoading(false)

	var parents []WeddingRow
	if err := s.svc.Select(ctx, "weddings", &parents, remote.Eq("user_id", s.userID)); err != nil {
		s.log.Error().Err(err).Msg("fetch wedding")
		return
	}
	if len(parents) == 0 {
		// Valid state: the user has not onboarded yet.
		data := wedding.DefaultData()
		data.Onboarded = false
		s.replace(data, "")
		return
	}
	parent := parents[0]

	var (
		guestRows  []GuestRow
		taskRows   []TaskRow
		budgetRows []BudgetItemRow
		songRows   []SongRow
		giftRows   []GiftRow
		tableRows  []SeatingTableRow
	)
	scope := remote.Eq("wedding_id", parent.ID)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.svc.Select(gctx, "guests", &guestRows, scope) })
	g.Go(func() error { return s.svc.Select(gctx, "tasks", &taskRows, scope) })
	g.Go(func() error { return s.svc.Select(gctx, "budget_items", &budgetRows, scope) })
	g.Go(func() error { return s.svc.Select(gctx, "songs", &songRows, scope) })
	g.Go(func() error { return s.svc.Select(gctx, "gifts", &giftRows, scope) })
	g.Go(func() error { return s.svc.Select(gctx, "seating_tables", &tableRows, scope) })
	if err := g.Wait(); err != nil {
		// Fall through with whatever was fetched; missing collections
		// keep their static defaults below.
		s.log.Error().Err(err).Msg("fetch wedding collections")
	}

	data := wedding.Data{
		ID:            parent.ID,
		CoupleName:    parent.CoupleName,
		WeddingDate:   parent.WeddingDate,
		Budget:        parent.Budget,
		GuestCount:    parent.GuestCount,
		GiftPhone:     parent.GiftPhone,
		CeremonyType:  wedding.DefaultCeremonyType,
		Onboarded:     true,
		Categories:    wedding.DefaultCategories(),
		CoupleItems:   decodeCoupleItems(parent.CoupleItems),
		Guests:        []wedding.Guest{},
		Tasks:         []wedding.Task{},
		BudgetItems:   wedding.SeedBudgetItems(),
		Vendors:       []wedding.Vendor{},
		Songs:         []wedding.Song{},
		Gifts:         []wedding.Gift{},
		SeatingTables: []wedding.SeatingTable{},
	}
	for _, r := range guestRows {
		data.Guests = append(data.Guests, guestFromRow(r))
	}
	for _, r := range taskRows {
		data.Tasks = append(data.Tasks, taskFromRow(r))
	}
	if budgetRows != nil {
		data.BudgetItems = []wedding.BudgetItem{}
		for _, r := range budgetRows {
			data.BudgetItems = append(data.BudgetItems, budgetItemFromRow(r))
		}
	}
	for _, r := range songRows {
		data.Songs = append(data.Songs, songFromRow(r))
	}
	for _, r := range giftRows {
		data.Gifts = append(data.Gifts, giftFromRow(r))
	}
	for _, r := range tableRows {
		data.SeatingTables = append(data.SeatingTables, seatingTableFromRow(r))
	}

	s.replace(data, parent.ID)
}
