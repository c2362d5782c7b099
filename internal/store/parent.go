package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"enlace/internal/remote"
	"enlace/internal/wedding"
)

type CreateWeddingInput struct {
	CoupleName  string
	WeddingDate string
	Budget      float64
	GuestCount  int
}

// CreateWedding inserts the parent record for this user and seeds the
// starter tasks, budget items, songs and gifts under it, then reloads the
// aggregate from the store rather than trusting the optimistic shape.
// Returns an error only when the parent insert fails; seed inserts are
// attempted without individual recovery.
func (s *Store) CreateWedding(ctx context.Context, in CreateWeddingInput) error {
	if s.userID == 0 {
		return nil
	}

	parent := WeddingRow{
		UserID:      s.userID,
		CoupleName:  in.CoupleName,
		WeddingDate: in.WeddingDate,
		Budget:      in.Budget,
		GuestCount:  in.GuestCount,
		CoupleItems: encodeCoupleItems(wedding.DefaultCoupleItems()),
	}
	if err := s.svc.Insert(ctx, "weddings", &parent); err != nil {
		return fmt.Errorf("create wedding: %w", err)
	}

	taskRows := make([]TaskRow, 0, len(wedding.SeedTasks()))
	for _, t := range wedding.SeedTasks() {
		taskRows = append(taskRows, taskToRow(t, parent.ID))
	}
	budgetRows := make([]BudgetItemRow, 0)
	for _, b := range wedding.SeedBudgetItems() {
		budgetRows = append(budgetRows, budgetItemToRow(b, parent.ID))
	}
	songRows := make([]SongRow, 0)
	for _, sg := range wedding.SeedSongs() {
		songRows = append(songRows, songToRow(sg, parent.ID))
	}
	giftRows := make([]GiftRow, 0)
	for _, gf := range wedding.SeedGifts() {
		giftRows = append(giftRows, giftToRow(gf, parent.ID))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.svc.Insert(gctx, "tasks", &taskRows) })
	g.Go(func() error { return s.svc.Insert(gctx, "budget_items", &budgetRows) })
	g.Go(func() error { return s.svc.Insert(gctx, "songs", &songRows) })
	g.Go(func() error { return s.svc.Insert(gctx, "gifts", &giftRows) })
	if err := g.Wait(); err != nil {
		// A partial seed leaves the remote aggregate thinner than intended;
		// not retried.
		s.log.Error().Err(err).Msg("seed wedding defaults")
	}

	s.Refresh(ctx)
	return nil
}

type WeddingPatch struct {
	CoupleName  *string
	WeddingDate *string
	Budget      *float64
	GuestCount  *int
	GiftPhone   *string
}

// UpdateWedding patches the parent record. The snapshot is updated first;
// on remote failure the optimistic patch is reverted by a full refresh and
// the error is returned for the caller to surface. Before onboarding there
// is no parent record, so the call is a no-op: nothing is patched locally
// either.
func (s *Store) UpdateWedding(ctx context.Context, patch WeddingPatch) error {
	if s.userID == 0 || s.currentWeddingID() == "" {
		return nil
	}
	weddingID := s.patch(func(d *wedding.Data) {
		if patch.CoupleName != nil {
			d.CoupleName = *patch.CoupleName
		}
		if patch.WeddingDate != nil {
			d.WeddingDate = *patch.WeddingDate
		}
		if patch.Budget != nil {
			d.Budget = *patch.Budget
		}
		if patch.GuestCount != nil {
			d.GuestCount = *patch.GuestCount
		}
		if patch.GiftPhone != nil {
			d.GiftPhone = *patch.GiftPhone
		}
	})

	changes := map[string]any{}
	if patch.CoupleName != nil {
		changes["couple_name"] = *patch.CoupleName
	}
	if patch.WeddingDate != nil {
		changes["wedding_date"] = *patch.WeddingDate
	}
	if patch.Budget != nil {
		changes["budget"] = *patch.Budget
	}
	if patch.GuestCount != nil {
		changes["guest_count"] = *patch.GuestCount
	}
	if patch.GiftPhone != nil {
		changes["gift_phone"] = *patch.GiftPhone
	}
	if len(changes) == 0 {
		return nil
	}

	if err := s.svc.Update(ctx, "weddings", changes, remote.Eq("id", weddingID)); err != nil {
		s.log.Error().Err(err).Msg("update wedding")
		s.Refresh(ctx)
		return fmt.Errorf("update wedding: %w", err)
	}
	return nil
}

// UpdateCoupleItems replaces the whole two-list structure and persists it
// as a single blob on the parent record. No identities to reconcile.
func (s *Store) UpdateCoupleItems(ctx context.Context, items wedding.CoupleItems) error {
	if items.Bride == nil {
		items.Bride = []wedding.PersonalItem{}
	}
	if items.Groom == nil {
		items.Groom = []wedding.PersonalItem{}
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.CoupleItems = items
	})
	if weddingID == "" {
		return nil
	}
	changes := map[string]any{"couple_items": encodeCoupleItems(items)}
	if err := s.svc.Update(ctx, "weddings", changes, remote.Eq("id", weddingID)); err != nil {
		s.log.Error().Err(err).Msg("update couple items")
	}
	return nil
}

// SetVendors replaces the vendor list wholesale; the vendor screen edits
// it as a batch. Vendors are client-only like categories: the list does
// not survive a refresh. Entries without an id get one assigned.
func (s *Store) SetVendors(vendors []wedding.Vendor) {
	if vendors == nil {
		vendors = []wedding.Vendor{}
	}
	for i := range vendors {
		if vendors[i].ID == "" {
			vendors[i].ID = uuid.NewString()
		}
		if vendors[i].Status == "" {
			vendors[i].Status = wedding.VendorContacted
		}
	}
	s.patch(func(d *wedding.Data) {
		d.Vendors = vendors
	})
}

// AddCategory appends a checklist category. Categories are client-only:
// the change does not survive a refresh.
func (s *Store) AddCategory(name string) {
	s.patch(func(d *wedding.Data) {
		for _, c := range d.Categories {
			if c == name {
				return
			}
		}
		d.Categories = append(d.Categories, name)
	})
}

// RemoveCategory drops a checklist category locally.
func (s *Store) RemoveCategory(name string) {
	s.patch(func(d *wedding.Data) {
		d.Categories = dropWhere(d.Categories, func(c string) bool { return c == name })
	})
}
