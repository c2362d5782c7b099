package store

import (
	"context"

	"enlace/internal/remote"
	"enlace/internal/wedding"
)

// Child-collection mutations share one contract: patch the snapshot first,
// then persist. Adds reconcile the server-assigned id back over the
// temporary one; updates and removes against a still-temporary id return
// ErrPendingSync. Remote failures on these paths are logged and left for
// the next refresh to reconcile.

// --- Guests ---

func (s *Store) AddGuest(ctx context.Context, g wedding.Guest) error {
	if g.ID == "" {
		g.ID = wedding.NewTempID()
	}
	tempID := g.ID
	weddingID := s.patch(func(d *wedding.Data) {
		d.Guests = prepend(d.Guests, g)
	})
	if weddingID == "" {
		return nil
	}

	row := guestToRow(g, weddingID)
	if err := s.svc.Insert(ctx, "guests", &row); err != nil {
		s.log.Error().Err(err).Msg("insert guest")
		return nil
	}
	s.patch(func(d *wedding.Data) {
		d.Guests = mergeWhere(d.Guests,
			func(x wedding.Guest) bool { return x.ID == tempID },
			func(x wedding.Guest) wedding.Guest { x.ID = row.ID; return x })
	})
	return nil
}

// AddGuests inserts a whole batch in one call. Returned rows cannot be
// matched back to temporary ids reliably (names repeat), so instead of
// guessing, it reloads the aggregate to pick up every server identity.
func (s *Store) AddGuests(ctx context.Context, guests []wedding.Guest) error {
	for i := range guests {
		if guests[i].ID == "" {
			guests[i].ID = wedding.NewTempID()
		}
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.Guests = prepend(d.Guests, guests...)
	})
	if weddingID == "" || len(guests) == 0 {
		return nil
	}

	rows := make([]GuestRow, 0, len(guests))
	for _, g := range guests {
		rows = append(rows, guestToRow(g, weddingID))
	}
	if err := s.svc.Insert(ctx, "guests", &rows); err != nil {
		s.log.Error().Err(err).Msg("insert guests")
	}
	s.Refresh(ctx)
	return nil
}

type GuestPatch struct {
	Name        *string
	RSVPStatus  *wedding.RSVPStatus
	Side        *wedding.GuestSide
	IsGodparent *bool
	PlusOnes    *int
}

func (s *Store) UpdateGuest(ctx context.Context, id string, patch GuestPatch) error {
	if wedding.IsTempID(id) {
		return ErrPendingSync
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.Guests = mergeWhere(d.Guests,
			func(g wedding.Guest) bool { return g.ID == id },
			func(g wedding.Guest) wedding.Guest {
				if patch.Name != nil {
					g.Name = *patch.Name
				}
				if patch.RSVPStatus != nil {
					g.RSVPStatus = *patch.RSVPStatus
				}
				if patch.Side != nil {
					g.Side = *patch.Side
				}
				if patch.IsGodparent != nil {
					g.IsGodparent = *patch.IsGodparent
				}
				if patch.PlusOnes != nil {
					g.PlusOnes = *patch.PlusOnes
				}
				return g
			})
	})
	if weddingID == "" {
		return nil
	}

	changes := map[string]any{}
	if patch.Name != nil {
		changes["name"] = *patch.Name
	}
	if patch.RSVPStatus != nil {
		changes["rsvp_status"] = string(*patch.RSVPStatus)
	}
	if patch.Side != nil {
		changes["type"] = string(*patch.Side)
	}
	if patch.IsGodparent != nil {
		changes["is_godparent"] = *patch.IsGodparent
	}
	if patch.PlusOnes != nil {
		changes["plus_ones"] = *patch.PlusOnes
	}
	if err := s.svc.Update(ctx, "guests", changes, remote.Eq("id", id)); err != nil {
		s.log.Error().Err(err).Msg("update guest")
	}
	return nil
}

func (s *Store) RemoveGuest(ctx context.Context, id string) error {
	if wedding.IsTempID(id) {
		return ErrPendingSync
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.Guests = dropWhere(d.Guests, func(g wedding.Guest) bool { return g.ID == id })
	})
	if weddingID == "" {
		return nil
	}
	if err := s.svc.Delete(ctx, "guests", remote.Eq("id", id)); err != nil {
		s.log.Error().Err(err).Msg("delete guest")
	}
	return nil
}

// RemoveGuests deletes a set of guests with one set-membership filter.
func (s *Store) RemoveGuests(ctx context.Context, ids []string) error {
	if anyTempID(ids) {
		return ErrPendingSync
	}
	drop := map[string]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.Guests = dropWhere(d.Guests, func(g wedding.Guest) bool { return drop[g.ID] })
	})
	if weddingID == "" || len(ids) == 0 {
		return nil
	}
	if err := s.svc.Delete(ctx, "guests", remote.InStrings("id", ids)); err != nil {
		s.log.Error().Err(err).Msg("delete guests")
	}
	return nil
}

// --- Tasks ---

func (s *Store) AddTask(ctx context.Context, t wedding.Task) error {
	if t.ID == "" {
		t.ID = wedding.NewTempID()
	}
	tempID := t.ID
	weddingID := s.patch(func(d *wedding.Data) {
		d.Tasks = prepend(d.Tasks, t)
	})
	if weddingID == "" {
		return nil
	}

	row := taskToRow(t, weddingID)
	if err := s.svc.Insert(ctx, "tasks", &row); err != nil {
		s.log.Error().Err(err).Msg("insert task")
		return nil
	}
	s.patch(func(d *wedding.Data) {
		d.Tasks = mergeWhere(d.Tasks,
			func(x wedding.Task) bool { return x.ID == tempID },
			func(x wedding.Task) wedding.Task { x.ID = row.ID; return x })
	})
	return nil
}

type TaskPatch struct {
	Title    *string
	Category *string
	Status   *wedding.TaskStatus
	Subtasks *[]wedding.SubTask
}

func (s *Store) UpdateTask(ctx context.Context, id string, patch TaskPatch) error {
	if wedding.IsTempID(id) {
		return ErrPendingSync
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.Tasks = mergeWhere(d.Tasks,
			func(t wedding.Task) bool { return t.ID == id },
			func(t wedding.Task) wedding.Task {
				if patch.Title != nil {
					t.Title = *patch.Title
				}
				if patch.Category != nil {
					t.Category = *patch.Category
				}
				if patch.Status != nil {
					t.Status = *patch.Status
				}
				if patch.Subtasks != nil {
					t.Subtasks = *patch.Subtasks
				}
				return t
			})
	})
	if weddingID == "" {
		return nil
	}

	changes := map[string]any{}
	if patch.Title != nil {
		changes["title"] = *patch.Title
	}
	if patch.Category != nil {
		changes["category"] = *patch.Category
	}
	if patch.Status != nil {
		changes["status"] = string(*patch.Status)
	}
	if patch.Subtasks != nil {
		changes["subtasks"] = encodeSubtasks(*patch.Subtasks)
	}
	if err := s.svc.Update(ctx, "tasks", changes, remote.Eq("id", id)); err != nil {
		s.log.Error().Err(err).Msg("update task")
	}
	return nil
}

func (s *Store) RemoveTask(ctx context.Context, id string) error {
	if wedding.IsTempID(id) {
		return ErrPendingSync
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.Tasks = dropWhere(d.Tasks, func(t wedding.Task) bool { return t.ID == id })
	})
	if weddingID == "" {
		return nil
	}
	if err := s.svc.Delete(ctx, "tasks", remote.Eq("id", id)); err != nil {
		s.log.Error().Err(err).Msg("delete task")
	}
	return nil
}

// --- Budget items ---

func (s *Store) AddBudgetItem(ctx context.Context, b wedding.BudgetItem) error {
	if b.ID == "" {
		b.ID = wedding.NewTempID()
	}
	tempID := b.ID
	weddingID := s.patch(func(d *wedding.Data) {
		d.BudgetItems = prepend(d.BudgetItems, b)
	})
	if weddingID == "" {
		return nil
	}

	row := budgetItemToRow(b, weddingID)
	if err := s.svc.Insert(ctx, "budget_items", &row); err != nil {
		s.log.Error().Err(err).Msg("insert budget item")
		return nil
	}
	s.patch(func(d *wedding.Data) {
		d.BudgetItems = mergeWhere(d.BudgetItems,
			func(x wedding.BudgetItem) bool { return x.ID == tempID },
			func(x wedding.BudgetItem) wedding.BudgetItem { x.ID = row.ID; return x })
	})
	return nil
}

type BudgetItemPatch struct {
	Category    *string
	Description *string
	Planned     *float64
	Spent       *float64
}

// UpdateBudgetItem merges the patch locally, then persists. Category and
// description share one remote column, so the combined value is rebuilt
// from the merged local item: correct as long as local state is not stale
// relative to the remote store.
func (s *Store) UpdateBudgetItem(ctx context.Context, id string, patch BudgetItemPatch) error {
	if wedding.IsTempID(id) {
		return ErrPendingSync
	}
	var merged wedding.BudgetItem
	weddingID := s.patch(func(d *wedding.Data) {
		d.BudgetItems = mergeWhere(d.BudgetItems,
			func(b wedding.BudgetItem) bool { return b.ID == id },
			func(b wedding.BudgetItem) wedding.BudgetItem {
				if patch.Category != nil {
					b.Category = *patch.Category
				}
				if patch.Description != nil {
					b.Description = *patch.Description
				}
				if patch.Planned != nil {
					b.Planned = *patch.Planned
				}
				if patch.Spent != nil {
					b.Spent = *patch.Spent
				}
				merged = b
				return b
			})
	})
	if weddingID == "" || merged.ID == "" {
		return nil
	}

	changes := map[string]any{}
	if patch.Category != nil || patch.Description != nil {
		changes["category"] = wedding.JoinBudgetField(merged.Category, merged.Description)
	}
	if patch.Planned != nil {
		changes["planned"] = *patch.Planned
	}
	if patch.Spent != nil {
		changes["spent"] = *patch.Spent
	}
	if err := s.svc.Update(ctx, "budget_items", changes, remote.Eq("id", id)); err != nil {
		s.log.Error().Err(err).Msg("update budget item")
	}
	return nil
}

func (s *Store) RemoveBudgetItem(ctx context.Context, id string) error {
	if wedding.IsTempID(id) {
		return ErrPendingSync
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.BudgetItems = dropWhere(d.BudgetItems, func(b wedding.BudgetItem) bool { return b.ID == id })
	})
	if weddingID == "" {
		return nil
	}
	if err := s.svc.Delete(ctx, "budget_items", remote.Eq("id", id)); err != nil {
		s.log.Error().Err(err).Msg("delete budget item")
	}
	return nil
}

// --- Songs ---

// AddSong derives the youtube id from the url once, at creation. It is
// never re-derived on update.
func (s *Store) AddSong(ctx context.Context, song wedding.Song) error {
	if song.ID == "" {
		song.ID = wedding.NewTempID()
	}
	song.YoutubeID = wedding.ExtractYoutubeID(song.URL)
	tempID := song.ID
	weddingID := s.patch(func(d *wedding.Data) {
		d.Songs = prepend(d.Songs, song)
	})
	if weddingID == "" {
		return nil
	}

	row := songToRow(song, weddingID)
	if err := s.svc.Insert(ctx, "songs", &row); err != nil {
		s.log.Error().Err(err).Msg("insert song")
		return nil
	}
	s.patch(func(d *wedding.Data) {
		d.Songs = mergeWhere(d.Songs,
			func(x wedding.Song) bool { return x.ID == tempID },
			func(x wedding.Song) wedding.Song { x.ID = row.ID; return x })
	})
	return nil
}

type SongPatch struct {
	Title  *string
	URL    *string
	Moment *string
}

func (s *Store) UpdateSong(ctx context.Context, id string, patch SongPatch) error {
	if wedding.IsTempID(id) {
		return ErrPendingSync
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.Songs = mergeWhere(d.Songs,
			func(sg wedding.Song) bool { return sg.ID == id },
			func(sg wedding.Song) wedding.Song {
				if patch.Title != nil {
					sg.Title = *patch.Title
				}
				if patch.URL != nil {
					sg.URL = *patch.URL
				}
				if patch.Moment != nil {
					sg.Moment = *patch.Moment
				}
				return sg
			})
	})
	if weddingID == "" {
		return nil
	}

	changes := map[string]any{}
	if patch.Title != nil {
		changes["title"] = *patch.Title
	}
	if patch.URL != nil {
		changes["url"] = *patch.URL
	}
	if patch.Moment != nil {
		changes["moment"] = *patch.Moment
	}
	if err := s.svc.Update(ctx, "songs", changes, remote.Eq("id", id)); err != nil {
		s.log.Error().Err(err).Msg("update song")
	}
	return nil
}

func (s *Store) RemoveSong(ctx context.Context, id string) error {
	if wedding.IsTempID(id) {
		return ErrPendingSync
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.Songs = dropWhere(d.Songs, func(sg wedding.Song) bool { return sg.ID == id })
	})
	if weddingID == "" {
		return nil
	}
	if err := s.svc.Delete(ctx, "songs", remote.Eq("id", id)); err != nil {
		s.log.Error().Err(err).Msg("delete song")
	}
	return nil
}

// --- Gifts ---

func (s *Store) AddGift(ctx context.Context, g wedding.Gift) error {
	if g.ID == "" {
		g.ID = wedding.NewTempID()
	}
	if g.Status == "" {
		g.Status = wedding.GiftAvailable
	}
	tempID := g.ID
	weddingID := s.patch(func(d *wedding.Data) {
		d.Gifts = prepend(d.Gifts, g)
	})
	if weddingID == "" {
		return nil
	}

	row := giftToRow(g, weddingID)
	if err := s.svc.Insert(ctx, "gifts", &row); err != nil {
		s.log.Error().Err(err).Msg("insert gift")
		return nil
	}
	s.patch(func(d *wedding.Data) {
		d.Gifts = mergeWhere(d.Gifts,
			func(x wedding.Gift) bool { return x.ID == tempID },
			func(x wedding.Gift) wedding.Gift { x.ID = row.ID; return x })
	})
	return nil
}

type GiftPatch struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	Status      *wedding.GiftStatus
}

func (s *Store) UpdateGift(ctx context.Context, id string, patch GiftPatch) error {
	if wedding.IsTempID(id) {
		return ErrPendingSync
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.Gifts = mergeWhere(d.Gifts,
			func(g wedding.Gift) bool { return g.ID == id },
			func(g wedding.Gift) wedding.Gift {
				if patch.Name != nil {
					g.Name = *patch.Name
				}
				if patch.Description != nil {
					g.Description = *patch.Description
				}
				if patch.Price != nil {
					g.Price = *patch.Price
				}
				if patch.ImageURL != nil {
					g.ImageURL = *patch.ImageURL
				}
				if patch.Status != nil {
					g.Status = *patch.Status
				}
				return g
			})
	})
	if weddingID == "" {
		return nil
	}

	changes := map[string]any{}
	if patch.Name != nil {
		changes["name"] = *patch.Name
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.Price != nil {
		changes["price"] = *patch.Price
	}
	if patch.ImageURL != nil {
		changes["image_url"] = *patch.ImageURL
	}
	if patch.Status != nil {
		changes["status"] = string(*patch.Status)
	}
	if err := s.svc.Update(ctx, "gifts", changes, remote.Eq("id", id)); err != nil {
		s.log.Error().Err(err).Msg("update gift")
	}
	return nil
}

func (s *Store) RemoveGift(ctx context.Context, id string) error {
	if wedding.IsTempID(id) {
		return ErrPendingSync
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.Gifts = dropWhere(d.Gifts, func(g wedding.Gift) bool { return g.ID == id })
	})
	if weddingID == "" {
		return nil
	}
	if err := s.svc.Delete(ctx, "gifts", remote.Eq("id", id)); err != nil {
		s.log.Error().Err(err).Msg("delete gift")
	}
	return nil
}

// --- Seating tables ---

// ReplaceSeatingTables takes the entire desired collection: seating is
// edited as a batch and tables have no stable identity until first saved.
// Remotely it deletes every existing table row and bulk-inserts the new
// set, then refreshes regardless of outcome so every table carries a
// server identity again.
func (s *Store) ReplaceSeatingTables(ctx context.Context, tables []wedding.SeatingTable) error {
	for i := range tables {
		if tables[i].ID == "" {
			tables[i].ID = wedding.NewTempID()
		}
		if tables[i].GuestIDs == nil {
			tables[i].GuestIDs = []string{}
		}
	}
	weddingID := s.patch(func(d *wedding.Data) {
		d.SeatingTables = append([]wedding.SeatingTable{}, tables...)
	})
	if weddingID == "" {
		return nil
	}

	if err := s.svc.Delete(ctx, "seating_tables", remote.Eq("wedding_id", weddingID)); err != nil {
		s.log.Error().Err(err).Msg("clear seating tables")
	}
	if len(tables) > 0 {
		rows := make([]SeatingTableRow, 0, len(tables))
		for _, t := range tables {
			rows = append(rows, seatingTableToRow(t, weddingID))
		}
		if err := s.svc.Insert(ctx, "seating_tables", &rows); err != nil {
			s.log.Error().Err(err).Msg("insert seating tables")
		}
	}
	s.Refresh(ctx)
	return nil
}
