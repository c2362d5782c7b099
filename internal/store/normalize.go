package store

import (
	"encoding/json"

	"enlace/internal/wedding"
)

// Translation between the remote row shapes and the in-memory aggregate.
// JSON-encoded sub-structures (subtasks, couple items, seating guest ids)
// are decoded here; decode failures fall back to the empty value so the
// aggregate stays renderable.

func guestFromRow(r GuestRow) wedding.Guest {
	return wedding.Guest{
		ID:          r.ID,
		Name:        r.Name,
		RSVPStatus:  wedding.RSVPStatus(r.RSVPStatus),
		PlusOnes:    r.PlusOnes,
		Side:        wedding.GuestSide(r.Type),
		IsGodparent: r.IsGodparent,
	}
}

func guestToRow(g wedding.Guest, weddingID string) GuestRow {
	return GuestRow{
		WeddingID:   weddingID,
		Name:        g.Name,
		RSVPStatus:  string(g.RSVPStatus),
		Type:        string(g.Side),
		IsGodparent: g.IsGodparent,
		PlusOnes:    g.PlusOnes,
	}
}

func taskFromRow(r TaskRow) wedding.Task {
	var subtasks []wedding.SubTask
	if r.Subtasks != "" {
		_ = json.Unmarshal([]byte(r.Subtasks), &subtasks)
	}
	return wedding.Task{
		ID:       r.ID,
		Title:    r.Title,
		Category: r.Category,
		Status:   wedding.TaskStatus(r.Status),
		Subtasks: subtasks,
	}
}

func taskToRow(t wedding.Task, weddingID string) TaskRow {
	return TaskRow{
		WeddingID: weddingID,
		Title:     t.Title,
		Category:  t.Category,
		Status:    string(t.Status),
		Subtasks:  encodeSubtasks(t.Subtasks),
	}
}

func encodeSubtasks(subtasks []wedding.SubTask) string {
	if subtasks == nil {
		subtasks = []wedding.SubTask{}
	}
	b, _ := json.Marshal(subtasks)
	return string(b)
}

func budgetItemFromRow(r BudgetItemRow) wedding.BudgetItem {
	category, description := wedding.SplitBudgetField(r.Category)
	return wedding.BudgetItem{
		ID:          r.ID,
		Category:    category,
		Description: description,
		Planned:     r.Planned,
		Spent:       r.Spent,
	}
}

func budgetItemToRow(b wedding.BudgetItem, weddingID string) BudgetItemRow {
	return BudgetItemRow{
		WeddingID: weddingID,
		Category:  wedding.JoinBudgetField(b.Category, b.Description),
		Planned:   b.Planned,
		Spent:     b.Spent,
	}
}

func songFromRow(r SongRow) wedding.Song {
	return wedding.Song{
		ID:        r.ID,
		Title:     r.Title,
		URL:       r.URL,
		YoutubeID: wedding.ExtractYoutubeID(r.URL),
		Moment:    r.Moment,
	}
}

func songToRow(s wedding.Song, weddingID string) SongRow {
	return SongRow{
		WeddingID: weddingID,
		Title:     s.Title,
		URL:       s.URL,
		Moment:    s.Moment,
	}
}

func giftFromRow(r GiftRow) wedding.Gift {
	return wedding.Gift{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Status:      wedding.GiftStatus(r.Status),
	}
}

func giftToRow(g wedding.Gift, weddingID string) GiftRow {
	return GiftRow{
		WeddingID:   weddingID,
		Name:        g.Name,
		Description: g.Description,
		Price:       g.Price,
		ImageURL:    g.ImageURL,
		Status:      string(g.Status),
	}
}

func seatingTableFromRow(r SeatingTableRow) wedding.SeatingTable {
	ids := []string{}
	if r.GuestIDs != "" {
		_ = json.Unmarshal([]byte(r.GuestIDs), &ids)
	}
	return wedding.SeatingTable{ID: r.ID, Name: r.Name, GuestIDs: ids}
}

func seatingTableToRow(t wedding.SeatingTable, weddingID string) SeatingTableRow {
	ids := t.GuestIDs
	if ids == nil {
		ids = []string{}
	}
	b, _ := json.Marshal(ids)
	return SeatingTableRow{WeddingID: weddingID, Name: t.Name, GuestIDs: string(b)}
}

func decodeCoupleItems(blob string) wedding.CoupleItems {
	if blob == "" {
		return wedding.DefaultCoupleItems()
	}
	var items wedding.CoupleItems
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return wedding.DefaultCoupleItems()
	}
	if items.Bride == nil {
		items.Bride = []wedding.PersonalItem{}
	}
	if items.Groom == nil {
		items.Groom = []wedding.PersonalItem{}
	}
	return items
}

func encodeCoupleItems(items wedding.CoupleItems) string {
	b, _ := json.Marshal(items)
	return string(b)
}
