package store

import "time"

// Row structs mirror the remote schema. Column names live in both the gorm
// and json tags: gorm uses them against postgres, the in-memory remote uses
// them through json. Primary keys are server-assigned uuids; rows are built
// without ids and get them back from Insert.

type WeddingRow struct {
	ID          string    `gorm:"column:id;type:uuid;default:uuid_generate_v4();primaryKey" json:"id,omitempty"`
	UserID      uint64    `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	CoupleName  string    `gorm:"column:couple_name;not null;default:''" json:"couple_name"`
	WeddingDate string    `gorm:"column:wedding_date;not null;default:''" json:"wedding_date"`
	Budget      float64   `gorm:"column:budget;not null;default:0" json:"budget"`
	GuestCount  int       `gorm:"column:guest_count;not null;default:0" json:"guest_count"`
	GiftPhone   string    `gorm:"column:gift_phone;not null;default:''" json:"gift_phone"`
	CoupleItems string    `gorm:"column:couple_items;type:text" json:"couple_items"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at,omitzero"`
}

func (WeddingRow) TableName() string { return "weddings" }

type GuestRow struct {
	ID          string `gorm:"column:id;type:uuid;default:uuid_generate_v4();primaryKey" json:"id,omitempty"`
	WeddingID   string `gorm:"column:wedding_id;type:uuid;index;not null" json:"wedding_id"`
	Name        string `gorm:"column:name;not null" json:"name"`
	RSVPStatus  string `gorm:"column:rsvp_status;not null;default:'pending'" json:"rsvp_status"`
	Type        string `gorm:"column:type;not null;default:'bride'" json:"type"`
	IsGodparent bool   `gorm:"column:is_godparent;not null;default:false" json:"is_godparent"`
	PlusOnes    int    `gorm:"column:plus_ones;not null;default:0" json:"plus_ones"`
}

func (GuestRow) TableName() string { return "guests" }

type TaskRow struct {
	ID        string `gorm:"column:id;type:uuid;default:uuid_generate_v4();primaryKey" json:"id,omitempty"`
	WeddingID string `gorm:"column:wedding_id;type:uuid;index;not null" json:"wedding_id"`
	Title     string `gorm:"column:title;not null" json:"title"`
	Category  string `gorm:"column:category;not null;default:''" json:"category"`
	Status    string `gorm:"column:status;not null;default:'pending'" json:"status"`
	Subtasks  string `gorm:"column:subtasks;type:text" json:"subtasks"`
}

func (TaskRow) TableName() string { return "tasks" }

type BudgetItemRow struct {
	ID        string  `gorm:"column:id;type:uuid;default:uuid_generate_v4();primaryKey" json:"id,omitempty"`
	WeddingID string  `gorm:"column:wedding_id;type:uuid;index;not null" json:"wedding_id"`
	Category  string  `gorm:"column:category;not null" json:"category"`
	Planned   float64 `gorm:"column:planned;not null;default:0" json:"planned"`
	Spent     float64 `gorm:"column:spent;not null;default:0" json:"spent"`
}

func (BudgetItemRow) TableName() string { return "budget_items" }

type SongRow struct {
	ID        string `gorm:"column:id;type:uuid;default:uuid_generate_v4();primaryKey" json:"id,omitempty"`
	WeddingID string `gorm:"column:wedding_id;type:uuid;index;not null" json:"wedding_id"`
	Title     string `gorm:"column:title;not null" json:"title"`
	URL       string `gorm:"column:url;not null;default:''" json:"url"`
	Moment    string `gorm:"column:moment;not null;default:''" json:"moment"`
}

func (SongRow) TableName() string { return "songs" }

type GiftRow struct {
	ID          string  `gorm:"column:id;type:uuid;default:uuid_generate_v4();primaryKey" json:"id,omitempty"`
	WeddingID   string  `gorm:"column:wedding_id;type:uuid;index;not null" json:"wedding_id"`
	Name        string  `gorm:"column:name;not null" json:"name"`
	Description string  `gorm:"column:description;not null;default:''" json:"description"`
	Price       float64 `gorm:"column:price;not null;default:0" json:"price"`
	ImageURL    string  `gorm:"column:image_url;type:text" json:"image_url"`
	Status      string  `gorm:"column:status;not null;default:'available'" json:"status"`
}

func (GiftRow) TableName() string { return "gifts" }

type SeatingTableRow struct {
	ID        string `gorm:"column:id;type:uuid;default:uuid_generate_v4();primaryKey" json:"id,omitempty"`
	WeddingID string `gorm:"column:wedding_id;type:uuid;index;not null" json:"wedding_id"`
	Name      string `gorm:"column:name;not null" json:"name"`
	GuestIDs  string `gorm:"column:guest_ids;type:text" json:"guest_ids"`
}

func (SeatingTableRow) TableName() string { return "seating_tables" }
