package wedding

// Status values match what the remote store persists, so they travel
// unchanged through the sync layer.

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

// GuestSide records which side of the couple invited the guest.
type GuestSide string

const (
	SideBride GuestSide = "bride"
	SideGroom GuestSide = "groom"
)

// VendorStatus tracks where a supplier negotiation stands.
type VendorStatus string

const (
	VendorContacted   VendorStatus = "contacted"
	VendorNegotiating VendorStatus = "negotiating"
	VendorBooked      VendorStatus = "booked"
)

type GiftStatus string

const (
	GiftAvailable GiftStatus = "available"
	GiftReserved  GiftStatus = "reserved"
	GiftReceived  GiftStatus = "received"
)

type SubTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Category string     `json:"category"`
	Status   TaskStatus `json:"status"`
	Subtasks []SubTask  `json:"subtasks,omitempty"`
}

type Guest struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	RSVPStatus  RSVPStatus `json:"rsvpStatus"`
	PlusOnes    int        `json:"plusOnes"`
	Side        GuestSide  `json:"type"`
	IsGodparent bool       `json:"isGodparent"`
}

type BudgetItem struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Planned     float64 `json:"planned"`
	Spent       float64 `json:"spent"`
}

// Vendor is a supplier the couple is negotiating with. Vendors are
// client-only for now: the list does not survive a reload.
type Vendor struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Service string       `json:"service"`
	Contact string       `json:"contact"`
	Cost    float64      `json:"cost"`
	Status  VendorStatus `json:"status"`
	Rating  int          `json:"rating,omitempty"`
}

type Song struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url,omitempty"`
	YoutubeID string `json:"youtubeId,omitempty"`
	Moment    string `json:"moment"`
}

type Gift struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Status      GiftStatus `json:"status"`
}

type SeatingTable struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	GuestIDs []string `json:"guestIds"`
}

type PersonalItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes,omitempty"`
}

// CoupleItems is a fixed two-list structure, persisted as one serialized
// blob on the parent record.
type CoupleItems struct {
	Bride []PersonalItem `json:"bride"`
	Groom []PersonalItem `json:"groom"`
}

// Data is the full planning aggregate for one user. Every field has a
// usable zero default so readers never need to nil-check before rendering.
type Data struct {
	ID            string         `json:"id,omitempty"`
	CoupleName    string         `json:"coupleName"`
	WeddingDate   string         `json:"weddingDate"`
	Budget        float64        `json:"budget"`
	GuestCount    int            `json:"guestCount"`
	CeremonyType  string         `json:"ceremonyType"`
	Onboarded     bool           `json:"onboarded"`
	GiftPhone     string         `json:"giftPhone,omitempty"`
	Categories    []string       `json:"categories"`
	Tasks         []Task         `json:"tasks"`
	Guests        []Guest        `json:"guests"`
	BudgetItems   []BudgetItem   `json:"budgetItems"`
	Vendors       []Vendor       `json:"vendors"`
	Songs         []Song         `json:"songs"`
	Gifts         []Gift         `json:"gifts"`
	SeatingTables []SeatingTable `json:"seatingTables"`
	CoupleItems   CoupleItems    `json:"coupleItems"`
}

// Clone returns a copy that shares no slices with d, so a snapshot handed
// to a caller cannot mutate store state.
func (d Data) Clone() Data {
	out := d
	out.Categories = append([]string(nil), d.Categories...)
	out.Guests = append([]Guest(nil), d.Guests...)
	out.BudgetItems = append([]BudgetItem(nil), d.BudgetItems...)
	out.Vendors = append([]Vendor(nil), d.Vendors...)
	out.Songs = append([]Song(nil), d.Songs...)
	out.Gifts = append([]Gift(nil), d.Gifts...)

	out.Tasks = make([]Task, len(d.Tasks))
	for i, t := range d.Tasks {
		t.Subtasks = append([]SubTask(nil), t.Subtasks...)
		out.Tasks[i] = t
	}
	out.SeatingTables = make([]SeatingTable, len(d.SeatingTables))
	for i, t := range d.SeatingTables {
		t.GuestIDs = append([]string(nil), t.GuestIDs...)
		out.SeatingTables[i] = t
	}
	out.CoupleItems.Bride = append([]PersonalItem(nil), d.CoupleItems.Bride...)
	out.CoupleItems.Groom = append([]PersonalItem(nil), d.CoupleItems.Groom...)
	return out
}
