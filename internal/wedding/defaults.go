package wedding

// DefaultCeremonyType is not persisted remotely yet; every load resets to it.
const DefaultCeremonyType = "Religiosa"

// DefaultCategories returns the fixed checklist category list. Categories are
// client-only for now: edits to the list do not survive a reload.
func DefaultCategories() []string {
	return []string{
		"Cerimônia",
		"Festa",
		"Documentação",
		"Vestuário",
		"Fotografia",
		"Decoração",
		"Convidados",
		"Lua de Mel",
	}
}

// SeedTasks is the starter checklist inserted when a wedding is created.
func SeedTasks() []Task {
	return []Task{
		{ID: "1", Title: "Definir lista de convidados inicial", Category: "Convidados", Status: TaskCompleted},
		{ID: "2", Title: "Reservar local da cerimônia", Category: "Cerimônia", Status: TaskInProgress},
		{ID: "3", Title: "Contratar fotógrafo", Category: "Fotografia", Status: TaskPending},
		{ID: "4", Title: "Escolher o vestido/terno", Category: "Vestuário", Status: TaskPending},
		{ID: "5", Title: "Planejar lua de mel", Category: "Lua de Mel", Status: TaskPending},
	}
}

func SeedBudgetItems() []BudgetItem {
	return []BudgetItem{
		{ID: "b1", Category: "Buffet", Planned: 0, Spent: 0},
		{ID: "b2", Category: "Local", Planned: 0, Spent: 5000},
		{ID: "b3", Category: "Decoração", Planned: 0, Spent: 0},
		{ID: "b4", Category: "Vestuário", Planned: 0, Spent: 1200},
	}
}

func SeedSongs() []Song {
	return []Song{
		{ID: "s1", Title: "Entrada dos noivos", Moment: "Cerimônia - Entrada"},
		{ID: "s2", Title: "Troca das alianças", Moment: "Cerimônia - Alianças"},
		{ID: "s3", Title: "Primeira dança", Moment: "Primeira Dança"},
	}
}

func SeedGifts() []Gift {
	return []Gift{
		{ID: "g1", Name: "Jogo de panelas", Price: 450, Status: GiftAvailable},
		{ID: "g2", Name: "Jogo de taças", Price: 180, Status: GiftAvailable},
		{ID: "g3", Name: "Aspirador robô", Price: 1500, Status: GiftAvailable},
		{ID: "g4", Name: "Jogo de cama king", Price: 320, Status: GiftAvailable},
	}
}

func DefaultCoupleItems() CoupleItems {
	return CoupleItems{
		Bride: []PersonalItem{
			{ID: "br1", Name: "Cabelo e make"},
			{ID: "br2", Name: "Vestido"},
			{ID: "br3", Name: "Sapato"},
			{ID: "br4", Name: "Perfume"},
			{ID: "br5", Name: "Bouquet"},
			{ID: "br6", Name: "Unha"},
			{ID: "br7", Name: "Sobrancelha"},
			{ID: "br8", Name: "Lingerie"},
		},
		Groom: []PersonalItem{
			{ID: "gr1", Name: "Cabelo"},
			{ID: "gr2", Name: "Barba"},
			{ID: "gr3", Name: "Terno"},
			{ID: "gr4", Name: "Gravata"},
			{ID: "gr5", Name: "Sapato"},
			{ID: "gr6", Name: "Perfume"},
		},
	}
}

// MusicMoments lists the occasion labels offered for songs.
func MusicMoments() []string {
	return []string{
		"Cerimônia - Entrada",
		"Cerimônia - Alianças",
		"Cerimônia - Saída",
		"Primeira Dança",
		"Jantar",
		"Coquetel",
		"Festa",
	}
}

// DefaultData is the renderable empty aggregate used before a wedding
// exists remotely (and as the base every load starts from).
func DefaultData() Data {
	return Data{
		CeremonyType:  DefaultCeremonyType,
		Categories:    DefaultCategories(),
		Tasks:         SeedTasks(),
		Guests:        []Guest{},
		BudgetItems:   SeedBudgetItems(),
		Vendors:       []Vendor{},
		Songs:         []Song{},
		Gifts:         []Gift{},
		SeatingTables: []SeatingTable{},
		CoupleItems:   DefaultCoupleItems(),
	}
}
