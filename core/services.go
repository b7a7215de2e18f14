package core

// ObjectResolver turns handles into live references. Resolve must be called
// fresh on every attribute derivation; a false result means the object was
// destroyed or never existed.
type ObjectResolver interface {
	Resolve(h RefHandle) (Reference, bool)
}

// OwnershipOracle answers legal-ownership questions for the current player.
type OwnershipOracle interface {
	// Player returns the player's form identifier, false when no player exists.
	Player() (FormID, bool)
	// IsOwnedBy reports whether actor legally owns the inventory entry.
	// defaultOwned is the answer when the entry carries no ownership data.
	IsOwnedBy(entry InventoryEntry, actor FormID, defaultOwned bool) bool
	// IsCrimeToActivate reports whether picking up ref counts as theft.
	IsCrimeToActivate(ref Reference) bool
}

// PickpocketEstimator reports the chance (0-100) of pickpocketing an object.
type PickpocketEstimator interface {
	PickpocketChance(obj ItemObject, count int) (int, bool)
}

// MuseumTracker answers museum-collection questions by form identifier.
type MuseumTracker interface {
	IsNew(id FormID) bool
	IsFound(id FormID) bool
	IsDisplayed(id FormID) bool
}

// SettingsProvider supplies the display settings. It is read once per
// display refresh and never mutated by lootsort.
type SettingsProvider interface {
	Settings() Settings
}

// Settings is a snapshot of the display configuration.
type Settings struct {
	ShowEnchanted       bool     `json:"showEnchanted" mapstructure:"showEnchanted"`
	ShowMuseumNew       bool     `json:"showMuseumNew" mapstructure:"showMuseumNew"`
	ShowMuseumFound     bool     `json:"showMuseumFound" mapstructure:"showMuseumFound"`
	ShowMuseumDisplayed bool     `json:"showMuseumDisplayed" mapstructure:"showMuseumDisplayed"`
	ShowBookRead        bool     `json:"showBookRead" mapstructure:"showBookRead"`
	SortOrder           []string `json:"sortOrder" mapstructure:"sortOrder"`
}
