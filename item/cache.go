package item

// Kind names one cached attribute of an Entry.
type Kind uint8

const (
	KindDisplayName Kind = iota
	KindEnchantmentCharge
	KindEnchanted
	KindFormID
	KindCategory
	KindValue
	KindWeight
	KindAmmo
	KindBook
	KindRead
	KindGold
	KindKey
	KindLockpick
	KindNote
	KindQuest
	KindStolen
	KindPriority
	KindPickpocketChance
	KindMuseumNew
	KindMuseumFound
	KindMuseumDisplayed

	kindCount
)

var kindNames = [kindCount]string{
	KindDisplayName:       "displayName",
	KindEnchantmentCharge: "enchantmentCharge",
	KindEnchanted:         "enchanted",
	KindFormID:            "formID",
	KindCategory:          "category",
	KindValue:             "value",
	KindWeight:            "weight",
	KindAmmo:              "ammo",
	KindBook:              "book",
	KindRead:              "read",
	KindGold:              "gold",
	KindKey:               "key",
	KindLockpick:          "lockpick",
	KindNote:              "note",
	KindQuest:             "quest",
	KindStolen:            "stolen",
	KindPriority:          "priority",
	KindPickpocketChance:  "pickpocketChance",
	KindMuseumNew:         "museumNew",
	KindMuseumFound:       "museumFound",
	KindMuseumDisplayed:   "museumDisplayed",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Cache memoizes derived attributes by kind. A kind is either absent or
// holds its final value; there is no invalidation.
//
// The zero value is ready to use.
type Cache struct {
	values map[Kind]any
}

// Get returns the cached value for kind and whether it has been computed.
func (c *Cache) Get(kind Kind) (any, bool) {
	v, ok := c.values[kind]
	return v, ok
}

// Set stores value for kind unless a value is already present. It reports
// whether the value was stored.
func (c *Cache) Set(kind Kind, value any) bool {
	if _, ok := c.values[kind]; ok {
		return false
	}
	if c.values == nil {
		c.values = make(map[Kind]any, kindCount)
	}
	c.values[kind] = value
	return true
}

// Len returns the number of computed kinds.
func (c *Cache) Len() int { return len(c.values) }

// memo returns the cached value for kind, deriving and storing it on first
// use.
func memo[T any](c *Cache, kind Kind, derive func() T) T {
	if v, ok := c.Get(kind); ok {
		return v.(T)
	}
	v := derive()
	c.Set(kind, v)
	return v
}
