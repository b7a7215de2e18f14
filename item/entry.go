package item

import (
	"math"

	"github.com/hupe1980/lootsort/category"
	"github.com/hupe1980/lootsort/core"
)

// Defaults reported when no backing object can be read.
const (
	// NoValue is the value of an entry whose source never resolves.
	NoValue = math.MinInt
	// NoCharge is the enchantment charge of an entry without a charge.
	NoCharge = -1.0
)

// Entry is one displayable row of a loot list.
//
// Contract:
//   - every attribute is derived at most once; later reads hit the cache
//   - derivation never fails, unresolvable sources yield documented defaults
//   - ground stacks read from the first live reference, except Stolen and
//     IsQuestItem which hold when any live reference qualifies
//   - value and weight are per-unit figures multiplied by Count at
//     derivation time
type Entry struct {
	src      Source
	count    int
	stealing bool
	svc      Services
	cache    Cache
}

// NewInventoryEntry creates an entry backed by one inventory slot. stealing
// marks entries offered while taking from a container the player does not
// own; unowned slots then count as stolen.
func NewInventoryEntry(svc Services, count int, stealing bool, entry core.InventoryEntry) *Entry {
	return &Entry{
		src:      InventorySource{Entry: entry},
		count:    count,
		stealing: stealing,
		svc:      svc,
	}
}

// NewGroundEntry creates an entry backed by a stack of world references.
// The handle slice is copied.
func NewGroundEntry(svc Services, count int, stealing bool, handles []core.RefHandle) *Entry {
	hs := make([]core.RefHandle, len(handles))
	copy(hs, handles)
	return &Entry{
		src:      GroundSource{Handles: hs},
		count:    count,
		stealing: stealing,
		svc:      svc,
	}
}

// Source returns the backing source.
func (e *Entry) Source() Source { return e.src }

// Count returns the logical count.
func (e *Entry) Count() int { return e.count }

// ModCount adjusts the logical count by delta. Cached value and weight are
// left untouched.
func (e *Entry) ModCount(delta int) { e.count += delta }

// Stealing reports whether the entry was built in stealing mode.
func (e *Entry) Stealing() bool { return e.stealing }

// Cache exposes the attribute cache, mainly for inspection in tests.
func (e *Entry) Cache() *Cache { return &e.cache }

// object returns the object base-dependent attributes are read from: the
// inventory slot, or the first ground reference that resolves and still has
// a base form.
func (e *Entry) object() (core.ItemObject, bool) {
	switch src := e.src.(type) {
	case InventorySource:
		if src.Entry == nil {
			return nil, false
		}
		return src.Entry, true
	case GroundSource:
		var found core.ItemObject
		ok := src.each(e.svc.Resolver, func(ref core.Reference) bool {
			if ref.Base() == nil {
				return false
			}
			found = ref
			return true
		})
		return found, ok
	default:
		return nil, false
	}
}

// live returns the inventory slot or the first ground reference that
// resolves.
func (e *Entry) live() (core.ItemObject, bool) {
	if src, ok := e.src.(GroundSource); ok {
		var found core.ItemObject
		ok := src.each(e.svc.Resolver, func(ref core.Reference) bool {
			found = ref
			return true
		})
		return found, ok
	}
	return e.object()
}

// base returns the base form of the backing object, nil when there is none.
func (e *Entry) base() core.Descriptor {
	obj, ok := e.object()
	if !ok {
		return nil
	}
	return obj.Base()
}

func (e *Entry) formType() core.FormType {
	b := e.base()
	if b == nil {
		return core.FormTypeNone
	}
	return b.FormType()
}

// DisplayName returns the display name. A ground stack takes the first live
// reference that has a name; the default is the empty string.
func (e *Entry) DisplayName() string {
	return memo(&e.cache, KindDisplayName, func() string {
		switch src := e.src.(type) {
		case InventorySource:
			if src.Entry != nil {
				return src.Entry.DisplayName()
			}
		case GroundSource:
			var name string
			src.each(e.svc.Resolver, func(ref core.Reference) bool {
				name = ref.DisplayName()
				return name != ""
			})
			return name
		}
		return ""
	})
}

// EnchantmentCharge returns the remaining charge, or NoCharge. A ground stack
// takes the first live reference that carries a charge.
func (e *Entry) EnchantmentCharge() float64 {
	return memo(&e.cache, KindEnchantmentCharge, func() float64 {
		switch src := e.src.(type) {
		case InventorySource:
			if src.Entry != nil {
				if c, ok := src.Entry.EnchantmentCharge(); ok {
					return c
				}
			}
		case GroundSource:
			charge := NoCharge
			src.each(e.svc.Resolver, func(ref core.Reference) bool {
				c, ok := ref.EnchantmentCharge()
				if ok {
					charge = c
				}
				return ok
			})
			return charge
		}
		return NoCharge
	})
}

// IsEnchanted reports whether the backing object is enchanted. Ground stacks
// ask their first live reference, with or without a base form.
func (e *Entry) IsEnchanted() bool {
	return memo(&e.cache, KindEnchanted, func() bool {
		obj, ok := e.live()
		return ok && obj.IsEnchanted()
	})
}

// FormID returns the base form identifier, or core.NoFormID.
func (e *Entry) FormID() core.FormID {
	return memo(&e.cache, KindFormID, func() core.FormID {
		if b := e.base(); b != nil {
			return b.FormID()
		}
		return core.NoFormID
	})
}

// Category returns the category code of the base form; category.None when
// the source never resolves.
func (e *Entry) Category() category.Code {
	return memo(&e.cache, KindCategory, func() category.Code {
		return category.Classify(e.base())
	})
}

// IconLabel returns the icon label of the entry's category.
func (e *Entry) IconLabel() string {
	return e.Category().Label()
}

// Value returns the per-unit value times Count, or NoValue.
func (e *Entry) Value() int {
	return memo(&e.cache, KindValue, func() int {
		obj, ok := e.object()
		if !ok {
			return NoValue
		}
		return obj.GoldValue() * e.count
	})
}

// Weight returns the per-unit weight times Count, or 0.
func (e *Entry) Weight() float64 {
	return memo(&e.cache, KindWeight, func() float64 {
		obj, ok := e.object()
		if !ok {
			return 0
		}
		return obj.Weight() * float64(e.count)
	})
}

// IsAmmo reports whether the base form is ammunition.
func (e *Entry) IsAmmo() bool {
	return memo(&e.cache, KindAmmo, func() bool { return e.formType() == core.FormTypeAmmo })
}

// IsBook reports whether the base form is a book.
func (e *Entry) IsBook() bool {
	return memo(&e.cache, KindBook, func() bool { return e.formType() == core.FormTypeBook })
}

// IsRead reports whether the book has been read. Entries that are not books
// are never read, and the read state is then neither derived nor cached.
func (e *Entry) IsRead() bool {
	if !e.IsBook() {
		return false
	}
	return memo(&e.cache, KindRead, func() bool {
		b, ok := e.base().(core.Book)
		return ok && b.Read
	})
}

// IsGold reports whether the base form is the gold coin.
func (e *Entry) IsGold() bool {
	return memo(&e.cache, KindGold, func() bool { return e.hasBaseID(category.FormGold) })
}

// IsKey reports whether the base form is a key.
func (e *Entry) IsKey() bool {
	return memo(&e.cache, KindKey, func() bool { return e.formType() == core.FormTypeKey })
}

// IsLockpick reports whether the base form is the lockpick.
func (e *Entry) IsLockpick() bool {
	return memo(&e.cache, KindLockpick, func() bool { return e.hasBaseID(category.FormLockpick) })
}

// IsNote reports whether the base form is a note.
func (e *Entry) IsNote() bool {
	return memo(&e.cache, KindNote, func() bool { return e.formType() == core.FormTypeNote })
}

func (e *Entry) hasBaseID(id core.FormID) bool {
	b := e.base()
	return b != nil && b.FormID() == id
}

// IsQuestItem reports whether the entry is a quest item. A ground stack is a
// quest item when any live reference is.
func (e *Entry) IsQuestItem() bool {
	return memo(&e.cache, KindQuest, func() bool {
		switch src := e.src.(type) {
		case InventorySource:
			return src.Entry != nil && src.Entry.IsQuestItem()
		case GroundSource:
			return src.each(e.svc.Resolver, func(ref core.Reference) bool {
				return ref.IsQuestItem()
			})
		}
		return false
	})
}

// IsStolen reports whether taking the entry is theft. An inventory slot is
// stolen when the player does not own it; in stealing mode a slot without
// ownership data counts as not owned. A ground stack is stolen when any live
// reference is a crime to activate. Without a player nothing is stolen.
func (e *Entry) IsStolen() bool {
	return memo(&e.cache, KindStolen, func() bool {
		oracle := e.svc.Oracle
		if oracle == nil {
			return false
		}
		player, ok := oracle.Player()
		if !ok {
			return false
		}

		switch src := e.src.(type) {
		case InventorySource:
			return src.Entry != nil && !oracle.IsOwnedBy(src.Entry, player, !e.stealing)
		case GroundSource:
			return src.each(e.svc.Resolver, func(ref core.Reference) bool {
				return oracle.IsCrimeToActivate(ref)
			})
		}
		return false
	})
}

// Priority returns the sort priority derived from the entry's flags and
// category.
func (e *Entry) Priority() category.Priority {
	return memo(&e.cache, KindPriority, func() category.Priority {
		return category.PriorityOf(e.Category(), category.Flags{
			Key:       e.IsKey(),
			Gold:      e.IsGold(),
			Lockpick:  e.IsLockpick(),
			Ammo:      e.IsAmmo(),
			Enchanted: e.IsEnchanted(),
		})
	})
}

// PickpocketChance returns the chance (0-100) of pickpocketing the whole
// stack, 0 when no estimate is available.
func (e *Entry) PickpocketChance() int {
	return memo(&e.cache, KindPickpocketChance, func() int {
		est := e.svc.Pickpocket
		if est == nil {
			return 0
		}
		obj, ok := e.object()
		if !ok {
			return 0
		}
		chance, ok := est.PickpocketChance(obj, e.count)
		if !ok {
			return 0
		}
		return chance
	})
}

// IsMuseumNew reports whether the museum tracker lists the form as new.
func (e *Entry) IsMuseumNew() bool {
	return memo(&e.cache, KindMuseumNew, func() bool {
		return e.svc.Museum != nil && e.svc.Museum.IsNew(e.FormID())
	})
}

// IsMuseumFound reports whether the museum tracker lists the form as found.
func (e *Entry) IsMuseumFound() bool {
	return memo(&e.cache, KindMuseumFound, func() bool {
		return e.svc.Museum != nil && e.svc.Museum.IsFound(e.FormID())
	})
}

// IsMuseumDisplayed reports whether the form is already on display.
func (e *Entry) IsMuseumDisplayed() bool {
	return memo(&e.cache, KindMuseumDisplayed, func() bool {
		return e.svc.Museum != nil && e.svc.Museum.IsDisplayed(e.FormID())
	})
}
