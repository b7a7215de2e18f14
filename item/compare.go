package item

import "github.com/hupe1980/lootsort/internal/util"

// Compare orders entries for rendering. It returns a negative number when e
// sorts before other, a positive number when after, and 0 only for entries
// equal in every dimension.
//
// Dimensions, in order: quest item, key, note, book, gold, ammo and
// lockpick (each with true first), then value descending, display name
// ascending ignoring ASCII case, and form identifier ascending. Entries
// with distinct form identifiers never compare equal.
func (e *Entry) Compare(other *Entry) int {
	flags := [...]struct{ a, b bool }{
		{e.IsQuestItem(), other.IsQuestItem()},
		{e.IsKey(), other.IsKey()},
		{e.IsNote(), other.IsNote()},
		{e.IsBook(), other.IsBook()},
		{e.IsGold(), other.IsGold()},
		{e.IsAmmo(), other.IsAmmo()},
		{e.IsLockpick(), other.IsLockpick()},
	}
	for _, f := range flags {
		if f.a != f.b {
			if f.a {
				return -1
			}
			return 1
		}
	}

	if va, vb := e.Value(), other.Value(); va != vb {
		if va > vb {
			return -1
		}
		return 1
	}

	if c := util.CompareFold(e.DisplayName(), other.DisplayName()); c != 0 {
		return c
	}

	switch fa, fb := e.FormID(), other.FormID(); {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	default:
		return 0
	}
}

// Less reports whether e sorts before other under Compare.
func (e *Entry) Less(other *Entry) bool { return e.Compare(other) < 0 }
