package core

import "strings"

// FormID identifies a game form. Identifiers are unique per loaded form.
type FormID uint32

// NoFormID is reported when no live base form backs an entry.
const NoFormID FormID = 0

// FormType is the broad type tag of a form.
type FormType uint8

const (
	// FormTypeNone marks forms the classifier does not recognize.
	FormTypeNone FormType = iota
	FormTypeScroll
	FormTypeArmor
	FormTypeBook
	FormTypeIngredient
	FormTypeLight
	FormTypeMisc
	FormTypeWeapon
	FormTypeAmmo
	FormTypeKey
	FormTypeAlchemy
	FormTypeSoulGem
	FormTypeNote
)

var formTypeNames = [...]string{
	FormTypeNone:       "none",
	FormTypeScroll:     "scroll",
	FormTypeArmor:      "armor",
	FormTypeBook:       "book",
	FormTypeIngredient: "ingredient",
	FormTypeLight:      "light",
	FormTypeMisc:       "misc",
	FormTypeWeapon:     "weapon",
	FormTypeAmmo:       "ammo",
	FormTypeKey:        "key",
	FormTypeAlchemy:    "alchemy",
	FormTypeSoulGem:    "soulgem",
	FormTypeNote:       "note",
}

// String returns the lower-case name of the form type.
func (t FormType) String() string {
	if int(t) < len(formTypeNames) {
		return formTypeNames[t]
	}
	return formTypeNames[FormTypeNone]
}

// ParseFormType maps a name produced by String back to its FormType.
// Unknown names map to FormTypeNone.
func ParseFormType(name string) FormType {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range formTypeNames {
		if n == name {
			return FormType(i)
		}
	}
	return FormTypeNone
}

// Form carries the fields every descriptor shares. It is embedded by all
// Descriptor variants.
type Form struct {
	ID       FormID
	Keywords []FormID
}

// FormID returns the form identifier.
func (f Form) FormID() FormID { return f.ID }

// HasKeyword reports whether the form carries the keyword.
func (f Form) HasKeyword(kw FormID) bool {
	for _, k := range f.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}
