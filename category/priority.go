package category

// Priority is a coarse ordinal used as one sort dimension. Lower values sort
// first under the ascending priority comparator.
type Priority uint8

const (
	PriorityKey Priority = iota
	PriorityGold
	PriorityLockPick
	PriorityAmmo
	PrioritySoulGem
	PriorityPotion
	PriorityPoison
	PriorityEnchantedWeapon
	PriorityEnchantedArmor
	PriorityGem
	PriorityAmulet
	PriorityRing
	PriorityWeapon
	PriorityArmor
	PriorityFood
	PriorityOther = PriorityFood
)

var priorityNames = [...]string{
	PriorityKey:             "key",
	PriorityGold:            "gold",
	PriorityLockPick:        "lockpick",
	PriorityAmmo:            "ammo",
	PrioritySoulGem:         "soulgem",
	PriorityPotion:          "potion",
	PriorityPoison:          "poison",
	PriorityEnchantedWeapon: "enchanted_weapon",
	PriorityEnchantedArmor:  "enchanted_armor",
	PriorityGem:             "gem",
	PriorityAmulet:          "amulet",
	PriorityRing:            "ring",
	PriorityWeapon:          "weapon",
	PriorityArmor:           "armor",
	PriorityFood:            "other",
}

func (p Priority) String() string {
	if int(p) < len(priorityNames) {
		return priorityNames[p]
	}
	return "other"
}

// Flags are the entry flags that override the table priority.
type Flags struct {
	Key       bool
	Gold      bool
	Lockpick  bool
	Ammo      bool
	Enchanted bool
}

// PriorityOf derives the priority of an entry from its flags and code. Key,
// gold, lockpick and ammo flags win over the table; enchantment promotes
// plain weapons and armor.
func PriorityOf(c Code, f Flags) Priority {
	switch {
	case f.Key:
		return PriorityKey
	case f.Gold:
		return PriorityGold
	case f.Lockpick:
		return PriorityLockPick
	case f.Ammo:
		return PriorityAmmo
	}

	p := Lookup(c).Priority
	if f.Enchanted {
		switch p {
		case PriorityWeapon:
			return PriorityEnchantedWeapon
		case PriorityArmor:
			return PriorityEnchantedArmor
		}
	}
	return p
}
