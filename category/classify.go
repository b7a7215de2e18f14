package category

import "github.com/hupe1980/lootsort/core"

// Classify returns the category code of a base form. A nil descriptor or an
// unrecognized variant yields None; every other branch ends in a default
// code, so Classify never fails.
func Classify(d core.Descriptor) Code {
	switch f := d.(type) {
	case core.Scroll:
		return DefaultScroll
	case core.Armor:
		return classifyArmor(f)
	case core.Book:
		return classifyBook(f)
	case core.Ingredient:
		return DefaultIngredient
	case core.Light:
		return MiscTorch
	case core.Misc:
		return classifyMisc(f)
	case core.Weapon:
		return classifyWeapon(f)
	case core.Ammo:
		if f.Bolt {
			return WeaponBolt
		}
		return WeaponArrow
	case core.Key:
		return DefaultKey
	case core.Alchemy:
		return classifyAlchemy(f)
	case core.SoulGem:
		return classifySoulGem(f)
	default:
		return None
	}
}

// Label is shorthand for Classify(d).Label().
func Label(d core.Descriptor) string {
	return Classify(d).Label()
}

func classifyBook(b core.Book) Code {
	switch {
	case b.Subtype == core.BookSubtypeRecipe || b.HasKeyword(KeywordVendorItemRecipe):
		return BookNote
	case b.HasKeyword(KeywordVendorItemSpellTome):
		return BookTome
	default:
		return DefaultBook
	}
}

var weaponCodes = map[core.WeaponKind]Code{
	core.WeaponOneHandSword:  WeaponSword,
	core.WeaponOneHandDagger: WeaponDagger,
	core.WeaponOneHandAxe:    WeaponWarAxe,
	core.WeaponOneHandMace:   WeaponMace,
	core.WeaponTwoHandSword:  WeaponGreatSword,
	core.WeaponTwoHandAxe:    WeaponBattleAxe,
	core.WeaponBow:           WeaponBow,
	core.WeaponStaff:         WeaponStaff,
	core.WeaponCrossbow:      WeaponCrossbow,
}

// WeaponCode maps a weapon kind to its code. The boolean is false for kinds
// without a dedicated code, in which case DefaultWeapon is returned.
func WeaponCode(kind core.WeaponKind) (Code, bool) {
	c, ok := weaponCodes[kind]
	if !ok {
		return DefaultWeapon, false
	}
	return c, true
}

func classifyWeapon(w core.Weapon) Code {
	c, _ := WeaponCode(w.Kind)
	return c
}

var potionCodes = map[core.ActorValue]Code{
	core.ActorValueHealth:      PotionHealth,
	core.ActorValueMagicka:     PotionMagic,
	core.ActorValueStamina:     PotionStam,
	core.ActorValueResistFire:  PotionFire,
	core.ActorValueResistShock: PotionShock,
	core.ActorValueResistFrost: PotionFrost,
}

func classifyAlchemy(a core.Alchemy) Code {
	switch {
	case a.Food:
		if a.ConsumptionSound == SoundPotionUse {
			return FoodWine
		}
		return DefaultFood
	case a.Poison:
		return PotionPoison
	case a.CostliestEffect == nil:
		return DefaultPotion
	}

	av := a.CostliestEffect.Skill
	if av == core.ActorValueNone {
		av = a.CostliestEffect.PrimaryValue
	}
	if c, ok := potionCodes[av]; ok {
		return c
	}
	return DefaultPotion
}

const (
	fillEmpty = iota
	fillPartial
	fillFull
)

// soulGemCodes is indexed by [capacity at or above grand][fill state].
var soulGemCodes = [2][3]Code{
	{SoulGemEmpty, SoulGemPartial, SoulGemFull},
	{SoulGemGrandEmpty, SoulGemGrandPartial, SoulGemGrandFull},
}

func classifySoulGem(g core.SoulGem) Code {
	if g.ID == FormAzurasStar || g.ID == FormBlackStar {
		return SoulGemAzura
	}

	tier := 0
	if g.Capacity >= core.SoulGrand {
		tier = 1
	}

	fill := fillPartial
	switch {
	case g.Contained == core.SoulNone:
		fill = fillEmpty
	case g.Contained >= g.Capacity:
		fill = fillFull
	}
	return soulGemCodes[tier][fill]
}
