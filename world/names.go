package world

import (
	"fmt"
	"strings"

	"github.com/hupe1980/lootsort/core"
)

var armorTypes = map[string]core.ArmorType{
	"clothing": core.ArmorTypeClothing,
	"light":    core.ArmorTypeLight,
	"heavy":    core.ArmorTypeHeavy,
}

var bipedSlots = map[string]core.BipedSlot{
	"head":     core.SlotHead,
	"hair":     core.SlotHair,
	"body":     core.SlotBody,
	"hands":    core.SlotHands,
	"forearms": core.SlotForearms,
	"amulet":   core.SlotAmulet,
	"ring":     core.SlotRing,
	"feet":     core.SlotFeet,
	"calves":   core.SlotCalves,
	"shield":   core.SlotShield,
	"tail":     core.SlotTail,
	"longhair": core.SlotLongHair,
	"circlet":  core.SlotCirclet,
	"ears":     core.SlotEars,
}

var weaponKinds = map[string]core.WeaponKind{
	"handtohand":    core.WeaponHandToHand,
	"onehandsword":  core.WeaponOneHandSword,
	"onehanddagger": core.WeaponOneHandDagger,
	"onehandaxe":    core.WeaponOneHandAxe,
	"onehandmace":   core.WeaponOneHandMace,
	"twohandsword":  core.WeaponTwoHandSword,
	"twohandaxe":    core.WeaponTwoHandAxe,
	"bow":           core.WeaponBow,
	"staff":         core.WeaponStaff,
	"crossbow":      core.WeaponCrossbow,
}

var soulLevels = map[string]core.SoulLevel{
	"none":    core.SoulNone,
	"petty":   core.SoulPetty,
	"lesser":  core.SoulLesser,
	"common":  core.SoulCommon,
	"greater": core.SoulGreater,
	"grand":   core.SoulGrand,
}

var actorValues = map[string]core.ActorValue{
	"none":        core.ActorValueNone,
	"health":      core.ActorValueHealth,
	"magicka":     core.ActorValueMagicka,
	"stamina":     core.ActorValueStamina,
	"resistfire":  core.ActorValueResistFire,
	"resistfrost": core.ActorValueResistFrost,
	"resistshock": core.ActorValueResistShock,
	"alteration":  core.ActorValueAlteration,
	"conjuration": core.ActorValueConjuration,
	"destruction": core.ActorValueDestruction,
	"illusion":    core.ActorValueIllusion,
	"restoration": core.ActorValueRestoration,
	"speedmult":   core.ActorValueSpeedMult,
	"carryweight": core.ActorValueCarryWeight,
}

// lookupName resolves a case-insensitive name; the empty name yields the
// zero value.
func lookupName[T any](table map[string]T, what, name string) (T, error) {
	var zero T
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return zero, nil
	}
	v, ok := table[key]
	if !ok {
		return zero, fmt.Errorf("unknown %s %q", what, name)
	}
	return v, nil
}
