package category

// Info is the static table row for one category code.
type Info struct {
	// Label is the icon label handed to the display layer.
	Label string
	// Priority is the base priority before flag overrides; see PriorityOf.
	Priority Priority
}

// table has exactly one row per code, indexed by code. A code added without a
// row leaves an empty label, which the table tests reject.
var table = [codeCount]Info{
	None: {"none", PriorityOther},

	DefaultWeapon:    {"default_weapon", PriorityWeapon},
	WeaponSword:      {"weapon_sword", PriorityWeapon},
	WeaponGreatSword: {"weapon_greatsword", PriorityWeapon},
	WeaponDaedra:     {"weapon_daedra", PriorityWeapon},
	WeaponDagger:     {"weapon_dagger", PriorityWeapon},
	WeaponWarAxe:     {"weapon_waraxe", PriorityWeapon},
	WeaponBattleAxe:  {"weapon_battleaxe", PriorityWeapon},
	WeaponMace:       {"weapon_mace", PriorityWeapon},
	WeaponHammer:     {"weapon_hammer", PriorityWeapon},
	WeaponStaff:      {"weapon_staff", PriorityWeapon},
	WeaponBow:        {"weapon_bow", PriorityWeapon},
	WeaponArrow:      {"weapon_arrow", PriorityAmmo},
	WeaponPickAxe:    {"weapon_pickaxe", PriorityWeapon},
	WeaponWoodAxe:    {"weapon_woodaxe", PriorityWeapon},
	WeaponCrossbow:   {"weapon_crossbow", PriorityWeapon},
	WeaponBolt:       {"weapon_bolt", PriorityAmmo},

	DefaultArmor: {"default_armor", PriorityArmor},

	LightArmorBody:     {"lightarmor_body", PriorityArmor},
	LightArmorHead:     {"lightarmor_head", PriorityArmor},
	LightArmorHands:    {"lightarmor_hands", PriorityArmor},
	LightArmorForearms: {"lightarmor_forearms", PriorityArmor},
	LightArmorFeet:     {"lightarmor_feet", PriorityArmor},
	LightArmorCalves:   {"lightarmor_calves", PriorityArmor},
	LightArmorShield:   {"lightarmor_shield", PriorityArmor},
	LightArmorMask:     {"lightarmor_mask", PriorityArmor},

	ArmorBody:     {"armor_body", PriorityArmor},
	ArmorHead:     {"armor_head", PriorityArmor},
	ArmorHands:    {"armor_hands", PriorityArmor},
	ArmorForearms: {"armor_forearms", PriorityArmor},
	ArmorFeet:     {"armor_feet", PriorityArmor},
	ArmorCalves:   {"armor_calves", PriorityArmor},
	ArmorShield:   {"armor_shield", PriorityArmor},
	ArmorMask:     {"armor_mask", PriorityArmor},
	ArmorBracer:   {"armor_bracer", PriorityArmor},
	ArmorDaedra:   {"armor_daedra", PriorityArmor},

	ClothingBody:     {"clothing_body", PriorityArmor},
	ClothingRobe:     {"clothing_robe", PriorityArmor},
	ClothingHead:     {"clothing_head", PriorityArmor},
	ClothingPants:    {"clothing_pants", PriorityArmor},
	ClothingHands:    {"clothing_hands", PriorityArmor},
	ClothingForearms: {"clothing_forearms", PriorityArmor},
	ClothingFeet:     {"clothing_feet", PriorityArmor},
	ClothingCalves:   {"clothing_calves", PriorityArmor},
	ClothingShoes:    {"clothing_shoes", PriorityArmor},
	ClothingShield:   {"clothing_shield", PriorityArmor},
	ClothingMask:     {"clothing_mask", PriorityArmor},

	ArmorAmulet: {"armor_amulet", PriorityAmulet},
	ArmorRing:   {"armor_ring", PriorityRing},
	Circlet:     {"armor_circlet", PriorityArmor},

	DefaultScroll:   {"default_scroll", PriorityOther},
	DefaultBook:     {"default_book", PriorityOther},
	DefaultBookRead: {"default_book_read", PriorityOther},
	BookTome:        {"book_tome", PriorityOther},
	BookTomeRead:    {"book_tome_read", PriorityOther},
	BookJournal:     {"book_journal", PriorityOther},
	BookNote:        {"book_note", PriorityOther},
	BookMap:         {"book_map", PriorityOther},

	DefaultFood: {"default_food", PriorityFood},
	FoodWine:    {"food_wine", PriorityFood},
	FoodBeer:    {"food_beer", PriorityFood},

	DefaultIngredient: {"default_ingredient", PriorityOther},

	DefaultKey: {"default_key", PriorityKey},
	KeyHouse:   {"key_house", PriorityKey},

	DefaultPotion: {"default_potion", PriorityPotion},
	PotionHealth:  {"potion_health", PriorityPotion},
	PotionStam:    {"potion_stam", PriorityPotion},
	PotionMagic:   {"potion_magic", PriorityPotion},
	PotionPoison:  {"potion_poison", PriorityPoison},
	PotionFrost:   {"potion_frost", PriorityPotion},
	PotionFire:    {"potion_fire", PriorityPotion},
	PotionShock:   {"potion_shock", PriorityPotion},

	DefaultMisc:  {"default_misc", PriorityOther},
	MiscArtifact: {"misc_artifact", PriorityOther},
	MiscClutter:  {"misc_clutter", PriorityOther},
	MiscLockPick: {"misc_lockpick", PriorityLockPick},
	MiscSoulGem:  {"misc_soulgem", PrioritySoulGem},

	SoulGemEmpty:        {"soulgem_empty", PrioritySoulGem},
	SoulGemPartial:      {"soulgem_partial", PrioritySoulGem},
	SoulGemFull:         {"soulgem_full", PrioritySoulGem},
	SoulGemGrandEmpty:   {"soulgem_grandempty", PrioritySoulGem},
	SoulGemGrandPartial: {"soulgem_grandpartial", PrioritySoulGem},
	SoulGemGrandFull:    {"soulgem_grandfull", PrioritySoulGem},
	SoulGemAzura:        {"soulgem_azura", PrioritySoulGem},

	MiscGem:        {"misc_gem", PriorityGem},
	MiscOre:        {"misc_ore", PriorityOther},
	MiscIngot:      {"misc_ingot", PriorityOther},
	MiscHide:       {"misc_hide", PriorityOther},
	MiscStrips:     {"misc_strips", PriorityOther},
	MiscLeather:    {"misc_leather", PriorityOther},
	MiscWood:       {"misc_wood", PriorityOther},
	MiscRemains:    {"misc_remains", PriorityOther},
	MiscTrollSkull: {"misc_trollskull", PriorityOther},
	MiscTorch:      {"misc_torch", PriorityOther},
	MiscGoldSack:   {"misc_goldsack", PriorityOther},
	MiscGold:       {"misc_gold", PriorityGold},
	MiscDragonClaw: {"misc_dragonclaw", PriorityOther},
}

// Lookup returns the table row for c. Codes outside the table, Invalid
// included, fall back to the None row.
func Lookup(c Code) Info {
	if !c.Valid() {
		return table[None]
	}
	return table[c]
}

// Codes returns every defined code in numeric order.
func Codes() []Code {
	codes := make([]Code, 0, codeCount)
	for c := None; c < codeCount; c++ {
		codes = append(codes, c)
	}
	return codes
}

// ParseLabel maps an icon label back to its code.
func ParseLabel(label string) (Code, bool) {
	for i, info := range table {
		if info.Label == label {
			return Code(i), true
		}
	}
	return Invalid, false
}
