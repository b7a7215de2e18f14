package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_OneRowPerCode(t *testing.T) {
	seen := make(map[string]Code, Count)
	for _, c := range Codes() {
		info := Lookup(c)
		require.NotEmpty(t, info.Label, "code %d has no label", c)

		prev, dup := seen[info.Label]
		assert.False(t, dup, "label %q shared by %d and %d", info.Label, prev, c)
		seen[info.Label] = c

		parsed, ok := ParseLabel(info.Label)
		assert.True(t, ok)
		assert.Equal(t, c, parsed)
	}
	assert.Len(t, seen, Count)
}

func TestTable_LabelsMatchNumbering(t *testing.T) {
	assert.Equal(t, "none", None.Label())
	assert.Equal(t, "weapon_staff", WeaponStaff.Label())
	assert.Equal(t, "lightarmor_hands", LightArmorHands.Label())
	assert.Equal(t, "armor_feet", ArmorFeet.Label())
	assert.Equal(t, "clothing_hands", ClothingHands.Label())
	assert.Equal(t, "default_scroll", DefaultScroll.Label())
	assert.Equal(t, "food_beer", FoodBeer.Label())
	assert.Equal(t, "potion_fire", PotionFire.Label())
	assert.Equal(t, "soulgem_grandempty", SoulGemGrandEmpty.Label())
	assert.Equal(t, "misc_wood", MiscWood.Label())
	assert.Equal(t, "misc_dragonclaw", MiscDragonClaw.Label())

	assert.Equal(t, Code(10), WeaponStaff)
	assert.Equal(t, Code(50), DefaultScroll)
	assert.Equal(t, Code(96), MiscDragonClaw)
	assert.Equal(t, 97, Count)
}

func TestLookup_OutOfRange(t *testing.T) {
	assert.Equal(t, "none", Lookup(Code(Count)).Label)
	assert.Equal(t, "none", Lookup(Code(12345)).Label)
	assert.Equal(t, "none", Invalid.Label())
	assert.Equal(t, "invalid", Invalid.String())
	assert.False(t, Invalid.Valid())

	_, ok := ParseLabel("not_a_label")
	assert.False(t, ok)
}

func TestPriorityOf(t *testing.T) {
	tests := []struct {
		name  string
		code  Code
		flags Flags
		want  Priority
	}{
		{"key flag", DefaultKey, Flags{Key: true}, PriorityKey},
		{"key beats gold", MiscGold, Flags{Key: true, Gold: true}, PriorityKey},
		{"gold", MiscGold, Flags{Gold: true}, PriorityGold},
		{"lockpick", MiscLockPick, Flags{Lockpick: true}, PriorityLockPick},
		{"ammo", WeaponArrow, Flags{Ammo: true}, PriorityAmmo},
		{"soul gem", SoulGemFull, Flags{}, PrioritySoulGem},
		{"potion", PotionHealth, Flags{}, PriorityPotion},
		{"poison", PotionPoison, Flags{}, PriorityPoison},
		{"enchanted weapon", WeaponSword, Flags{Enchanted: true}, PriorityEnchantedWeapon},
		{"enchanted armor", ArmorBody, Flags{Enchanted: true}, PriorityEnchantedArmor},
		{"enchanted ring stays ring", ArmorRing, Flags{Enchanted: true}, PriorityRing},
		{"gem", MiscGem, Flags{}, PriorityGem},
		{"amulet", ArmorAmulet, Flags{}, PriorityAmulet},
		{"weapon", WeaponBow, Flags{}, PriorityWeapon},
		{"armor", ClothingFeet, Flags{}, PriorityArmor},
		{"food", DefaultFood, Flags{}, PriorityFood},
		{"misc is other", DefaultMisc, Flags{}, PriorityOther},
		{"out of range is other", Invalid, Flags{}, PriorityOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityOf(tt.code, tt.flags))
		})
	}

	assert.Less(t, PriorityKey, PriorityGold)
	assert.Less(t, PriorityPotion, PriorityPoison)
	assert.Less(t, PriorityRing, PriorityWeapon)
	assert.Equal(t, "enchanted_armor", PriorityEnchantedArmor.String())
}
