package world

import (
	"testing"

	"github.com/hupe1980/lootsort/category"
	"github.com/hupe1980/lootsort/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld_PlaceResolveDestroy(t *testing.T) {
	w := New()
	obj := &Object{Form: core.Misc{Form: core.Form{ID: 0x1}}, Name: "Goblet"}

	h := w.Place(obj)
	ref, ok := w.Resolve(h)
	require.True(t, ok)
	assert.Equal(t, "Goblet", ref.DisplayName())

	assert.True(t, w.Destroy(h))
	assert.False(t, w.Destroy(h))
	_, ok = w.Resolve(h)
	assert.False(t, ok)

	// handles are not reused
	h2 := w.Place(obj)
	assert.NotEqual(t, h, h2)
	assert.Equal(t, 1, w.Len())
}

func TestWorld_Ownership(t *testing.T) {
	w := New()
	player, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, DefaultPlayer, player)

	mine := &Object{Owner: DefaultPlayer}
	theirs := &Object{Owner: 0x1A2B}
	unowned := &Object{}

	assert.True(t, w.IsOwnedBy(mine, player, false))
	assert.False(t, w.IsOwnedBy(theirs, player, true))
	assert.True(t, w.IsOwnedBy(unowned, player, true))
	assert.False(t, w.IsOwnedBy(unowned, player, false))

	assert.True(t, w.IsCrimeToActivate(&Object{Crime: true}))
	assert.False(t, w.IsCrimeToActivate(unowned))

	w.SetPlayer(core.NoFormID)
	_, ok = w.Player()
	assert.False(t, ok)
}

func TestWorld_PickpocketChance(t *testing.T) {
	disabled := New()
	_, ok := disabled.PickpocketChance(&Object{}, 1)
	assert.False(t, ok)

	w := New(func(o *Options) { o.PickpocketBase = 90 })
	chance, ok := w.PickpocketChance(&Object{Value: 100, Mass: 2.5}, 2)
	require.True(t, ok)
	// 90 - ceil(5.0) - 200/10
	assert.Equal(t, 65, chance)

	chance, _ = w.PickpocketChance(&Object{Value: 5000, Mass: 10}, 1)
	assert.Zero(t, chance)

	generous := New(func(o *Options) { o.PickpocketBase = 150 })
	chance, _ = generous.PickpocketChance(&Object{}, 1)
	assert.Equal(t, 100, chance)
}

func TestLoadYAML_Scene(t *testing.T) {
	fx, err := LoadYAML("testdata/scene.yaml")
	require.NoError(t, err)

	assert.True(t, fx.Stealing)
	require.Len(t, fx.Inventory, 7)
	require.Len(t, fx.Ground, 5)

	gold := fx.Inventory[0]
	assert.Equal(t, 57, gold.Count)
	assert.Equal(t, category.MiscGold, category.Classify(gold.Object.Base()))

	dagger := fx.Inventory[1]
	charge, ok := dagger.Object.EnchantmentCharge()
	require.True(t, ok)
	assert.InDelta(t, 400.0, charge, 1e-9)
	assert.Equal(t, category.WeaponDagger, category.Classify(dagger.Object.Base()))

	assert.Equal(t, category.BookTome, category.Classify(fx.Inventory[4].Object.Base()))
	assert.Equal(t, category.FoodWine, category.Classify(fx.Inventory[6].Object.Base()))
	assert.Equal(t, category.PotionHealth, category.Classify(fx.Inventory[3].Object.Base()))

	picks := fx.Ground[0]
	require.Len(t, picks.Handles, 2)
	assert.Equal(t, 2, picks.Count)
	_, ok = fx.World.Resolve(picks.Handles[0])
	assert.False(t, ok, "destroyed reference must not resolve")
	ref, ok := fx.World.Resolve(picks.Handles[1])
	require.True(t, ok)
	assert.Equal(t, "Lockpick", ref.DisplayName())

	assert.Equal(t, 24, fx.Ground[1].Count)

	mask, ok := fx.World.Resolve(fx.Ground[2].Handles[0])
	require.True(t, ok)
	assert.Equal(t, category.ArmorMask, category.Classify(mask.Base()))
	assert.True(t, fx.World.IsCrimeToActivate(mask))
}

func TestParseYAML_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown form":   "inventory:\n  - form: 0x99\n",
		"unknown weapon": "forms:\n  - id: 0x1\n    type: weapon\n    weapon: spear\n",
		"unknown slot":   "forms:\n  - id: 0x1\n    type: armor\n    slots: [wings]\n",
		"missing id":     "forms:\n  - type: misc\n",
		"duplicate":      "forms:\n  - id: 0x1\n    type: misc\n  - id: 0x1\n    type: key\n",
		"bad yaml":       "forms: [",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseYAML([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseYAML_UnknownTypeIsOther(t *testing.T) {
	fx, err := ParseYAML([]byte("forms:\n  - id: 0x7\n    type: furniture\ninventory:\n  - form: 0x7\n"))
	require.NoError(t, err)
	require.Len(t, fx.Inventory, 1)

	base := fx.Inventory[0].Object.Base()
	assert.Equal(t, core.FormTypeNone, base.FormType())
	assert.Equal(t, category.None, category.Classify(base))
}
