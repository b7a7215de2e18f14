package world

import (
	"errors"
	"fmt"
	"os"

	"github.com/hupe1980/lootsort/core"
	"gopkg.in/yaml.v3"
)

// Fixture is a decoded scene: a world, the container being looted and the
// ground stacks around the player.
type Fixture struct {
	World     *World
	Inventory []Slot
	Ground    []Stack
	// Stealing is true when the container belongs to someone else.
	Stealing bool
}

type fixtureFile struct {
	Player         *uint32        `yaml:"player"`
	PickpocketBase int            `yaml:"pickpocketBase"`
	Stealing       bool           `yaml:"stealing"`
	Forms          []formSpec     `yaml:"forms"`
	Inventory      []instanceSpec `yaml:"inventory"`
	Ground         []stackSpec    `yaml:"ground"`
}

type formSpec struct {
	ID       uint32   `yaml:"id"`
	Type     string   `yaml:"type"`
	Keywords []uint32 `yaml:"keywords"`

	Armor string   `yaml:"armor"`
	Slots []string `yaml:"slots"`

	Weapon string `yaml:"weapon"`
	Bolt   bool   `yaml:"bolt"`

	Subtype uint8 `yaml:"subtype"`
	Read    bool  `yaml:"read"`

	Food   bool        `yaml:"food"`
	Poison bool        `yaml:"poison"`
	Sound  uint32      `yaml:"sound"`
	Effect *effectSpec `yaml:"effect"`

	Capacity  string `yaml:"capacity"`
	Contained string `yaml:"contained"`
}

type effectSpec struct {
	Skill   string `yaml:"skill"`
	Primary string `yaml:"primary"`
}

type instanceSpec struct {
	Form      uint32   `yaml:"form"`
	Name      string   `yaml:"name"`
	Value     int      `yaml:"value"`
	Weight    float64  `yaml:"weight"`
	Charge    *float64 `yaml:"charge"`
	Enchanted bool     `yaml:"enchanted"`
	Quest     bool     `yaml:"quest"`
	Owner     uint32   `yaml:"owner"`
	Crime     bool     `yaml:"crime"`
	Count     int      `yaml:"count"`
	Destroyed bool     `yaml:"destroyed"`
}

type stackSpec struct {
	Count int            `yaml:"count"`
	Refs  []instanceSpec `yaml:"refs"`
}

// LoadYAML reads a fixture file.
func LoadYAML(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: read %s: %w", path, err)
	}
	fx, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("world: %s: %w", path, err)
	}
	return fx, nil
}

// ParseYAML decodes a fixture document.
//
// Forms are declared once under "forms" and referenced by identifier from
// inventory slots and ground references. A ground reference marked
// "destroyed" is placed and immediately destroyed, leaving a stale handle in
// its stack. Stack counts default to the number of references, slot counts
// to 1.
func ParseYAML(data []byte) (*Fixture, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	forms := make(map[core.FormID]core.Descriptor, len(f.Forms))
	for i, decl := range f.Forms {
		d, err := decl.descriptor()
		if err != nil {
			return nil, fmt.Errorf("forms[%d] (%#x): %w", i, decl.ID, err)
		}
		if _, dup := forms[d.FormID()]; dup {
			return nil, fmt.Errorf("forms[%d]: duplicate identifier %#x", i, decl.ID)
		}
		forms[d.FormID()] = d
	}

	w := New(func(o *Options) {
		if f.Player != nil {
			o.Player = core.FormID(*f.Player)
		}
		o.PickpocketBase = f.PickpocketBase
	})
	fx := &Fixture{World: w, Stealing: f.Stealing}

	for i, decl := range f.Inventory {
		obj, err := decl.object(forms)
		if err != nil {
			return nil, fmt.Errorf("inventory[%d]: %w", i, err)
		}
		count := decl.Count
		if count == 0 {
			count = 1
		}
		fx.Inventory = append(fx.Inventory, Slot{Object: obj, Count: count})
	}

	for i, stack := range f.Ground {
		st := Stack{Count: stack.Count}
		for j, decl := range stack.Refs {
			obj, err := decl.object(forms)
			if err != nil {
				return nil, fmt.Errorf("ground[%d].refs[%d]: %w", i, j, err)
			}
			h := w.Place(obj)
			if decl.Destroyed {
				w.Destroy(h)
			}
			st.Handles = append(st.Handles, h)
		}
		if st.Count == 0 {
			st.Count = len(st.Handles)
		}
		fx.Ground = append(fx.Ground, st)
	}
	return fx, nil
}

func (s instanceSpec) object(forms map[core.FormID]core.Descriptor) (*Object, error) {
	var base core.Descriptor
	if s.Form != 0 {
		d, ok := forms[core.FormID(s.Form)]
		if !ok {
			return nil, fmt.Errorf("unknown form %#x", s.Form)
		}
		base = d
	}
	return &Object{
		Form:      base,
		Name:      s.Name,
		Value:     s.Value,
		Mass:      s.Weight,
		Charge:    s.Charge,
		Enchanted: s.Enchanted,
		Quest:     s.Quest,
		Owner:     core.FormID(s.Owner),
		Crime:     s.Crime,
	}, nil
}

func (s formSpec) descriptor() (core.Descriptor, error) {
	form := core.Form{ID: core.FormID(s.ID)}
	if form.ID == core.NoFormID {
		return nil, errors.New("missing id")
	}
	for _, kw := range s.Keywords {
		form.Keywords = append(form.Keywords, core.FormID(kw))
	}

	switch t := core.ParseFormType(s.Type); t {
	case core.FormTypeScroll:
		return core.Scroll{Form: form}, nil
	case core.FormTypeArmor:
		typ, err := lookupName(armorTypes, "armor type", s.Armor)
		if err != nil {
			return nil, err
		}
		var slots core.BipedSlot
		for _, name := range s.Slots {
			slot, err := lookupName(bipedSlots, "slot", name)
			if err != nil {
				return nil, err
			}
			slots |= slot
		}
		return core.Armor{Form: form, Type: typ, Slots: slots}, nil
	case core.FormTypeBook:
		return core.Book{Form: form, Subtype: s.Subtype, Read: s.Read}, nil
	case core.FormTypeIngredient:
		return core.Ingredient{Form: form}, nil
	case core.FormTypeLight:
		return core.Light{Form: form}, nil
	case core.FormTypeMisc:
		return core.Misc{Form: form}, nil
	case core.FormTypeWeapon:
		kind, err := lookupName(weaponKinds, "weapon kind", s.Weapon)
		if err != nil {
			return nil, err
		}
		return core.Weapon{Form: form, Kind: kind}, nil
	case core.FormTypeAmmo:
		return core.Ammo{Form: form, Bolt: s.Bolt}, nil
	case core.FormTypeKey:
		return core.Key{Form: form}, nil
	case core.FormTypeAlchemy:
		a := core.Alchemy{Form: form, Food: s.Food, Poison: s.Poison, ConsumptionSound: core.FormID(s.Sound)}
		if s.Effect != nil {
			skill, err := lookupName(actorValues, "actor value", s.Effect.Skill)
			if err != nil {
				return nil, err
			}
			primary, err := lookupName(actorValues, "actor value", s.Effect.Primary)
			if err != nil {
				return nil, err
			}
			a.CostliestEffect = &core.MagicEffect{Skill: skill, PrimaryValue: primary}
		}
		return a, nil
	case core.FormTypeSoulGem:
		capacity, err := lookupName(soulLevels, "soul level", s.Capacity)
		if err != nil {
			return nil, err
		}
		contained, err := lookupName(soulLevels, "soul level", s.Contained)
		if err != nil {
			return nil, err
		}
		return core.SoulGem{Form: form, Capacity: capacity, Contained: contained}, nil
	case core.FormTypeNote:
		return core.Note{Form: form}, nil
	default:
		return core.Other{Form: form, Type: t}, nil
	}
}
