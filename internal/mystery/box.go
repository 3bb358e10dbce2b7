// Package mystery implements mystery boxes: randomly found boxes whose
// contents change the pet's health.
package mystery

import (
	"fmt"

	"vpet/internal/pet"
)

// Tier is the rarity class of a box.
type Tier int

const (
	TierCommon Tier = iota
	TierRare
)

func (t Tier) String() string {
	switch t {
	case TierCommon:
		return "common"
	case TierRare:
		return "rare"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Outcome is one possible content of a box.
type Outcome struct {
	Description string
	Deltas      pet.Deltas
}

// tierDefinition describes a tier's presentation and outcome table
type tierDefinition struct {
	Name        string
	Description string
	Outcomes    []Outcome
}

var tierDefinitions = map[Tier]tierDefinition{
	TierCommon: {
		Name:        "Common Mystery Box",
		Description: "A common mystery box. Contains minor helpful (or sometimes harmful) surprises.",
		Outcomes: []Outcome{
			{"Found a small snack! (-5 hunger)", pet.Deltas{Hunger: -5}},
			{"Discovered a minor toy! (+5 social)", pet.Deltas{Social: 5}},
			{"Got a bit dirty... (-5 hygiene)", pet.Deltas{Hygiene: -5}},
			{"Took a little extra energy (-5 sleep)", pet.Deltas{Sleep: -5}},
			{"Small treat! (-3 hunger, +3 social)", pet.Deltas{Hunger: -3, Social: 3}},
		},
	},
	TierRare: {
		Name:        "Uncommon Mystery Box",
		Description: "An uncommon mystery box with more significant effects.",
		Outcomes: []Outcome{
			{"Found a healthy meal! (-10 hunger)", pet.Deltas{Hunger: -10}},
			{"Found a fun puzzle! (+10 social, -5 sleep)", pet.Deltas{Social: 10, Sleep: -5}},
			{"Discovered a shower kit! (+10 hygiene)", pet.Deltas{Hygiene: 10}},
			{"Found a comfy pillow! (+10 sleep)", pet.Deltas{Sleep: 10}},
			{"Oh no! Box contained a stinky surprise! (-10 hygiene, +5 social)", pet.Deltas{Hygiene: -10, Social: 5}},
		},
	},
}

// Outcomes returns a copy of the outcome table for t.
func Outcomes(t Tier) []Outcome {
	def := tierDefinitions[t]
	return append([]Outcome(nil), def.Outcomes...)
}

// Target is anything a box can be opened on.
type Target interface {
	ApplyHealthImpact(d pet.Deltas)
}

// Box is a mystery box of one tier, waiting to be opened.
type Box struct {
	tier Tier
	def  tierDefinition
	src  Source
}

func newBox(t Tier, src Source) *Box {
	if src == nil {
		src = NewSource()
	}
	return &Box{tier: t, def: tierDefinitions[t], src: src}
}

// NewCommonBox returns a common box that draws its outcome from src, or from
// a clock-seeded source when src is nil.
func NewCommonBox(src Source) *Box { return newBox(TierCommon, src) }

// NewRareBox returns a rare box that draws its outcome from src.
func NewRareBox(src Source) *Box { return newBox(TierRare, src) }

func (b *Box) Tier() Tier          { return b.tier }
func (b *Box) Name() string        { return b.def.Name }
func (b *Box) Description() string { return b.def.Description }

// Open picks one outcome uniformly at random, applies it to target and
// returns its description. Mood is left for the caller to recompute.
func (b *Box) Open(target Target) string {
	o := b.def.Outcomes[b.src.Intn(len(b.def.Outcomes))]
	target.ApplyHealthImpact(o.Deltas)
	return o.Description
}
