package pet

import "fmt"

// Deltas is a change to apply to each of the four health axes.
type Deltas struct {
	Hunger  int
	Hygiene int
	Social  int
	Sleep   int
}

// HealthState is the pet's four-axis need vector. Every axis stays within
// [MinStat, MaxStat]; a higher hunger is worse, higher hygiene, social and
// sleep are better.
//
// HealthState is a value type. Mutations return a new instance.
type HealthState struct {
	hunger  int
	hygiene int
	social  int
	sleep   int
}

// NewHealthState builds a HealthState, clamping every axis into range.
func NewHealthState(hunger, hygiene, social, sleep int) HealthState {
	return HealthState{
		hunger:  clamp(hunger),
		hygiene: clamp(hygiene),
		social:  clamp(social),
		sleep:   clamp(sleep),
	}
}

// DefaultHealthState is the mid-range state of a newly created pet.
func DefaultHealthState() HealthState {
	return NewHealthState(DefaultStat, DefaultStat, DefaultStat, DefaultStat)
}

func (h HealthState) Hunger() int  { return h.hunger }
func (h HealthState) Hygiene() int { return h.hygiene }
func (h HealthState) Social() int  { return h.social }
func (h HealthState) Sleep() int   { return h.sleep }

// ClampedApply adds d to each axis and clamps each result independently.
func (h HealthState) ClampedApply(d Deltas) HealthState {
	return NewHealthState(
		h.hunger+d.Hunger,
		h.hygiene+d.Hygiene,
		h.social+d.Social,
		h.sleep+d.Sleep,
	)
}

// Depleted reports whether every axis sits at its worst extreme at once.
// A single axis at its extreme is not enough.
func (h HealthState) Depleted() bool {
	return h.hunger == MaxStat && h.hygiene == MinStat &&
		h.social == MinStat && h.sleep == MinStat
}

func (h HealthState) String() string {
	return fmt.Sprintf("hunger=%d hygiene=%d social=%d sleep=%d",
		h.hunger, h.hygiene, h.social, h.sleep)
}

func clamp(v int) int {
	return max(MinStat, min(v, MaxStat))
}
