package pet

import (
	"fmt"
	"strings"
)

// Mood is derived from the pet's health and care history. It selects the
// active action strategy.
type Mood int

const (
	MoodNeutral Mood = iota
	MoodHappy
	MoodSad
)

func (m Mood) String() string {
	switch m {
	case MoodHappy:
		return "HAPPY"
	case MoodSad:
		return "SAD"
	case MoodNeutral:
		return "NEUTRAL"
	default:
		return fmt.Sprintf("Mood(%d)", int(m))
	}
}

// ParseMood converts a mood name such as "happy" or "SAD" to a Mood.
func ParseMood(s string) (Mood, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HAPPY":
		return MoodHappy, nil
	case "SAD":
		return MoodSad, nil
	case "NEUTRAL":
		return MoodNeutral, nil
	default:
		return MoodNeutral, fmt.Errorf("unknown mood %q", s)
	}
}

// MoodInputs is everything the mood depends on.
type MoodInputs struct {
	Health                  HealthState
	StepsSinceInteraction   int
	FedWhileSadAndHungry    bool
	PlayedWhileSadAndLonely bool
}

// ResolveMood returns the mood for in. Rules are checked in order and the
// first match wins:
//
//  1. fed while sad and hungry: HAPPY
//  2. played with while sad and lonely: HAPPY
//  3. neglected for NeglectThreshold steps or more: SAD
//  4. any axis in its bad band: SAD
//  5. every axis in its good band: HAPPY
//  6. otherwise NEUTRAL
func ResolveMood(in MoodInputs) Mood {
	h := in.Health
	switch {
	case in.FedWhileSadAndHungry, in.PlayedWhileSadAndLonely:
		return MoodHappy
	case in.StepsSinceInteraction >= NeglectThreshold:
		return MoodSad
	case h.hunger > HighStatThreshold || h.hygiene < LowStatThreshold ||
		h.social < LowStatThreshold || h.sleep < LowStatThreshold:
		return MoodSad
	case h.hunger < LowStatThreshold && h.hygiene > HighStatThreshold &&
		h.social > HighStatThreshold && h.sleep > HighStatThreshold:
		return MoodHappy
	default:
		return MoodNeutral
	}
}
