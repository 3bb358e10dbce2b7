package pet

import (
	"fmt"

	"go.uber.org/zap"
)

// Action is something the owner does to the pet.
type Action int

const (
	ActionFeed Action = iota
	ActionPlay
	ActionClean
	ActionSleep
)

// Actions returns every action in menu order.
func Actions() []Action {
	return []Action{ActionFeed, ActionPlay, ActionClean, ActionSleep}
}

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	return a >= ActionFeed && a <= ActionSleep
}

func (a Action) String() string {
	switch a {
	case ActionFeed:
		return "feed"
	case ActionPlay:
		return "play"
	case ActionClean:
		return "clean"
	case ActionSleep:
		return "sleep"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Strategy is the stateless effect table for one mood. Each field is the
// magnitude of the matching action's main effect.
type Strategy struct {
	Feed  int
	Play  int
	Clean int
	Sleep int

	// Comforts marks the table whose feed and play can set the one-shot
	// comfort flags.
	Comforts bool
}

var (
	happyStrategy   = Strategy{Feed: 15, Play: 15, Clean: 15, Sleep: 15}
	neutralStrategy = Strategy{Feed: 10, Play: 10, Clean: 10, Sleep: 10}
	sadStrategy     = Strategy{Feed: 5, Play: 5, Clean: 5, Sleep: 5, Comforts: true}
)

// StrategyFor returns the effect table for m. Unknown moods act neutral.
func StrategyFor(m Mood) Strategy {
	switch m {
	case MoodHappy:
		return happyStrategy
	case MoodSad:
		return sadStrategy
	default:
		return neutralStrategy
	}
}

// Effect returns the health change a performs. asleep is the pet's state
// before the action; waking up has no effect on health.
func (s Strategy) Effect(a Action, asleep bool) Deltas {
	switch a {
	case ActionFeed:
		return Deltas{Hunger: -s.Feed}
	case ActionPlay:
		return Deltas{Social: s.Play, Sleep: -PlaySleepCost}
	case ActionClean:
		return Deltas{Hygiene: s.Clean}
	case ActionSleep:
		if asleep {
			return Deltas{}
		}
		return Deltas{Sleep: s.Sleep}
	default:
		return Deltas{}
	}
}

// handleAction applies the active strategy to p. Comfort flags are decided
// from the health before the action is applied.
func (p *Pet) handleAction(a Action) {
	s := StrategyFor(p.mood)
	before := p.health
	wasAsleep := p.asleep

	switch a {
	case ActionFeed, ActionPlay, ActionClean:
		p.ApplyHealthImpact(s.Effect(a, wasAsleep))
	case ActionSleep:
		p.asleep = !wasAsleep
		p.ApplyHealthImpact(s.Effect(a, wasAsleep))
		p.logger.Debug("sleep toggled", zap.String("pet", p.name), zap.Bool("asleep", p.asleep))
	default:
		return
	}

	if !s.Comforts || p.mood != MoodSad {
		return
	}
	switch {
	case a == ActionFeed && before.hunger > HighStatThreshold:
		p.fedWhileSadAndHungry = true
	case a == ActionPlay && before.social < LowStatThreshold:
		p.playedWhileSadAndLonely = true
	}
}
