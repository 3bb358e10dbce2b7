package pet

import (
	"go.uber.org/zap"
)

// Pet is the virtual pet aggregate. All mutation goes through Step,
// Interact, ApplyHealthImpact and SetMood.
//
// Pet does no locking. Callers that share a Pet between goroutines must
// serialize every call.
type Pet struct {
	name   string
	health HealthState
	mood   Mood
	alive  bool
	asleep bool

	// One-shot comfort flags. Set while an action is handled, cleared by the
	// next mood recomputation.
	fedWhileSadAndHungry    bool
	playedWhileSadAndLonely bool

	stepsSinceInteraction int

	logger *zap.Logger
}

// Option configures a new Pet.
type Option func(*Pet)

// WithLogger sets the logger used for state change events.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pet) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithHealth overrides the starting health.
func WithHealth(h HealthState) Option {
	return func(p *Pet) {
		p.health = h
	}
}

// Snapshot is a read-only copy of a Pet's state.
type Snapshot struct {
	Name                  string
	Health                HealthState
	Mood                  Mood
	Alive                 bool
	Asleep                bool
	StepsSinceInteraction int
}

// New creates a pet with mid-range health, a neutral mood, awake and alive.
// An empty name gets DefaultName.
func New(name string, opts ...Option) *Pet {
	if name == "" {
		name = DefaultName
	}
	p := &Pet{
		name:   name,
		health: DefaultHealthState(),
		mood:   MoodNeutral,
		alive:  true,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger.Info("created new pet", zap.String("pet", p.name), zap.Stringer("health", p.health))
	return p
}

func (p *Pet) Name() string               { return p.name }
func (p *Pet) Health() HealthState        { return p.health }
func (p *Pet) Mood() Mood                 { return p.mood }
func (p *Pet) Alive() bool                { return p.alive }
func (p *Pet) Asleep() bool               { return p.asleep }
func (p *Pet) StepsSinceInteraction() int { return p.stepsSinceInteraction }

// SetName renames the pet. An empty name is ignored.
func (p *Pet) SetName(name string) {
	if name != "" {
		p.name = name
	}
}

// Snapshot copies the pet's current state.
func (p *Pet) Snapshot() Snapshot {
	return Snapshot{
		Name:                  p.name,
		Health:                p.health,
		Mood:                  p.mood,
		Alive:                 p.alive,
		Asleep:                p.asleep,
		StepsSinceInteraction: p.stepsSinceInteraction,
	}
}

// Step advances time by one unit. Needs decay, more slowly when the pet is
// happy. A pet whose needs all reach their worst extreme at once dies and
// its mood is left as it was.
func (p *Pet) Step() {
	if !p.alive {
		return
	}
	p.stepsSinceInteraction++

	decay := DecayRate
	if p.mood == MoodHappy {
		decay = HappyDecayRate
	}
	p.ApplyHealthImpact(Deltas{
		Hunger:  decay,
		Hygiene: -decay,
		Social:  -decay,
		Sleep:   -decay,
	})

	if p.health.Depleted() {
		p.alive = false
		p.logger.Info("pet died",
			zap.String("pet", p.name),
			zap.Int("steps_since_interaction", p.stepsSinceInteraction),
		)
		return
	}

	p.RecomputeMood()
}

// Interact performs a with the strategy of the current mood. It does nothing
// for a dead pet, and only ActionSleep reaches a sleeping pet.
func (p *Pet) Interact(a Action) {
	if !p.alive {
		p.logger.Debug("ignored action on dead pet", zap.String("pet", p.name), zap.Stringer("action", a))
		return
	}
	if !a.Valid() {
		p.logger.Warn("unknown action", zap.String("pet", p.name), zap.Stringer("action", a))
		return
	}
	if p.asleep && a != ActionSleep {
		p.logger.Debug("ignored action on sleeping pet", zap.String("pet", p.name), zap.Stringer("action", a))
		return
	}

	p.handleAction(a)
	p.stepsSinceInteraction = 0
	p.RecomputeMood()

	p.logger.Debug("interacted",
		zap.String("pet", p.name),
		zap.Stringer("action", a),
		zap.Stringer("health", p.health),
		zap.Stringer("mood", p.mood),
	)
}

// ApplyHealthImpact adds d to the pet's health, saturating at the bounds.
func (p *Pet) ApplyHealthImpact(d Deltas) {
	p.health = p.health.ClampedApply(d)
}

// SetMood forces the mood, and with it the active strategy. Health, sleep
// and life are left alone.
func (p *Pet) SetMood(m Mood) {
	if m != p.mood {
		p.logger.Info("mood changed",
			zap.String("pet", p.name),
			zap.Stringer("from", p.mood),
			zap.Stringer("to", m),
		)
	}
	p.mood = m
}

// RecomputeMood derives the mood from the current state and consumes the
// comfort flag that fired, if any. Step and Interact call it; callers that
// change health directly call it themselves. A dead pet keeps its last mood.
func (p *Pet) RecomputeMood() {
	if !p.alive {
		return
	}
	m := ResolveMood(MoodInputs{
		Health:                  p.health,
		StepsSinceInteraction:   p.stepsSinceInteraction,
		FedWhileSadAndHungry:    p.fedWhileSadAndHungry,
		PlayedWhileSadAndLonely: p.playedWhileSadAndLonely,
	})

	if p.fedWhileSadAndHungry {
		p.fedWhileSadAndHungry = false
	} else if p.playedWhileSadAndLonely {
		p.playedWhileSadAndLonely = false
	}

	p.SetMood(m)
}
