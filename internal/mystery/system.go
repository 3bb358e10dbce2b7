package mystery

import "go.uber.org/zap"

// CommonChance is the percentage of generated boxes that are common.
const CommonChance = 60

// System hands out mystery boxes.
type System struct {
	src    Source
	logger *zap.Logger
}

// Option configures a System.
type Option func(*System)

// WithLogger sets the logger used to record generated boxes.
func WithLogger(l *zap.Logger) Option {
	return func(s *System) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSystem returns a System drawing all randomness from src. A nil src
// falls back to a clock-seeded source.
func NewSystem(src Source, opts ...Option) *System {
	if src == nil {
		src = NewSource()
	}
	s := &System{src: src, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateRandomBox rolls a box tier: CommonChance percent common, the rest
// rare. The returned box shares the system's source.
func (s *System) GenerateRandomBox() *Box {
	roll := s.src.Intn(100)

	tier := TierRare
	if roll < CommonChance {
		tier = TierCommon
	}

	s.logger.Debug("generated mystery box", zap.Int("roll", roll), zap.Stringer("tier", tier))
	return newBox(tier, s.src)
}
