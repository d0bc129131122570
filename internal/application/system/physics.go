package system

import (
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// TimeStep is the fixed simulation step in seconds (one tick)
const TimeStep = 1.0 / 60.0

// Resolver reads the current tick's collision buffers between detection and cleanup
type Resolver func(w *ecs.World)

// Option configures a PhysicsSystem
type Option func(*PhysicsSystem)

// WithResolver registers gameplay code that runs after the ground resolver,
// while the collision buffers are still populated.
func WithResolver(r Resolver) Option {
	return func(s *PhysicsSystem) {
		s.resolvers = append(s.resolvers, r)
	}
}

// PhysicsSystem runs the fixed-order tick pipeline over a world
type PhysicsSystem struct {
	settings  *config.PhysicsSettings
	world     *ecs.World
	input     *InputSystem
	resolvers []Resolver
	frame     int
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(settings *config.PhysicsSettings, world *ecs.World, opts ...Option) *PhysicsSystem {
	s := &PhysicsSystem{
		settings: settings,
		world:    world,
		input:    NewInputSystem(settings),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tick advances the simulation by one TimeStep:
// input policy, velocity, position, detection, resolution, buffer cleanup.
// The order is fixed; each step owns the fields it writes.
func (s *PhysicsSystem) Tick(intent Intent) {
	if s.settings == nil {
		panic(ErrSettingsUnavailable)
	}
	w := s.world

	s.input.Apply(w, intent)

	ecs.UpdateVelocities(w, TimeStep)
	ecs.UpdatePositions(w, TimeStep)

	ecs.CheckCollisions(w)
	ecs.HandlePlayerCollidesGround(w)
	for _, r := range s.resolvers {
		r(w)
	}

	ecs.ClearCollisions(w)
	s.frame++
}

// World returns the simulated world
func (s *PhysicsSystem) World() *ecs.World {
	return s.world
}

// PlayerState returns the player's gravity mode as of the last input step
func (s *PhysicsSystem) PlayerState(id ecs.EntityID) (state.PlayerState, bool) {
	return s.input.PlayerState(id)
}

// Frame returns the number of completed ticks
func (s *PhysicsSystem) Frame() int {
	return s.frame
}
