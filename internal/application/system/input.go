package system

import (
	"errors"

	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// ErrSettingsUnavailable is the panic value when physics runs before settings are loaded.
// Callers must gate the simulation on settings readiness.
var ErrSettingsUnavailable = errors.New("system: physics settings not loaded")

// InputSystem turns intents into player velocity and acceleration changes.
// Each player's vertical acceleration is owned by its PlayerMachine.
type InputSystem struct {
	settings *config.PhysicsSettings
	machines map[ecs.EntityID]*state.PlayerMachine
}

// NewInputSystem creates a new input system
func NewInputSystem(settings *config.PhysicsSettings) *InputSystem {
	return &InputSystem{
		settings: settings,
		machines: make(map[ecs.EntityID]*state.PlayerMachine),
	}
}

// Apply applies the intent to every player entity in ascending ID order
func (s *InputSystem) Apply(w *ecs.World, intent Intent) {
	if s.settings == nil {
		panic(ErrSettingsUnavailable)
	}
	for _, id := range w.PlayerIDs() {
		vel, okV := w.Velocity[id]
		acc, okA := w.Acceleration[id]
		if !okV || !okA {
			continue
		}
		s.handleJump(s.machine(id), &vel, &acc, intent)
		s.handleMovement(&vel, &acc, intent.Horizontal)
		w.Velocity[id] = vel
		w.Acceleration[id] = acc
	}
	for id := range s.machines {
		if _, ok := w.IsPlayer[id]; !ok {
			delete(s.machines, id)
		}
	}
}

// PlayerState returns the gravity mode of a player seen by the last Apply
func (s *InputSystem) PlayerState(id ecs.EntityID) (state.PlayerState, bool) {
	m, ok := s.machines[id]
	if !ok {
		return state.PlayerOnGround, false
	}
	return m.Current(), true
}

func (s *InputSystem) machine(id ecs.EntityID) *state.PlayerMachine {
	m, ok := s.machines[id]
	if !ok {
		m = state.NewPlayerMachine(s.settings)
		s.machines[id] = m
	}
	return m
}

// handleJump starts a jump only from the ground (zero vertical acceleration)
// and switches to normal gravity when the button is let go.
func (s *InputSystem) handleJump(m *state.PlayerMachine, vel *ecs.Velocity, acc *ecs.Acceleration, intent Intent) {
	m.Sync(*acc)
	if m.Current() == state.PlayerDead {
		return
	}

	// Live states reach both air states, so Enter cannot fail below.
	if intent.JumpPressed && m.Current() == state.PlayerOnGround {
		vel.Y = s.settings.InitialJumpVelocity
		_ = m.Enter(state.PlayerInAirHeld, acc)
	}
	if intent.JumpReleased {
		_ = m.Enter(state.PlayerInAirReleased, acc)
	}
}

// handleMovement accelerates toward the held direction, otherwise applies
// friction until the speed drops into the stopping deadband.
func (s *InputSystem) handleMovement(vel *ecs.Velocity, acc *ecs.Acceleration, dir Direction) {
	switch {
	case dir == DirLeft:
		acc.X = -s.settings.HorizontalA
	case dir == DirRight:
		acc.X = s.settings.HorizontalA
	case vel.X > s.settings.StoppingHorizontalSpeed:
		acc.X = -s.settings.Friction
	case vel.X < -s.settings.StoppingHorizontalSpeed:
		acc.X = s.settings.Friction
	default:
		vel.X = 0
		acc.X = 0
	}
}
