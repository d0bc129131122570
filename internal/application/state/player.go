package state

import (
	"errors"
	"fmt"

	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// ErrInvalidTransition is returned for an edge the player machine does not have
var ErrInvalidTransition = errors.New("invalid player state transition")

// PlayerState is the player's gravity mode
type PlayerState int

const (
	PlayerOnGround PlayerState = iota
	PlayerInAirHeld
	PlayerInAirReleased
	PlayerDead
)

// String returns the string representation of the player state
func (s PlayerState) String() string {
	switch s {
	case PlayerOnGround:
		return "OnGround"
	case PlayerInAirHeld:
		return "InAirHeld"
	case PlayerInAirReleased:
		return "InAirReleased"
	case PlayerDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// playerTransitions lists allowed targets per state. Dead only revives onto the ground.
var playerTransitions = map[PlayerState][]PlayerState{
	PlayerOnGround:      {PlayerInAirHeld, PlayerInAirReleased, PlayerDead},
	PlayerInAirHeld:     {PlayerOnGround, PlayerInAirReleased, PlayerDead},
	PlayerInAirReleased: {PlayerOnGround, PlayerInAirHeld, PlayerDead},
	PlayerDead:          {PlayerOnGround},
}

// PlayerMachine tracks the player's gravity mode and sets vertical
// acceleration on entering a state. It does not look at collisions.
type PlayerMachine struct {
	current  PlayerState
	settings *config.PhysicsSettings
}

// NewPlayerMachine starts on the ground
func NewPlayerMachine(settings *config.PhysicsSettings) *PlayerMachine {
	return &PlayerMachine{current: PlayerOnGround, settings: settings}
}

// Current returns the active state
func (m *PlayerMachine) Current() PlayerState {
	return m.current
}

// CanTransition reports whether to is reachable from the current state
func (m *PlayerMachine) CanTransition(to PlayerState) bool {
	for _, s := range playerTransitions[m.current] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves to the target state and runs its enter action on acc
func (m *PlayerMachine) Transition(to PlayerState, acc *ecs.Acceleration) error {
	if !m.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, to)
	}
	m.current = to
	m.enter(acc)
	return nil
}

// Enter is Transition that also accepts the current state, re-running its enter action
func (m *PlayerMachine) Enter(to PlayerState, acc *ecs.Acceleration) error {
	if m.current == to {
		m.enter(acc)
		return nil
	}
	return m.Transition(to, acc)
}

// Sync relabels the state from acceleration written outside the machine,
// such as the ground resolver zeroing it on landing. No enter action runs.
// A dead player stays dead.
func (m *PlayerMachine) Sync(acc ecs.Acceleration) {
	switch {
	case m.current == PlayerDead:
	case acc.Y == 0:
		m.current = PlayerOnGround
	case m.current != PlayerOnGround:
	case acc.Y == m.settings.HoldGravity:
		m.current = PlayerInAirHeld
	default:
		m.current = PlayerInAirReleased
	}
}

func (m *PlayerMachine) enter(acc *ecs.Acceleration) {
	switch m.current {
	case PlayerOnGround:
		acc.Y = 0
	case PlayerInAirHeld:
		acc.Y = m.settings.HoldGravity
	case PlayerInAirReleased:
		acc.Y = m.settings.NormalGravity
	case PlayerDead:
	}
}
