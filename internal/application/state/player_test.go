package state

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

func testSettings() *config.PhysicsSettings {
	return &config.PhysicsSettings{NormalGravity: -1600, HoldGravity: -600}
}

func TestPlayerMachine_EnterActions(t *testing.T) {
	m := NewPlayerMachine(testSettings())
	acc := ecs.Acceleration{Vector: cp.Vector{X: 7, Y: 0}}
	require.Equal(t, PlayerOnGround, m.Current())

	require.NoError(t, m.Transition(PlayerInAirHeld, &acc))
	assert.Equal(t, -600.0, acc.Y)

	require.NoError(t, m.Transition(PlayerInAirReleased, &acc))
	assert.Equal(t, -1600.0, acc.Y)

	require.NoError(t, m.Transition(PlayerOnGround, &acc))
	assert.Equal(t, 0.0, acc.Y)

	require.NoError(t, m.Transition(PlayerDead, &acc))
	assert.Equal(t, 0.0, acc.Y, "dying leaves acceleration alone")
	assert.Equal(t, 7.0, acc.X, "only the vertical axis is driven")
}

func TestPlayerMachine_Transitions(t *testing.T) {
	all := []PlayerState{PlayerOnGround, PlayerInAirHeld, PlayerInAirReleased, PlayerDead}

	for _, from := range all {
		for _, to := range all {
			m := &PlayerMachine{current: from, settings: testSettings()}
			var acc ecs.Acceleration
			err := m.Transition(to, &acc)

			allowed := from != to && (from != PlayerDead || to == PlayerOnGround)
			if allowed {
				assert.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, m.Current())
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", from, to)
				assert.Equal(t, from, m.Current(), "state is kept on a rejected transition")
			}
		}
	}
}

func TestPlayerState_String(t *testing.T) {
	assert.Equal(t, "OnGround", PlayerOnGround.String())
	assert.Equal(t, "InAirHeld", PlayerInAirHeld.String())
	assert.Equal(t, "InAirReleased", PlayerInAirReleased.String())
	assert.Equal(t, "Dead", PlayerDead.String())
	assert.Equal(t, "Unknown", PlayerState(42).String())
}

func TestPlayerMachine_Enter(t *testing.T) {
	m := NewPlayerMachine(testSettings())
	acc := ecs.Acceleration{}

	require.NoError(t, m.Enter(PlayerInAirReleased, &acc))
	assert.Equal(t, PlayerInAirReleased, m.Current())
	assert.Equal(t, -1600.0, acc.Y)

	acc.Y = -50
	require.NoError(t, m.Enter(PlayerInAirReleased, &acc))
	assert.Equal(t, -1600.0, acc.Y, "re-entering runs the enter action again")

	m = &PlayerMachine{current: PlayerDead, settings: testSettings()}
	assert.ErrorIs(t, m.Enter(PlayerInAirHeld, &acc), ErrInvalidTransition)
}

func TestPlayerMachine_Sync(t *testing.T) {
	tests := []struct {
		name string
		from PlayerState
		accY float64
		want PlayerState
	}{
		{"zero acceleration means grounded", PlayerInAirReleased, 0, PlayerOnGround},
		{"held gravity off the ground", PlayerOnGround, -600, PlayerInAirHeld},
		{"other gravity off the ground", PlayerOnGround, -1600, PlayerInAirReleased},
		{"arbitrary fall off the ground", PlayerOnGround, -50, PlayerInAirReleased},
		{"air state is kept while airborne", PlayerInAirHeld, -1600, PlayerInAirHeld},
		{"dead stays dead", PlayerDead, 0, PlayerDead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &PlayerMachine{current: tt.from, settings: testSettings()}
			acc := ecs.Acceleration{Vector: cp.Vector{Y: tt.accY}}

			m.Sync(acc)

			assert.Equal(t, tt.want, m.Current())
			assert.Equal(t, tt.accY, acc.Y, "sync never writes acceleration")
		})
	}
}
