// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"golang.org/x/image/colornames"
)

// Colors for rendering
var (
	colorBG      = colornames.Midnightblue
	colorGround  = colornames.Slategray
	colorPlayer  = colornames.Limegreen
	colorRay     = colornames.Gold
	colorRayHit  = colornames.Crimson
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

const controlsLabel = "A/D: Move | Space: Jump | ESC: Pause | F5: Save recording"

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	state   state.GameState
	world   *ecs.World
	physics *system.PhysicsSystem
	player  ecs.EntityID
	screenW int
	screenH int
	ppu     float64

	// Set by the probe resolver each tick
	probeHit bool

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, recordPath string) (*Playing, error) {
	world := ecs.NewWorld()
	player, err := system.SpawnLevel(world, cfg.Level)
	if err != nil {
		return nil, err
	}

	display := cfg.Display
	if display == nil {
		display = config.DefaultDisplay()
	}

	p := &Playing{
		config:         cfg,
		state:          state.StatePlaying,
		world:          world,
		player:         player,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		ppu:            display.PixelsPerUnit,
		recordFilename: recordPath,
	}
	if p.ppu <= 0 {
		p.ppu = 1
	}
	p.physics = system.NewPhysicsSystem(cfg.Physics, world, system.WithResolver(p.trackProbe))

	if recordPath != "" {
		p.recorder = replay.NewRecorder(cfg.Level.Name)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p, nil
}

// trackProbe remembers whether the ground probe touched anything this tick
func (p *Playing) trackProbe(w *ecs.World) {
	p.probeHit = false
	for id := range w.IsPlayerRay {
		if len(w.CollisionsOf(id)) > 0 {
			p.probeHit = true
		}
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.togglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	if p.state.Ticking() {
		p.step(readIntent())
	}

	return nil, nil // nil = stay on this scene
}

// readIntent polls the keyboard into a tick intent
func readIntent() system.Intent {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	return system.Intent{
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeySpace),
		Horizontal:   system.HorizontalFromKeys(left, right),
	}
}

// step records and simulates one tick
func (p *Playing) step(intent system.Intent) {
	if p.recorder != nil {
		p.recorder.RecordFrame(intent)
	}
	p.physics.Tick(intent)
}

func (p *Playing) togglePause() {
	switch p.state {
	case state.StatePlaying:
		p.state = state.StatePaused
	case state.StatePaused:
		p.state = state.StatePlaying
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cam := p.world.GetPlayerPosition().Vector

	for id := range p.world.IsGround {
		p.drawRect(screen, cam, p.world.Position[id].Vector, p.world.Hitbox[id].Shape.Vector, colorGround)
	}

	if size, ok := p.world.PlayerSize(p.player); ok {
		p.drawRect(screen, cam, p.world.Position[p.player].Vector, size, colorPlayer)
	}

	for id := range p.world.IsPlayerRay {
		c := colorRay
		if p.probeHit {
			c = colorRayHit
		}
		origin := p.world.Position[id].Vector
		end := origin.Add(p.world.Hurtbox[id].Shape.Vector)
		x0, y0 := p.worldToScreen(cam, origin)
		x1, y1 := p.worldToScreen(cam, end)
		ebitenutil.DrawLine(screen, x0, y0, x1, y1, c)
	}

	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

// worldToScreen maps a y-up world point to screen pixels, centered on cam
func (p *Playing) worldToScreen(cam, v cp.Vector) (float64, float64) {
	x := float64(p.screenW)/2 + (v.X-cam.X)*p.ppu
	y := float64(p.screenH)/2 - (v.Y-cam.Y)*p.ppu
	return x, y
}

func (p *Playing) drawRect(screen *ebiten.Image, cam, center, extent cp.Vector, c color.Color) {
	topLeft := cp.Vector{X: center.X - extent.X/2, Y: center.Y + extent.Y/2}
	x, y := p.worldToScreen(cam, topLeft)
	ebitenutil.DrawRect(screen, x, y, extent.X*p.ppu, extent.Y*p.ppu, c)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	pos := p.world.Position[p.player].Vector
	vel := p.world.Velocity[p.player].Vector

	mode, _ := p.physics.PlayerState(p.player)

	hud := fmt.Sprintf("%s\nframe %d  pos (%.1f, %.1f)  vel (%.1f, %.1f)  %s  probe %v",
		controlsLabel, p.physics.Frame(), pos.X, pos.Y, vel.X, vel.Y, mode, p.probeHit)
	if p.recorder != nil && p.recorder.IsRecording() {
		hud += fmt.Sprintf("\nREC %d", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit stops recording and saves what was captured
func (p *Playing) OnExit() {
	if p.recorder != nil {
		p.recorder.Stop()
	}
	p.saveRecording()
}

// State returns the current game state
func (p *Playing) State() state.GameState {
	return p.state
}

// World returns the simulated world
func (p *Playing) World() *ecs.World {
	return p.world
}
