package main

import (
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/mossling/clamber/assets"
	"github.com/mossling/clamber/common"
	"github.com/mossling/clamber/config"
	"github.com/mossling/clamber/ecs"
	"github.com/mossling/clamber/ecs/component"
	"github.com/mossling/clamber/ecs/system"
)

type Game struct {
	world  *ecs.World
	render *system.RenderSystem

	cfgStore   *config.Store
	cfgPath    string
	watcher    *config.Watcher
	pauseUI    *ebitenui.UI
	paused     bool
	quitPicked bool
}

func NewGame(cfgPath string, debug bool) *Game {
	tuning, err := config.FromBytes(assets.DefaultTuning)
	if err != nil {
		log.Fatalf("load embedded tuning: %v", err)
	}
	if cfgPath != "" {
		if t, err := config.Load(cfgPath); err != nil {
			log.Printf("tuning file %s: %v (using embedded defaults)", cfgPath, err)
		} else {
			tuning = t
		}
	}
	store := config.NewStore(tuning)

	var watcher *config.Watcher
	if cfgPath != "" {
		watcher, err = config.NewWatcher(filepath.Dir(cfgPath))
		if err != nil {
			log.Printf("tuning watcher: %v (hot reload disabled)", err)
			watcher = nil
		}
	}

	level := BuiltinLevel()
	solids := level.SolidRects()

	effects, err := system.NewAnimEffects(assets.AnimEffectsScript, store)
	if err != nil {
		log.Fatalf("load animation effects: %v", err)
	}

	world := ecs.NewWorld()
	physics := system.NewPhysicsSystem(store, solids)

	// Contact must be sampled before the locomotion pass reads it, and the
	// locomotion decision must land before the space integrates it.
	world.AddSystem(system.NewInputSystem())
	world.AddSystem(system.NewContactProbeSystem(store, physics))
	world.AddSystem(system.NewLocomotionSystem(store))
	world.AddSystem(physics)
	world.AddSystem(system.NewAnimationSystem(store, effects))

	spawnPlayer(world, level.SpawnX, level.SpawnY)

	g := &Game{
		world:    world,
		render:   system.NewRenderSystem(solids, debug),
		cfgStore: store,
		cfgPath:  cfgPath,
		watcher:  watcher,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func spawnPlayer(w *ecs.World, x, y float64) ecs.Entity {
	const (
		playerWidth  = 24
		playerHeight = 48
	)

	img := ebiten.NewImage(1, 1)
	img.Fill(colornames.Coral)

	e := w.CreateEntity()
	mustAdd(ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}))
	mustAdd(ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}))
	mustAdd(ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:  playerWidth,
		Height: playerHeight,
		Mass:   1,
	}))
	mustAdd(ecs.Add(w, e, component.InputComponent, &component.Input{}))
	mustAdd(ecs.Add(w, e, component.ContactComponent, &component.Contact{}))
	mustAdd(ecs.Add(w, e, component.LocomotionComponent, &component.Locomotion{Mode: component.ModeIdle}))
	mustAdd(ecs.Add(w, e, component.ActionGateComponent, &component.ActionGate{CanAct: true}))
	mustAdd(ecs.Add(w, e, component.AnimSignalsComponent, &component.AnimSignals{}))
	mustAdd(ecs.Add(w, e, component.AnimationComponent, &component.Animation{Current: system.AnimIdle}))
	mustAdd(ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Image:  img,
		Width:  playerWidth,
		Height: playerHeight,
	}))
	return e
}

func mustAdd(err error) {
	if err != nil {
		log.Fatalf("spawn player: %v", err)
	}
}

func (g *Game) Update() error {
	if g.quitPicked {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainWatcher()
	g.world.Update()
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.cfgStore.Reload(path); err != nil {
				log.Printf("tuning reload %s: %v", path, err)
			} else {
				log.Printf("tuning reloaded from %s", path)
			}
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("tuning watcher: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) ReloadTuning() {
	if g.cfgPath == "" {
		return
	}
	if err := g.cfgStore.Reload(g.cfgPath); err != nil {
		log.Printf("tuning reload: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
