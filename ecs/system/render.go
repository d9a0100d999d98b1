package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/mossling/clamber/common"
	"github.com/mossling/clamber/ecs"
	"github.com/mossling/clamber/ecs/component"
)

// RenderSystem draws the merged level solids and every sprite as flat
// quads. It is not an ecs.System; it needs the screen, so the game calls
// Draw directly.
type RenderSystem struct {
	solids    []common.Rect
	solidImg  *ebiten.Image
	debug     bool
	debugLine string
}

func NewRenderSystem(solids []common.Rect, debug bool) *RenderSystem {
	img := ebiten.NewImage(1, 1)
	img.Fill(colornames.Darkslategray)
	return &RenderSystem{solids: solids, solidImg: img, debug: debug}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(color.RGBA{R: 0x18, G: 0x1c, B: 0x24, A: 0xff})

	for _, s := range r.solids {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.W, s.H)
		op.GeoM.Translate(s.X, s.Y)
		screen.DrawImage(r.solidImg, op)
	}

	ecs.ForEach2(w, component.SpriteComponent, component.TransformComponent, func(e ecs.Entity, sprite *component.Sprite, tr *component.Transform) {
		if sprite.Image == nil {
			return
		}
		bounds := sprite.Image.Bounds()
		sx := sprite.Width / float64(bounds.Dx())
		sy := sprite.Height / float64(bounds.Dy())

		op := &ebiten.DrawImageOptions{}
		if sprite.FacingLeft {
			op.GeoM.Scale(-sx, sy)
			op.GeoM.Translate(tr.X+sprite.Width, tr.Y)
		} else {
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(tr.X, tr.Y)
		}
		screen.DrawImage(sprite.Image, op)
	})

	if r.debug {
		r.drawDebug(w, screen)
	}
}

func (r *RenderSystem) drawDebug(w *ecs.World, screen *ebiten.Image) {
	player, ok := w.First(component.PlayerTagComponent.ID())
	if !ok {
		return
	}
	loco, _ := ecs.Get(w, player, component.LocomotionComponent)
	contact, _ := ecs.Get(w, player, component.ContactComponent)
	gate, _ := ecs.Get(w, player, component.ActionGateComponent)
	anim, _ := ecs.Get(w, player, component.AnimationComponent)
	if loco == nil || contact == nil {
		return
	}

	canAct := gate == nil || gate.CanAct
	current := ""
	if anim != nil {
		current = anim.Current
	}
	r.debugLine = fmt.Sprintf(
		"mode=%s anim=%s grounded=%t wall=%t ceiling=%t canAct=%t fps=%.1f",
		loco.Mode, current, contact.Grounded, contact.OnWall, contact.OnCeiling, canAct, ebiten.ActualFPS(),
	)
	ebitenutil.DebugPrintAt(screen, r.debugLine, 4, 4)
}
