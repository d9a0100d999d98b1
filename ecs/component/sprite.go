package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is a flat-colored quad. FacingLeft mirrors the draw horizontally.
type Sprite struct {
	Image      *ebiten.Image
	Width      float64
	Height     float64
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()
