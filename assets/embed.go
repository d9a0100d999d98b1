// Package assets embeds the default tuning file and the animation-effects
// script so the game runs without any files on disk.
package assets

import _ "embed"

//go:embed config/tuning.yaml
var DefaultTuning []byte

//go:embed scripts/anim_effects.tengo
var AnimEffectsScript []byte
