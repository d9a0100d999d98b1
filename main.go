package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mossling/clamber/common"
	"github.com/mossling/clamber/config"
)

func main() {
	cfgPath := flag.String("config", "", "tuning YAML path (optional, overrides embedded defaults)")
	debug := flag.Bool("debug", false, "enable debug overlay")
	flag.Parse()

	envCfg, err := config.ParseEnv()
	if err != nil {
		log.Fatal(err)
	}
	path := *cfgPath
	if envCfg.ConfigPath != "" {
		path = envCfg.ConfigPath
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("clamber")

	game := NewGame(path, *debug || envCfg.Debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
