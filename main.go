// Circular Chess - circular and citadel chess built with Ebitengine
package main

import (
	"log"

	"github.com/hailam/circularchess/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	game := ui.NewGame()
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Circular Chess")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		game.Close()
		log.Fatal(err)
	}
}
