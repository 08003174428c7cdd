package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/wheel-widget/internal/config"
	"github.com/iburimskiy/wheel-widget/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Wheel Control - drag to adjust, double-tap: speed, M: mute, Esc/Q: quit")

	g := game.New()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
