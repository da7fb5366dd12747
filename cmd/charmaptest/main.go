// Package main renders a test gradient with every character map, for a
// quick visual check of the ramps in a real terminal.
package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/user/termplay/pkg/charmap"
	"github.com/user/termplay/pkg/ports"
	"github.com/user/termplay/pkg/render"
)

const (
	gradientWidth  = 64
	gradientHeight = 2
)

func main() {
	img := image.NewRGBA(image.Rect(0, 0, 256, 32))
	for x := 0; x < 256; x++ {
		for y := 0; y < 32; y++ {
			v := uint8(x)
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	frame := &ports.Frame{Image: img}

	renderer := render.NewRenderer()
	for i := 0; i < charmap.Count(); i++ {
		fmt.Printf("%d: %s\n", i, charmap.Name(i))
		grid := renderer.Render(frame, ports.RenderOptions{
			Width:        gradientWidth,
			Height:       gradientHeight,
			CharMapIndex: i,
		})
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				fmt.Printf("%c", grid.At(x, y).Ch)
			}
			fmt.Println()
		}
		fmt.Println()
	}
}
