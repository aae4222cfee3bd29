// +build ignore

package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		os.Args = append(os.Args, "Icon.png")
	}

	// Create a 512x512 icon with a wine glass shape
	img := image.NewRGBA(image.Rect(0, 0, 512, 512))

	// Background - dark slate, accent - deep purple
	bgColor := color.RGBA{17, 24, 39, 255}
	accentColor := color.RGBA{124, 77, 255, 255}

	// Fill background
	for y := 0; y < 512; y++ {
		for x := 0; x < 512; x++ {
			img.Set(x, y, bgColor)
		}
	}

	// Bowl of the glass: filled half-circle
	cx, cy := 256, 180
	radius := 120

	for y := 0; y < 512; y++ {
		for x := 0; x < 512; x++ {
			dx := x - cx
			dy := y - cy
			if dy >= 0 && dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, accentColor)
			}
		}
	}

	// Stem
	for y := cy + radius; y < 420; y++ {
		for x := cx - 12; x < cx+12; x++ {
			img.Set(x, y, accentColor)
		}
	}

	// Base
	for y := 420; y < 444; y++ {
		for x := cx - 90; x < cx+90; x++ {
			img.Set(x, y, accentColor)
		}
	}

	f, err := os.Create(os.Args[1])
	if err != nil {
		panic(err)
	}
	defer f.Close()

	png.Encode(f, img)
}
