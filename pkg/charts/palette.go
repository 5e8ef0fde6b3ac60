package charts

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Fixed saturation and lightness so every generated color stays
// readable against the page background.
const (
	paletteSaturation = 0.6
	paletteLightness  = 0.4
)

// Palette returns n hex colors with hues evenly spaced around the hue
// circle. The output is deterministic: the same n always yields the
// same sequence.
func Palette(n int) []string {
	colors := make([]string, 0, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n) * 360
		colors = append(colors, colorful.Hsl(hue, paletteSaturation, paletteLightness).Hex())
	}
	return colors
}
