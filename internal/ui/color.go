package ui

import (
	"fmt"
	"image/color"
)

// parseHex turns a "#RRGGBB" token into a drawable color. The core treats
// color tokens as opaque strings; only this layer interprets them, and
// anything unrecognized renders black.
func parseHex(token string) color.Color {
	if len(token) != 7 || token[0] != '#' {
		return color.Black
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(token[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// hexToken renders a color back to the token form used on points.
func hexToken(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
