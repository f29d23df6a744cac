/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package creator

// Color is a DeviceRGB color with components in the range 0-1.
type Color struct {
	R, G, B float64
}

// ColorBlack is the default stroke color.
var ColorBlack = Color{0, 0, 0}

// ColorRGBFrom8bit creates a Color from 8-bit (0-255) r,g,b values.
// Example:
//   red := ColorRGBFrom8bit(255, 0, 0)
func ColorRGBFrom8bit(r, g, b byte) Color {
	return Color{float64(r) / 255.0, float64(g) / 255.0, float64(b) / 255.0}
}

// ToRGB returns the color components.
func (c Color) ToRGB() (float64, float64, float64) {
	return c.R, c.G, c.B
}
