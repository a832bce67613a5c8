package renderer

import "image/color"

// Palette aligned with the lab's art direction. Static configuration with no
// effect on core logic.
var (
	colorBackground  = color.RGBA{0x26, 0x36, 0x3b, 0xff}
	colorFloor       = color.RGBA{0x3b, 0x53, 0x58, 0xff}
	colorFloorAccent = color.RGBA{0x57, 0x6f, 0x77, 0xff}
	colorHologram    = color.RGBA{0x5e, 0xd5, 0xff, 0xff}
	colorAccentGreen = color.RGBA{0x40, 0xb1, 0x47, 0xff}
	colorAccentRed   = color.RGBA{0xe5, 0x4b, 0x4b, 0xff}
	colorAccentViol  = color.RGBA{0x8d, 0x6e, 0xff, 0xff}
	colorAccentAmber = color.RGBA{0xf3, 0xc4, 0x51, 0xff}
	colorWall        = color.RGBA{0x0f, 0x1b, 0x1e, 0xff}
	colorDialogueBG  = color.RGBA{20, 32, 36, 220}

	playerColors = []color.RGBA{
		{0x7e, 0xb2, 0xc6, 0xff},
		{0xc1, 0xda, 0xdd, 0xff},
	}
)

// ghosted returns the translucent variant used for unrealized doors.
func ghosted(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, 120}
}
