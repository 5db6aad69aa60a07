package game

import "image/color"

// Surface is a 2D immediate-mode drawing target.
//
// Fill colour and global alpha are surface state: they persist across paths
// until changed, like a canvas context.
type Surface interface {
	// Clear erases the whole surface
	Clear()

	SetFillColor(clr color.Color)
	SetGlobalAlpha(alpha float64)

	// BeginPath discards the current path
	BeginPath()
	MoveTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)

	// Fill paints the current path with the fill colour scaled by the
	// global alpha
	Fill()

	// Size returns the surface size in pixels
	Size() (width, height int)
}
