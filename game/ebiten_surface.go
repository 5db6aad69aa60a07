package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto the screen image Ebiten hands to Draw.
// The image is rebound every frame; calls made while unbound are dropped.
type EbitenSurface struct {
	dst        *ebiten.Image
	width      int
	height     int
	background color.NRGBA

	path  vector.Path
	fill  color.Color
	alpha float64
}

// NewEbitenSurface creates a surface with a fixed logical size
func NewEbitenSurface(width, height int, background color.NRGBA) *EbitenSurface {
	return &EbitenSurface{
		width:      width,
		height:     height,
		background: background,
		fill:       colorHeart,
		alpha:      1,
	}
}

// Bind sets the image subsequent calls draw on
func (s *EbitenSurface) Bind(dst *ebiten.Image) {
	s.dst = dst
}

func (s *EbitenSurface) Clear() {
	if s.dst == nil {
		return
	}
	if s.background.A == 0 {
		s.dst.Clear()
		return
	}
	s.dst.Fill(s.background)
}

func (s *EbitenSurface) SetFillColor(clr color.Color) {
	s.fill = clr
}

func (s *EbitenSurface) SetGlobalAlpha(alpha float64) {
	s.alpha = alpha
}

func (s *EbitenSurface) BeginPath() {
	s.path = vector.Path{}
}

func (s *EbitenSurface) MoveTo(x, y float64) {
	s.path.MoveTo(float32(x), float32(y))
}

func (s *EbitenSurface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.path.CubicTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}

func (s *EbitenSurface) Fill() {
	if s.dst == nil {
		return
	}

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(s.fill)
	op.ColorScale.ScaleAlpha(float32(s.alpha))
	vector.FillPath(s.dst, &s.path, &vector.FillOptions{}, op)
}

func (s *EbitenSurface) Size() (width, height int) {
	return s.width, s.height
}
