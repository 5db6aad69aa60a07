package game

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"math"
	"os"

	"golang.org/x/image/vector"
)

// RasterSurface is a software surface backed by an RGBA image.
// Paths are rasterised with golang.org/x/image/vector and composited over
// the existing pixels. Only the part of the image covered by a path's
// control hull is rasterised on Fill.
type RasterSurface struct {
	img        *image.RGBA
	raster     *vector.Rasterizer
	background color.NRGBA

	fill  color.NRGBA
	alpha float64

	// current path, replayed into the rasterizer on Fill
	path []pathSegment

	// path hull, used to size the rasterizer and to skip fills that cannot
	// touch the image
	empty                  bool
	minX, minY, maxX, maxY float64
}

type pathSegment struct {
	cubic bool
	pts   [3][2]float64 // MoveTo uses pts[0] only
}

// NewRasterSurface creates a width x height surface
func NewRasterSurface(width, height int, background color.NRGBA) *RasterSurface {
	raster := vector.NewRasterizer(width, height)
	raster.DrawOp = draw.Over

	return &RasterSurface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		raster:     raster,
		background: background,
		fill:       colorHeart,
		alpha:      1,
		empty:      true,
	}
}

// Image returns the backing image
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

func (s *RasterSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

func (s *RasterSurface) SetFillColor(clr color.Color) {
	s.fill = color.NRGBAModel.Convert(clr).(color.NRGBA)
}

func (s *RasterSurface) SetGlobalAlpha(alpha float64) {
	s.alpha = alpha
}

func (s *RasterSurface) BeginPath() {
	s.path = s.path[:0]
	s.empty = true
}

func (s *RasterSurface) MoveTo(x, y float64) {
	s.extend(x, y)
	s.path = append(s.path, pathSegment{pts: [3][2]float64{{x, y}}})
}

func (s *RasterSurface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.extend(c1x, c1y)
	s.extend(c2x, c2y)
	s.extend(x, y)
	s.path = append(s.path, pathSegment{
		cubic: true,
		pts:   [3][2]float64{{c1x, c1y}, {c2x, c2y}, {x, y}},
	})
}

func (s *RasterSurface) Fill() {
	if s.empty {
		return
	}
	r := s.dirtyRect()
	if r.Empty() {
		return
	}

	src := s.fill
	src.A = uint8(float64(src.A)*clamp01(s.alpha) + 0.5)
	if src.A == 0 {
		return
	}

	// rasterise in the dirty rectangle's own coordinates
	s.raster.Reset(r.Dx(), r.Dy())
	s.raster.DrawOp = draw.Over
	dx, dy := float64(r.Min.X), float64(r.Min.Y)
	for _, seg := range s.path {
		p := seg.pts
		if !seg.cubic {
			s.raster.MoveTo(float32(p[0][0]-dx), float32(p[0][1]-dy))
			continue
		}
		s.raster.CubeTo(
			float32(p[0][0]-dx), float32(p[0][1]-dy),
			float32(p[1][0]-dx), float32(p[1][1]-dy),
			float32(p[2][0]-dx), float32(p[2][1]-dy),
		)
	}
	s.raster.ClosePath()
	s.raster.Draw(s.img, r, image.NewUniform(src), image.Point{})
}

func (s *RasterSurface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// WritePNG encodes the current image as PNG
func (s *RasterSurface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current image to filename
func (s *RasterSurface) SavePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}

	if err := s.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		log.Printf("Failed to close %s: %v", filename, err)
		return err
	}
	return nil
}

func (s *RasterSurface) extend(x, y float64) {
	if s.empty {
		s.minX, s.maxX, s.minY, s.maxY = x, x, y, y
		s.empty = false
		return
	}
	s.minX = min(s.minX, x)
	s.maxX = max(s.maxX, x)
	s.minY = min(s.minY, y)
	s.maxY = max(s.maxY, y)
}

// dirtyRect returns the pixels the current path can touch: its control hull
// clipped to the image. A cubic curve never leaves the hull of its control
// points.
func (s *RasterSurface) dirtyRect() image.Rectangle {
	// guard the int conversion against hearts far outside the image
	b := s.img.Bounds()
	if s.maxX < 0 || s.maxY < 0 || s.minX >= float64(b.Max.X) || s.minY >= float64(b.Max.Y) {
		return image.Rectangle{}
	}
	r := image.Rect(
		int(math.Floor(max(s.minX, 0))),
		int(math.Floor(max(s.minY, 0))),
		int(math.Ceil(min(s.maxX, float64(b.Max.X))))+1,
		int(math.Ceil(min(s.maxY, float64(b.Max.Y))))+1,
	)
	return r.Intersect(b)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
