package game

import (
	"fmt"
	"image/color"
)

// seqSource replays a fixed sequence of values, cycling when exhausted
type seqSource struct {
	values []float64
	next   int
}

func (s *seqSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// call is one recorded surface operation
type call struct {
	op   string
	args []float64
}

func (c call) String() string {
	return fmt.Sprintf("%s%v", c.op, c.args)
}

// recordingSurface records every call made on it
type recordingSurface struct {
	width, height int
	calls         []call
	fill          color.Color
	alpha         float64
}

func newRecordingSurface(width, height int) *recordingSurface {
	return &recordingSurface{width: width, height: height}
}

func (r *recordingSurface) record(op string, args ...float64) {
	r.calls = append(r.calls, call{op: op, args: args})
}

func (r *recordingSurface) Clear() { r.record("clear") }

func (r *recordingSurface) SetFillColor(clr color.Color) {
	r.fill = clr
	r.record("fillColor")
}

func (r *recordingSurface) SetGlobalAlpha(alpha float64) {
	r.alpha = alpha
	r.record("alpha", alpha)
}

func (r *recordingSurface) BeginPath()          { r.record("beginPath") }
func (r *recordingSurface) MoveTo(x, y float64) { r.record("moveTo", x, y) }
func (r *recordingSurface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.record("cubicTo", c1x, c1y, c2x, c2y, x, y)
}
func (r *recordingSurface) Fill()            { r.record("fill") }
func (r *recordingSurface) Size() (int, int) { return r.width, r.height }

func (r *recordingSurface) ops(name string) []call {
	var out []call
	for _, c := range r.calls {
		if c.op == name {
			out = append(out, c)
		}
	}
	return out
}
