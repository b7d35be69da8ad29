package layout

import "github.com/hubastard/flexbox/engine/geom"

// Solve returns the position of every child, in the order of sizes, inside a
// container of the given size. Positions are relative to the container's
// top-left corner. An empty sizes slice yields an empty result.
func Solve(container geom.Vec2, sizes []geom.Vec2, p Policy) []geom.Vec2 {
	n := len(sizes)
	if n == 0 {
		return []geom.Vec2{}
	}

	axis := p.Axis
	free := container.Main(axis) - contentExtent(sizes, p) - 2*p.GutterMain
	justify := justifierFor(p.Justify)
	align := alignerFor(p.Align)
	crossExtent := container.Cross(axis)

	out := make([]geom.Vec2, n)
	var before float32
	for i, sz := range sizes {
		main := justify(run{
			free:   free,
			n:      n,
			i:      i,
			before: before,
			gutter: p.GutterMain,
			gap:    p.Gap,
		})
		cross := align(crossExtent, sz.Cross(axis), p.GutterCross)
		out[i] = geom.FromAxes(axis, main, cross)
		before += sz.Main(axis)
	}
	return out
}

// Extent is the main-axis length the children need: their sizes, the gaps
// between them and both main gutters. A container shorter than this
// overflows.
func Extent(sizes []geom.Vec2, p Policy) float32 {
	return contentExtent(sizes, p) + 2*p.GutterMain
}

// FreeSpace is the main-axis space left once the children, gaps and gutters
// are accounted for. It is negative when the children overflow.
func FreeSpace(container geom.Vec2, sizes []geom.Vec2, p Policy) float32 {
	return container.Main(p.Axis) - Extent(sizes, p)
}

func contentExtent(sizes []geom.Vec2, p Policy) float32 {
	if len(sizes) == 0 {
		return 0
	}
	var total float32
	for _, sz := range sizes {
		total += sz.Main(p.Axis)
	}
	return total + float32(len(sizes)-1)*p.Gap
}
