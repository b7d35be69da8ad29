package layout

// run describes one child in the main-axis run handed to a justifier.
type run struct {
	free   float32 // container extent minus content and both gutters
	n      int     // number of children
	i      int     // index of this child
	before float32 // main sizes of the children preceding i
	gutter float32
	gap    float32
}

type justifier func(r run) float32

var justifiers = [justifyCount]justifier{
	JustifyStart: justifyStart,
	JustifyCenter: func(r run) float32 {
		return r.free/2 + justifyStart(r)
	},
	JustifyEnd: func(r run) float32 {
		return r.free + justifyStart(r)
	},
	JustifySpaceBetween: func(r run) float32 {
		// A lone child has nothing to space against.
		if r.n < 2 {
			return justifyStart(r)
		}
		return r.gutter + r.before + r.free/float32(r.n-1)*float32(r.i)
	},
	JustifySpaceAround: func(r run) float32 {
		return r.gutter + r.free/float32(r.n)*(float32(r.i)+0.5) + r.before
	},
	JustifySpaceEvenly: func(r run) float32 {
		return r.gutter + r.free/float32(r.n+1)*float32(r.i+1) + r.before
	},
}

func justifyStart(r run) float32 {
	return r.gutter + r.before + float32(r.i)*r.gap
}

type aligner func(container, child, gutter float32) float32

var aligners = [alignCount]aligner{
	AlignStart: func(_, _, gutter float32) float32 {
		return gutter
	},
	AlignCenter: func(container, child, gutter float32) float32 {
		return gutter + (container-2*gutter-child)/2
	},
	AlignEnd: func(container, child, gutter float32) float32 {
		return container - gutter - child
	},
}

func justifierFor(j Justify) justifier {
	if j < justifyCount {
		return justifiers[j]
	}
	return justifyStart
}

func alignerFor(a Align) aligner {
	if a < alignCount {
		return aligners[a]
	}
	return aligners[AlignStart]
}
