package assets

import (
	"image"

	"golang.org/x/image/vector"
)

// The resize glyph is two diagonal arrows pointing at opposite corners,
// outlined in a 1200x1200 box.
const glyphBox = 1200

var resizeGlyph = [][][2]float32{
	{
		{670.312, 0}, {847.558, 177.295}, {606.348, 418.506}, {781.494, 593.652},
		{1022.705, 352.441}, {1200, 529.688}, {1200, 0},
	},
	{
		{418.506, 606.348}, {177.295, 847.559}, {0, 670.312}, {0, 1200},
		{529.688, 1200}, {352.442, 1022.705}, {593.653, 781.494},
	},
}

// ResizeGlyph rasterizes the resize-handle glyph into a px by px coverage mask.
func ResizeGlyph(px int) *image.Alpha {
	if px <= 0 {
		return image.NewAlpha(image.Rect(0, 0, 0, 0))
	}
	dst := image.NewAlpha(image.Rect(0, 0, px, px))
	r := vector.NewRasterizer(px, px)
	s := float32(px) / glyphBox
	for _, poly := range resizeGlyph {
		r.MoveTo(poly[0][0]*s, poly[0][1]*s)
		for _, p := range poly[1:] {
			r.LineTo(p[0]*s, p[1]*s)
		}
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// MaskToRGBA8 expands a coverage mask into tightly packed white RGBA8 pixels
// (row-major, top-left origin) with the mask as straight alpha.
func MaskToRGBA8(mask *image.Alpha) (w, h int, rgba []byte) {
	b := mask.Bounds()
	w, h = b.Dx(), b.Dy()
	rgba = make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			rgba[i], rgba[i+1], rgba[i+2] = 255, 255, 255
			rgba[i+3] = mask.AlphaAt(b.Min.X+x, b.Min.Y+y).A
		}
	}
	return w, h, rgba
}
