// Package renderer2d batches screen-space quads and hands them to a GPU
// backend in as few draw calls as the texture slots allow.
package renderer2d

import (
	"fmt"

	"github.com/hubastard/flexbox/engine/assets"
	"github.com/hubastard/flexbox/engine/colors"
	"github.com/hubastard/flexbox/engine/geom"
)

// Max textures per batch; must match the sampler array in quad.frag.
const maxTexSlots = 4

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const VertexStride = 9
const vertsPerQuad = 4
const indsPerQuad = 6

// Texture is a backend texture handle. Zero is never a valid handle.
type Texture uint32

// Batch is one draw call worth of quads.
type Batch struct {
	VP       [16]float32
	Vertices []float32
	Indices  []uint32
	Textures []Texture // bound to sampler slots 0..len-1
}

// Backend uploads textures and issues draw calls.
type Backend interface {
	CreateTexture(w, h int, rgba []byte) (Texture, error)
	DrawBatch(b Batch)
}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// Renderer2D implements ui.Renderer on top of a Backend.
type Renderer2D struct {
	b      Backend
	white  Texture // 1x1 white (slot 0)
	glyph  Texture
	texArr [maxTexSlots]Texture
	texCnt int

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	vp    [16]float32
	stats Statistics
}

// New uploads the white texture and a glyphPx-sized resize glyph.
func New(b Backend, maxQuads, glyphPx int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	white, err := b.CreateTexture(1, 1, []byte{255, 255, 255, 255})
	if err != nil {
		return nil, fmt.Errorf("renderer2d: white texture: %w", err)
	}
	gw, gh, pix := assets.MaskToRGBA8(assets.ResizeGlyph(glyphPx))
	glyph, err := b.CreateTexture(gw, gh, pix)
	if err != nil {
		return nil, fmt.Errorf("renderer2d: glyph texture: %w", err)
	}

	rd := &Renderer2D{
		b: b, white: white, glyph: glyph, maxQuads: maxQuads,
		verts: make([]float32, 0, maxQuads*vertsPerQuad*VertexStride),
		inds:  make([]uint32, 0, maxQuads*indsPerQuad),
	}
	rd.resetBatch()
	return rd, nil
}

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.resetBatch()
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// FillRect draws a solid quad (white texture in slot 0).
func (rd *Renderer2D) FillRect(r geom.Rect, c colors.Color) {
	rd.DrawTexturedRect(r, rd.white, c)
}

// StrokeRect draws an outline of the given thickness inside r. An outline
// thick enough to meet in the middle is a fill.
func (rd *Renderer2D) StrokeRect(r geom.Rect, thickness float32, c colors.Color) {
	if thickness <= 0 {
		return
	}
	x, y, w, h := r.Pos.X, r.Pos.Y, r.Size.X, r.Size.Y
	if 2*thickness >= w || 2*thickness >= h {
		rd.FillRect(r, c)
		return
	}
	t := thickness
	rd.FillRect(geom.Rect{Pos: geom.V(x, y), Size: geom.V(w, t)}, c)
	rd.FillRect(geom.Rect{Pos: geom.V(x, y+h-t), Size: geom.V(w, t)}, c)
	rd.FillRect(geom.Rect{Pos: geom.V(x, y+t), Size: geom.V(t, h-2*t)}, c)
	rd.FillRect(geom.Rect{Pos: geom.V(x+w-t, y+t), Size: geom.V(t, h-2*t)}, c)
}

// DrawResizeGlyph draws the resize glyph tinted with c.
func (rd *Renderer2D) DrawResizeGlyph(r geom.Rect, c colors.Color) {
	rd.DrawTexturedRect(r, rd.glyph, c)
}

// DrawTexturedRect draws tex stretched over r, tinted with c.
func (rd *Renderer2D) DrawTexturedRect(r geom.Rect, tex Texture, tint colors.Color) {
	if r.Size.X <= 0 || r.Size.Y <= 0 || tint[3] <= 0 {
		return
	}
	rd.ensureQuadCapacity()
	slot := rd.texSlot(tex)
	rd.drawQuadInternal(r, tint, slot)
}

// --- internals ---

func (rd *Renderer2D) texSlot(t Texture) float32 {
	// already in array?
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == t {
			return float32(i)
		}
	}
	// need a new slot
	if rd.texCnt >= maxTexSlots {
		// flush and reset texture bindings
		rd.flush()
	}
	rd.texArr[rd.texCnt] = t
	rd.texCnt++
	return float32(rd.texCnt - 1)
}

func (rd *Renderer2D) drawQuadInternal(r geom.Rect, color colors.Color, texIndex float32) {
	x0, y0 := r.Pos.X, r.Pos.Y
	x1, y1 := x0+r.Size.X, y0+r.Size.Y

	// corners (TL, TR, BL, BR) with UVs. Positive Y goes down.
	corners := [4][4]float32{
		{x0, y0, 0, 0},
		{x1, y0, 1, 0},
		{x0, y1, 0, 1},
		{x1, y1, 1, 1},
	}

	startVertex := uint32(len(rd.verts) / VertexStride)
	for _, p := range corners {
		rd.verts = append(rd.verts,
			p[0], p[1],
			color[0], color[1], color[2], color[3],
			p[2], p[3],
			texIndex,
		)
	}
	rd.inds = append(rd.inds,
		startVertex+0, startVertex+2, startVertex+1,
		startVertex+1, startVertex+2, startVertex+3,
	)
	rd.quadCount++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) flush() {
	if rd.quadCount == 0 {
		return
	}
	rd.b.DrawBatch(Batch{
		VP:       rd.vp,
		Vertices: rd.verts,
		Indices:  rd.inds,
		Textures: rd.texArr[:rd.texCnt],
	})
	rd.stats.DrawCalls++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.texCnt)
	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quadCount = 0
	for i := range rd.texArr {
		rd.texArr[i] = 0
	}
	rd.texArr[0] = rd.white
	rd.texCnt = 1
}

func (rd *Renderer2D) ensureQuadCapacity() {
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
	}
}
