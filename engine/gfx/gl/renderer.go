package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/flexbox/engine/assets"
	"github.com/hubastard/flexbox/engine/core"
	"github.com/hubastard/flexbox/engine/gfx/renderer2d"
)

// RendererGL is the OpenGL 3.3 backend: core.Renderer for frame setup and
// renderer2d.Backend for batched quads.
type RendererGL struct {
	win      core.Window
	program  uint32
	vao      uint32
	vbo      uint32
	ebo      uint32
	uVP      int32
	uTex     int32
	textures []uint32
	vboCap   int // bytes
	eboCap   int // bytes
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	vs, err := assets.LoadShader("quad.vert")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader("quad.frag")
	if err != nil {
		return err
	}
	r.program, err = makeProgram(vs, fs)
	if err != nil {
		return err
	}
	r.uVP = gl.GetUniformLocation(r.program, gl.Str("uVP\x00"))
	r.uTex = gl.GetUniformLocation(r.program, gl.Str("uTex\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// pos2, color4, uv2, texIndex1
	const stride = renderer2d.VertexStride * 4 // bytes
	attribs := []struct {
		loc, size, offset int
	}{
		{0, 2, 0},
		{1, 4, 2},
		{2, 2, 6},
		{3, 1, 8},
	}
	for _, a := range attribs {
		gl.EnableVertexAttribArray(uint32(a.loc))
		gl.VertexAttribPointerWithOffset(uint32(a.loc), int32(a.size), gl.FLOAT, false, stride, uintptr(a.offset*4))
	}
	gl.BindVertexArray(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (r *RendererGL) Shutdown() {
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// CreateTexture uploads tightly packed RGBA8 pixels (top-left origin).
func (r *RendererGL) CreateTexture(w, h int, rgba []byte) (renderer2d.Texture, error) {
	if w <= 0 || h <= 0 || len(rgba) != w*h*4 {
		return 0, fmt.Errorf("texture %dx%d with %d bytes", w, h, len(rgba))
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	r.textures = append(r.textures, tex)
	return renderer2d.Texture(tex), nil
}

func (r *RendererGL) DrawBatch(b renderer2d.Batch) {
	if len(b.Indices) == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uVP, 1, false, &b.VP[0])

	var units [4]int32
	for i, t := range b.Textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, uint32(t))
		units[i] = int32(i)
	}
	gl.Uniform1iv(r.uTex, int32(len(units)), &units[0])

	gl.BindVertexArray(r.vao)
	vBytes := len(b.Vertices) * 4
	iBytes := len(b.Indices) * 4
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if vBytes > r.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, vBytes, gl.Ptr(b.Vertices), gl.DYNAMIC_DRAW)
		r.vboCap = vBytes
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, vBytes, gl.Ptr(b.Vertices))
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	if iBytes > r.eboCap {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, iBytes, gl.Ptr(b.Indices), gl.DYNAMIC_DRAW)
		r.eboCap = iBytes
	} else {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, iBytes, gl.Ptr(b.Indices))
	}

	gl.DrawElements(gl.TRIANGLES, int32(len(b.Indices)), gl.UNSIGNED_INT, unsafe.Pointer(nil))
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
