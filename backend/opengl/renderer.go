// Package opengl provides an OpenGL 4.1 backend for the GUI package.
// Every gui.WidgetInstance becomes one instance of a unit quad: solid
// instances are shaded as rounded rectangles with a signed distance
// function, glyph instances sample the single-channel glyph atlas.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	gui "github.com/go-theft-auto/flexgui"
)

// Attribute locations shared by the shader and the VAO setup.
const (
	attrCorner = iota
	attrPosition
	attrScale
	attrAtlasOffset
	attrAtlasScale
	attrColor
	attrType
	attrRadius
)

// Renderer implements gui.Renderer using OpenGL instanced draws.
type Renderer struct {
	shader      uint32
	vao         uint32
	quadVBO     uint32 // static unit quad corners
	instanceVBO uint32 // per-frame WidgetInstance data
	atlasTex    uint32
	projLoc     int32
	atlasLoc    int32
	width       int
	height      int

	// instanceCap is the allocated size of instanceVBO in instances.
	instanceCap int
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aCorner;
layout (location = 1) in vec2 aPosition;
layout (location = 2) in vec2 aScale;
layout (location = 3) in vec2 aAtlasOffset;
layout (location = 4) in vec2 aAtlasScale;
layout (location = 5) in vec4 aColor;
layout (location = 6) in uint aType;
layout (location = 7) in float aRadius;

out vec2 Local;
out vec2 TexCoord;
out vec4 Color;
flat out vec2 Size;
flat out float Radius;
flat out uint Type;

uniform mat4 projection;

void main() {
    Local = aCorner * aScale;
    gl_Position = projection * vec4(aPosition + Local, 0.0, 1.0);
    TexCoord = aAtlasOffset + aCorner * aAtlasScale;
    Color = aColor;
    Size = aScale;
    Radius = aRadius;
    Type = aType;
}
` + "\x00"

// Fragment shader source
// Type 0 is a solid quad with optional rounded corners, type 1 a glyph whose
// coverage comes from the atlas R channel.
const fragmentShaderSource = `
#version 410 core
in vec2 Local;
in vec2 TexCoord;
in vec4 Color;
flat in vec2 Size;
flat in float Radius;
flat in uint Type;

out vec4 FragColor;

uniform sampler2D atlas;

void main() {
    if (Type == 1u) {
        FragColor = vec4(Color.rgb, Color.a * texture(atlas, TexCoord).r);
        return;
    }
    vec2 halfSize = Size * 0.5;
    float r = min(Radius, min(halfSize.x, halfSize.y));
    vec2 q = abs(Local - halfSize) - halfSize + vec2(r);
    float d = length(max(q, 0.0)) + min(max(q.x, q.y), 0.0) - r;
    FragColor = vec4(Color.rgb, Color.a * clamp(0.5 - d, 0.0, 1.0));
}
` + "\x00"

// NewRenderer creates a new OpenGL GUI renderer.
// A GL context must be current on the calling goroutine.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
	}

	// Create shader program
	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	// Get uniform locations
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.atlasLoc = gl.GetUniformLocation(r.shader, gl.Str("atlas\x00"))

	// Create VAO
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Unit quad as a triangle strip
	corners := [8]float32{0, 0, 1, 0, 0, 1, 1, 1}
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(corners)*4, gl.Ptr(&corners[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(attrCorner, 2, gl.FLOAT, false, 8, 0)
	gl.EnableVertexAttribArray(attrCorner)

	// Instance attributes, laid out exactly like gui.WidgetInstance
	gl.GenBuffers(1, &r.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)

	var inst gui.WidgetInstance
	stride := int32(unsafe.Sizeof(inst))
	floatAttr := func(loc uint32, size int32, offset uintptr) {
		gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribDivisor(loc, 1)
	}
	floatAttr(attrPosition, 2, unsafe.Offsetof(inst.Position))
	floatAttr(attrScale, 2, unsafe.Offsetof(inst.Scale))
	floatAttr(attrAtlasOffset, 2, unsafe.Offsetof(inst.AtlasOffset))
	floatAttr(attrAtlasScale, 2, unsafe.Offsetof(inst.AtlasScale))
	floatAttr(attrColor, 4, unsafe.Offsetof(inst.Color))
	floatAttr(attrRadius, 1, unsafe.Offsetof(inst.BorderRadius))

	gl.VertexAttribIPointerWithOffset(attrType, 1, gl.UNSIGNED_INT, stride, unsafe.Offsetof(inst.Type))
	gl.EnableVertexAttribArray(attrType)
	gl.VertexAttribDivisor(attrType, 1)

	gl.BindVertexArray(0)

	// Placeholder atlas: glyphs draw as solid cells until SetAtlas is called
	r.atlasTex = createAlphaTexture(1, 1, []byte{255})

	return r, nil
}

// AtlasTextureID returns the OpenGL texture ID for the glyph atlas.
func (r *Renderer) AtlasTextureID() uint32 {
	return r.atlasTex
}

// SetAtlas uploads img as the glyph atlas, replacing the previous one.
func (r *Renderer) SetAtlas(img *image.Alpha) {
	b := img.Bounds()
	pix := img.Pix
	if img.Stride != b.Dx() {
		pix = make([]byte, 0, b.Dx()*b.Dy())
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := img.PixOffset(b.Min.X, y)
			pix = append(pix, img.Pix[off:off+b.Dx()]...)
		}
	}
	if r.atlasTex != 0 {
		gl.DeleteTextures(1, &r.atlasTex)
	}
	r.atlasTex = createAlphaTexture(b.Dx(), b.Dy(), pix)
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws the frame's instances in list order.
func (r *Renderer) Render(list *gui.InstanceList) error {
	if list == nil || list.Len() == 0 {
		return nil
	}

	// Save GL state
	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var blendEnabled, depthEnabled, cullEnabled bool

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	blendEnabled = gl.IsEnabled(gl.BLEND)
	depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled = gl.IsEnabled(gl.CULL_FACE)

	// Setup render state
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	// Use shader
	gl.UseProgram(r.shader)

	// Set projection matrix (orthographic, y down)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	// Bind atlas
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	gl.Uniform1i(r.atlasLoc, 0)

	// Upload instances, growing the buffer only when needed
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	n := list.Len()
	size := n * int(unsafe.Sizeof(gui.WidgetInstance{}))
	if n > r.instanceCap {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(list.Instances), gl.STREAM_DRAW)
		r.instanceCap = n
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(list.Instances))
	}

	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, 4, int32(n))

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))

	if blendEnabled {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}
	if depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if cullEnabled {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.atlasTex != 0 {
		gl.DeleteTextures(1, &r.atlasTex)
	}
	if r.instanceVBO != 0 {
		gl.DeleteBuffers(1, &r.instanceVBO)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createAlphaTexture uploads tightly packed 8-bit coverage data as a
// single-channel texture.
func createAlphaTexture(width, height int, data []byte) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(width), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", log)
	}
	return shader, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
