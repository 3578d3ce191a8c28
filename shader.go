package media

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names every shader used with a RenderTarget must declare.
const (
	UniformMVPMatrix = "u_mvpMatrix"
	UniformTexture   = "u_texture"
)

// DefaultVertexShader transforms positions by the MVP matrix and converts
// pixel texture coordinates to normalized ones.
const DefaultVertexShader = `
#version 410 core
layout (location = 0) in vec2 a_position;
layout (location = 1) in vec4 a_color;
layout (location = 2) in vec2 a_texCoord;

uniform mat4 u_mvpMatrix;
uniform sampler2D u_texture;

out vec4 v_color;
out vec2 v_texCoord;

void main() {
    gl_Position = u_mvpMatrix * vec4(a_position, 0.0, 1.0);
    v_color = a_color;
    v_texCoord = a_texCoord / vec2(textureSize(u_texture, 0));
}
`

// DefaultFragmentShader modulates the texture by the vertex color.
const DefaultFragmentShader = `
#version 410 core
in vec4 v_color;
in vec2 v_texCoord;

uniform sampler2D u_texture;

out vec4 fragColor;

void main() {
    fragColor = v_color * texture(u_texture, v_texCoord);
}
`

type uniformValue struct {
	kind uint8
	i    int32
	f    [4]float32
	m    mgl32.Mat4
}

const (
	uniformInt uint8 = iota
	uniformFloat
	uniformVec2
	uniformVec4
	uniformMat4
)

// Shader is a linked GLSL program. Uniform values set between draws are
// recorded and uploaded when the shader is next bound for drawing.
type Shader struct {
	gc      *GraphicsContext
	program uint32

	mvpLocation     int32
	textureLocation int32

	locations map[string]int32
	pending   map[int32]uniformValue
}

// NewShader compiles and links a program from GLSL sources.
// A context must be current.
func NewShader(gc *GraphicsContext, vertexSource, fragmentSource string) (*Shader, error) {
	dev := gc.Device()
	program, err := dev.CreateProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	s := &Shader{
		gc:        gc,
		program:   program,
		locations: make(map[string]int32),
		pending:   make(map[int32]uniformValue),
	}
	s.mvpLocation = s.UniformLocation(UniformMVPMatrix)
	s.textureLocation = s.UniformLocation(UniformTexture)
	if s.textureLocation >= 0 {
		s.pending[s.textureLocation] = uniformValue{kind: uniformInt, i: 0}
	}
	return s, nil
}

// LoadShader reads vertex and fragment sources from disk.
func LoadShader(gc *GraphicsContext, vertexPath, fragmentPath string) (*Shader, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("read vertex shader: %w", err)
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("read fragment shader: %w", err)
	}
	return NewShader(gc, string(vs), string(fs))
}

// NativeHandle returns the GL program name.
func (s *Shader) NativeHandle() uint32 {
	return s.program
}

// UniformLocation returns the location of name, -1 if the program does not
// use it. Lookups are cached.
func (s *Shader) UniformLocation(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := s.gc.Device().UniformLocation(s.program, name)
	s.locations[name] = loc
	return loc
}

func (s *Shader) set(name string, v uniformValue) bool {
	loc := s.UniformLocation(name)
	if loc < 0 {
		return false
	}
	s.pending[loc] = v
	return true
}

// SetInt sets an int or sampler uniform. It returns false if the program
// has no such uniform.
func (s *Shader) SetInt(name string, v int32) bool {
	return s.set(name, uniformValue{kind: uniformInt, i: v})
}

// SetFloat sets a float uniform.
func (s *Shader) SetFloat(name string, v float32) bool {
	return s.set(name, uniformValue{kind: uniformFloat, f: [4]float32{v}})
}

// SetVec2 sets a vec2 uniform.
func (s *Shader) SetVec2(name string, v Vec2f) bool {
	return s.set(name, uniformValue{kind: uniformVec2, f: [4]float32{v.X, v.Y}})
}

// SetColor sets a vec4 uniform from a color, normalized to [0, 1].
func (s *Shader) SetColor(name string, c Color) bool {
	return s.set(name, uniformValue{kind: uniformVec4, f: c.Normalized()})
}

// SetMat4 sets a mat4 uniform.
func (s *Shader) SetMat4(name string, m mgl32.Mat4) bool {
	return s.set(name, uniformValue{kind: uniformMat4, m: m})
}

// SetTransform sets a mat4 uniform from a 2D transform.
func (s *Shader) SetTransform(name string, t Transform) bool {
	return s.SetMat4(name, t.Matrix())
}

// Bind makes the program current and uploads pending uniforms.
func (s *Shader) Bind() {
	s.gc.Device().UseProgram(s.program)
	s.flushUniforms()
}

// dirty reports whether uniforms wait for upload.
func (s *Shader) dirty() bool {
	return len(s.pending) > 0
}

// flushUniforms uploads pending uniforms. The program must be current.
func (s *Shader) flushUniforms() {
	if len(s.pending) == 0 {
		return
	}
	dev := s.gc.Device()
	for loc, v := range s.pending {
		switch v.kind {
		case uniformInt:
			dev.Uniform1i(loc, v.i)
		case uniformFloat:
			dev.Uniform1f(loc, v.f[0])
		case uniformVec2:
			dev.Uniform2f(loc, v.f[0], v.f[1])
		case uniformVec4:
			dev.Uniform4f(loc, v.f[0], v.f[1], v.f[2], v.f[3])
		case uniformMat4:
			dev.UniformMatrix4(loc, v.m)
		}
	}
	clear(s.pending)
}

// Destroy deletes the program.
func (s *Shader) Destroy() {
	if s.program != 0 {
		s.gc.Device().DeleteProgram(s.program)
		s.program = 0
	}
}
