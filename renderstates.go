package media

// RenderStates bundles everything applied to a single draw call.
// Texture and Shader are borrowed and must outlive the draw.
type RenderStates struct {
	BlendMode   BlendMode
	StencilMode StencilMode
	Transform   Transform
	Texture     *Texture
	Shader      *Shader
}

// DefaultRenderStates returns alpha blending, no stencil, the identity
// transform and no texture or shader.
func DefaultRenderStates() RenderStates {
	return RenderStates{
		BlendMode:   BlendAlpha,
		StencilMode: DefaultStencilMode,
		Transform:   IdentityTransform,
	}
}

// WithTexture returns a copy with the texture replaced.
func (s RenderStates) WithTexture(t *Texture) RenderStates {
	s.Texture = t
	return s
}

// WithTransform returns a copy combined with t.
func (s RenderStates) WithTransform(t Transform) RenderStates {
	s.Transform = s.Transform.Combine(t)
	return s
}
