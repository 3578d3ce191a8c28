package media

// BlendFactor is a source or destination blending factor.
type BlendFactor uint8

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
)

// BlendEquation combines the weighted source and destination.
type BlendEquation uint8

const (
	BlendEquationAdd BlendEquation = iota
	BlendEquationSubtract
	BlendEquationReverseSubtract
	BlendEquationMin
	BlendEquationMax
)

// BlendMode describes how pixels are blended with the render target.
// It is comparable with ==.
type BlendMode struct {
	ColorSrcFactor BlendFactor
	ColorDstFactor BlendFactor
	ColorEquation  BlendEquation
	AlphaSrcFactor BlendFactor
	AlphaDstFactor BlendFactor
	AlphaEquation  BlendEquation
}

// NewBlendMode builds a mode using the same factors for color and alpha.
func NewBlendMode(src, dst BlendFactor, eq BlendEquation) BlendMode {
	return BlendMode{
		ColorSrcFactor: src, ColorDstFactor: dst, ColorEquation: eq,
		AlphaSrcFactor: src, AlphaDstFactor: dst, AlphaEquation: eq,
	}
}

// Common blend modes.
var (
	BlendAlpha = BlendMode{
		ColorSrcFactor: BlendFactorSrcAlpha, ColorDstFactor: BlendFactorOneMinusSrcAlpha, ColorEquation: BlendEquationAdd,
		AlphaSrcFactor: BlendFactorOne, AlphaDstFactor: BlendFactorOneMinusSrcAlpha, AlphaEquation: BlendEquationAdd,
	}
	BlendAdd = BlendMode{
		ColorSrcFactor: BlendFactorSrcAlpha, ColorDstFactor: BlendFactorOne, ColorEquation: BlendEquationAdd,
		AlphaSrcFactor: BlendFactorOne, AlphaDstFactor: BlendFactorOne, AlphaEquation: BlendEquationAdd,
	}
	BlendMultiply = NewBlendMode(BlendFactorDstColor, BlendFactorZero, BlendEquationAdd)
	BlendMin      = NewBlendMode(BlendFactorOne, BlendFactorOne, BlendEquationMin)
	BlendMax      = NewBlendMode(BlendFactorOne, BlendFactorOne, BlendEquationMax)
	BlendNone     = NewBlendMode(BlendFactorOne, BlendFactorZero, BlendEquationAdd)
)

// usesMinMax reports whether either equation needs GL_MIN/GL_MAX support.
func (m BlendMode) usesMinMax() bool {
	isMinMax := func(e BlendEquation) bool { return e == BlendEquationMin || e == BlendEquationMax }
	return isMinMax(m.ColorEquation) || isMinMax(m.AlphaEquation)
}
