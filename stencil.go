package media

// StencilComparison is the test applied against the stencil buffer.
type StencilComparison uint8

const (
	StencilNever StencilComparison = iota
	StencilLess
	StencilLessEqual
	StencilGreater
	StencilGreaterEqual
	StencilEqual
	StencilNotEqual
	StencilAlways
)

// StencilUpdateOperation is applied to the stencil buffer when a fragment
// passes the test.
type StencilUpdateOperation uint8

const (
	StencilKeep StencilUpdateOperation = iota
	StencilZero
	StencilReplace
	StencilIncrement
	StencilDecrement
	StencilInvert
)

// StencilMode configures stencil testing for a draw.
type StencilMode struct {
	Comparison      StencilComparison
	UpdateOperation StencilUpdateOperation
	Reference       uint32
	Mask            uint32
	// StencilOnly disables color writes so only the stencil buffer changes.
	StencilOnly bool
}

// DefaultStencilMode always passes and never writes.
var DefaultStencilMode = StencilMode{
	Comparison:      StencilAlways,
	UpdateOperation: StencilKeep,
	Mask:            ^uint32(0),
}
