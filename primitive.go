package media

// PrimitiveType is the topology used to interpret a vertex sequence.
type PrimitiveType uint8

const (
	Points PrimitiveType = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

var primitiveNames = map[PrimitiveType]string{
	Points:        "Points",
	Lines:         "Lines",
	LineStrip:     "LineStrip",
	Triangles:     "Triangles",
	TriangleStrip: "TriangleStrip",
	TriangleFan:   "TriangleFan",
}

func (p PrimitiveType) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}
	return "Unknown"
}
