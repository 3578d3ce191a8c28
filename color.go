package media

import "math"

// Color is an 8-bit per channel RGBA color.
// The field order matches the GL_UNSIGNED_BYTE vertex attribute layout.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors.
var (
	ColorBlack       = Color{0, 0, 0, 255}
	ColorWhite       = Color{255, 255, 255, 255}
	ColorRed         = Color{255, 0, 0, 255}
	ColorGreen       = Color{0, 255, 0, 255}
	ColorBlue        = Color{0, 0, 255, 255}
	ColorYellow      = Color{255, 255, 0, 255}
	ColorMagenta     = Color{255, 0, 255, 255}
	ColorCyan        = Color{0, 255, 255, 255}
	ColorTransparent = Color{0, 0, 0, 0}
)

// RGBA creates a color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBAf creates a color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) Color {
	return Color{
		R: uint8(clampf(r, 0, 1) * 255),
		G: uint8(clampf(g, 0, 1) * 255),
		B: uint8(clampf(b, 0, 1) * 255),
		A: uint8(clampf(a, 0, 1) * 255),
	}
}

// ColorFromInteger unpacks a 0xRRGGBBAA value.
func ColorFromInteger(v uint32) Color {
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// ToInteger packs the color as 0xRRGGBBAA.
func (c Color) ToInteger() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Packed returns the color as 0xAABBGGRR, the little-endian in-memory
// layout OpenGL reads for an unsigned byte RGBA attribute.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// Normalized returns the channels as floats in [0, 1].
func (c Color) Normalized() [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// WithAlpha returns a copy with a different alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Modulate multiplies two colors channel by channel.
func (c Color) Modulate(other Color) Color {
	return Color{
		R: uint8(uint16(c.R) * uint16(other.R) / 255),
		G: uint8(uint16(c.G) * uint16(other.G) / 255),
		B: uint8(uint16(c.B) * uint16(other.B) / 255),
		A: uint8(uint16(c.A) * uint16(other.A) / 255),
	}
}

// HSL is a hue/saturation/lightness triple.
// Hue is in degrees [0, 360), saturation and lightness in [0, 1].
type HSL struct {
	Hue        float32
	Saturation float32
	Lightness  float32
}

// ColorFromHSLA converts an HSL triple and an alpha to a color.
// Hue wraps around 360, saturation and lightness are clamped to [0, 1].
func ColorFromHSLA(hsl HSL, alpha uint8) Color {
	hue := positiveRemainder(float64(hsl.Hue), 360)
	sat := math.Max(0, math.Min(1, float64(hsl.Saturation)))
	light := math.Max(0, math.Min(1, float64(hsl.Lightness)))

	var maxChroma float64
	if light < 0.5 {
		maxChroma = light * (1 + sat)
	} else {
		maxChroma = light + sat - light*sat
	}
	minChroma := 2*light - maxChroma
	normalizedHue := hue / 360

	hueToRGB := func(h float64) float64 {
		if h < 0 {
			h++
		}
		if h > 1 {
			h--
		}
		switch {
		case h < 1.0/6.0:
			return minChroma + (maxChroma-minChroma)*6*h
		case h < 0.5:
			return maxChroma
		case h < 2.0/3.0:
			return minChroma + (maxChroma-minChroma)*(2.0/3.0-h)*6
		default:
			return minChroma
		}
	}

	toByte := func(v float64) uint8 {
		return uint8(math.Max(0, math.Min(255, v*255+0.5)))
	}

	return Color{
		R: toByte(hueToRGB(normalizedHue + 1.0/3.0)),
		G: toByte(hueToRGB(normalizedHue)),
		B: toByte(hueToRGB(normalizedHue - 1.0/3.0)),
		A: alpha,
	}
}

// ToHSL converts the color to hue, saturation and lightness. Alpha is
// ignored.
func (c Color) ToHSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	chroma := maxC - minC
	light := (maxC + minC) / 2

	var hue float64
	if chroma != 0 {
		switch maxC {
		case r:
			hue = 60 * positiveRemainder((g-b)/chroma, 6)
		case g:
			hue = 60 * ((b-r)/chroma + 2)
		default:
			hue = 60 * ((r-g)/chroma + 4)
		}
	}

	var sat float64
	if light != 0 && light != 1 {
		sat = chroma / (1 - math.Abs(2*light-1))
	}

	return HSL{Hue: float32(hue), Saturation: float32(sat), Lightness: float32(light)}
}

// WithHueMod returns the color with its hue rotated by degrees.
func (c Color) WithHueMod(degrees float32) Color {
	hsl := c.ToHSL()
	hsl.Hue = float32(positiveRemainder(float64(hsl.Hue)+float64(degrees), 360))
	return ColorFromHSLA(hsl, c.A)
}

// WithSaturation returns the color with its saturation replaced.
func (c Color) WithSaturation(s float32) Color {
	hsl := c.ToHSL()
	hsl.Saturation = s
	return ColorFromHSLA(hsl, c.A)
}

// WithLightness returns the color with its lightness replaced.
func (c Color) WithLightness(l float32) Color {
	hsl := c.ToHSL()
	hsl.Lightness = l
	return ColorFromHSLA(hsl, c.A)
}

func positiveRemainder(a, b float64) float64 {
	r := math.Mod(a, b)
	if r < 0 {
		r += b
	}
	return r
}
