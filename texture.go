package media

import (
	"fmt"
	"image"
	_ "image/jpeg" // decoders for LoadTexture
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is an RGBA8 image living on the GPU.
type Texture struct {
	gc      *GraphicsContext
	id      uint32
	size    Vec2u
	params  TextureParams
	cacheID uint64

	// fboAttachment is set on textures backing a RenderTexture. Those are
	// rebound on every draw so writes from other contexts become visible.
	fboAttachment bool
}

// NewTexture allocates an uninitialized texture.
func NewTexture(gc *GraphicsContext, width, height int) (*Texture, error) {
	return NewTextureFromPixels(gc, width, height, nil)
}

// NewTextureFromPixels creates a texture from tightly packed RGBA8 pixels.
// pixels may be nil.
func NewTextureFromPixels(gc *GraphicsContext, width, height int, pixels []byte) (*Texture, error) {
	dev := gc.Device()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("create texture %dx%d: %w", width, height, ErrInvalidSize)
	}
	if limit := dev.MaxTextureSize(); limit > 0 && (width > limit || height > limit) {
		return nil, fmt.Errorf("create texture %dx%d (max %d): %w", width, height, limit, ErrInvalidSize)
	}
	if pixels != nil && len(pixels) < width*height*4 {
		return nil, fmt.Errorf("create texture: %d bytes for %dx%d: %w", len(pixels), width, height, ErrInvalidSize)
	}

	id, err := dev.CreateTexture(width, height, pixels, TextureParams{})
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	return &Texture{
		gc:      gc,
		id:      id,
		size:    Vec2u{X: uint32(width), Y: uint32(height)},
		cacheID: gc.NextTextureCacheID(),
	}, nil
}

// NewTextureFromImage uploads any image.Image, converting to RGBA first.
func NewTextureFromImage(gc *GraphicsContext, img image.Image) (*Texture, error) {
	rgba := toRGBA(img)
	b := rgba.Bounds()
	return NewTextureFromPixels(gc, b.Dx(), b.Dy(), rgba.Pix)
}

// LoadTexture decodes an image file (PNG, JPEG, BMP, TIFF or WebP) and
// uploads it.
func LoadTexture(gc *GraphicsContext, path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return NewTextureFromImage(gc, img)
}

// toRGBA returns img as a tightly packed *image.RGBA anchored at (0, 0).
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) && rgba.Stride == 4*rgba.Bounds().Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// ScaleImage resamples img to width x height with Catmull-Rom filtering.
// Handy for building mipmap-like atlases or icons of a fixed size.
func ScaleImage(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Size returns the texture size in pixels.
func (t *Texture) Size() Vec2u { return t.size }

// Rect returns the full texture area in pixels.
func (t *Texture) Rect() FloatRect {
	return FloatRect{Size: t.size.ToVec2f()}
}

// NativeHandle returns the GL texture name.
func (t *Texture) NativeHandle() uint32 { return t.id }

// CacheID identifies this texture instance for state caching.
func (t *Texture) CacheID() uint64 { return t.cacheID }

// IsSmooth reports whether linear filtering is on.
func (t *Texture) IsSmooth() bool { return t.params.Smooth }

// SetSmooth toggles linear filtering.
func (t *Texture) SetSmooth(smooth bool) {
	if t.params.Smooth == smooth {
		return
	}
	t.params.Smooth = smooth
	t.gc.Device().SetTextureParams(t.id, t.params)
	t.invalidate()
}

// IsRepeated reports whether texture coordinates wrap.
func (t *Texture) IsRepeated() bool { return t.params.Repeated }

// SetRepeated toggles wrapping.
func (t *Texture) SetRepeated(repeated bool) {
	if t.params.Repeated == repeated {
		return
	}
	t.params.Repeated = repeated
	t.gc.Device().SetTextureParams(t.id, t.params)
	t.invalidate()
}

// Update overwrites a region with RGBA8 pixels.
func (t *Texture) Update(pixels []byte, x, y, width, height int) error {
	if x < 0 || y < 0 || width <= 0 || height <= 0 ||
		x+width > int(t.size.X) || y+height > int(t.size.Y) || len(pixels) < width*height*4 {
		return fmt.Errorf("update texture region %d,%d %dx%d: %w", x, y, width, height, ErrInvalidSize)
	}
	t.gc.Device().UpdateTexture(t.id, x, y, width, height, pixels)
	t.invalidate()
	return nil
}

// UpdateFromImage overwrites a region starting at (x, y) with img.
func (t *Texture) UpdateFromImage(img image.Image, x, y int) error {
	rgba := toRGBA(img)
	b := rgba.Bounds()
	return t.Update(rgba.Pix, x, y, b.Dx(), b.Dy())
}

// CopyToImage reads the texture back from the GPU.
func (t *Texture) CopyToImage() *image.RGBA {
	w, h := int(t.size.X), int(t.size.Y)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, t.gc.Device().ReadTexture(t.id, w, h))
	return img
}

// Bind binds the texture to the active texture unit.
func (t *Texture) Bind() {
	t.gc.Device().BindTexture(t.id)
}

// invalidate gives the texture a new cache id so render targets rebind it.
func (t *Texture) invalidate() {
	t.cacheID = t.gc.NextTextureCacheID()
}

// Destroy deletes the GL texture.
func (t *Texture) Destroy() {
	if t.id != 0 {
		t.gc.Device().DeleteTexture(t.id)
		t.id = 0
	}
}
