// Command gen renders sample scenes of every drawable into render textures
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/media"
	"github.com/go-theft-auto/media/backend/glfw"
	"github.com/go-theft-auto/media/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string                        // filename without extension
	width  int                           // render texture width
	height int                           // render texture height
	draw   func(rt *media.RenderTexture) // scene drawing function
}

// assets are shared by every scene.
type assets struct {
	font    media.FontAtlas
	checker *media.Texture
}

func run() error {
	platform, err := glfw.New()
	if err != nil {
		return err
	}
	wc := media.NewWindowContext(platform)
	defer wc.Close()

	gc := media.NewGraphicsContext(opengl.New())

	// A hidden window only provides the GL context.
	window, err := media.NewRenderWindow(wc, gc, media.WithTitle("screenshot-gen"), media.WithHidden())
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Close()
	defer gc.Close()

	font, err := media.NewTrueTypeFont(gc, goregular.TTF, 22)
	if err != nil {
		return err
	}
	defer font.Destroy()

	checker, err := checkerTexture(gc)
	if err != nil {
		return err
	}
	defer checker.Destroy()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots(assets{font: font, checker: checker})
	for _, s := range shots {
		if err := capture(gc, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(gc *media.GraphicsContext, s screenshot, outDir string) error {
	rt, err := media.NewRenderTexture(gc, s.width, s.height)
	if err != nil {
		return err
	}
	defer rt.Destroy()

	rt.ClearColorAndStencil(media.RGBA(30, 30, 36, 255), 0)
	s.draw(rt)
	rt.Display()

	// Render textures are drawn top row first, so no flip is needed.
	img := rt.Texture().CopyToImage()

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func checkerTexture(gc *media.GraphicsContext) (*media.Texture, error) {
	const size, cell = 64, 8
	pix := make([]byte, size*size*4)
	for y := range size {
		for x := range size {
			v := byte(80)
			if (x/cell+y/cell)%2 == 0 {
				v = 220
			}
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 255
		}
	}
	return media.NewTextureFromPixels(gc, size, size, pix)
}

func buildScreenshots(a assets) []screenshot {
	return []screenshot{
		{name: "shapes", width: 320, height: 200, draw: drawShapes},
		{name: "sprites", width: 320, height: 200, draw: func(rt *media.RenderTexture) { drawSprites(rt, a.checker) }},
		{name: "text", width: 400, height: 120, draw: func(rt *media.RenderTexture) { drawText(rt, a.font) }},
		{name: "blend_modes", width: 400, height: 120, draw: drawBlendModes},
		{name: "stencil", width: 200, height: 200, draw: func(rt *media.RenderTexture) { drawStencil(rt, a.checker) }},
		{name: "views", width: 320, height: 200, draw: drawViews},
	}
}

func drawShapes(rt *media.RenderTexture) {
	rect := media.NewRectangleShape(media.Vec2f{X: 80, Y: 60})
	rect.Position = media.Vec2f{X: 20, Y: 20}
	rect.SetFillColor(media.ColorRed)
	rect.SetOutlineThickness(3)
	rect.SetOutlineColor(media.ColorWhite)
	rt.Draw(rect, media.DefaultRenderStates())

	circle := media.NewCircleShape(40, 40)
	circle.Position = media.Vec2f{X: 130, Y: 20}
	circle.SetFillColor(media.ColorFromHSLA(media.HSL{Hue: 200, Saturation: 0.8, Lightness: 0.5}, 255))
	rt.Draw(circle, media.DefaultRenderStates())

	tri := media.NewConvexShape(media.Vec2f{X: 30}, media.Vec2f{X: 60, Y: 60}, media.Vec2f{Y: 60})
	tri.Position = media.Vec2f{X: 240, Y: 30}
	tri.Rotation = 15
	tri.SetFillColor(media.ColorYellow)
	rt.Draw(tri, media.DefaultRenderStates())

	line := media.VertexArray{
		Primitive: media.LineStrip,
		Vertices: []media.Vertex{
			{Position: media.Vec2f{X: 20, Y: 170}, Color: media.ColorCyan},
			{Position: media.Vec2f{X: 160, Y: 120}, Color: media.ColorMagenta},
			{Position: media.Vec2f{X: 300, Y: 170}, Color: media.ColorCyan},
		},
	}
	rt.Draw(line, media.DefaultRenderStates())
}

func drawSprites(rt *media.RenderTexture, checker *media.Texture) {
	rt.SetAutoBatchMode(media.AutoBatchCPU)
	for i := range 5 {
		s := media.NewSprite(checker)
		s.Position = media.Vec2f{X: float32(20 + i*58), Y: 70}
		s.Color = media.ColorFromHSLA(media.HSL{Hue: float32(i * 60), Saturation: 1, Lightness: 0.8}, 255)
		rt.Draw(s, media.DefaultRenderStates())
	}
	rt.Flush()
}

func drawText(rt *media.RenderTexture, font media.FontAtlas) {
	title := media.NewText(font, "media: windows, events, 2D")
	title.Position = media.Vec2f{X: 16, Y: 16}
	title.SetOutlineThickness(1)
	rt.Draw(title, media.DefaultRenderStates())

	accents := media.NewText(font, "Ünïcödé → NFC")
	accents.Position = media.Vec2f{X: 16, Y: 64}
	accents.SetFillColor(media.ColorYellow)
	rt.Draw(accents, media.DefaultRenderStates())
}

func drawBlendModes(rt *media.RenderTexture) {
	modes := []media.BlendMode{media.BlendAlpha, media.BlendAdd, media.BlendMultiply, media.BlendMax}
	for i, mode := range modes {
		x := float32(16 + i*96)

		back := media.NewRectangleShape(media.Vec2f{X: 60, Y: 60})
		back.Position = media.Vec2f{X: x, Y: 20}
		back.SetFillColor(media.RGBA(200, 60, 60, 255))
		rt.Draw(back, media.DefaultRenderStates())

		front := media.NewCircleShape(28, 30)
		front.Position = media.Vec2f{X: x + 24, Y: 44}
		front.SetFillColor(media.RGBA(60, 120, 220, 160))
		states := media.DefaultRenderStates()
		states.BlendMode = mode
		rt.Draw(front, states)
	}
}

func drawStencil(rt *media.RenderTexture, checker *media.Texture) {
	mask := media.NewCircleShape(80, 60)
	mask.Position = media.Vec2f{X: 20, Y: 20}
	write := media.DefaultRenderStates()
	write.StencilMode = media.StencilMode{
		Comparison:      media.StencilAlways,
		UpdateOperation: media.StencilReplace,
		Reference:       1,
		Mask:            0xff,
		StencilOnly:     true,
	}
	rt.Draw(mask, write)

	s := media.NewSprite(checker)
	s.Scale = media.Vec2f{X: 200.0 / 64, Y: 200.0 / 64}
	test := media.DefaultRenderStates()
	test.StencilMode = media.StencilMode{
		Comparison:      media.StencilEqual,
		UpdateOperation: media.StencilKeep,
		Reference:       1,
		Mask:            0xff,
	}
	rt.Draw(s, test)
}

func drawViews(rt *media.RenderTexture) {
	box := media.NewRectangleShape(media.Vec2f{X: 40, Y: 40})
	box.Origin = media.Vec2f{X: 20, Y: 20}
	box.SetFillColor(media.ColorGreen)

	for i := range 2 {
		v := media.NewView(media.FloatRect{Position: media.Vec2f{X: -80, Y: -100}, Size: media.Vec2f{X: 160, Y: 200}})
		v.Viewport = media.FloatRect{Position: media.Vec2f{X: float32(i) * 0.5}, Size: media.Vec2f{X: 0.5, Y: 1}}
		v.Rotation = float32(i * 30)
		rt.SetView(v)
		rt.Draw(box, media.DefaultRenderStates())
	}
	rt.SetView(rt.DefaultView())
}
