// Example opens a render window and draws shapes, text and an off-screen
// render texture.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11/SDL2 headers)
//	go run ./example/         # run this example
//	go run ./example/ -backend sdl -settings window.yaml
//
// The window settings file is YAML, see media.WindowSettings. Escape
// closes the window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/media"
	"github.com/go-theft-auto/media/backend/glfw"
	"github.com/go-theft-auto/media/backend/opengl"
	"github.com/go-theft-auto/media/backend/sdl"
)

func init() {
	// Windowing must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	backend := flag.String("backend", "glfw", "platform backend: glfw or sdl")
	settingsPath := flag.String("settings", "", "window settings YAML file")
	fontName := flag.String("font", "DejaVuSans.ttf", "system font to look up")
	flag.Parse()

	if err := run(*backend, *settingsPath, *fontName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPlatform(name string) (media.Platform, error) {
	switch name {
	case "glfw":
		return glfw.New()
	case "sdl":
		return sdl.New()
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

func loadSettings(path string) (media.WindowSettings, error) {
	if path == "" {
		s := media.DefaultWindowSettings()
		s.Title = "media example"
		s.VerticalSync = true
		return s, nil
	}
	s, err := media.LoadSettings(path)
	if errors.Is(err, fs.ErrNotExist) {
		s = media.DefaultWindowSettings()
		if err := media.SaveSettings(path, s); err != nil {
			return s, err
		}
		return s, nil
	}
	return s, err
}

// loadFont prefers an installed system font and falls back to Go Regular.
func loadFont(gc *media.GraphicsContext, name string) (media.FontAtlas, error) {
	if path, err := findfont.Find(name); err == nil {
		f, err := media.LoadTrueTypeFont(gc, path, 20)
		if err == nil {
			return f, nil
		}
		media.Logger().Warn("Failed to load system font", "path", path, "error", err)
	}
	return media.NewTrueTypeFont(gc, goregular.TTF, 20)
}

func run(backend, settingsPath, fontName string) error {
	settings, err := loadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	platform, err := newPlatform(backend)
	if err != nil {
		return err
	}
	wc := media.NewWindowContext(platform)
	defer wc.Close()

	gc := media.NewGraphicsContext(opengl.New())
	defer gc.Close()

	rw, err := media.NewRenderWindow(wc, gc, media.WithSettings(settings))
	if err != nil {
		return fmt.Errorf("render window: %w", err)
	}
	defer rw.Close()

	font, err := loadFont(gc, fontName)
	if err != nil {
		return fmt.Errorf("font: %w", err)
	}
	label := media.NewText(font, "")
	label.Position = media.Vec2f{X: 16, Y: 32}
	label.SetOutlineThickness(1)

	// A checker pattern drawn once into a render texture, shown as a sprite.
	rtex, err := media.NewRenderTexture(gc, 128, 128)
	if err != nil {
		return fmt.Errorf("render texture: %w", err)
	}
	defer rtex.Destroy()
	rtex.Clear(media.ColorTransparent)
	cell := media.NewRectangleShape(media.Vec2f{X: 32, Y: 32})
	for y := range 4 {
		for x := range 4 {
			if (x+y)%2 == 0 {
				continue
			}
			cell.Position = media.Vec2f{X: float32(x * 32), Y: float32(y * 32)}
			cell.SetFillColor(media.ColorFromHSLA(media.HSL{Hue: float32(x*y) * 20, Saturation: 0.6, Lightness: 0.5}, 255))
			rtex.Draw(cell, media.DefaultRenderStates())
		}
	}
	rtex.Display()
	checker := media.NewSprite(rtex.Texture())
	checker.Position = media.Vec2f{X: 16, Y: 64}

	box := media.NewRectangleShape(media.Vec2f{X: 120, Y: 80})
	box.Origin = media.Vec2f{X: 60, Y: 40}
	box.SetFillColor(media.ColorYellow)
	box.SetOutlineColor(media.ColorBlack)
	box.SetOutlineThickness(2)

	cursor := media.NewCircleShape(8, 24)
	cursor.Origin = media.Vec2f{X: 8, Y: 8}
	cursor.SetFillColor(media.ColorCyan)

	input := media.NewInputState()
	frame := 0

	for rw.IsOpen() {
		input.Reset()
		rw.PollAndHandleEvents(func(ev media.Event) {
			input.HandleEvent(ev)
			switch e := ev.(type) {
			case media.EventClosed:
				rw.Close()
			case media.EventKeyPressed:
				if e.Code == media.KeyEscape {
					rw.Close()
				}
			case media.EventMouseMoved:
				cursor.Position = rw.MapPixelToCoords(e.Position)
			}
		})
		if !rw.IsOpen() {
			break
		}
		frame++

		size := rw.Size()
		box.Position = media.Vec2f{X: float32(size.X) / 2, Y: float32(size.Y) / 2}
		box.Rotation = float32(frame % 360)

		stats := rw.CurrentDrawStatistics()
		label.SetString(fmt.Sprintf("%dx%d  draws %d  vertices %d  keys %s",
			size.X, size.Y, stats.DrawCalls, stats.Vertices, pressedKeys(input)))

		rw.ResetDrawStatistics()
		rw.Clear(media.Color{R: 30, G: 30, B: 36, A: 255})
		rw.Draw(checker, media.DefaultRenderStates())
		rw.Draw(box, media.DefaultRenderStates())
		rw.Draw(cursor, media.DefaultRenderStates())
		rw.Draw(label, media.DefaultRenderStates())
		rw.Display()
	}
	return nil
}

func pressedKeys(in *media.InputState) string {
	s := ""
	for k := media.KeyA; k < media.KeyCount; k++ {
		if in.KeyDown(k) {
			s += media.KeyName(k) + " "
		}
	}
	if s == "" {
		return "-"
	}
	return s
}
