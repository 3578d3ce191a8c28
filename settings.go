package media

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ContextSettings describes the GL context a window asks for.
type ContextSettings struct {
	DepthBits         uint `yaml:"depth_bits"`
	StencilBits       uint `yaml:"stencil_bits"`
	AntiAliasingLevel uint `yaml:"antialiasing_level"`
	MajorVersion      uint `yaml:"major_version"`
	MinorVersion      uint `yaml:"minor_version"`
	Core              bool `yaml:"core"`
	Debug             bool `yaml:"debug"`
	SRGBCapable       bool `yaml:"srgb_capable"`
}

// DefaultContextSettings returns a 4.1 core profile with an 8 bit stencil.
func DefaultContextSettings() ContextSettings {
	return ContextSettings{
		StencilBits:  8,
		MajorVersion: 4,
		MinorVersion: 1,
		Core:         true,
	}
}

// WindowSettings is the persisted form of a window configuration.
type WindowSettings struct {
	Title          string          `yaml:"title"`
	Width          uint32          `yaml:"width"`
	Height         uint32          `yaml:"height"`
	Fullscreen     bool            `yaml:"fullscreen"`
	Resizable      bool            `yaml:"resizable"`
	Closable       bool            `yaml:"closable"`
	Titlebar       bool            `yaml:"titlebar"`
	VerticalSync   bool            `yaml:"vsync"`
	FramerateLimit uint            `yaml:"framerate_limit"` // 0 is unlimited
	KeyRepeat      bool            `yaml:"key_repeat"`
	Context        ContextSettings `yaml:"context"`
}

// DefaultWindowSettings returns an 800x600 decorated window.
func DefaultWindowSettings() WindowSettings {
	return WindowSettings{
		Title:     "media",
		Width:     800,
		Height:    600,
		Resizable: true,
		Closable:  true,
		Titlebar:  true,
		Context:   DefaultContextSettings(),
	}
}

// Size returns the window size.
func (s WindowSettings) Size() Vec2u {
	return Vec2u{X: s.Width, Y: s.Height}
}

// ParseSettings decodes YAML window settings. Keys that are absent keep
// the DefaultWindowSettings values.
func ParseSettings(data []byte) (WindowSettings, error) {
	s := DefaultWindowSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return WindowSettings{}, fmt.Errorf("parsing window settings: %w", err)
	}
	if s.Width == 0 || s.Height == 0 {
		return WindowSettings{}, fmt.Errorf("window settings: %dx%d: %w", s.Width, s.Height, ErrInvalidSize)
	}
	return s, nil
}

// LoadSettings reads window settings from a YAML file.
func LoadSettings(path string) (WindowSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WindowSettings{}, fmt.Errorf("reading window settings: %w", err)
	}
	return ParseSettings(data)
}

// SaveSettings writes s to path as YAML.
func SaveSettings(path string, s WindowSettings) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
