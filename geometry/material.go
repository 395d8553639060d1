package geometry

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	"go.uber.org/zap"
)

// Material is a named surface: a base colour plus an optional texture file
type Material struct {
	Name    string     `json:"name" yaml:"name"`
	Color   color.RGBA `json:"color" yaml:"color"`
	Texture string     `json:"texture,omitempty" yaml:"texture,omitempty"`
}

// DefaultMaterial is substituted whenever a material or its texture cannot be used
var DefaultMaterial = Material{
	Name:  "default",
	Color: color.RGBA{R: 160, G: 160, B: 160, A: 255},
}

// TextureLoader makes a texture available to the renderer
type TextureLoader interface {
	LoadTexture(path string) error
}

// FileTextureLoader only checks that the file exists and decodes as an image
type FileTextureLoader struct{}

// LoadTexture implements TextureLoader
func (FileTextureLoader) LoadTexture(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// MaterialLibrary resolves material names for the geometry builder.
// Lookups never fail: unknown names and broken textures are logged once and replaced.
type MaterialLibrary struct {
	defs      map[string]Material
	resolved  map[string]Material
	loader    TextureLoader
	logger    *zap.Logger
	fallbacks int
}

// NewMaterialLibrary creates an empty library. A nil loader accepts every texture.
func NewMaterialLibrary(loader TextureLoader, logger *zap.Logger) *MaterialLibrary {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaterialLibrary{
		defs:     make(map[string]Material),
		resolved: make(map[string]Material),
		loader:   loader,
		logger:   logger,
	}
}

// Define adds or replaces a material
func (l *MaterialLibrary) Define(m Material) {
	l.defs[m.Name] = m
	delete(l.resolved, m.Name)
}

// Names lists defined materials in alphabetical order
func (l *MaterialLibrary) Names() []string {
	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fallbacks returns how many substitutions have been made so far
func (l *MaterialLibrary) Fallbacks() int {
	return l.fallbacks
}

// Resolve returns the material called name, or a substitute
func (l *MaterialLibrary) Resolve(name string) Material {
	if m, ok := l.resolved[name]; ok {
		return m
	}

	m, ok := l.defs[name]
	if !ok {
		l.fallbacks++
		l.logger.Warn("material not found, using default",
			zap.String("material", name),
			zap.String("default", DefaultMaterial.Name))
		m = DefaultMaterial
	} else if m.Texture != "" && l.loader != nil {
		if err := l.loader.LoadTexture(m.Texture); err != nil {
			l.fallbacks++
			l.logger.Warn("texture unavailable, using plain colour",
				zap.String("material", name),
				zap.String("texture", m.Texture),
				zap.Error(err))
			m.Texture = ""
		}
	}

	l.resolved[name] = m
	return m
}
