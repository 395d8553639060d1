package systems

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"maze3d/geometry"
)

// TextureCache loads material textures for the renderer. It implements
// geometry.TextureLoader so the material library can reject textures that fail to load.
// Decoded images are uploaded lazily on first draw.
type TextureCache struct {
	decoded map[string]image.Image
	images  map[string]*ebiten.Image
}

var _ geometry.TextureLoader = (*TextureCache)(nil)

// NewTextureCache creates an empty cache
func NewTextureCache() *TextureCache {
	return &TextureCache{
		decoded: make(map[string]image.Image),
		images:  make(map[string]*ebiten.Image),
	}
}

// LoadTexture decodes the image at path and keeps it for drawing
func (c *TextureCache) LoadTexture(path string) error {
	if _, ok := c.decoded[path]; ok {
		return nil
	}

	// Open the file
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Decode the image
	img, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return fmt.Errorf("texture %s is empty", path)
	}

	c.decoded[path] = img
	return nil
}

// Loaded reports whether path was decoded successfully
func (c *TextureCache) Loaded(path string) bool {
	_, ok := c.decoded[path]
	return ok
}

// Image returns the ebiten image for path, or nil when it was never loaded
func (c *TextureCache) Image(path string) *ebiten.Image {
	if img, ok := c.images[path]; ok {
		return img
	}
	src, ok := c.decoded[path]
	if !ok {
		return nil
	}

	// Convert to ebiten image
	img := ebiten.NewImageFromImage(src)
	c.images[path] = img
	return img
}
