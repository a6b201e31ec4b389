package assets

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"
)

// IconManager загружает и кэширует растровые иконки целей.
type IconManager struct {
	icons map[string]*image.RGBA
}

// NewIconManager создает новый экземпляр IconManager.
func NewIconManager() *IconManager {
	return &IconManager{icons: make(map[string]*image.RGBA)}
}

// Load returns the PNG at path resized to size×size. Repeated calls with the
// same arguments return the cached image.
func (m *IconManager) Load(path string, size int) (*image.RGBA, error) {
	if icon, ok := m.Get(path, size); ok {
		return icon, nil
	}
	icon, err := LoadIcon(path, size)
	if err != nil {
		return nil, err
	}
	m.icons[iconKey(path, size)] = icon
	log.Printf("Loaded icon %s (%dx%d)", path, size, size)
	return icon, nil
}

// Get возвращает уже загруженную иконку.
func (m *IconManager) Get(path string, size int) (*image.RGBA, bool) {
	icon, ok := m.icons[iconKey(path, size)]
	return icon, ok
}

// Cleanup очищает кэш.
func (m *IconManager) Cleanup() {
	m.icons = make(map[string]*image.RGBA)
}

func iconKey(path string, size int) string {
	return fmt.Sprintf("%s@%d", path, size)
}

// LoadIcon decodes a PNG file and scales it to a size×size square.
func LoadIcon(path string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon %s: invalid size %d", path, size)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon: %w", err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon %s: %w", path, err)
	}
	return Resize(src, size), nil
}

// Resize scales src to a size×size RGBA image, keeping transparency.
func Resize(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
