package compositor

import (
	"errors"
	"fmt"
	"image"

	"github.com/iburimskiy/colorworld-split/internal/layout"
)

// ErrNoSurface is returned by Render when the fitted surface has no area,
// which happens for an empty image.
var ErrNoSurface = errors.New("compositor: image has no visible area")

// Render composites a single frame without a window. The image is fitted
// into width x height keeping its aspect ratio; zero sizes use the image size.
func Render(img image.Image, profileID string, split float64, width, height int) (*image.RGBA, error) {
	if img == nil {
		return nil, errors.New("compositor: nil image")
	}
	if width <= 0 || height <= 0 {
		width, height = img.Bounds().Dx(), img.Bounds().Dy()
	}
	c := New(Options{Rules: layout.FitRules{MobileFill: 1, DesktopFill: 1}})
	if profileID != "" && !c.SetProfile(profileID) {
		return nil, fmt.Errorf("compositor: unknown profile %q", profileID)
	}
	c.Resize(Viewport{Container: layout.Bounds{Width: float64(width), Height: float64(height)}})
	c.Load(img)
	c.SetSplit(split)
	if c.Surface() == nil {
		return nil, ErrNoSurface
	}
	return c.Surface().Image(), nil
}
