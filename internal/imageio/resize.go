package imageio

import (
	"fmt"
	"strings"

	"github.com/nfnt/resize"

	"github.com/llehouerou/stegano/internal/pixel"
)

// Resizer scales pixel buffers with an nfnt/resize interpolation.
type Resizer struct {
	Filter resize.InterpolationFunction
}

// NewResizer returns a resizer for a filter name (see ParseFilter).
func NewResizer(filter string) (Resizer, error) {
	f, err := ParseFilter(filter)
	if err != nil {
		return Resizer{}, err
	}
	return Resizer{Filter: f}, nil
}

// Resize returns a new width x height buffer; src is left untouched.
func (r Resizer) Resize(src *pixel.Buffer, width, height int) (*pixel.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", pixel.ErrDimensions, width, height)
	}
	out := resize.Resize(uint(width), uint(height), src.Image(), r.Filter) //nolint:gosec // checked positive
	return pixel.FromImage(out)
}

// ParseFilter maps a filter name to an interpolation function.
// An empty name selects Lanczos3.
func ParseFilter(name string) (resize.InterpolationFunction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nearest", "nearestneighbor":
		return resize.NearestNeighbor, nil
	case "bilinear":
		return resize.Bilinear, nil
	case "bicubic":
		return resize.Bicubic, nil
	case "mitchell", "mitchellnetravali":
		return resize.MitchellNetravali, nil
	case "lanczos2":
		return resize.Lanczos2, nil
	case "", "lanczos3":
		return resize.Lanczos3, nil
	default:
		return resize.Lanczos3, fmt.Errorf("unknown resize filter %q", name)
	}
}
