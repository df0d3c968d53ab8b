package stego

import (
	"fmt"
	"math"
	"strings"

	"github.com/llehouerou/stegano/internal/pixel"
)

// Resizer produces a new buffer of the given size from src.
type Resizer interface {
	Resize(src *pixel.Buffer, width, height int) (*pixel.Buffer, error)
}

// ResizeMode chooses which image is resized to make Lossless fit.
type ResizeMode int

const (
	ResizeNone ResizeMode = iota
	// GrowCarrier enlarges the carrier.
	GrowCarrier
	// ShrinkSecret reduces the secret.
	ShrinkSecret
)

func (r ResizeMode) String() string {
	switch r {
	case GrowCarrier:
		return "base"
	case ShrinkSecret:
		return "secret"
	default:
		return "none"
	}
}

// ParseResizeMode accepts "none", "base" (or "carrier") and "secret".
func ParseResizeMode(s string) (ResizeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ResizeNone, nil
	case "base", "carrier":
		return GrowCarrier, nil
	case "secret":
		return ShrinkSecret, nil
	default:
		return ResizeNone, fmt.Errorf("unknown resize mode %q", s)
	}
}

// Size is a width x height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// SizeOf returns the dimensions of b.
func SizeOf(b *pixel.Buffer) Size {
	return Size{Width: b.Width, Height: b.Height}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ScaleFactor returns the linear factor that turns available into needed
// slots when applied to both dimensions.
func ScaleFactor(needed, available int) float64 {
	return math.Sqrt(float64(needed) / float64(available))
}

// ScaledDimensions multiplies both sides by factor, rounding up when the
// factor enlarges and down when it does not.
func ScaledDimensions(width, height int, factor float64) (int, int, error) {
	round := math.Floor
	if factor > 1.0 {
		round = math.Ceil
	}
	w := int(round(float64(width) * factor))
	h := int(round(float64(height) * factor))
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("%w: %dx%d scaled by %g gives %dx%d",
			ErrInvalidDimension, width, height, factor, w, h)
	}
	return w, h, nil
}

// Plan holds the dimensions a Lossless embed should use.
type Plan struct {
	Carrier Size
	Secret  Size
	// Scale is the factor derived from the capacity shortfall, 1 when none.
	Scale float64
}

// Resized reports whether the plan changes either image.
func (p Plan) Resized(carrier, secret Size) bool {
	return p.Carrier != carrier || p.Secret != secret
}

// FitLossless computes the dimensions that let Lossless hide secret in
// carrier under mode.
func FitLossless(carrier, secret Size, mode ResizeMode) (Plan, error) {
	plan := Plan{Carrier: carrier, Secret: secret, Scale: 1}
	needed := LosslessNeeded(secret.Width, secret.Height)
	available := Available(carrier.Width, carrier.Height)
	if CanFit(needed, available) {
		return plan, nil
	}

	plan.Scale = ScaleFactor(needed, available)
	switch mode {
	case GrowCarrier:
		w, h, err := ScaledDimensions(carrier.Width, carrier.Height, plan.Scale)
		if err != nil {
			return plan, err
		}
		plan.Carrier = Size{Width: w, Height: h}
	case ShrinkSecret:
		w, h, err := ScaledDimensions(secret.Width, secret.Height, 1/plan.Scale)
		if err != nil {
			return plan, err
		}
		// The header is not scaled, so floor rounding can still leave the
		// secret a few slots short.
		for !CanFit(LosslessNeeded(w, h), available) {
			switch {
			case w >= h && w > 1:
				w--
			case h > 1:
				h--
			default:
				return plan, &CapacityError{Method: Lossless, Needed: LosslessNeeded(w, h), Available: available}
			}
		}
		plan.Secret = Size{Width: w, Height: h}
	default:
		return plan, &CapacityError{Method: Lossless, Needed: needed, Available: available}
	}

	return plan, plan.verify()
}

func (p Plan) verify() error {
	needed := LosslessNeeded(p.Secret.Width, p.Secret.Height)
	available := Available(p.Carrier.Width, p.Carrier.Height)
	if !CanFit(needed, available) {
		return &CapacityError{Method: Lossless, Needed: needed, Available: available}
	}
	return nil
}

// Apply resizes carrier and secret to the planned sizes and re-verifies the fit.
func (p Plan) Apply(r Resizer, carrier, secret *pixel.Buffer) (*pixel.Buffer, *pixel.Buffer, error) {
	var err error
	if SizeOf(carrier) != p.Carrier {
		if carrier, err = r.Resize(carrier, p.Carrier.Width, p.Carrier.Height); err != nil {
			return nil, nil, fmt.Errorf("resize carrier: %w", err)
		}
	}
	if SizeOf(secret) != p.Secret {
		if secret, err = r.Resize(secret, p.Secret.Width, p.Secret.Height); err != nil {
			return nil, nil, fmt.Errorf("resize secret: %w", err)
		}
	}
	actual := Plan{Carrier: SizeOf(carrier), Secret: SizeOf(secret)}
	if err := actual.verify(); err != nil {
		return nil, nil, err
	}
	return carrier, secret, nil
}

// Rescale applies an explicit scale factor to b with the same rounding rule
// as ScaledDimensions. A factor of 1 returns b unchanged.
func Rescale(r Resizer, b *pixel.Buffer, factor float64) (*pixel.Buffer, error) {
	if factor == 1 {
		return b, nil
	}
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%w: scale factor %g", ErrInvalidDimension, factor)
	}
	w, h, err := ScaledDimensions(b.Width, b.Height, factor)
	if err != nil {
		return nil, err
	}
	return r.Resize(b, w, h)
}
