package stego

import "github.com/llehouerou/stegano/internal/pixel"

// Policy decides which method a hide call uses.
type Policy struct {
	// Method, when valid, is used as is. Fit is enforced by Embed.
	Method Method
	// ForceJPEG selects Jpeg regardless of fit.
	ForceJPEG bool
}

// SupportedModes returns every method able to hide p in carrier, in order of
// preference. Jpeg is only considered when p has data or a JPEG codec is set.
func (c *Codec) SupportedModes(carrier *pixel.Buffer, p Payload) ([]Method, error) {
	var modes []Method
	for _, m := range Methods() {
		if m != Jpeg && p.Image == nil {
			continue
		}
		if m == Jpeg && len(p.Data) == 0 && c.JPEG == nil {
			continue
		}
		ok, err := c.CanFit(m, carrier, p)
		if err != nil {
			return nil, err
		}
		if ok {
			modes = append(modes, m)
		}
	}
	return modes, nil
}

// Select applies policy. Without forcing it prefers Lossless, then Lossy, and
// fails with a CapacityError when neither fits. Byte payloads always use Jpeg.
func (c *Codec) Select(carrier *pixel.Buffer, p Payload, policy Policy) (Method, error) {
	switch {
	case policy.Method.Valid():
		return policy.Method, nil
	case policy.ForceJPEG, p.Image == nil:
		return Jpeg, nil
	}

	available := carrier.Len()
	if CanFit(LosslessNeeded(p.Image.Width, p.Image.Height), available) {
		return Lossless, nil
	}
	needed := LossyNeeded(p.Image.Width, p.Image.Height)
	if CanFit(needed, available) {
		return Lossy, nil
	}
	return Untagged, &CapacityError{Method: Lossy, Needed: needed, Available: available}
}
