package app

import (
	"fmt"
	"os"

	"github.com/llehouerou/stegano/internal/errmsg"
	"github.com/llehouerou/stegano/internal/history"
	"github.com/llehouerou/stegano/internal/imageio"
	"github.com/llehouerou/stegano/internal/pixel"
	"github.com/llehouerou/stegano/internal/stego"
)

// RevealOptions configures a reveal command.
type RevealOptions struct {
	Base   string
	Output string // generated from the carrier name when empty
}

// Reveal reads the method tag of a carrier and recovers what it hides.
// Jpeg payloads are written as an image or, for packed files, as the
// original bytes.
func (a *App) Reveal(opts RevealOptions) (Result, error) {
	carrier, err := a.loadImage(opts.Base)
	if err != nil {
		return Result{}, err
	}

	method, ok := stego.Detect(carrier)
	if !ok {
		return Result{}, fail(errmsg.OpReveal, opts.Base,
			fmt.Errorf("%w: tag nibble reads 0x%02x", stego.ErrUnsupportedTag, uint8(method)))
	}
	a.log.Debug("detected method", "method", method)

	res := Result{
		Command:   "reveal",
		Method:    method,
		Input:     opts.Base,
		Carrier:   stego.SizeOf(carrier),
		Available: carrier.Len(),
	}

	var secret *pixel.Buffer
	if method == stego.Jpeg {
		secret, err = a.revealStream(carrier, opts, &res)
	} else {
		var p stego.Payload
		p, err = a.codec.Extract(method, carrier)
		secret = p.Image
	}
	if err != nil {
		return Result{}, fail(errmsg.OpReveal, opts.Base, err)
	}

	if secret != nil {
		res.Secret = stego.SizeOf(secret)
		res.Output = a.outputPath(opts.Output, opts.Base, "revealed", ".png")
		if err := a.saveImage(res.Output, secret); err != nil {
			return Result{}, err
		}
	}

	a.finishExtract(res)
	return res, nil
}

// revealStream handles a Jpeg-layout carrier. Packed files are written
// directly and yield no image.
func (a *App) revealStream(carrier *pixel.Buffer, opts RevealOptions, res *Result) (*pixel.Buffer, error) {
	data, err := a.codec.ExtractBytes(carrier)
	if err != nil {
		return nil, err
	}
	res.Bytes = len(data)
	res.Kind = imageio.Sniff(data)
	a.log.Debug("recovered stream", "kind", res.Kind, "bytes", len(data))

	switch res.Kind {
	case imageio.KindJPEG:
		img, err := a.codec.JPEG.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", stego.ErrMalformedPayload, err)
		}
		return img, nil
	case imageio.KindData:
		raw, err := imageio.UnpackData(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", stego.ErrMalformedPayload, err)
		}
		res.Output = a.outputPath(opts.Output, opts.Base, "revealed", ".bin")
		if err := os.WriteFile(res.Output, raw, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", res.Output, err)
		}
		res.Bytes = len(raw)
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: stream is neither a JPEG image nor a packed file", stego.ErrMalformedPayload)
	}
}

func (a *App) finishExtract(res Result) {
	a.record(history.Entry{
		Command:       res.Command,
		Method:        res.Method.String(),
		CarrierPath:   res.Input,
		OutputPath:    res.Output,
		CarrierWidth:  res.Carrier.Width,
		CarrierHeight: res.Carrier.Height,
	})
	a.print(renderResult(res))
}
