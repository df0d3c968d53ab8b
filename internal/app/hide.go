package app

import (
	"github.com/llehouerou/stegano/internal/errmsg"
	"github.com/llehouerou/stegano/internal/history"
	"github.com/llehouerou/stegano/internal/imageio"
	"github.com/llehouerou/stegano/internal/pixel"
	"github.com/llehouerou/stegano/internal/stego"
)

// HideOptions configures a hide command.
type HideOptions struct {
	Base   string // carrier image
	Secret string // secret image, ignored when Data is set
	Data   string // arbitrary file hidden through the Jpeg byte layout
	Output string // generated from the secret name when empty

	ForceJPEG   bool
	Resize      stego.ResizeMode
	BaseScale   float64 // 0 or 1 leaves the carrier as is
	SecretScale float64

	Noise   bool
	Engrave bool
}

// Result describes a finished embed or extract.
type Result struct {
	Command   string
	Method    stego.Method
	Input     string
	Output    string
	Carrier   stego.Size
	Secret    stego.Size // zero for byte payloads
	Kind      imageio.Kind
	Bytes     int // stream length for Jpeg payloads
	Needed    int
	Available int
	Resized   bool
}

// Hide embeds the secret (or data file) into the carrier, picking the method
// automatically unless ForceJPEG is set.
func (a *App) Hide(opts HideOptions) (Result, error) {
	carrier, err := a.loadImage(opts.Base)
	if err != nil {
		return Result{}, err
	}
	if carrier, err = a.rescale(carrier, opts.BaseScale, opts.Base); err != nil {
		return Result{}, err
	}

	payload, source, err := a.hidePayload(opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{Command: "hide", Input: opts.Base}
	if payload.Image != nil && !opts.ForceJPEG && opts.Resize != stego.ResizeNone {
		carrier, payload.Image, res.Resized, err = a.fitLossless(carrier, payload.Image, opts.Resize)
		if err != nil {
			return Result{}, err
		}
	}

	res.Method, err = a.codec.Select(carrier, payload, stego.Policy{ForceJPEG: opts.ForceJPEG})
	if err != nil {
		return Result{}, fail(errmsg.OpSelect, source, err)
	}
	if res.Method == stego.Jpeg {
		if payload, err = a.codec.Compress(payload); err != nil {
			return Result{}, fail(errmsg.OpHide, source, err)
		}
		res.Bytes = len(payload.Data)
	}
	if res.Needed, err = a.codec.Needed(res.Method, payload); err != nil {
		return Result{}, fail(errmsg.OpHide, source, err)
	}
	res.Available = carrier.Len()
	res.Carrier = stego.SizeOf(carrier)
	if payload.Image != nil {
		res.Secret = stego.SizeOf(payload.Image)
	}

	a.log.Info("hiding", "method", res.Method, "needed", res.Needed, "available", res.Available,
		"noise", opts.Noise, "tag", opts.Engrave)
	out, err := a.codec.Embed(res.Method, carrier, payload, stego.EmbedOptions{
		Noise:   opts.Noise,
		Engrave: opts.Engrave,
	})
	if err != nil {
		return Result{}, fail(errmsg.OpHide, source, err)
	}

	res.Output = a.outputPath(opts.Output, source, "hidden", ".png")
	if err := a.saveImage(res.Output, out); err != nil {
		return Result{}, err
	}

	a.record(history.Entry{
		Command:       res.Command,
		Method:        res.Method.String(),
		CarrierPath:   opts.Base,
		SecretPath:    source,
		OutputPath:    res.Output,
		CarrierWidth:  res.Carrier.Width,
		CarrierHeight: res.Carrier.Height,
		PayloadSlots:  res.Needed,
		Resized:       res.Resized,
	})
	a.print(renderResult(res))
	return res, nil
}

// hidePayload loads the secret image or packs the data file. It also returns
// the path the payload came from.
func (a *App) hidePayload(opts HideOptions) (stego.Payload, string, error) {
	if opts.Data != "" {
		raw, err := readFile(opts.Data)
		if err != nil {
			return stego.Payload{}, "", err
		}
		packed, err := imageio.PackData(raw)
		if err != nil {
			return stego.Payload{}, "", fail(errmsg.OpHide, opts.Data, err)
		}
		a.log.Debug("packed data", "path", opts.Data, "raw", len(raw), "packed", len(packed))
		return stego.Payload{Data: packed}, opts.Data, nil
	}

	secret, err := a.loadImage(opts.Secret)
	if err != nil {
		return stego.Payload{}, "", err
	}
	if secret, err = a.rescale(secret, opts.SecretScale, opts.Secret); err != nil {
		return stego.Payload{}, "", err
	}
	return stego.Payload{Image: secret}, opts.Secret, nil
}

func (a *App) rescale(b *pixel.Buffer, factor float64, path string) (*pixel.Buffer, error) {
	if factor == 0 || factor == 1 {
		return b, nil
	}
	scaled, err := stego.Rescale(a.resizer, b, factor)
	if err != nil {
		return nil, fail(errmsg.OpResize, path, err)
	}
	a.log.Debug("rescaled", "path", path, "factor", factor, "from", stego.SizeOf(b), "to", stego.SizeOf(scaled))
	return scaled, nil
}

func (a *App) fitLossless(carrier, secret *pixel.Buffer, mode stego.ResizeMode) (*pixel.Buffer, *pixel.Buffer, bool, error) {
	carrierSize, secretSize := stego.SizeOf(carrier), stego.SizeOf(secret)
	plan, err := stego.FitLossless(carrierSize, secretSize, mode)
	if err != nil {
		return nil, nil, false, fail(errmsg.OpResize, "", err)
	}
	if !plan.Resized(carrierSize, secretSize) {
		return carrier, secret, false, nil
	}

	a.log.Info("resizing to fit lossless", "mode", mode, "scale", plan.Scale,
		"carrier", plan.Carrier, "secret", plan.Secret)
	carrier, secret, err = plan.Apply(a.resizer, carrier, secret)
	if err != nil {
		return nil, nil, false, fail(errmsg.OpResize, "", err)
	}
	return carrier, secret, true, nil
}
