package app

import (
	"errors"

	"github.com/llehouerou/stegano/internal/errmsg"
	"github.com/llehouerou/stegano/internal/history"
	"github.com/llehouerou/stegano/internal/stego"
)

var errNoOutput = errors.New("an output path is required")

// MergeOptions configures a merge command. The method is given explicitly
// and the carrier is never tagged.
type MergeOptions struct {
	Carrier string
	Secret  string
	Output  string
	Lossy   bool
	Noise   bool
}

// UnmergeOptions configures an unmerge command.
type UnmergeOptions struct {
	Carrier string
	Output  string
	Lossy   bool
}

func explicitMethod(lossy bool) stego.Method {
	if lossy {
		return stego.Lossy
	}
	return stego.Lossless
}

// Merge hides Secret in Carrier with Lossless, or Lossy when asked.
func (a *App) Merge(opts MergeOptions) (Result, error) {
	if opts.Output == "" {
		return Result{}, fail(errmsg.OpMerge, "", errNoOutput)
	}
	carrier, err := a.loadImage(opts.Carrier)
	if err != nil {
		return Result{}, err
	}
	secret, err := a.loadImage(opts.Secret)
	if err != nil {
		return Result{}, err
	}

	payload := stego.Payload{Image: secret}
	method, err := a.codec.Select(carrier, payload, stego.Policy{Method: explicitMethod(opts.Lossy)})
	if err != nil {
		return Result{}, fail(errmsg.OpSelect, opts.Secret, err)
	}
	needed, err := a.codec.Needed(method, payload)
	if err != nil {
		return Result{}, fail(errmsg.OpMerge, opts.Secret, err)
	}

	a.log.Info("merging", "method", method, "noise", opts.Noise)
	out, err := a.codec.Embed(method, carrier, payload, stego.EmbedOptions{Noise: opts.Noise})
	if err != nil {
		return Result{}, fail(errmsg.OpMerge, opts.Secret, err)
	}
	if err := a.saveImage(opts.Output, out); err != nil {
		return Result{}, err
	}

	res := Result{
		Command:   "merge",
		Method:    method,
		Input:     opts.Carrier,
		Output:    opts.Output,
		Carrier:   stego.SizeOf(carrier),
		Secret:    stego.SizeOf(secret),
		Needed:    needed,
		Available: carrier.Len(),
	}
	a.record(history.Entry{
		Command:       res.Command,
		Method:        method.String(),
		CarrierPath:   opts.Carrier,
		SecretPath:    opts.Secret,
		OutputPath:    opts.Output,
		CarrierWidth:  res.Carrier.Width,
		CarrierHeight: res.Carrier.Height,
		PayloadSlots:  needed,
	})
	a.print(renderResult(res))
	return res, nil
}

// Unmerge extracts with the given method, ignoring any tag.
func (a *App) Unmerge(opts UnmergeOptions) (Result, error) {
	if opts.Output == "" {
		return Result{}, fail(errmsg.OpUnmerge, "", errNoOutput)
	}
	carrier, err := a.loadImage(opts.Carrier)
	if err != nil {
		return Result{}, err
	}

	method := explicitMethod(opts.Lossy)
	p, err := a.codec.Extract(method, carrier)
	if err != nil {
		return Result{}, fail(errmsg.OpUnmerge, opts.Carrier, err)
	}
	if err := a.saveImage(opts.Output, p.Image); err != nil {
		return Result{}, err
	}

	res := Result{
		Command:   "unmerge",
		Method:    method,
		Input:     opts.Carrier,
		Output:    opts.Output,
		Carrier:   stego.SizeOf(carrier),
		Secret:    stego.SizeOf(p.Image),
		Available: carrier.Len(),
	}
	a.finishExtract(res)
	return res, nil
}
