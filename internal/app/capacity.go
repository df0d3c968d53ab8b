package app

import (
	"errors"

	"github.com/llehouerou/stegano/internal/errmsg"
	"github.com/llehouerou/stegano/internal/history"
	"github.com/llehouerou/stegano/internal/stego"
)

// CapacityOptions configures a capacity command.
type CapacityOptions struct {
	Base   string
	Secret string
}

// MethodCapacity is the fit of one method.
type MethodCapacity struct {
	Method stego.Method
	Needed int
	Fits   bool
	Bytes  int // compressed stream length, Jpeg only
}

// CapacityReport compares what each method needs with what the carrier offers.
type CapacityReport struct {
	Carrier   stego.Size
	Secret    stego.Size
	Available int
	Methods   []MethodCapacity
	// Selected is the method hide would pick without options, Untagged when
	// nothing fits.
	Selected stego.Method
	// GrowTo is the carrier size that makes Lossless fit.
	GrowTo stego.Size
	// ShrinkTo is the secret size that makes Lossless fit.
	ShrinkTo stego.Size
}

// Capacity reports the needed and available sizes per method without
// writing anything.
func (a *App) Capacity(opts CapacityOptions) (CapacityReport, error) {
	carrier, err := a.loadImage(opts.Base)
	if err != nil {
		return CapacityReport{}, err
	}
	secret, err := a.loadImage(opts.Secret)
	if err != nil {
		return CapacityReport{}, err
	}

	rep := CapacityReport{
		Carrier:   stego.SizeOf(carrier),
		Secret:    stego.SizeOf(secret),
		Available: carrier.Len(),
	}

	payload, err := a.codec.Compress(stego.Payload{Image: secret})
	if err != nil {
		return CapacityReport{}, fail(errmsg.OpCapacity, opts.Secret, err)
	}
	for _, m := range stego.Methods() {
		needed, err := a.codec.Needed(m, payload)
		if err != nil {
			return CapacityReport{}, fail(errmsg.OpCapacity, opts.Secret, err)
		}
		mc := MethodCapacity{Method: m, Needed: needed, Fits: stego.CanFit(needed, rep.Available)}
		if m == stego.Jpeg {
			mc.Bytes = len(payload.Data)
		}
		rep.Methods = append(rep.Methods, mc)
	}

	rep.Selected, err = a.codec.Select(carrier, stego.Payload{Image: secret}, stego.Policy{})
	if err != nil && !errors.Is(err, stego.ErrCapacityExceeded) {
		return CapacityReport{}, fail(errmsg.OpSelect, opts.Secret, err)
	}

	if grow, err := stego.FitLossless(rep.Carrier, rep.Secret, stego.GrowCarrier); err == nil {
		rep.GrowTo = grow.Carrier
	}
	if shrink, err := stego.FitLossless(rep.Carrier, rep.Secret, stego.ShrinkSecret); err == nil {
		rep.ShrinkTo = shrink.Secret
	}

	a.print(renderCapacity(rep))
	return rep, nil
}

// History prints the most recent journal entries.
func (a *App) History(limit int) ([]history.Entry, error) {
	if a.history == nil {
		a.print(renderHistory(nil))
		return nil, nil
	}
	entries, err := a.history.List(limit)
	if err != nil {
		return nil, fail(errmsg.OpHistoryList, "", err)
	}
	a.print(renderHistory(entries))
	return entries, nil
}
