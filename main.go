package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/stegano/internal/app"
	"github.com/llehouerou/stegano/internal/config"
	"github.com/llehouerou/stegano/internal/errmsg"
	"github.com/llehouerou/stegano/internal/history"
	"github.com/llehouerou/stegano/internal/stego"
)

const usage = `usage: stegano <command> [flags]

commands:
  hide      hide an image or a file inside a carrier image
  reveal    recover what a tagged carrier hides
  merge     hide with an explicit method, without tagging
  unmerge   recover with an explicit method
  capacity  show what each method needs and what the carrier offers
  history   list previous operations

run "stegano <command> -h" for the flags of a command`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "stegano"})
	if err := run(os.Args[1], os.Args[2:], logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(command string, args []string, logger *log.Logger) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "log every step")

	var exec func(a *app.App) error
	switch command {
	case "hide":
		exec = hideCommand(fs)
	case "reveal":
		exec = revealCommand(fs)
	case "merge":
		exec = mergeCommand(fs)
	case "unmerge":
		exec = unmergeCommand(fs)
	case "capacity":
		exec = capacityCommand(fs)
	case "history":
		exec = historyCommand(fs)
	case "help", "-h", "--help":
		fmt.Println(usage)
		return nil
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	fs.Parse(args) //nolint:errcheck // ExitOnError

	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	var rec history.Recorder
	if cfg.HistoryEnabled() {
		if rec = openHistory(cfg, logger); rec != nil {
			defer rec.Close()
		}
	}

	a, err := app.New(cfg, rec, logger, os.Stdout)
	if err != nil {
		return err
	}
	return exec(a)
}

// openHistory opens the journal. A journal that cannot be opened only
// disables recording.
func openHistory(cfg *config.Config, logger *log.Logger) history.Recorder {
	path, err := cfg.HistoryPath()
	if err == nil {
		var m *history.Manager
		if m, err = history.Open(path); err == nil {
			logger.Debug("history opened", "path", path)
			return m
		}
	}
	logger.Warn(errmsg.Format(errmsg.OpHistoryOpen, err))
	return nil
}

var errMissingFlags = errors.New("missing required flags")

func required(fs *flag.FlagSet, values ...string) error {
	for _, v := range values {
		if v == "" {
			fs.PrintDefaults()
			return errMissingFlags
		}
	}
	return nil
}

func hideCommand(fs *flag.FlagSet) func(*app.App) error {
	base := fs.String("base", "", "carrier image that will hide the secret (required)")
	secret := fs.String("secret", "", "image to hide")
	data := fs.String("data", "", "arbitrary file to hide instead of an image")
	output := fs.String("output", "", "output image (default <secret>_hidden.png)")
	forceJPEG := fs.Bool("jpeg", false, "hide the secret as a JPEG stream")
	resizeMode := fs.String("resize", "none", "make lossless fit: none, base (grow the carrier) or secret (shrink the secret)")
	baseScale := fs.Float64("base-scale", 1, "scale the carrier before hiding")
	secretScale := fs.Float64("secret-scale", 1, "scale the secret before hiding")
	noNoise := fs.Bool("no-noise", false, "leave unused low nibbles zeroed")
	noTag := fs.Bool("no-tag", false, "do not write the method tag")

	return func(a *app.App) error {
		need := []string{*base}
		if *data == "" {
			need = append(need, *secret)
		}
		if err := required(fs, need...); err != nil {
			return err
		}
		mode, err := stego.ParseResizeMode(*resizeMode)
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpResize, err))
		}
		cfg := a.Config()
		_, err = a.Hide(app.HideOptions{
			Base:        *base,
			Secret:      *secret,
			Data:        *data,
			Output:      *output,
			ForceJPEG:   *forceJPEG,
			Resize:      mode,
			BaseScale:   *baseScale,
			SecretScale: *secretScale,
			Noise:       cfg.NoiseEnabled() && !*noNoise,
			Engrave:     cfg.EngraveEnabled() && !*noTag,
		})
		return err
	}
}

func revealCommand(fs *flag.FlagSet) func(*app.App) error {
	base := fs.String("base", "", "image containing the secret (required)")
	output := fs.String("output", "", "output file (default <base>_revealed.png)")

	return func(a *app.App) error {
		if err := required(fs, *base); err != nil {
			return err
		}
		_, err := a.Reveal(app.RevealOptions{Base: *base, Output: *output})
		return err
	}
}

func mergeCommand(fs *flag.FlagSet) func(*app.App) error {
	img1 := fs.String("img1", "", "image that will hide another image (required)")
	img2 := fs.String("img2", "", "image that will be hidden (required)")
	output := fs.String("output", "", "output image (required)")
	lossy := fs.Bool("lossy", false, "keep only the high nibbles of the hidden image")
	noise := fs.Bool("fill-with-noise", false, "fill the leftover space with noise")

	return func(a *app.App) error {
		if err := required(fs, *img1, *img2, *output); err != nil {
			return err
		}
		_, err := a.Merge(app.MergeOptions{
			Carrier: *img1,
			Secret:  *img2,
			Output:  *output,
			Lossy:   *lossy,
			Noise:   *noise,
		})
		return err
	}
}

func unmergeCommand(fs *flag.FlagSet) func(*app.App) error {
	img := fs.String("img", "", "image containing the hidden image (required)")
	output := fs.String("output", "", "output image (required)")
	lossy := fs.Bool("lossy", false, "the hidden image was merged lossy")

	return func(a *app.App) error {
		if err := required(fs, *img, *output); err != nil {
			return err
		}
		_, err := a.Unmerge(app.UnmergeOptions{Carrier: *img, Output: *output, Lossy: *lossy})
		return err
	}
}

func capacityCommand(fs *flag.FlagSet) func(*app.App) error {
	base := fs.String("base", "", "carrier image (required)")
	secret := fs.String("secret", "", "image to hide (required)")

	return func(a *app.App) error {
		if err := required(fs, *base, *secret); err != nil {
			return err
		}
		_, err := a.Capacity(app.CapacityOptions{Base: *base, Secret: *secret})
		return err
	}
}

func historyCommand(fs *flag.FlagSet) func(*app.App) error {
	limit := fs.Int("limit", 20, "number of operations to list, 0 for all")

	return func(a *app.App) error {
		_, err := a.History(*limit)
		return err
	}
}
