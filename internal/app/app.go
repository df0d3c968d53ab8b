// Package app implements the stegano commands on top of the stego codec:
// file loading and saving, resizing, output naming and the history journal.
package app

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/stegano/internal/config"
	"github.com/llehouerou/stegano/internal/errmsg"
	"github.com/llehouerou/stegano/internal/history"
	"github.com/llehouerou/stegano/internal/imageio"
	"github.com/llehouerou/stegano/internal/pixel"
	"github.com/llehouerou/stegano/internal/stego"
)

// App runs one command at a time.
type App struct {
	cfg     *config.Config
	codec   *stego.Codec
	resizer stego.Resizer
	history history.Recorder // nil when the journal is disabled
	log     *log.Logger
	out     io.Writer
	now     func() time.Time
}

// New creates an App. rec may be nil to disable the journal.
func New(cfg *config.Config, rec history.Recorder, logger *log.Logger, out io.Writer) (*App, error) {
	resizer, err := imageio.NewResizer(cfg.Filter())
	if err != nil {
		return nil, &Error{Op: errmsg.OpConfigLoad, Err: err}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{
		cfg:     cfg,
		codec:   stego.New(imageio.JPEG{Quality: cfg.Quality()}),
		resizer: resizer,
		history: rec,
		log:     logger,
		out:     out,
		now:     time.Now,
	}, nil
}

// Error ties a failure to the operation and file it happened on.
type Error struct {
	Op      errmsg.Op
	Context string
	Err     error
}

func (e *Error) Error() string {
	return errmsg.FormatWith(e.Op, e.Context, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail(op errmsg.Op, context string, err error) error {
	return &Error{Op: op, Context: context, Err: err}
}

func (a *App) loadImage(path string) (*pixel.Buffer, error) {
	b, err := imageio.Load(path)
	if err != nil {
		return nil, fail(errmsg.OpImageLoad, path, err)
	}
	a.log.Debug("loaded image", "path", path, "size", stego.SizeOf(b))
	return b, nil
}

func (a *App) saveImage(path string, b *pixel.Buffer) error {
	if err := imageio.Save(path, b); err != nil {
		return fail(errmsg.OpImageSave, path, err)
	}
	a.log.Debug("saved image", "path", path, "size", stego.SizeOf(b))
	return nil
}

func (a *App) outputPath(output, input, suffix, ext string) string {
	if output != "" {
		return output
	}
	return imageio.OutputPath(a.cfg.OutputDir, input, suffix, ext, a.now())
}

// record journals an operation. Journal failures never fail the command.
func (a *App) record(e history.Entry) {
	if a.history == nil {
		return
	}
	e.CreatedAt = a.now()
	if err := a.history.Record(e); err != nil {
		a.log.Warn("history not updated", "err", err)
	}
}

func (a *App) print(s string) {
	if a.out == nil {
		return
	}
	io.WriteString(a.out, s+"\n") //nolint:errcheck // best effort terminal output
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fail(errmsg.OpFileLoad, path, err)
	}
	return data, nil
}

// Config returns the configuration the app was created with.
func (a *App) Config() *config.Config {
	return a.cfg
}
