// Package fwtype converts plain text into LaTeX picture environments that
// put every character at a fixed grid position.
package fwtype

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/hnimtadd/fwtype/config"
	"github.com/hnimtadd/fwtype/layout/geometry"
	"github.com/hnimtadd/fwtype/layout/pagelist"
	"github.com/hnimtadd/fwtype/layout/render"
	"github.com/hnimtadd/fwtype/layout/size"
	"github.com/hnimtadd/fwtype/layout/stream"
	"github.com/hnimtadd/fwtype/layout/tokenizer"
	"github.com/hnimtadd/fwtype/logger"
)

// StdinName names the standard input in a list of inputs.
const StdinName = "-"

// InputAccessError reports an input that could not be opened or read. The
// conversion of the other inputs carries on.
type InputAccessError struct {
	Name string
	Err  error
}

func (e *InputAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *InputAccessError) Unwrap() error {
	return e.Err
}

// Opener opens a named input.
type Opener func(name string) (io.ReadCloser, error)

// OpenFile opens name on the local file system, or the standard input for
// StdinName.
func OpenFile(name string) (io.ReadCloser, error) {
	if name == StdinName {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

type Options struct {
	Params config.Params
	Output io.Writer
	Logger logger.Logger
	// Defaults to OpenFile.
	Opener Opener
}

type Converter struct {
	params   config.Params
	renderer *render.Renderer
	open     Opener
	logger   logger.Logger

	streamOpts   stream.Options
	geometryOpts geometry.Options
}

// New checks the parameters and prepares a converter writing to
// opts.Output.
func New(opts Options) (*Converter, error) {
	params := opts.Params.Resolve()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	policy, err := params.Policy()
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger
	}
	if opts.Opener == nil {
		opts.Opener = OpenFile
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	opts.Logger.Debug("parameters",
		"numbering", params.Numbering,
		"linenumwidth", params.LineNumberWidth,
		"linenumoffset", params.LineNumberOffset,
		"csize", params.CharSize.String(),
		"lineheight", params.LineHeight,
		"outmargin", params.Margin,
		"sepmargin", params.SepMargin,
		"basedrift_a", params.BaseDrift,
	)

	return &Converter{
		params: params,
		renderer: render.New(opts.Output, render.Options{
			CellWidth:        params.CharSize.Width,
			CellHeight:       params.CharSize.Height,
			Frames:           params.Frames,
			Grid:             params.Grid,
			GridHPitch:       params.GridHPitch,
			GridVPitch:       params.GridVPitch,
			BaseDrift:        params.BaseDrift,
			AboveGap:         params.AboveGap,
			BelowGap:         params.BelowGap,
			LineNumberOffset: params.LineNumberOffset,
			SpaceMarking:     params.SpaceMarking,
		}),
		open:   opts.Opener,
		logger: opts.Logger,
		streamOpts: stream.Options{
			Tokenizer: tokenizer.Options{
				TabStop:    size.CellCountInt(params.TabStop),
				WrapColumn: size.CellCountInt(params.WrapColumn),
				Policy:     policy,
			},
			DigitWidth: params.LineNumberWidth,
			Normalize:  params.Normalize,
			Logger:     opts.Logger,
		},
		geometryOpts: geometry.Options{
			Numbering:     params.Numbering,
			NumeralWidth:  params.NumeralWidth,
			CellWidth:     params.CharSize.Width,
			LineHeight:    params.LineHeight,
			Margin:        params.Margin,
			SepMargin:     params.SepMargin,
			MinWidthChars: params.MinWidthChars,
			MinLineCount:  params.MinLineCount,
		},
	}, nil
}

// Convert lays out one input and writes its pages. A failure to read r is
// returned as *InputAccessError; other errors come from the output.
func (c *Converter) Convert(name string, r io.Reader) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			c.logger.Error("panic in Convert", "input", name, "panic", rec, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic converting %s: %v", name, rec)
		}
	}()

	m, err := stream.Aggregate(r, c.streamOpts)
	if err != nil {
		return &InputAccessError{Name: name, Err: err}
	}

	g := geometry.Calculate(geometry.Measure{
		NChars:  m.NChars,
		NDigits: m.NDigits,
		Rows:    m.CRow,
	}, c.geometryOpts)
	c.logger.Debug("geometry",
		"input", name,
		"numwid", g.NumberWidth,
		"txoffset", g.TextXOffset,
		"txwidth", g.TextWidth,
		"cvwidth", g.CanvasWidth,
		"cvheight", g.CanvasHeight,
	)

	pages := pagelist.NewPageList(pagelist.Options{LinesPerPage: c.params.LinesPerPage})
	handler := &PageHandler{
		renderer: c.renderer,
		geometry: g,
		logger:   c.logger,
	}
	if err := pages.Paginate(m.Rows, g, handler); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	c.logger.Debug("converted", "input", name, "pages", pages.Len())
	return nil
}

// ConvertFiles converts the named inputs in order, wrapped in a document
// when the parameters ask for one. An input that cannot be opened or read
// is logged and skipped. The returned error joins every failure; writing
// the output stops at the first output error.
func (c *Converter) ConvertFiles(names []string) error {
	var errs []error

	if c.params.Standalone {
		if err := c.renderer.BeginDocument(); err != nil {
			return err
		}
	}

	for _, name := range names {
		err := c.convertFile(name)
		if err == nil {
			continue
		}
		errs = append(errs, err)

		var access *InputAccessError
		if !errors.As(err, &access) {
			c.logger.Error("writing output", "input", name, "error", err)
			return errors.Join(errs...)
		}
		c.logger.Error("skipping input", "input", name, "error", access.Err)
	}

	if c.params.Standalone {
		if err := c.renderer.EndDocument(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Converter) convertFile(name string) error {
	f, err := c.open(name)
	if err != nil {
		return &InputAccessError{Name: name, Err: err}
	}
	defer f.Close()

	return c.Convert(name, f)
}
