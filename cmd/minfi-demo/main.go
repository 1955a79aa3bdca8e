package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/datacounter"
	"github.com/xaionaro-go/minfi/pkg/flagargs"
	"github.com/xaionaro-go/minfi/pkg/frame"
	"github.com/xaionaro-go/minfi/pkg/framesource"
	"github.com/xaionaro-go/minfi/pkg/interpolation"
	"github.com/xaionaro-go/minfi/pkg/interpolation/implementations/linear"
	_ "github.com/xaionaro-go/minfi/pkg/interpolation/implementations/nearest"
	_ "github.com/xaionaro-go/minfi/pkg/interpolation/implementations/smoothstep"
	"github.com/xaionaro-go/minfi/pkg/pcm"
	"github.com/xaionaro-go/minfi/pkg/pixel"
)

func usage(w io.Writer, flags *pflag.FlagSet) {
	argv0 := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "%s — minimal frame interpolation demo\n", argv0)
	fmt.Fprintf(w, "\nUsage:\n")
	fmt.Fprintf(w, "  %s [flags] <t>\n\n", argv0)
	fmt.Fprintf(w, "Where <t> is interpolation factor in [0,1]; values outside are clamped.\n")
	fmt.Fprintf(w, "\nFlags:\n%s", flags.FlagUsages())
}

type options struct {
	A            string
	B            string
	Method       string
	PNGPath      string
	Width        int
	Height       int
	OutputPath   string
	OutputFormat pcm.Format
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := pflag.NewFlagSet(filepath.Base(os.Args[0]), pflag.ContinueOnError)
	loggerLevel := logger.LevelInfo
	flags.Var(&loggerLevel, "log-level", "Log level")
	opts := options{OutputFormat: pcm.FormatFloat32LE}
	flags.StringVar(&opts.A, "a", "0,0.5,1", "the first frame, comma separated")
	flags.StringVar(&opts.B, "b", "1,0.5,0", "the second frame, comma separated")
	flags.StringVar(&opts.Method, "method", linear.Name, "interpolation curve, one of: "+strings.Join(interpolation.Names(), ", "))
	flags.StringVar(&opts.PNGPath, "png", "", "write the first three interpolated values as a solid RGB image to this PNG file")
	flags.IntVar(&opts.Width, "width", 1024, "width of the PNG image")
	flags.IntVar(&opts.Height, "height", 768, "height of the PNG image")
	flags.StringVar(&opts.OutputPath, "output", "", "write the interpolated frame as raw PCM to this file")
	flags.Var(&opts.OutputFormat, "format", "PCM format of --output")
	flags.Usage = func() { usage(stdout, flags) }
	if err := flags.Parse(flagargs.Normalize(flags, args)); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		usage(stdout, flags)
		return 2
	}

	switch flags.NArg() {
	case 0:
		usage(stdout, flags)
		return 0
	case 1:
	default:
		usage(stdout, flags)
		return 1
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if err := demo(ctx, stdout, flags.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		usage(stdout, flags)
		return 1
	}
	return 0
}

func demo(
	ctx context.Context,
	stdout io.Writer,
	tStr string,
	opts options,
) error {
	t, err := strconv.ParseFloat(tStr, 32)
	if err != nil {
		return fmt.Errorf("unable to parse the interpolation factor '%s': %w", tStr, err)
	}
	a, err := framesource.Parse(opts.A)
	if err != nil {
		return fmt.Errorf("unable to parse the first frame: %w", err)
	}
	b, err := framesource.Parse(opts.B)
	if err != nil {
		return fmt.Errorf("unable to parse the second frame: %w", err)
	}
	interpolator, err := interpolation.New(opts.Method)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "interpolating %v and %v at t=%v using %s", a, b, t, opts.Method)
	out, err := interpolator.Interpolate(a, b, float32(t))
	if err != nil {
		return fmt.Errorf("unable to interpolate: %w", err)
	}
	fmt.Fprintf(stdout, "Interpolated frame: %s\n", formatFrame(out))

	if opts.PNGPath != "" {
		img, err := pixel.SolidRGBA(out, opts.Width, opts.Height)
		if err != nil {
			return fmt.Errorf("unable to render the frame: %w", err)
		}
		if err := writeFile(ctx, opts.PNGPath, func(w io.Writer) error {
			return png.Encode(w, img)
		}); err != nil {
			return err
		}
	}

	if opts.OutputPath != "" {
		raw, err := pcm.Encode(opts.OutputFormat, out)
		if err != nil {
			return fmt.Errorf("unable to encode the frame as %v: %w", opts.OutputFormat, err)
		}
		if err := writeFile(ctx, opts.OutputPath, func(w io.Writer) error {
			_, err := w.Write(raw)
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}

func formatFrame(f frame.Frame) string {
	values := make([]string, len(f))
	for idx, v := range f {
		values[idx] = strconv.FormatFloat(float64(v), 'f', 3, 32)
	}
	return "[" + strings.Join(values, ", ") + "]"
}

func writeFile(
	ctx context.Context,
	path string,
	writeFn func(io.Writer) error,
) (_err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create '%s': %w", path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			_err = multierror.Append(_err, fmt.Errorf("unable to close '%s': %w", path, err)).ErrorOrNil()
		}
	}()

	wc := datacounter.NewWriterCounter(file)
	if err := writeFn(wc); err != nil {
		return fmt.Errorf("unable to write '%s': %w", path, err)
	}
	logger.Infof(ctx, "wrote %d bytes to '%s'", wc.Count(), path)
	return nil
}
