package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/datacounter"
	"github.com/xaionaro-go/minfi/pkg/blendstream"
	"github.com/xaionaro-go/minfi/pkg/flagargs"
	"github.com/xaionaro-go/minfi/pkg/framesource"
	"github.com/xaionaro-go/minfi/pkg/interpolation"
	"github.com/xaionaro-go/minfi/pkg/interpolation/implementations/linear"
	_ "github.com/xaionaro-go/minfi/pkg/interpolation/implementations/nearest"
	_ "github.com/xaionaro-go/minfi/pkg/interpolation/implementations/smoothstep"
	"github.com/xaionaro-go/minfi/pkg/pcm"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	t := pflag.Float32("t", 0.5, "interpolation factor, clamped to [0,1]")
	method := pflag.String("method", linear.Name, "interpolation curve, one of: "+strings.Join(interpolation.Names(), ", "))
	inFormat := pcm.FormatFloat32LE
	pflag.Var(&inFormat, "in-format", "PCM format of raw inputs (Ogg Vorbis inputs are decoded into it)")
	outFormat := pcm.FormatFloat32LE
	pflag.Var(&outFormat, "out-format", "PCM format of the output")
	assertNoError(pflag.CommandLine.Parse(flagargs.Normalize(pflag.CommandLine, os.Args[1:])))

	if pflag.NArg() != 3 {
		panic(fmt.Errorf("expected exactly three arguments: <input-a> <input-b> <output-file>"))
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	interpolator, err := interpolation.New(*method)
	assertNoError(err)

	inputA, err := framesource.Open(ctx, pflag.Arg(0), inFormat)
	assertNoError(err)
	defer inputA.Close()

	inputB, err := framesource.Open(ctx, pflag.Arg(1), inFormat)
	assertNoError(err)
	defer inputB.Close()

	blender, err := blendstream.New(ctx, inputA, inputB, blendstream.Config{
		T:            *t,
		InFormat:     inFormat,
		OutFormat:    outFormat,
		Interpolator: interpolator,
	})
	assertNoError(err)

	output, err := os.Create(pflag.Arg(2))
	assertNoError(err)
	defer func() {
		assertNoError(output.Close())
	}()

	wc := datacounter.NewWriterCounter(output)
	logger.Infof(ctx, "blending '%s' and '%s' at t=%v into '%s'", pflag.Arg(0), pflag.Arg(1), *t, pflag.Arg(2))
	_, err = io.Copy(wc, blender)
	assertNoError(err)
	logger.Infof(ctx, "blended %d samples, wrote %d bytes", blender.Position(), wc.Count())
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
