package main

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/minfi/pkg/frame"
	"github.com/xaionaro-go/minfi/pkg/pcm"
)

func defaultOptions() options {
	return options{
		A:            "0,0.5,1",
		B:            "1,0.5,0",
		Method:       "linear",
		Width:        8,
		Height:       4,
		OutputFormat: pcm.FormatFloat32LE,
	}
}

func TestFormatFrame(t *testing.T) {
	require.Equal(t, "[0.500, 0.500, 0.500]", formatFrame(frame.Frame{0.5, 0.5, 0.5}))
	require.Equal(t, "[]", formatFrame(frame.Frame{}))
}

func TestDemo(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	opts := defaultOptions()
	opts.PNGPath = filepath.Join(dir, "out.png")
	opts.OutputPath = filepath.Join(dir, "out.f32")
	var stdout bytes.Buffer
	require.NoError(t, demo(ctx, &stdout, "0.25", opts))
	require.Equal(t, "Interpolated frame: [0.250, 0.500, 0.750]\n", stdout.String())

	f, err := os.Open(opts.PNGPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 8, img.Bounds().Dx())
	r, g, b, _ := img.At(0, 0).RGBA()
	require.Equal(t, uint32(64), r>>8)
	require.Equal(t, uint32(128), g>>8)
	require.Equal(t, uint32(191), b>>8)

	raw, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)
	out, err := pcm.Decode(pcm.FormatFloat32LE, raw)
	require.NoError(t, err)
	require.Equal(t, frame.Frame{0.25, 0.5, 0.75}, out)
}

func TestDemoErrors(t *testing.T) {
	ctx := context.Background()

	require.Error(t, demo(ctx, io.Discard, "half", defaultOptions()))

	opts := defaultOptions()
	opts.A = "5"
	opts.B = "7,9"
	err := demo(ctx, io.Discard, "0.5", opts)
	require.ErrorIs(t, err, frame.ErrInvalidArgument)

	opts = defaultOptions()
	opts.Method = "bogus"
	require.Error(t, demo(ctx, io.Discard, "0.5", opts))
}

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		args     []string
		exitCode int
		output   string
	}{
		{nil, 0, "Usage:"},
		{[]string{"0.5"}, 0, "Interpolated frame: [0.500, 0.500, 0.500]\n"},
		{[]string{"-1"}, 0, "Interpolated frame: [0.000, 0.500, 1.000]\n"},
		{[]string{"2"}, 0, "Interpolated frame: [1.000, 0.500, 0.000]\n"},
		{[]string{"-0.5", "--method", "nearest"}, 0, "Interpolated frame: [0.000, 0.500, 1.000]\n"},
		{[]string{"--a", "0,0", "--b", "1,1", "--", "0.25"}, 0, "Interpolated frame: [0.250, 0.250]\n"},
		{[]string{"0.1", "0.2"}, 1, "Usage:"},
		{[]string{"half"}, 1, "Usage:"},
		{[]string{"--no-such-flag", "0.5"}, 2, "Usage:"},
		{[]string{"--help"}, 0, "Usage:"},
	} {
		var stdout bytes.Buffer
		exitCode := run(tc.args, &stdout)
		require.Equal(t, tc.exitCode, exitCode, "%q", tc.args)
		require.Contains(t, stdout.String(), tc.output, "%q", tc.args)
	}
}
