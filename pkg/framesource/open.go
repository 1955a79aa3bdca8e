package framesource

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/jfreymuth/oggvorbis"
	"github.com/xaionaro-go/minfi/pkg/frame"
	"github.com/xaionaro-go/minfi/pkg/pcm"
)

type readCloser struct {
	io.Reader
	io.Closer
}

func isVorbis(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg", ".oga":
		return true
	default:
		return false
	}
}

// Open returns the samples of the file as PCM bytes in the given format.
// Ogg Vorbis files (.ogg, .oga) are decoded on the fly; any other file is
// expected to already contain raw samples in the given format.
func Open(
	ctx context.Context,
	path string,
	format pcm.Format,
) (io.ReadCloser, error) {
	if format.Size() == 0 {
		return nil, fmt.Errorf("unknown format: %v", format)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open '%s': %w", path, err)
	}

	if !isVorbis(path) {
		logger.Debugf(ctx, "reading '%s' as raw %v", path, format)
		return file, nil
	}

	oggReader, err := oggvorbis.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("unable to initialize a vorbis reader for '%s': %w", path, err)
	}
	logger.Debugf(ctx, "decoding '%s' as Ogg Vorbis: %d Hz, %d channels", path, oggReader.SampleRate(), oggReader.Channels())
	return readCloser{
		Reader: newReaderFromFloat32Reader(oggReader, format, oggReader.Channels()),
		Closer: file,
	}, nil
}

// ReadFile reads the whole file (see Open) into a frame.
func ReadFile(
	ctx context.Context,
	path string,
	format pcm.Format,
) (frame.Frame, error) {
	r, err := Open(ctx, path, format)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", path, err)
	}
	result, err := pcm.Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode '%s': %w", path, err)
	}
	logger.Tracef(ctx, "read %d samples from '%s'", len(result), path)
	return result, nil
}
