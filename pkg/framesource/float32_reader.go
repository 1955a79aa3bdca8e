package framesource

import (
	"io"

	"github.com/xaionaro-go/minfi/pkg/frame"
	"github.com/xaionaro-go/minfi/pkg/pcm"
)

// maxEmptyReads bounds how many times in a row the decoder may return
// nothing without an error before io.ErrNoProgress is reported.
const maxEmptyReads = 100

type float32Reader interface {
	Read(p []float32) (int, error)
}

// readerFromFloat32Reader encodes samples of a decoder into PCM bytes.
//
// The decoder only hands out whole multi-channel frames, so every request
// to it is a multiple of the channel count; whatever the caller could not
// take is kept in pending.
type readerFromFloat32Reader struct {
	backend  float32Reader
	format   pcm.Format
	channels int
	samples  frame.Frame
	buffer   []byte
	pending  []byte
	err      error
}

var _ io.Reader = (*readerFromFloat32Reader)(nil)

func newReaderFromFloat32Reader(
	backend float32Reader,
	format pcm.Format,
	channels int,
) *readerFromFloat32Reader {
	if channels < 1 {
		channels = 1
	}
	return &readerFromFloat32Reader{
		backend:  backend,
		format:   format,
		channels: channels,
	}
}

func (r *readerFromFloat32Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		if err := r.fill(len(p)); err != nil {
			return 0, err
		}
		if len(r.pending) == 0 {
			return 0, r.err
		}
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// fill decodes at least one frame into pending, unless the decoder
// reports an error (stored into r.err).
func (r *readerFromFloat32Reader) fill(wantBytes int) error {
	sampleSize := int(r.format.Size())
	count := wantBytes / sampleSize
	if rem := count % r.channels; rem != 0 || count == 0 {
		count += r.channels - rem
	}
	if cap(r.samples) < count {
		r.samples = make(frame.Frame, count)
	}
	samples := r.samples[:count]

	var n int
	for attempt := 0; n <= 0; attempt++ {
		if attempt >= maxEmptyReads {
			r.err = io.ErrNoProgress
			return nil
		}
		n, r.err = r.backend.Read(samples)
		if r.err != nil {
			break
		}
	}
	if n <= 0 {
		return nil
	}

	size := n * sampleSize
	if cap(r.buffer) < size {
		r.buffer = make([]byte, size)
	}
	r.pending = r.buffer[:size]
	return pcm.EncodeInto(r.format, r.pending, samples[:n])
}
