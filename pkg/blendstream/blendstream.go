// Package blendstream blends two PCM streams sample by sample while they
// are being read.
package blendstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/minfi/pkg/frame"
	"github.com/xaionaro-go/minfi/pkg/interpolation"
	"github.com/xaionaro-go/minfi/pkg/pcm"
)

type Config struct {
	T            float32
	InFormat     pcm.Format
	OutFormat    pcm.Format
	Interpolator interpolation.Interpolator
}

// Reader reads the same amount of samples from both inputs, blends them and
// returns the result encoded in Config.OutFormat.
//
// If one input ends before the other, Read returns an error wrapping
// *ErrInputEnded (and so frame.ErrInvalidArgument); the error is sticky.
type Reader struct {
	Config
	ctx      context.Context
	inputA   io.Reader
	inputB   io.Reader
	locker   sync.Mutex
	bufferA  []byte
	bufferB  []byte
	frameA   frame.Frame
	frameB   frame.Frame
	frameOut frame.Frame
	position uint64
	err      error
}

var _ io.Reader = (*Reader)(nil)

func New(
	ctx context.Context,
	inputA io.Reader,
	inputB io.Reader,
	cfg Config,
) (*Reader, error) {
	if cfg.InFormat.Size() == 0 {
		return nil, fmt.Errorf("unknown input format: %v", cfg.InFormat)
	}
	if cfg.OutFormat.Size() == 0 {
		return nil, fmt.Errorf("unknown output format: %v", cfg.OutFormat)
	}
	if cfg.Interpolator == nil {
		return nil, fmt.Errorf("interpolator is mandatory")
	}
	return &Reader{
		Config: cfg,
		ctx:    ctx,
		inputA: inputA,
		inputB: inputB,
	}, nil
}

// Position returns the amount of samples blended so far.
func (r *Reader) Position() uint64 {
	r.locker.Lock()
	defer r.locker.Unlock()
	return r.position
}

func (r *Reader) Read(p []byte) (_ret int, _err error) {
	logger.Tracef(r.ctx, "Read, len:%d", len(p))
	defer func() { logger.Tracef(r.ctx, "/Read, len:%d: %d, %v", len(p), _ret, _err) }()

	r.locker.Lock()
	defer r.locker.Unlock()
	if r.err != nil {
		return 0, r.err
	}

	outSampleSize := int(r.OutFormat.Size())
	if len(p) < outSampleSize {
		return 0, fmt.Errorf("the provided output buffer is too short: %d < %d", len(p), outSampleSize)
	}
	count := len(p) / outSampleSize
	r.grow(count)

	inSampleSize := int(r.InFormat.Size())
	nA, err := readChunk(r.inputA, r.bufferA[:count*inSampleSize], inSampleSize)
	if err != nil {
		r.err = fmt.Errorf("unable to read the first input: %w", err)
		return 0, r.err
	}
	nB, err := readChunk(r.inputB, r.bufferB[:count*inSampleSize], inSampleSize)
	if err != nil {
		r.err = fmt.Errorf("unable to read the second input: %w", err)
		return 0, r.err
	}

	samplesA, samplesB := nA/inSampleSize, nB/inSampleSize
	if samplesA != samplesB {
		// the input with fewer samples hit its end; the other one may have more
		ended := &ErrInputEnded{
			Length:       r.position + uint64(samplesA),
			OtherAtLeast: r.position + uint64(samplesB),
		}
		if samplesB < samplesA {
			ended.Input = 1
			ended.Length, ended.OtherAtLeast = ended.OtherAtLeast, ended.Length
		}
		r.err = fmt.Errorf("the inputs have different lengths: %w", ended)
		return 0, r.err
	}
	if samplesA == 0 {
		r.err = io.EOF
		return 0, io.EOF
	}

	frameA, frameB, frameOut := r.frameA[:samplesA], r.frameB[:samplesA], r.frameOut[:samplesA]
	if err := pcm.DecodeInto(r.InFormat, frameA, r.bufferA[:nA]); err != nil {
		r.err = fmt.Errorf("unable to decode the first input: %w", err)
		return 0, r.err
	}
	if err := pcm.DecodeInto(r.InFormat, frameB, r.bufferB[:nB]); err != nil {
		r.err = fmt.Errorf("unable to decode the second input: %w", err)
		return 0, r.err
	}
	if err := r.Interpolator.InterpolateInto(frameOut, frameA, frameB, r.T); err != nil {
		r.err = fmt.Errorf("unable to interpolate: %w", err)
		return 0, r.err
	}

	n := samplesA * outSampleSize
	if err := pcm.EncodeInto(r.OutFormat, p[:n], frameOut); err != nil {
		r.err = fmt.Errorf("unable to encode: %w", err)
		return 0, r.err
	}
	r.position += uint64(samplesA)
	return n, nil
}

func (r *Reader) grow(count int) {
	inSize := count * int(r.InFormat.Size())
	if cap(r.bufferA) < inSize {
		r.bufferA = make([]byte, inSize)
		r.bufferB = make([]byte, inSize)
	}
	if cap(r.frameOut) < count {
		r.frameA = make(frame.Frame, count)
		r.frameB = make(frame.Frame, count)
		r.frameOut = make(frame.Frame, count)
	}
	r.bufferA = r.bufferA[:cap(r.bufferA)]
	r.bufferB = r.bufferB[:cap(r.bufferB)]
	r.frameA = r.frameA[:cap(r.frameA)]
	r.frameB = r.frameB[:cap(r.frameB)]
	r.frameOut = r.frameOut[:cap(r.frameOut)]
}

// readChunk fills buf as much as the input allows; reaching the end of the
// input is not an error, but ending in the middle of a sample is.
func readChunk(input io.Reader, buf []byte, sampleSize int) (int, error) {
	n, err := io.ReadFull(input, buf)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
	default:
		return n, err
	}
	if n%sampleSize != 0 {
		return n, fmt.Errorf("the input ended in the middle of a sample: %d bytes is not a multiple of %d", n, sampleSize)
	}
	return n, nil
}
