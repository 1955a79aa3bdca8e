package pcm

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/xaionaro-go/minfi/pkg/frame"
)

// Sample decodes the first sample of p. Integer formats are mapped to [-1, 1).
func Sample(f Format, p []byte) float64 {
	switch f {
	case FormatU8:
		return (float64(p[0]) - 128) / 128
	case FormatS16LE:
		return float64(int16(binary.LittleEndian.Uint16(p))) / 32768
	case FormatS16BE:
		return float64(int16(binary.BigEndian.Uint16(p))) / 32768
	case FormatS24LE:
		return float64(signExtend24(uint32(p[0])|uint32(p[1])<<8|uint32(p[2])<<16)) / 8388608
	case FormatS24BE:
		return float64(signExtend24(uint32(p[2])|uint32(p[1])<<8|uint32(p[0])<<16)) / 8388608
	case FormatS32LE:
		return float64(int32(binary.LittleEndian.Uint32(p))) / 2147483648
	case FormatS32BE:
		return float64(int32(binary.BigEndian.Uint32(p))) / 2147483648
	case FormatFloat32LE:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(p)))
	case FormatFloat32BE:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(p)))
	case FormatFloat64LE:
		return math.Float64frombits(binary.LittleEndian.Uint64(p))
	case FormatFloat64BE:
		return math.Float64frombits(binary.BigEndian.Uint64(p))
	default:
		panic(fmt.Sprintf("unknown format: %v", f))
	}
}

// PutSample encodes v into the first sample of p. Integer formats clip
// values outside of [-1, 1).
func PutSample(f Format, p []byte, v float64) {
	switch f {
	case FormatU8:
		p[0] = byte(quantize(v, 128) + 128)
	case FormatS16LE:
		binary.LittleEndian.PutUint16(p, uint16(int16(quantize(v, 32768))))
	case FormatS16BE:
		binary.BigEndian.PutUint16(p, uint16(int16(quantize(v, 32768))))
	case FormatS24LE:
		val := int32(quantize(v, 8388608))
		p[0] = byte(val)
		p[1] = byte(val >> 8)
		p[2] = byte(val >> 16)
	case FormatS24BE:
		val := int32(quantize(v, 8388608))
		p[0] = byte(val >> 16)
		p[1] = byte(val >> 8)
		p[2] = byte(val)
	case FormatS32LE:
		binary.LittleEndian.PutUint32(p, uint32(int32(quantize(v, 2147483648))))
	case FormatS32BE:
		binary.BigEndian.PutUint32(p, uint32(int32(quantize(v, 2147483648))))
	case FormatFloat32LE:
		binary.LittleEndian.PutUint32(p, math.Float32bits(float32(v)))
	case FormatFloat32BE:
		binary.BigEndian.PutUint32(p, math.Float32bits(float32(v)))
	case FormatFloat64LE:
		binary.LittleEndian.PutUint64(p, math.Float64bits(v))
	case FormatFloat64BE:
		binary.BigEndian.PutUint64(p, math.Float64bits(v))
	default:
		panic(fmt.Sprintf("unknown format: %v", f))
	}
}

func signExtend24(v uint32) int32 {
	val := int32(v)
	if val&0x800000 != 0 {
		val |= -16777216
	}
	return val
}

// quantize scales v to the integer range [-scale, scale-1].
func quantize(v float64, scale float64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	q := math.Round(v * scale)
	if q > scale-1 {
		q = scale - 1
	}
	if q < -scale {
		q = -scale
	}
	return int64(q)
}

func checkFormat(f Format) error {
	if f.Size() == 0 {
		return fmt.Errorf("unknown format: %v", f)
	}
	return nil
}

// Decode converts raw samples into a frame.
func Decode(f Format, data []byte) (frame.Frame, error) {
	if err := checkFormat(f); err != nil {
		return nil, err
	}
	result := make(frame.Frame, len(data)/int(f.Size()))
	if err := DecodeInto(f, result, data); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeInto converts raw samples into dst, which must hold exactly
// len(data)/f.Size() samples.
func DecodeInto(f Format, dst frame.Frame, data []byte) error {
	if err := checkFormat(f); err != nil {
		return err
	}
	sampleSize := int(f.Size())
	if len(data)%sampleSize != 0 {
		return fmt.Errorf("the data length %d is not a multiple of the sample size %d of %v", len(data), sampleSize, f)
	}
	if len(data)/sampleSize != len(dst) {
		return fmt.Errorf("the destination has %d samples, but the data has %d", len(dst), len(data)/sampleSize)
	}
	for idx := range dst {
		dst[idx] = float32(Sample(f, data[idx*sampleSize:]))
	}
	return nil
}

// Encode converts a frame into raw samples.
func Encode(f Format, src frame.Frame) ([]byte, error) {
	if err := checkFormat(f); err != nil {
		return nil, err
	}
	result := make([]byte, len(src)*int(f.Size()))
	if err := EncodeInto(f, result, src); err != nil {
		return nil, err
	}
	return result, nil
}

// EncodeInto converts a frame into raw samples written to dst, which must
// be exactly len(src)*f.Size() bytes long.
func EncodeInto(f Format, dst []byte, src frame.Frame) error {
	if err := checkFormat(f); err != nil {
		return err
	}
	sampleSize := int(f.Size())
	if len(dst) != len(src)*sampleSize {
		return fmt.Errorf("the destination is %d bytes, but %d samples of %v need %d", len(dst), len(src), f, len(src)*sampleSize)
	}
	for idx, v := range src {
		PutSample(f, dst[idx*sampleSize:], float64(v))
	}
	return nil
}
