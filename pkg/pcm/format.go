// Package pcm converts between raw PCM sample bytes and frames.
package pcm

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

type Format uint

const (
	FormatUndefined = Format(iota)
	FormatU8
	FormatS16LE
	FormatS16BE
	FormatS24LE
	FormatS24BE
	FormatS32LE
	FormatS32BE
	FormatFloat32LE
	FormatFloat32BE
	FormatFloat64LE
	FormatFloat64BE
	EndOfFormat
)

var _ pflag.Value = (*Format)(nil)

// Size returns the amount of bytes of a single sample.
func (f Format) Size() uint {
	switch f {
	case FormatU8:
		return 1
	case FormatS16LE, FormatS16BE:
		return 2
	case FormatS24LE, FormatS24BE:
		return 3
	case FormatS32LE, FormatS32BE, FormatFloat32LE, FormatFloat32BE:
		return 4
	case FormatFloat64LE, FormatFloat64BE:
		return 8
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case FormatUndefined:
		return "undefined"
	case FormatU8:
		return "u8"
	case FormatS16LE:
		return "s16le"
	case FormatS16BE:
		return "s16be"
	case FormatS24LE:
		return "s24le"
	case FormatS24BE:
		return "s24be"
	case FormatS32LE:
		return "s32le"
	case FormatS32BE:
		return "s32be"
	case FormatFloat32LE:
		return "float32le"
	case FormatFloat32BE:
		return "float32be"
	case FormatFloat64LE:
		return "float64le"
	case FormatFloat64BE:
		return "float64be"
	default:
		return fmt.Sprintf("unknown_format_%d", uint(f))
	}
}

func (f *Format) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for candidate := FormatUndefined + 1; candidate < EndOfFormat; candidate++ {
		if candidate.String() == s {
			*f = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown PCM format %q, expected one of: %s", s, strings.Join(formatNames(), ", "))
}

func (*Format) Type() string {
	return "pcm-format"
}

func formatNames() []string {
	var names []string
	for f := FormatUndefined + 1; f < EndOfFormat; f++ {
		names = append(names, f.String())
	}
	return names
}
