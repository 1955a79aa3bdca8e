package pcm

import (
	"encoding/hex"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/minfi/pkg/frame"
)

func TestCodecRoundTrip(t *testing.T) {
	src := frame.Frame{-1, -0.5, 0, 0.25, 0.5, 0.75}
	for f := FormatUndefined + 1; f < EndOfFormat; f++ {
		t.Run(f.String(), func(t *testing.T) {
			raw, err := Encode(f, src)
			require.NoError(t, err)
			require.Len(t, raw, len(src)*int(f.Size()))

			decoded, err := Decode(f, raw)
			require.NoError(t, err)
			require.Len(t, decoded, len(src))
			for idx := range src {
				assert.InDelta(t, src[idx], decoded[idx], 1.0/128, spew.Sdump(raw))
			}
		})
	}
}

func TestEncodeS16LE(t *testing.T) {
	raw, err := Encode(FormatS16LE, frame.Frame{0, 0.5, -1, 1, 3})
	require.NoError(t, err)
	require.Equal(t, "0000"+"0040"+"0080"+"ff7f"+"ff7f", hex.EncodeToString(raw))
}

func TestEncodeU8Clips(t *testing.T) {
	raw, err := Encode(FormatU8, frame.Frame{-2, -1, 0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 128, 255, 255}, raw)
}

func TestDecodeS24(t *testing.T) {
	le, err := Decode(FormatS24LE, []byte{0x00, 0x00, 0x80, 0x00, 0x00, 0x40})
	require.NoError(t, err)
	require.Equal(t, frame.Frame{-1, 0.5}, le)

	be, err := Decode(FormatS24BE, []byte{0x80, 0x00, 0x00, 0x40, 0x00, 0x00})
	require.NoError(t, err)
	require.Equal(t, frame.Frame{-1, 0.5}, be)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(FormatS16LE, []byte{1, 2, 3})
	require.Error(t, err)

	_, err = Decode(FormatUndefined, []byte{1, 2})
	require.Error(t, err)

	err = DecodeInto(FormatU8, make(frame.Frame, 1), []byte{1, 2})
	require.Error(t, err)

	err = EncodeInto(FormatFloat32LE, make([]byte, 3), frame.Frame{1})
	require.Error(t, err)
}

func TestFormatFlag(t *testing.T) {
	var f Format
	require.NoError(t, f.Set("Float32LE"))
	require.Equal(t, FormatFloat32LE, f)
	require.Equal(t, "float32le", f.String())
	require.Error(t, f.Set("mp3"))
	require.Equal(t, FormatFloat32LE, f)
}
