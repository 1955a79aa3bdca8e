// Package frame implements element-wise linear interpolation between
// two equal-length sequences of float32 samples.
package frame

// Frame is an ordered sequence of samples: image channel values, audio
// samples or any other per-element scalar field.
//
// Frames participating in one interpolation call must have the same length.
type Frame []float32

// Clone returns a copy of the frame that does not share memory with f.
func (f Frame) Clone() Frame {
	if f == nil {
		return nil
	}
	result := make(Frame, len(f))
	copy(result, f)
	return result
}
