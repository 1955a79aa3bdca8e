package frame

// Clamp01 limits t to [0, 1]. NaN is returned as is.
func Clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Interpolate returns a new frame with out[i] = a[i]*(1-u) + b[i]*u, where
// u is t clamped to [0, 1]. An out-of-range t is not an error.
//
// If the frames differ in length, *ErrSizeMismatch is returned.
func Interpolate(a, b Frame, t float32) (Frame, error) {
	if err := checkSizes(a, b); err != nil {
		return nil, err
	}
	out := make(Frame, len(a))
	lerp(out, a, b, Clamp01(t))
	return out, nil
}

// InterpolateInto is Interpolate writing into dst instead of allocating,
// for callers invoking it repeatedly in a hot loop. dst may alias a or b.
//
// If dst, a and b differ in length, *ErrSizeMismatch is returned and dst
// is left untouched.
func InterpolateInto(dst, a, b Frame, t float32) error {
	if err := checkSizes(dst, a, b); err != nil {
		return err
	}
	lerp(dst, a, b, Clamp01(t))
	return nil
}

func lerp(dst, a, b Frame, u float32) {
	v := 1 - u
	// reslicing lets the compiler drop the bounds checks in the loop
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		// the conversions round each product, so no FMA fusion on any GOARCH
		dst[i] = float32(a[i]*v) + float32(b[i]*u)
	}
}
