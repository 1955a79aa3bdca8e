// Package framesource obtains frames from command-line literals and from
// sample files.
package framesource

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/xaionaro-go/minfi/pkg/frame"
)

// Parse reads a frame from a list of numbers separated by commas and/or
// whitespace, optionally enclosed in square brackets: "[0, 0.5, 1]".
func Parse(s string) (frame.Frame, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}

	result := make(frame.Frame, 0, len(fields))
	for idx, field := range fields {
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return nil, fmt.Errorf("unable to parse value #%d %q: %w", idx, field, err)
		}
		result = append(result, float32(v))
	}
	return result, nil
}
