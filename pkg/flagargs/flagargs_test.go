package flagargs

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Float32("t", 0.5, "")
	flags.String("method", "linear", "")
	flags.BoolP("verbose", "v", false, "")
	flags.IntP("workers", "w", 1, "")
	return flags
}

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		args     []string
		expected []string
	}{
		{nil, nil},
		{[]string{"0.5"}, []string{"0.5"}},
		{[]string{"--method", "nearest", "1"}, []string{"--method", "nearest", "1"}},
		{[]string{"-1"}, []string{"--", "-1"}},
		{[]string{"1000", "10", "-2"}, []string{"--", "1000", "10", "-2"}},
		{
			[]string{"1000", "--workers", "4", "-2.5e-1", "-v"},
			[]string{"--workers", "4", "-v", "--", "1000", "-2.5e-1"},
		},
		{[]string{"--t", "-1", "a", "b"}, []string{"--t", "-1", "a", "b"}},
		{[]string{"-w", "-3", "-3"}, []string{"-w", "-3", "--", "-3"}},
		{[]string{"-w4", "-3"}, []string{"-w4", "--", "-3"}},
		{[]string{"-1", "--", "--method"}, []string{"--", "-1", "--method"}},
	} {
		require.Equal(t, tc.expected, Normalize(newFlagSet(), tc.args), "%q", tc.args)
	}
}

func TestNormalizeParse(t *testing.T) {
	flags := newFlagSet()
	require.NoError(t, flags.Parse(Normalize(flags, []string{"--method", "nearest", "100", "-2", "--workers=3"})))
	require.Equal(t, []string{"100", "-2"}, flags.Args())

	method, err := flags.GetString("method")
	require.NoError(t, err)
	require.Equal(t, "nearest", method)

	workers, err := flags.GetInt("workers")
	require.NoError(t, err)
	require.Equal(t, 3, workers)
}

func TestIsNegativeNumber(t *testing.T) {
	flags := newFlagSet()
	for _, arg := range []string{"-1", "-0.5", "-1e3", "-inf"} {
		require.True(t, IsNegativeNumber(flags, arg), arg)
	}
	for _, arg := range []string{"1", "-", "--1", "-v", "-w5", "-x", ""} {
		require.False(t, IsNegativeNumber(flags, arg), arg)
	}
}
