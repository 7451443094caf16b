package wadexp_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/bllu404/wadexp"
	"github.com/bllu404/wadexp/types"
)

func mustInt(t *testing.T, s string) sdkmath.Int {
	t.Helper()
	i, ok := sdkmath.NewIntFromString(s)
	require.True(t, ok, "invalid integer literal %q", s)
	return i
}

func TestExp(t *testing.T) {
	tests := []struct {
		name     string
		exponent string
		expected string
		err      error
	}{
		{
			name:     "zero is exactly one",
			exponent: "0",
			expected: "1000000000000000000",
		},
		{
			name:     "smallest positive step",
			exponent: "1",
			expected: "1000000000000000001",
		},
		{
			name:     "one tenth",
			exponent: "100000000000000000",
			expected: "1105170918075647624",
		},
		{
			name:     "minus one tenth",
			exponent: "-100000000000000000",
			expected: "904837418035959573",
		},
		{
			name:     "one quarter hits the smallest breakpoint",
			exponent: "250000000000000000",
			expected: "1284025416687741484",
		},
		{
			name:     "one half",
			exponent: "500000000000000000",
			expected: "1648721270700128146",
		},
		{
			name:     "minus one half",
			exponent: "-500000000000000000",
			expected: "606530659712633423",
		},
		{
			name:     "one",
			exponent: "1000000000000000000",
			expected: "2718281828459045235",
		},
		{
			name:     "minus one",
			exponent: "-1000000000000000000",
			expected: "367879441171442321",
		},
		{
			name:     "one and a half spans breakpoints",
			exponent: "1500000000000000000",
			expected: "4481689070338064822",
		},
		{
			name:     "two",
			exponent: "2000000000000000000",
			expected: "7389056098930650227",
		},
		{
			name:     "minus two",
			exponent: "-2000000000000000000",
			expected: "135335283236612691",
		},
		{
			name:     "ten",
			exponent: "10000000000000000000",
			expected: "22026465794806716516930",
		},
		{
			name:     "minus ten",
			exponent: "-10000000000000000000",
			expected: "45399929762484",
		},
		{
			name:     "twenty five",
			exponent: "25000000000000000000",
			expected: "72004899337385872524042467984",
		},
		{
			name:     "minus twenty five",
			exponent: "-25000000000000000000",
			expected: "13887943",
		},
		{
			name:     "thirty two hits the largest fine breakpoint",
			exponent: "32000000000000000000",
			expected: "78962960182680695161000000000000",
		},
		{
			name:     "upper bound succeeds",
			exponent: "40000000000000000000",
			expected: "235385266837019985407681781544372396",
		},
		{
			name:     "lower bound succeeds",
			exponent: "-40000000000000000000",
			expected: "4",
		},
		{
			name:     "just above upper bound",
			exponent: "40000000000000000001",
			err:      types.ErrExponentOutOfRange,
		},
		{
			name:     "just below lower bound",
			exponent: "-40000000000000000001",
			err:      types.ErrExponentOutOfRange,
		},
		{
			name:     "far above upper bound",
			exponent: "1000000000000000000000000",
			err:      types.ErrExponentOutOfRange,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := wadexp.Exp(mustInt(t, tc.exponent))

			if tc.err != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			expected := mustInt(t, tc.expected)
			require.True(t, expected.Equal(res), "expected %s, got %s", expected, res)
		})
	}
}

func TestExpNilExponent(t *testing.T) {
	_, err := wadexp.Exp(sdkmath.Int{})
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestExpDeterminism(t *testing.T) {
	exponents := []string{
		"0",
		"1",
		"333333333333333333",
		"-333333333333333333",
		"12345678901234567890",
		"-12345678901234567890",
		"40000000000000000000",
		"-40000000000000000000",
	}

	for _, s := range exponents {
		x := mustInt(t, s)
		first, err := wadexp.Exp(x)
		require.NoError(t, err)

		for range 10 {
			again, err := wadexp.Exp(x)
			require.NoError(t, err)
			require.True(t, first.Equal(again),
				"exp(%s) not stable: %s then %s", s, first, again)
		}
	}
}
