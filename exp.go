// Package wadexp implements a deterministic natural exponential over
// 18-decimal fixed-point integers ("wads"). Safe for on-chain use: every
// operation is exact integer arithmetic with truncating division, so the
// result is bit-identical for identical input on every node.
package wadexp

import (
	"math/big"

	sdkmath "cosmossdk.io/math"

	"github.com/bllu404/wadexp/types"
)

const (
	// WadDecimals is the fixed-point scale of inputs and outputs.
	WadDecimals = 18
	// midDecimals is the working scale used between decomposition and the
	// final rescale, carrying two guard digits against truncation loss.
	midDecimals = 20

	// taylorTerms is the number of series terms evaluated on the residual,
	// k = 0 through taylorTerms-1.
	taylorTerms = 12
)

var (
	oneWad = sdkmath.NewIntWithDecimal(1, WadDecimals)
	oneMid = sdkmath.NewIntWithDecimal(1, midDecimals)

	// MaxExponent is the largest magnitude the evaluator accepts, 40 in wad.
	// Beyond it the coarse multipliers would push intermediates past the
	// integer ceiling of the hosts this module targets.
	MaxExponent = sdkmath.NewIntWithDecimal(40, WadDecimals)
)

// Coarse breakpoints, in wad. Their multipliers are the raw integer parts of
// e^128 and e^64 and carry no decimal scale; the final combine divides them
// out together with the wad-to-working rescale.
var (
	breakX0 = sdkmath.NewIntWithDecimal(128, WadDecimals)
	multA0  = mustInt("38877084059945950922200000000000000000000000000000000000")
	breakX1 = sdkmath.NewIntWithDecimal(64, WadDecimals)
	multA1  = mustInt("6235149080811616882910000000")
)

// breakpoint pairs a power-of-two magnitude with its known exponential, both
// at the 20-decimal working scale.
type breakpoint struct {
	x sdkmath.Int
	a sdkmath.Int
}

// fineBreakpoints holds 2^5 down to 2^-2 in strictly descending order. The
// order is part of the contract: it fixes which truncations happen, and so
// fixes the exact output bits.
var fineBreakpoints = []breakpoint{
	{mustInt("3200000000000000000000"), mustInt("7896296018268069516100000000000000")}, // 32, e^32
	{mustInt("1600000000000000000000"), mustInt("888611052050787263676000000")},        // 16, e^16
	{mustInt("800000000000000000000"), mustInt("298095798704172827474000")},            // 8, e^8
	{mustInt("400000000000000000000"), mustInt("5459815003314423907810")},              // 4, e^4
	{mustInt("200000000000000000000"), mustInt("738905609893065022723")},               // 2, e^2
	{mustInt("100000000000000000000"), mustInt("271828182845904523536")},               // 1, e^1
	{mustInt("50000000000000000000"), mustInt("164872127070012814685")},                // 0.5, e^0.5
	{mustInt("25000000000000000000"), mustInt("128402541668774148407")},                // 0.25, e^0.25
}

// The table continues with 2^-3 and 2^-4, but the Taylor series already
// converges on residuals below 0.25, so these two are never consumed.
var (
	breakX10 = mustInt("12500000000000000000")
	multA10  = mustInt("113314845306682631683")
	breakX11 = mustInt("6250000000000000000")
	multA11  = mustInt("106449445891785942956")
)

func mustInt(s string) sdkmath.Int {
	i, ok := sdkmath.NewIntFromString(s)
	if !ok {
		panic("invalid integer constant: " + s)
	}
	return i
}

// Exp returns e^x, where x and the result are signed 18-decimal fixed-point
// integers. It fails with types.ErrExponentOutOfRange when |x| exceeds
// MaxExponent and with types.ErrIntOverflow if an intermediate product would
// exceed 256 bits; for in-domain input the largest intermediate stays below
// 2^200, so the overflow check is a guard rather than a working path.
func Exp(x sdkmath.Int) (sdkmath.Int, error) {
	if x.IsNil() {
		return sdkmath.Int{}, types.ErrInvalidRequest.Wrap("exponent must be set")
	}

	if x.IsNegative() {
		// e^-x = 1/e^x. The reciprocal at doubled scale keeps 18 decimals
		// through the truncating division, and validating the magnitude
		// inside the positive branch rejects the lower bound as well.
		inv, err := expPositive(x.Neg())
		if err != nil {
			return sdkmath.Int{}, err
		}
		return oneWad.Mul(oneWad).Quo(inv), nil
	}

	return expPositive(x)
}

// expPositive evaluates e^x for non-negative wad x by peeling known
// powers-of-two off the exponent and closing the residual with a truncated
// Taylor series. Steps are ordered largest breakpoint first; reordering them
// would change which truncations occur and break bit-for-bit determinism.
func expPositive(x sdkmath.Int) (sdkmath.Int, error) {
	if x.GT(MaxExponent) {
		return sdkmath.Int{}, types.ErrExponentOutOfRange.Wrapf(
			"exponent magnitude %s exceeds maximum %s", x, MaxExponent)
	}

	// Coarse decomposition. The two bands are disjoint, so at most one
	// multiplier applies; it is held unscaled until the final combine.
	firstAN := sdkmath.OneInt()
	switch {
	case x.GTE(breakX0):
		x = x.Sub(breakX0)
		firstAN = multA0
	case x.GTE(breakX1):
		x = x.Sub(breakX1)
		firstAN = multA1
	}

	// Move the remainder to the 20-decimal working scale.
	x = x.MulRaw(100)

	// Fine decomposition. Each matching breakpoint folds its exponential
	// into the running product and leaves a smaller exponent behind;
	// multiple breakpoints can match in a single call.
	product := oneMid
	var err error
	for _, bp := range fineBreakpoints {
		if x.GTE(bp.x) {
			product, err = mulDivTrunc(product, bp.a, oneMid)
			if err != nil {
				return sdkmath.Int{}, err
			}
			x = x.Sub(bp.x)
		}
	}

	// Taylor series on the residual, now below 0.25. Each term divides by
	// the working scale and the term index in one truncating step.
	seriesSum := oneMid.Add(x)
	term := x
	for k := int64(2); k < taylorTerms; k++ {
		term, err = mulDivTrunc(term, x, oneMid.MulRaw(k))
		if err != nil {
			return sdkmath.Int{}, err
		}
		seriesSum = seriesSum.Add(term)
	}

	// Combine: product and series are both at the working scale, so one
	// division restores it; the trailing /100 undoes the 18->20 rescale
	// and descales the coarse multiplier at the same time.
	res, err := mulDivTrunc(product, seriesSum, oneMid)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return mulDivTrunc(res, firstAN, sdkmath.NewInt(100))
}

// mulDivTrunc returns (a*b)/d with truncating division, failing instead of
// panicking when the product would not fit the 256-bit integer ceiling.
func mulDivTrunc(a, b, d sdkmath.Int) (sdkmath.Int, error) {
	p := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if p.BitLen() > sdkmath.MaxBitLen {
		return sdkmath.Int{}, types.ErrIntOverflow.Wrapf(
			"product of %s and %s exceeds %d bits", a, b, sdkmath.MaxBitLen)
	}
	return sdkmath.NewIntFromBigInt(p.Quo(p, d.BigInt())), nil
}
