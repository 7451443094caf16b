package interest

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/bllu404/wadexp"
	"github.com/bllu404/wadexp/types"
)

const (
	// SecondsPerYear is the number of seconds used to annualize rates.
	SecondsPerYear = 31_536_000
)

var maxExponentDec = sdkmath.LegacyNewDecFromIntWithPrec(wadexp.MaxExponent, wadexp.WadDecimals)

// CalculateInterestEarned computes continuously compounded interest,
// P * (e^(rt) - 1), over a period of periodSeconds at the given annual rate.
// e^(rt) comes from the deterministic fixed-point evaluator, so the result is
// identical on every node. The interest is truncated to an integer amount, as
// coins cannot have fractional parts; it is negative for negative rates.
func CalculateInterestEarned(principal sdk.Coin, rate string, periodSeconds int64) (sdkmath.Int, error) {
	if periodSeconds <= 0 {
		return sdkmath.Int{}, fmt.Errorf("periodSeconds must be positive, got %d", periodSeconds)
	}

	r, err := sdkmath.LegacyNewDecFromStr(rate)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("invalid rate string %q: %w", rate, err)
	}

	// P = principal amount as a deterministic decimal
	p := sdkmath.LegacyNewDecFromInt(principal.Amount)

	// t = time in years, as a deterministic decimal
	t := sdkmath.LegacyNewDec(periodSeconds).QuoInt64(SecondsPerYear)

	// rt
	rt := r.Mul(t)

	// The evaluator rejects |rt| > 40; checking before the conversion keeps
	// absurdly large rates from tripping the 256-bit cap of the Int type.
	if rt.Abs().GT(maxExponentDec) {
		return sdkmath.Int{}, types.ErrExponentOutOfRange.Wrapf("rate %s compounded over %ds", rate, periodSeconds)
	}

	// A LegacyDec carries 18 fractional digits, so its raw value is already
	// the wad the evaluator expects.
	eRt, err := wadexp.Exp(sdkmath.NewIntFromBigInt(rt.BigInt()))
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to compound rate %s over %ds: %w", rate, periodSeconds, err)
	}

	// final amount A = P * e^(rt)
	finalAmount := p.Mul(sdkmath.LegacyNewDecFromIntWithPrec(eRt, wadexp.WadDecimals))

	// interest = A - P, truncated to an integer amount for the coin
	return finalAmount.Sub(p).TruncateInt(), nil
}
