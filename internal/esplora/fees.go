package esplora

import (
	"fmt"
	"strconv"
)

// FeeRateForTarget returns the fee rate in sat/vB for confirming within
// target blocks. An exact bucket wins; otherwise the rate is inherited
// from the nearest known bucket above the target, on the reasoning that
// a transaction willing to wait N blocks can always pay the fee quoted
// for a slower bucket. Non-numeric keys on the wire are ignored.
// Returns ErrNoFeeEstimate when no bucket at or above target exists.
func FeeRateForTarget(estimates FeeEstimates, target uint32) (float64, error) {
	if target == 0 {
		return 0, fmt.Errorf("%w: confirmation target must be positive", ErrInvalidConfig)
	}

	byTarget := make(map[uint32]float64, len(estimates))
	var maxTarget uint32
	for key, rate := range estimates {
		parsed, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			continue
		}
		bucket := uint32(parsed)
		byTarget[bucket] = rate
		if bucket > maxTarget {
			maxTarget = bucket
		}
	}

	if rate, ok := byTarget[target]; ok {
		return rate, nil
	}
	if target >= maxTarget {
		return 0, fmt.Errorf("%w: target %d exceeds all known buckets", ErrNoFeeEstimate, target)
	}
	for bucket := target + 1; bucket <= maxTarget; bucket++ {
		if rate, ok := byTarget[bucket]; ok {
			return rate, nil
		}
	}
	return 0, fmt.Errorf("%w: target %d exceeds all known buckets", ErrNoFeeEstimate, target)
}
