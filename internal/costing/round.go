package costing

import "math"

// epsilon nudges values such as 1.005, whose binary form sits just below the
// half cent, over the rounding boundary.
const epsilon = 2.220446049250313e-16

// Round2 rounds a monetary amount to cents, half away from zero for
// non-negative inputs. Behaviour on negative inputs is not part of the contract.
func Round2(x float64) float64 {
	return math.Round((x+epsilon)*100) / 100
}
