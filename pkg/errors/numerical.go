package errors

import (
	"math"
)

// CheckScalar checks a single scalar value for numerical instability
// (NaN or Inf) and returns an error if detected.
func CheckScalar(operation string, value float64, time int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, time)
	}
	return nil
}

// CheckValues checks a slice of values for numerical instability
// and returns an error carrying the offending values if detected.
func CheckValues(operation string, values []float64, time int) error {
	var unstable []float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			unstable = append(unstable, v)
			if len(unstable) >= 10 {
				// Limit the number of collected values for the error message
				break
			}
		}
	}
	if len(unstable) > 0 {
		return NewNumericalInstabilityError(operation, unstable, time)
	}
	return nil
}

// SafeDivide performs division with protection against division by zero.
// Returns 0 if the denominator is zero or close to zero.
func SafeDivide(numerator, denominator float64) float64 {
	if math.Abs(denominator) < 1e-10 {
		return 0
	}
	return numerator / denominator
}
