package domain

import "math"

// CaseLabelsNeeded returns how many case labels a package produces:
// ceil(quantity / unitsPerCase), or 0 when either argument is not
// positive. Total for all real inputs.
func CaseLabelsNeeded(quantity, unitsPerCase float64) int {
	if quantity <= 0 || unitsPerCase <= 0 {
		return 0
	}
	return int(math.Ceil(quantity / unitsPerCase))
}

// IndividualCaseQuantities returns the quantity shown on each case
// label. Every element but possibly the last equals unitsPerCase; the
// last carries the partial remainder. The sequence length equals
// CaseLabelsNeeded and the elements sum to quantity exactly.
func IndividualCaseQuantities(quantity, unitsPerCase float64) []float64 {
	if quantity <= 0 || unitsPerCase <= 0 {
		return nil
	}

	var quantities []float64
	remaining := quantity

	for remaining > 0 {
		if remaining >= unitsPerCase {
			quantities = append(quantities, unitsPerCase)
			remaining -= unitsPerCase
		} else {
			quantities = append(quantities, remaining)
			remaining = 0
		}
	}

	return quantities
}
