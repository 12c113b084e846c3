// Package rules holds the booking business rules: fare computation by cabin
// class, seat-code assignment, the cancellation policy and identifier
// generation. Everything here is a pure function over its inputs; state lives
// with the repositories.
package rules

import (
	"fmt"

	"github.com/rmoulin/skyflight/internal/domain"
)

const (
	businessMultiplier = 2.5
	firstMultiplier    = 4
)

// Price returns the fare for a base price and cabin class. It is defined
// only over the three known classes; callers reject anything else before
// invoking it (unknown classes price as Economy).
func Price(base float64, class domain.CabinClass) float64 {
	switch class {
	case domain.ClassBusiness:
		return base * businessMultiplier
	case domain.ClassFirst:
		return base * firstMultiplier
	default:
		return base
	}
}

// FormatPrice renders a monetary amount for display with two decimals. The
// stored value keeps full float precision; rounding is display-only.
func FormatPrice(p float64) string {
	return fmt.Sprintf("%.2f", p)
}
