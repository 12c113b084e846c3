package rules

import (
	"fmt"

	"github.com/rmoulin/skyflight/internal/domain"
)

// RandomSource supplies the entropy for seat draws. *math/rand.Rand
// satisfies it; tests inject a fixed source for reproducible codes.
type RandomSource interface {
	Intn(n int) int
}

var seatLetters = [...]byte{'A', 'B', 'C', 'D', 'E', 'F'}

// Row bands per cabin class, inclusive.
const (
	firstRowBase    = 1
	firstRowCount   = 5 // rows 1-5
	businessRowBase = 6
	businessRowCount = 10 // rows 6-15
	economyRowBase   = 16
	economyRowCount  = 30 // rows 16-45
)

// AssignSeat draws a seat code such as "3B" uniformly from the row band of
// the given class. It does not check the seat against already-assigned seats
// on the flight; two bookings can receive the same code.
func AssignSeat(class domain.CabinClass, rng RandomSource) string {
	var row int
	switch class {
	case domain.ClassFirst:
		row = firstRowBase + rng.Intn(firstRowCount)
	case domain.ClassBusiness:
		row = businessRowBase + rng.Intn(businessRowCount)
	default:
		row = economyRowBase + rng.Intn(economyRowCount)
	}
	letter := seatLetters[rng.Intn(len(seatLetters))]
	return fmt.Sprintf("%d%c", row, letter)
}
