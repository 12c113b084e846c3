package rules

import "fmt"

// NextID derives an identifier such as "P008" from the current collection
// size. It is a pure function of that count: two sessions reading the same
// count produce the same id. The scheme is kept for compatibility with
// existing data; anything needing real uniqueness (wizard session tokens)
// uses uuids instead.
func NextID(prefix byte, existing int) string {
	return fmt.Sprintf("%c%03d", prefix, existing+1)
}
