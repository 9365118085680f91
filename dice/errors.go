package dice

import (
	"fmt"

	"github.com/ironveil-games/combat-core/rpgerr"
)

// errInvalidCount reports that Roll was asked for fewer than one die.
func errInvalidCount(count int) error {
	return rpgerr.InvalidArgument(fmt.Sprintf("dice: count must be >= 1, got %d", count))
}

// errInvalidDieType reports that a DieType outside the supported set was used.
func errInvalidDieType(d DieType) error {
	return rpgerr.InvalidArgument(fmt.Sprintf("dice: unsupported die type %d", int(d)))
}
