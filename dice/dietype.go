package dice

import (
	"bytes"
	"fmt"
)

// DieType is a closed enumeration of the die sizes the engine supports.
type DieType int

// Supported die types.
const (
	D4   DieType = 4
	D6   DieType = 6
	D8   DieType = 8
	D10  DieType = 10
	D12  DieType = 12
	D20  DieType = 20
	D100 DieType = 100
)

// IsValid reports whether d is one of the seven supported die types.
func (d DieType) IsValid() bool {
	switch d {
	case D4, D6, D8, D10, D12, D20, D100:
		return true
	default:
		return false
	}
}

// MarshalJSON renders the die type as its integer face count.
func (d DieType) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%d", int(d))), nil
}

// UnmarshalJSON accepts the integer face count produced by MarshalJSON.
func (d *DieType) UnmarshalJSON(data []byte) error {
	var n int
	if _, err := fmt.Sscanf(string(bytes.TrimSpace(data)), "%d", &n); err != nil {
		return fmt.Errorf("dice: invalid die type %q: %w", data, err)
	}
	parsed := DieType(n)
	if !parsed.IsValid() {
		return fmt.Errorf("dice: unsupported die type %d", n)
	}
	*d = parsed
	return nil
}

// RollType distinguishes a normal roll from one made with advantage or
// disadvantage. Advantage and Disadvantage only ever apply to d20 rolls.
type RollType string

// The three roll types.
const (
	Normal       RollType = "NORMAL"
	Advantage    RollType = "ADVANTAGE"
	Disadvantage RollType = "DISADVANTAGE"
)
