package scoring

import "fmt"

const (
	// HandSize is the number of dice in every hand.
	HandSize = 5
	MinFace  = 1
	MaxFace  = 6
)

// Hand is the five die values in play for the current turn.
// Order does not affect scoring.
type Hand []int

// NewHand copies dice into a Hand and validates it.
func NewHand(dice []int) (Hand, error) {
	h := make(Hand, len(dice))
	copy(h, dice)
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// Validate returns ErrInvalidHand unless h holds exactly five values in [1,6].
func (h Hand) Validate() error {
	if len(h) != HandSize {
		return fmt.Errorf("%w: want %d dice, got %d", ErrInvalidHand, HandSize, len(h))
	}
	for i, v := range h {
		if v < MinFace || v > MaxFace {
			return fmt.Errorf("%w: die %d has value %d", ErrInvalidHand, i, v)
		}
	}
	return nil
}

// Sum is the total of all pips.
func (h Hand) Sum() int {
	s := 0
	for _, v := range h {
		s += v
	}
	return s
}
