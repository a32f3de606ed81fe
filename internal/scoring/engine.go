// apps/go-server/internal/scoring/engine.go
//
// Scoring engine for a Yahtzee-style dice game.
// Responsibilities:
//   - Score a five-die hand against any of the 13 categories.
//   - Report whether a category is still open on a score sheet.
//   - Produce the full, ordered list of scoring options for a hand.
//
// Notes:
//   - Everything here is pure: no state, no I/O, safe for concurrent use.
//   - Invalid input fails the whole call; there are no partial results.
package scoring

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHand means the hand is not exactly five dice in [1,6].
	ErrInvalidHand = errors.New("invalid hand")
	// ErrUnknownCategory means a category outside the 13 known slots was used.
	ErrUnknownCategory = errors.New("unknown category")
)

// CategoryScoreOption is one selectable row for the display layer.
type CategoryScoreOption struct {
	Category  Category `json:"category"`
	Name      string   `json:"name"`
	Score     int      `json:"score"`
	Available bool     `json:"available"`
}

// ScoreForCategory returns the points h would earn if assigned to c.
func ScoreForCategory(h Hand, c Category) (int, error) {
	if err := h.Validate(); err != nil {
		return 0, err
	}
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return definitions[c].score(countFaces(h), h.Sum()), nil
}

// CategoryAvailability reports whether c has not been played on sheet.
func CategoryAvailability(sheet Sheet, c Category) (bool, error) {
	if !c.Valid() {
		return false, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	_, filled := sheet.Recorded(c)
	return !filled, nil
}

// AllCategoryOptions scores h in every category, in canonical order.
// Filled categories keep their computed score but are not available.
func AllCategoryOptions(h Hand, sheet Sheet) ([]CategoryScoreOption, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	for c := range sheet {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
		}
	}

	fc, sum := countFaces(h), h.Sum()
	out := make([]CategoryScoreOption, 0, NumCategories)
	for _, c := range Categories() {
		_, filled := sheet.Recorded(c)
		out = append(out, CategoryScoreOption{
			Category:  c,
			Name:      c.Name(),
			Score:     definitions[c].score(fc, sum),
			Available: !filled,
		})
	}
	return out, nil
}
