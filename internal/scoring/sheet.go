// apps/go-server/internal/scoring/sheet.go
//
// Score sheet model.
// A Sheet records which categories have been played and for how many points.
// The engine only reads sheets; the game-session controller that owns the
// sheet writes to it with Record after the player picks a category.
//
// Totals:
//   - upper: sum of ones..sixes
//   - bonus: 35 when upper >= 63
//   - lower: sum of the remaining categories
//   - total: upper + bonus + lower

package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	UpperBonusThreshold = 63
	UpperBonusPoints    = 35
)

// ErrCategoryFilled is returned by Record when the slot already holds a score.
var ErrCategoryFilled = errors.New("category already scored")

// Sheet maps a played category to its recorded score.
// A category missing from the map has not been played yet.
type Sheet map[Category]int

// Recorded returns the score stored for c, if any.
func (s Sheet) Recorded(c Category) (int, bool) {
	v, ok := s[c]
	return v, ok
}

// Record stores score for c. Filled slots are never overwritten.
func (s Sheet) Record(c Category, score int) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	if _, ok := s[c]; ok {
		return fmt.Errorf("%w: %s", ErrCategoryFilled, c)
	}
	s[c] = score
	return nil
}

// UpperTotal sums the recorded upper-section scores.
func (s Sheet) UpperTotal() int {
	t := 0
	for c, v := range s {
		if c.Upper() {
			t += v
		}
	}
	return t
}

// UpperBonus is UpperBonusPoints once the upper total reaches the threshold.
func (s Sheet) UpperBonus() int {
	if s.UpperTotal() >= UpperBonusThreshold {
		return UpperBonusPoints
	}
	return 0
}

// LowerTotal sums the recorded lower-section scores.
func (s Sheet) LowerTotal() int {
	t := 0
	for c, v := range s {
		if c.Section() == SectionLower {
			t += v
		}
	}
	return t
}

func (s Sheet) Total() int { return s.UpperTotal() + s.UpperBonus() + s.LowerTotal() }

// Totals is a snapshot of the sheet's running sums.
type Totals struct {
	Upper int `json:"upper"`
	Bonus int `json:"bonus"`
	Lower int `json:"lower"`
	Total int `json:"total"`
}

func (s Sheet) Totals() Totals {
	return Totals{
		Upper: s.UpperTotal(),
		Bonus: s.UpperBonus(),
		Lower: s.LowerTotal(),
		Total: s.Total(),
	}
}

// MarshalJSON writes every category key, with null for unplayed slots.
func (s Sheet) MarshalJSON() ([]byte, error) {
	out := make(map[string]*int, NumCategories)
	for _, c := range Categories() {
		if v, ok := s[c]; ok {
			v := v
			out[c.Key()] = &v
		} else {
			out[c.Key()] = nil
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads {"ones": 3, "chance": null}. Null and missing keys
// both mean unplayed; an unknown key fails with ErrUnknownCategory.
func (s *Sheet) UnmarshalJSON(b []byte) error {
	var raw map[string]*int
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	sheet := make(Sheet, len(raw))
	for k, v := range raw {
		c, err := ParseCategory(k)
		if err != nil {
			return err
		}
		if v != nil {
			sheet[c] = *v
		}
	}
	*s = sheet
	return nil
}
