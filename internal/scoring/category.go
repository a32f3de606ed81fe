// apps/go-server/internal/scoring/category.go
//
// The closed set of scoring categories on a Yahtzee-style score sheet.
// Each variant carries its key, display name, section and scoring rule in a
// single table, so there is exactly one place to look a category up.
//
// Canonical order:
//   ones, twos, threes, fours, fives, sixes (upper section)
//   three-of-a-kind, four-of-a-kind, full-house, small-straight,
//   large-straight, yahtzee, chance (lower section)

package scoring

import "fmt"

// Category identifies one of the 13 scoring slots.
type Category int

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
	Chance
)

// Section splits the sheet into the bonus-eligible upper half and the rest.
type Section string

const (
	SectionUpper Section = "upper"
	SectionLower Section = "lower"
)

// rule scores a validated hand.
type rule func(counts faceCounts, sum int) int

type categoryDef struct {
	key     string
	name    string
	section Section
	score   rule
}

// definitions is indexed by Category; its order is the canonical order.
var definitions = [...]categoryDef{
	Ones:          {"ones", "Ones", SectionUpper, upper(1)},
	Twos:          {"twos", "Twos", SectionUpper, upper(2)},
	Threes:        {"threes", "Threes", SectionUpper, upper(3)},
	Fours:         {"fours", "Fours", SectionUpper, upper(4)},
	Fives:         {"fives", "Fives", SectionUpper, upper(5)},
	Sixes:         {"sixes", "Sixes", SectionUpper, upper(6)},
	ThreeOfAKind:  {"three-of-a-kind", "Three of a Kind", SectionLower, ofAKind(3)},
	FourOfAKind:   {"four-of-a-kind", "Four of a Kind", SectionLower, ofAKind(4)},
	FullHouse:     {"full-house", "Full House", SectionLower, fullHouse},
	SmallStraight: {"small-straight", "Small Straight", SectionLower, smallStraight},
	LargeStraight: {"large-straight", "Large Straight", SectionLower, largeStraight},
	Yahtzee:       {"yahtzee", "Yahtzee", SectionLower, yahtzee},
	Chance:        {"chance", "Chance", SectionLower, chance},
}

// NumCategories is the size of the closed category set.
const NumCategories = len(definitions)

var byKey = func() map[string]Category {
	m := make(map[string]Category, NumCategories)
	for i, d := range definitions {
		m[d.key] = Category(i)
	}
	return m
}()

// Categories returns every category in canonical order.
// The returned slice is a fresh copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory maps a category key (e.g. "full-house") to its Category.
func ParseCategory(key string) (Category, error) {
	if c, ok := byKey[key]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
}

// Valid reports whether c is one of the 13 known categories.
func (c Category) Valid() bool { return c >= 0 && int(c) < NumCategories }

// Key returns the stable identifier, e.g. "small-straight".
func (c Category) Key() string {
	if !c.Valid() {
		return ""
	}
	return definitions[c].key
}

// Name returns the display name, e.g. "Small Straight".
func (c Category) Name() string {
	if !c.Valid() {
		return ""
	}
	return definitions[c].name
}

// Section reports which half of the sheet c belongs to.
func (c Category) Section() Section {
	if !c.Valid() {
		return ""
	}
	return definitions[c].section
}

// Upper reports whether c counts toward the upper bonus.
func (c Category) Upper() bool { return c.Section() == SectionUpper }

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return definitions[c].key
}

// MarshalText encodes c as its key.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(definitions[c].key), nil
}

// UnmarshalText decodes a category key.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
