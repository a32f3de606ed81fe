package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheet_Totals(t *testing.T) {
	tests := []struct {
		name  string
		sheet Sheet
		want  Totals
	}{
		{name: "empty", sheet: Sheet{}, want: Totals{}},
		{
			name:  "one short of the bonus",
			sheet: Sheet{Ones: 2, Twos: 6, Threes: 9, Fours: 12, Fives: 15, Sixes: 18},
			want:  Totals{Upper: 62, Bonus: 0, Lower: 0, Total: 62},
		},
		{
			name:  "bonus at threshold",
			sheet: Sheet{Ones: 3, Twos: 6, Threes: 9, Fours: 12, Fives: 15, Sixes: 18},
			want:  Totals{Upper: 63, Bonus: 35, Lower: 0, Total: 98},
		},
		{
			name:  "mixed sections",
			sheet: Sheet{Sixes: 24, FullHouse: 25, Yahtzee: 50, Chance: 17},
			want:  Totals{Upper: 24, Bonus: 0, Lower: 92, Total: 116},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sheet.Totals())
		})
	}
}

func TestSheet_Record(t *testing.T) {
	s := Sheet{}
	require.NoError(t, s.Record(Chance, 19))

	v, ok := s.Recorded(Chance)
	assert.True(t, ok)
	assert.Equal(t, 19, v)

	err := s.Record(Chance, 30)
	assert.ErrorIs(t, err, ErrCategoryFilled)
	v, _ = s.Recorded(Chance)
	assert.Equal(t, 19, v)

	assert.ErrorIs(t, s.Record(Category(20), 1), ErrUnknownCategory)
}

func TestSheet_JSON(t *testing.T) {
	var s Sheet
	require.NoError(t, json.Unmarshal([]byte(`{"ones":3,"chance":null,"full-house":25}`), &s))
	assert.Equal(t, Sheet{Ones: 3, FullHouse: 25}, s)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	var raw map[string]*int
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Len(t, raw, NumCategories)
	assert.Nil(t, raw["chance"])
	require.NotNil(t, raw["ones"])
	assert.Equal(t, 3, *raw["ones"])

	err = json.Unmarshal([]byte(`{"fouroOkind":12}`), &s)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
