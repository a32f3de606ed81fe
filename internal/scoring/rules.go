package scoring

import (
	"sort"
	"strconv"
	"strings"
)

const (
	fullHousePoints     = 25
	smallStraightPoints = 30
	largeStraightPoints = 40
	yahtzeePoints       = 50
)

// faceCounts[v] is how many dice show face v; index 0 is unused.
type faceCounts [MaxFace + 1]int

func countFaces(h Hand) faceCounts {
	var fc faceCounts
	for _, v := range h {
		fc[v]++
	}
	return fc
}

// distinct returns the faces present in the hand, ascending.
func (fc faceCounts) distinct() []int {
	out := make([]int, 0, MaxFace)
	for v := MinFace; v <= MaxFace; v++ {
		if fc[v] > 0 {
			out = append(out, v)
		}
	}
	return out
}

// maxCount is the size of the largest group of equal dice.
func (fc faceCounts) maxCount() int {
	m := 0
	for _, n := range fc {
		if n > m {
			m = n
		}
	}
	return m
}

func upper(face int) rule {
	return func(fc faceCounts, _ int) int { return fc[face] * face }
}

func ofAKind(n int) rule {
	return func(fc faceCounts, sum int) int {
		if fc.maxCount() >= n {
			return sum
		}
		return 0
	}
}

// fullHouse requires the group sizes to be exactly {2,3}; five of a kind
// does not count.
func fullHouse(fc faceCounts, _ int) int {
	groups := make([]int, 0, 2)
	for _, n := range fc {
		if n > 0 {
			groups = append(groups, n)
		}
	}
	sort.Ints(groups)
	if len(groups) == 2 && groups[0] == 2 && groups[1] == 3 {
		return fullHousePoints
	}
	return 0
}

func smallStraight(fc faceCounts, _ int) int {
	run := digits(fc.distinct())
	for _, s := range []string{"1234", "2345", "3456"} {
		if strings.Contains(run, s) {
			return smallStraightPoints
		}
	}
	return 0
}

func largeStraight(fc faceCounts, _ int) int {
	switch digits(fc.distinct()) {
	case "12345", "23456":
		return largeStraightPoints
	}
	return 0
}

func yahtzee(fc faceCounts, _ int) int {
	if fc.maxCount() == HandSize {
		return yahtzeePoints
	}
	return 0
}

func chance(_ faceCounts, sum int) int { return sum }

// digits joins single-digit faces into a string, e.g. [1 2 4] -> "124".
func digits(faces []int) string {
	var b strings.Builder
	for _, v := range faces {
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
