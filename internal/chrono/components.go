package chrono

import (
	"regexp"
	"strconv"
)

// Separators are the characters allowed between date components. A
// single input must use one of them throughout.
const Separators = `-/\`

var (
	threePartPattern = regexp.MustCompile(`^(\d{1,4})([-/\\])(\d{1,2})([-/\\])(\d{1,4})$`)
	twoPartPattern   = regexp.MustCompile(`^(\d{1,2})([-/\\])(\d{1,2})$`)
)

// components holds the numeric groups of a validated input with the
// digit count of each group as written.
type components struct {
	values [3]int
	digits [3]int
	n      int
}

// extractComponents validates raw and splits it into components. It
// reports false for anything that is not 2 or 3 numeric groups joined by
// one repeated separator, and for groups the interpreter can never
// accept.
func extractComponents(raw string) (components, bool) {
	var groups []string
	if m := threePartPattern.FindStringSubmatch(raw); m != nil {
		if m[2] != m[4] {
			return components{}, false
		}
		groups = []string{m[1], m[3], m[5]}
	} else if m := twoPartPattern.FindStringSubmatch(raw); m != nil {
		groups = []string{m[1], m[3]}
	} else {
		return components{}, false
	}

	c := components{n: len(groups)}
	for i, g := range groups {
		v, err := strconv.Atoi(g)
		if err != nil || v == 0 || len(g) == 3 {
			return components{}, false
		}
		c.values[i] = v
		c.digits[i] = len(g)
	}

	if c.n == 3 {
		// Only the year may have 4 digits, and a year is never written
		// with a single digit.
		if c.digits[0] == 4 && c.digits[2] == 4 {
			return components{}, false
		}
		if c.digits[0] == 1 && c.digits[2] == 1 {
			return components{}, false
		}
	}
	return c, true
}

// others returns the two positions of a three-component input that are
// not slot, in source order.
func (c components) others(slot int) [2]int {
	if slot == 2 {
		return [2]int{0, 1}
	}
	return [2]int{1, 2}
}
