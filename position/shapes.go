// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package position

// matchShapes tries the carry, trailing-nines and flanked-zero shapes in
// that order. The first shape that applies is the only one consulted.
func matchShapes(s string, c *collector) {
	if pos, ok, err := carryShape(s); ok {
		c.add(Carry, pos, err)
		return
	}
	if allRun(s, '9') {
		pos, err := indexPlus("8"+s[1:], 1)
		c.add(TrailingNines, pos, err)
		return
	}
	if s[0] == '0' {
		pos, err := flankedZeroShape(s)
		c.add(FlankedZero, pos, err)
	}
}

// carry holds the parts of a query shaped a 9...9 middle b 0...0.
type carry struct {
	a, nines, middle, b, zeros string
}

// carryGroups splits s into the carry shape. The 9-run is the longest
// that still leaves room for a middle digit and b; the middle is the
// shortest that lets the zero run reach the end of s.
func carryGroups(s string) (carry, bool) {
	n := len(s)
	if n < 4 || s[1] != '9' {
		return carry{}, false
	}
	nines := min(runFrom(s, 1, '9'), n-3)
	b := max(n-trailingRun(s, '0')-1, nines+2)
	return carry{
		a:      s[:1],
		nines:  s[1 : 1+nines],
		middle: s[1+nines : b],
		b:      s[b : b+1],
		zeros:  s[b+1:],
	}, true
}

// carryShape handles ...[middle][a][9..9]|[middle][b][0..0]... where
// b = a+1 and there are at least as many 9s as 0s. ok reports whether the
// shape applies.
func carryShape(s string) (pos int64, ok bool, err error) {
	g, matched := carryGroups(s)
	if !matched || len(g.nines) < len(g.zeros) || g.b[0] != g.a[0]+1 {
		return 0, false, nil
	}
	pos, err = indexPlus(g.middle+g.a+g.nines, len(g.middle))
	return pos, true, err
}

// flankedGroups splits s, which must start with '0', into its leading
// zeros, a middle that neither starts nor ends with '0', and its trailing
// zeros. When s is all zeros, lead is s.
func flankedGroups(s string) (lead, middle, trail string) {
	n := len(s)
	l := runFrom(s, 0, '0')
	if l == n {
		return s, "", ""
	}
	t := trailingRun(s, '0')
	return s[:l], s[l : n-t], s[n-t:]
}

func flankedZeroShape(s string) (int64, error) {
	lead, middle, trail := flankedGroups(s)
	switch {
	case middle == "":
		// ...1[0..0]...
		return indexPlus("1"+lead, 1)
	case len(lead) > len(trail):
		// ...[middle][lead]|[middle][trail]..1...
		return indexPlus(middle+lead, len(middle))
	default:
		// ...[middle]0..[lead]|[middle][trail]1...
		return indexPlus(middle+trail+"1", -len(lead))
	}
}

// runFrom returns the length of the run of c starting at s[from].
func runFrom(s string, from int, c byte) int {
	i := from
	for i < len(s) && s[i] == c {
		i++
	}
	return i - from
}

// trailingRun returns the length of the run of c that ends s.
func trailingRun(s string, c byte) int {
	i := len(s)
	for i > 0 && s[i-1] == c {
		i--
	}
	return len(s) - i
}

// allRun reports whether s consists only of c. allRun("", c) is true.
func allRun(s string, c byte) bool {
	return runFrom(s, 0, c) == len(s)
}
