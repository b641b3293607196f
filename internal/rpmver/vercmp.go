package rpmver

import "strings"

// isAlnumOrTilde reports whether r is an ASCII alphanumeric or '~' — the set
// of characters vercmp treats as meaningful; everything else is a separator
// carrying no ordering information.
func isAlnumOrTilde(r byte) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == '~':
		return true
	}
	return false
}

func isDigit(r byte) bool { return r >= '0' && r <= '9' }

func isAlpha(r byte) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// stripLeadingSeparators drops characters that are neither ASCII
// alphanumeric nor '~'.
func stripLeadingSeparators(s string) string {
	i := 0
	for i < len(s) && !isAlnumOrTilde(s[i]) {
		i++
	}
	return s[i:]
}

// Vercmp implements RPM's version comparison algorithm: segmented
// digit/alpha comparison with tilde sorting before everything, including the
// empty string.
func Vercmp(s1, s2 string) Ordering {
	s1 = stripLeadingSeparators(s1)
	s2 = stripLeadingSeparators(s2)

	if s1 == "" && s2 == "" {
		return Equal
	}

	if strings.HasPrefix(s1, "~") && strings.HasPrefix(s2, "~") {
		return Vercmp(s1[1:], s2[1:])
	}
	if strings.HasPrefix(s1, "~") {
		return Less
	}
	if strings.HasPrefix(s2, "~") {
		return Greater
	}

	if s1 == "" {
		return Less
	}
	if s2 == "" {
		return Greater
	}

	// The type of the leading segment is decided by s1's first character.
	// If s1 starts with digits, the same predicate applied to an alphabetic
	// s2 yields an empty segment there, which compareDigitSegments ranks
	// lower; if s1 starts alphabetic and s2 with a digit, s2's digit segment
	// wins outright.
	var pred func(byte) bool
	digitSegment := isDigit(s1[0])
	if digitSegment {
		pred = isDigit
	} else {
		if isDigit(s2[0]) {
			return Less
		}
		pred = isAlpha
	}

	seg1, rest1 := takeWhile(s1, pred)
	seg2, rest2 := takeWhile(s2, pred)

	var cmp Ordering
	if digitSegment {
		cmp = compareDigitSegments(seg1, seg2)
	} else {
		cmp = compareLex(seg1, seg2)
	}
	if cmp != Equal {
		return cmp
	}

	return Vercmp(rest1, rest2)
}

// takeWhile returns the maximal prefix of s for which pred holds, and the
// remaining tail.
func takeWhile(s string, pred func(byte) bool) (string, string) {
	i := 0
	for i < len(s) && pred(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func compareLex(a, b string) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// compareDigitSegments compares two digit runs numerically without risking
// overflow: strip leading zeros, then compare by length, then
// lexicographically. An empty segment (no digits where the other side
// expected them) compares as smaller than any non-empty one, which is what
// makes a digit-vs-alpha mismatch resolve to "digit segment wins".
func compareDigitSegments(a, b string) Ordering {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return Less
		}
		return Greater
	}
	return compareLex(a, b)
}
