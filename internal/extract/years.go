package extract

import "regexp"

var parenYearRe = regexp.MustCompile(`\((\d{4})\)`)

// YearsFromContext pulls a year annotation out of free text: a year
// range like "2006–2010" (kept as "2006-2010"), else a parenthesized
// single year, else an empty string.
func YearsFromContext(text string) string {
	if m := yearRangeRe.FindStringSubmatch(text); m != nil {
		return m[1] + "-" + m[2]
	}

	if m := parenYearRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	return ""
}
