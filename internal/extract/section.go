package extract

import "regexp"

// treeHeadingIDs lists the known id spellings of the coaching tree
// heading across articles. Tried in order.
var treeHeadingIDs = []string{
	"Coaching_tree",
	"coaching_tree",
	"Coaching_Tree",
	"Coaching/executive_tree",
}

// Section returns the slice of markup between a level-2 or level-3
// heading whose id attribute contains headingID and the next heading of
// equal or more significant level. MediaWiki wraps headings in container
// divs, so this works on the raw markup rather than a parsed tree. An
// empty result means the section is absent, which callers must treat as
// a normal outcome.
func Section(html, headingID string) string {
	headingRe := regexp.MustCompile(
		`(?i)<h([23])\s[^>]*id="[^"]*` + regexp.QuoteMeta(headingID) + `[^"]*"[^>]*>`,
	)

	m := headingRe.FindStringSubmatchIndex(html)
	if m == nil {
		return ""
	}

	level := html[m[2]:m[3]]
	start := m[1]

	nextHeadingRe := regexp.MustCompile(`(?i)<h[1-` + level + `][\s>]`)
	if loc := nextHeadingRe.FindStringIndex(html[start:]); loc != nil {
		return html[start : start+loc[0]]
	}

	return html[start:]
}

// TreeSection locates the coaching tree section of an article, trying
// each known heading id spelling in turn.
func TreeSection(html string) string {
	for _, id := range treeHeadingIDs {
		if section := Section(html, id); section != "" {
			return section
		}
	}
	return ""
}
