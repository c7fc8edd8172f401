package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Role is the resolved relationship of a linked coach to the article's
// subject.
type Role string

const (
	// RoleMentor marks a coach the subject served under.
	RoleMentor Role = "mentor"
	// RoleProtege marks a coach who came up under the subject.
	RoleProtege Role = "protege"
)

// maxItemContextRunes bounds the context snippet kept per list item.
const maxItemContextRunes = 200

// TreeMember is one coach extracted from a coaching tree section.
type TreeMember struct {
	// Name is the link's display text.
	Name string
	// PageTitle is the Wikipedia page title resolved from the link target.
	PageTitle string
	// Role is the relationship of this coach to the article subject.
	Role Role
	// Context is the list item's text, truncated.
	Context string
}

// PageTitle resolves a Wikipedia page title from a link href. Links
// outside the article namespace (a colon in the path that is not a
// percent escape) yield an empty string, as do non-wiki links.
func PageTitle(href string) string {
	idx := strings.Index(href, "/wiki/")
	if idx < 0 {
		return ""
	}

	after := href[idx+len("/wiki/"):]
	if strings.Contains(after, ":") && !strings.HasPrefix(after, "%") {
		return ""
	}

	decoded, err := url.PathUnescape(after)
	if err != nil {
		// Malformed percent escapes are kept verbatim.
		decoded = after
	}

	return strings.ReplaceAll(decoded, "_", " ")
}

// ParseTree extracts tree members from an article's coaching tree
// section. Returns nil when the article has no such section.
//
// The section is scanned in document order. Paragraphs update a running
// role interpretation (initially protege); list items inherit it, except
// that an item whose own text says "served under"/"worked under" is
// locally a mentor entry. Per list item only the first link that passes
// title resolution and the person classifier is taken.
func ParseTree(html string) ([]TreeMember, error) {
	section := TreeSection(html)
	if section == "" {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(section))
	if err != nil {
		return nil, fmt.Errorf("parse coaching tree section: %w", err)
	}

	var members []TreeMember
	role := RoleProtege

	doc.Find("p, ul, ol").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "p" {
			role = classifyParagraph(sel.Text(), role)
			return
		}

		sel.Find("li").Each(func(_ int, li *goquery.Selection) {
			if member, ok := firstPersonLink(li, role); ok {
				members = append(members, member)
			}
		})
	})

	return members, nil
}

// classifyParagraph updates the running role interpretation from one
// paragraph of section prose. Rules are checked in priority order;
// paragraphs matching none leave the interpretation unchanged.
func classifyParagraph(text string, current Role) Role {
	p := strings.ToLower(strings.TrimSpace(text))

	switch {
	case strings.Contains(p, "served under") || strings.Contains(p, "worked under"):
		return RoleMentor
	case strings.Contains(p, "assistant") &&
		(strings.Contains(p, "head coach") || strings.Contains(p, "become")):
		return RoleProtege
	case strings.Contains(p, "protégé") || strings.Contains(p, "protege"):
		return RoleProtege
	}

	return current
}

// firstPersonLink finds the first qualifying person link in a list item.
// The item-level "served under"/"worked under" override takes precedence
// over the inherited role, which resolves mixed lists where mentors and
// proteges share one ambiguous heading.
func firstPersonLink(li *goquery.Selection, inherited Role) (TreeMember, bool) {
	itemText := strings.TrimSpace(li.Text())
	lowerItem := strings.ToLower(itemText)

	role := inherited
	if strings.Contains(lowerItem, "served under") || strings.Contains(lowerItem, "worked under") {
		role = RoleMentor
	}

	var member TreeMember
	found := false

	li.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")

		title := PageTitle(href)
		if title == "" {
			return true
		}

		name := strings.TrimSpace(a.Text())
		if !IsPersonLink(name) {
			return true
		}

		member = TreeMember{
			Name:      name,
			PageTitle: title,
			Role:      role,
			Context:   truncateRunes(itemText, maxItemContextRunes),
		}
		found = true

		return false
	})

	return member, found
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
