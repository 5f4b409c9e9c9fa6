package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// nameRule maps a raw course (code, name) to a canonical title.
// An empty canonical keeps the title-cased name and ends the chain.
type nameRule struct {
	match     func(code, name string) bool
	canonical string
}

func codeIs(codes ...string) func(string) bool {
	return func(code string) bool {
		for _, c := range codes {
			if code == c {
				return true
			}
		}
		return false
	}
}

var folder = cases.Fold()

func containsFold(s, sub string) bool {
	return strings.Contains(folder.String(s), folder.String(sub))
}

var (
	itConcepts = regexp.MustCompile(`(?i)\bit concepts\b`)

	isCIS4930 = codeIs("CIS4930")
	isVLSI    = codeIs("CDA4213", "CIS6930")
)

// Evaluated in order; first match wins.
var nameRules = []nameRule{
	// CIS4930 is a special-topics number shared by several courses.
	{func(c, n string) bool { return isCIS4930(c) && strings.Contains(n, "Wireless") }, "Wireless and Mobile Computing"},
	{func(c, n string) bool {
		return isCIS4930(c) && strings.Contains(n, "Hardware Security") && strings.Contains(n, "Hands")
	}, "Hands-on Hardware Security"},
	{func(c, n string) bool { return isCIS4930(c) && strings.Contains(n, "Hardware Security") }, "Practical Hardware Security"},
	{func(c, n string) bool { return isCIS4930(c) && strings.Contains(n, "IoT") }, "IoT System Design"},
	{func(c, n string) bool { return isCIS4930(c) }, ""},

	{func(c, n string) bool { return isVLSI(c) && (containsFold(n, "cmos") || containsFold(n, "vlsi")) }, "CMOS-VLSI Design"},
	{func(c, n string) bool { return c == "EEL6764" }, "Principles of Computer Architecture"},
	{func(c, n string) bool { return c == "CDA4253" }, "Field Programmable Gate Array Design"},
	{func(c, n string) bool { return strings.Contains(n, "Logic") }, "Computer Logic and Design"},
	{func(c, n string) bool { return strings.Contains(n, "Organization") }, "Computer Organization"},
	{func(c, n string) bool { return itConcepts.MatchString(n) }, "IT Concepts"},
}

// CanonicalName resolves the résumé title for a course.
func CanonicalName(code, name string) string {
	for _, r := range nameRules {
		if !r.match(code, name) {
			continue
		}
		if r.canonical != "" {
			return r.canonical
		}
		break
	}
	return cleanTitle(name)
}

func cleanTitle(name string) string {
	return strings.ReplaceAll(titleCase(name), " And ", " and ")
}

// titleCase upper-cases the first letter of every run of letters and
// lower-cases the rest ("VLSI design" -> "Vlsi Design", "3d" -> "3D").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
