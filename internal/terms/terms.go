// Package terms turns raw semester codes into résumé-friendly labels.
package terms

import (
	"sort"
	"strings"
)

// readable covers Fall 2018 through Spring 2025 in both the short
// ("Fall 18") and long ("Fall 2018") spellings the export uses.
var readable = map[string]string{
	"Fall 18":   "Fall 2018",
	"Spring 19": "Spring 2019",
	"Fall 19":   "Fall 2019",
	"Spring 20": "Spring 2020",
	"Summer 20": "Summer 2020",
	"Fall 20":   "Fall 2020",
	"Spring 21": "Spring 2021",
	"Summer 21": "Summer 2021",
	"Fall 21":   "Fall 2021",
	"Spring 22": "Spring 2022",
	"Summer 22": "Summer 2022",
	"Fall 22":   "Fall 2022",
	"Spring 23": "Spring 2023",
	"Summer 23": "Summer 2023",
	"Fall 23":   "Fall 2023",
	"Spring 24": "Spring 2024",
	"Summer 24": "Summer 2024",
	"Fall 24":   "Fall 2024",
	"Spring 25": "Spring 2025",

	"Fall 2018":   "Fall 2018",
	"Spring 2019": "Spring 2019",
	"Fall 2019":   "Fall 2019",
	"Spring 2020": "Spring 2020",
	"Summer 2020": "Summer 2020",
	"Fall 2020":   "Fall 2020",
	"Spring 2021": "Spring 2021",
	"Summer 2021": "Summer 2021",
	"Fall 2021":   "Fall 2021",
	"Spring 2022": "Spring 2022",
	"Summer 2022": "Summer 2022",
	"Fall 2022":   "Fall 2022",
	"Spring 2023": "Spring 2023",
	"Summer 2023": "Summer 2023",
	"Fall 2023":   "Fall 2023",
	"Spring 2024": "Spring 2024",
	"Summer 2024": "Summer 2024",
	"Fall 2024":   "Fall 2024",
}

// Readable maps a single term. ok is false for terms outside the table.
func Readable(term string) (string, bool) {
	v, ok := readable[term]
	return v, ok
}

// Format dedupes terms, sorts them by their raw spelling, maps each one
// and joins the result with ", ". Unknown terms pass through unchanged.
func Format(terms []string) string {
	seen := make(map[string]bool, len(terms))
	uniq := make([]string, 0, len(terms))
	for _, t := range terms {
		if seen[t] {
			continue
		}
		seen[t] = true
		uniq = append(uniq, t)
	}
	sort.Strings(uniq)

	out := make([]string, 0, len(uniq))
	for _, t := range uniq {
		label, ok := Readable(t)
		if !ok {
			label = t
		}
		if label == "" {
			continue
		}
		out = append(out, label)
	}
	return strings.Join(out, ", ")
}
