package sync

import (
	"strings"

	"teaching-export/internal/domain"
)

// Diff compares the previously published teaching section with a fresh one.
// Returns:
// - added: present now but not before
// - changed: present in both but with different level/organization/duration/description
// - removed: present before but not now
//
// Entries are matched by course label; entries without a course (mentorship)
// are matched by role.
func Diff(previous, current []domain.TeachingEntry) (added, changed, removed []domain.TeachingEntry) {
	prevByID := map[string]domain.TeachingEntry{}
	for _, e := range previous {
		id := entryID(e)
		if id == "" {
			continue
		}
		prevByID[id] = e
	}

	curIDs := map[string]bool{}
	for _, e := range current {
		id := entryID(e)
		if id == "" {
			continue
		}
		curIDs[id] = true

		pe, ok := prevByID[id]
		if !ok {
			added = append(added, e)
			continue
		}
		if needsUpdate(pe, e) {
			changed = append(changed, e)
		}
	}

	// keep the previous document's order for removals
	for _, e := range previous {
		id := entryID(e)
		if id == "" || curIDs[id] {
			continue
		}
		removed = append(removed, e)
		curIDs[id] = true
	}

	return added, changed, removed
}

// Unchanged reports whether Diff found nothing to publish.
func Unchanged(previous, current []domain.TeachingEntry) bool {
	a, c, r := Diff(previous, current)
	return len(a) == 0 && len(c) == 0 && len(r) == 0
}

func entryID(e domain.TeachingEntry) string {
	if e.IsCourse() {
		return "course:" + norm(e.Course)
	}
	if r := norm(e.Role); r != "" {
		return "role:" + r
	}
	return ""
}

func needsUpdate(p, c domain.TeachingEntry) bool {
	return norm(p.Level) != norm(c.Level) ||
		norm(p.Organization) != norm(c.Organization) ||
		norm(p.Duration) != norm(c.Duration) ||
		norm(p.Description) != norm(c.Description)
}

func norm(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
