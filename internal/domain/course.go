package domain

// CourseKey is the dedup identity of a course entry.
type CourseKey struct {
	Code  string
	Name  string // canonical name
	Level string // "Graduate", "Undergraduate", ...
}

// TermSet holds the raw term strings seen for one course.
type TermSet map[string]struct{}

// Add inserts term unless it is empty.
func (s TermSet) Add(term string) {
	if term == "" {
		return
	}
	s[term] = struct{}{}
}

// Slice returns the terms in no particular order.
func (s TermSet) Slice() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	return out
}

// CourseSet accumulates terms per course and remembers the order in which
// courses were first seen, so equal sort keys stay deterministic.
type CourseSet struct {
	order []CourseKey
	terms map[CourseKey]TermSet
}

func NewCourseSet() *CourseSet {
	return &CourseSet{terms: map[CourseKey]TermSet{}}
}

// Add registers key (even when term is empty) and records term.
func (c *CourseSet) Add(key CourseKey, term string) {
	ts, ok := c.terms[key]
	if !ok {
		ts = TermSet{}
		c.terms[key] = ts
		c.order = append(c.order, key)
	}
	ts.Add(term)
}

// Keys returns the courses in first-seen order.
func (c *CourseSet) Keys() []CourseKey {
	out := make([]CourseKey, len(c.order))
	copy(out, c.order)
	return out
}

func (c *CourseSet) Terms(key CourseKey) TermSet {
	return c.terms[key]
}

func (c *CourseSet) Len() int {
	return len(c.order)
}
