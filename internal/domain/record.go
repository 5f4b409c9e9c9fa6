package domain

// RawRecord is one object from the course history export. Keys are loose:
// the same field may show up under more than one spelling.
type RawRecord map[string]any

// Field aliases, tried in order.
var (
	EnrolledAsKeys    = []string{"enrolled_as", "enrolled as"}
	RoleCanonicalKeys = []string{"role_canonical"}
	CourseCodeKeys    = []string{"course_code"}
	CourseNameKeys    = []string{"course_name"}
	CourseTitleKeys   = []string{"course_title"}
	CourseLevelKeys   = []string{"course_level"}
	TermKeys          = []string{"term"}
)

// Field returns the first non-empty string value among aliases.
// Missing keys, nulls and non-string values count as empty.
func (r RawRecord) Field(aliases ...string) string {
	for _, k := range aliases {
		if s, ok := r[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Pick returns only the requested keys that are present. Used for debug logs.
func (r RawRecord) Pick(keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := r[k]; ok {
			out[k] = v
		}
	}
	return out
}
