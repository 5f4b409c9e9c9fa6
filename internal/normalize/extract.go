package normalize

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"teaching-export/internal/domain"
)

const (
	roleTA = "TA"

	// placeholderCode shows up when the export scraped a "Click to remove" button.
	placeholderCode = "Click"

	boilerplate = " cannot be added to the courses menu"
)

// sentinel describes the fixed course substituted for a placeholder record
// whose title names it.
var sentinel = struct {
	titleMarker string
	code        string
	name        string
	level       string
	term        string
}{
	titleMarker: "EEL6764",
	code:        "EEL6764",
	name:        "Principles of Computer Architecture",
	level:       "Graduate",
	term:        "Spring 25",
}

// Stats counts what Extract did with the input.
type Stats struct {
	Records     int
	Kept        int
	NotTA       int
	Placeholder int
	Overridden  int
	Null        int
}

// Extract keeps TA records, cleans them up and merges terms per course.
func Extract(records []domain.RawRecord, logger *zap.Logger) (*domain.CourseSet, Stats) {
	if logger == nil {
		logger = zap.NewNop()
	}
	courses := domain.NewCourseSet()
	var st Stats

	for i, rec := range records {
		st.Records++

		// a JSON null element decodes to a nil map
		if rec == nil {
			st.Null++
			logger.Debug("skipping null record", zap.Int("index", i))
			continue
		}

		enrolledAs := rec.Field(domain.EnrolledAsKeys...)
		roleCanonical := rec.Field(domain.RoleCanonicalKeys...)
		if enrolledAs != roleTA || roleCanonical != roleTA {
			st.NotTA++
			continue
		}

		code := text(rec, domain.CourseCodeKeys)
		name := stripBoilerplate(text(rec, domain.CourseNameKeys))
		title := stripBoilerplate(text(rec, domain.CourseTitleKeys))
		level := text(rec, domain.CourseLevelKeys)
		term := text(rec, domain.TermKeys)

		if code == placeholderCode && strings.Contains(title, sentinel.titleMarker) {
			code, name, level, term = sentinel.code, sentinel.name, sentinel.level, sentinel.term
			st.Overridden++
		}

		if code == "" || code == placeholderCode || name == "" {
			st.Placeholder++
			logger.Debug("skipping record without usable course",
				zap.Int("index", i),
				zap.Any("record", rec.Pick("course_code", "course_name", "course_title", "term")))
			continue
		}

		key := domain.CourseKey{Code: code, Name: CanonicalName(code, name), Level: level}
		courses.Add(key, term)
		st.Kept++
	}

	logger.Debug("extracted courses",
		zap.Int("records", st.Records),
		zap.Int("kept", st.Kept),
		zap.Int("not_ta", st.NotTA),
		zap.Int("skipped", st.Placeholder),
		zap.Int("null", st.Null),
		zap.Int("unique", courses.Len()))

	return courses, st
}

func text(rec domain.RawRecord, keys []string) string {
	return norm.NFC.String(rec.Field(keys...))
}

func stripBoilerplate(s string) string {
	before, _, _ := strings.Cut(s, boilerplate)
	return before
}
