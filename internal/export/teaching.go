package export

import (
	"fmt"
	"sort"
	"strings"

	"teaching-export/internal/domain"
	"teaching-export/internal/terms"
)

const DefaultOrganization = "University of South Florida"

// Research mentorship is not in the course export; it is always appended last.
const (
	mentorDuration    = "2020-2025"
	mentorDescription = "Mentored undergraduate and graduate students in ML optimization and embedded systems research"
)

// descriptionRule picks canned résumé text by substring of the canonical name.
// %[1]s is the level descriptor ("graduate" / "undergraduate").
type descriptionRule struct {
	contains string
	format   string
}

// First match wins.
var descriptionRules = []descriptionRule{
	{"CMOS-VLSI Design", "Assisted with %[1]s CMOS-VLSI design courses"},
	{"Computer Logic and Design", "Assisted with %[1]s computer logic and design courses"},
	{"Computer Organization", "Supported %[1]s computer organization course"},
	{"IT Concepts", "Supported %[1]s IT concepts course across multiple semesters"},
	{"Field Programmable Gate Array Design", "Assisted with %[1]s FPGA design course"},
	{"Wireless and Mobile Computing", "Assisted with %[1]s wireless and mobile computing course"},
	{"Hands-on Hardware Security", "Supported hands-on hardware security course for %[1]s students"},
	{"Practical Hardware Security", "Supported practical hardware security course for %[1]s students"},
	{"IoT System Design", "Assisted with IoT system design course for %[1]s students"},
	{"Principles of Computer Architecture", "Currently assisting with computer architecture course for %[1]s students"},
	{"Networks", "Assisted with computer networks lab course"},
}

func levelDescriptor(level string) string {
	if level == "Graduate" {
		return "graduate"
	}
	return "undergraduate"
}

func describe(name, level string) string {
	desc := levelDescriptor(level)
	for _, r := range descriptionRules {
		if !strings.Contains(name, r.contains) {
			continue
		}
		if !strings.Contains(r.format, "%[1]s") {
			return r.format
		}
		return fmt.Sprintf(r.format, desc)
	}
	return fmt.Sprintf("Assisted with %s course", desc)
}

// BuildTeaching turns the extracted courses into résumé entries, sorted by
// (code, level), followed by the research mentor entry.
func BuildTeaching(courses *domain.CourseSet, organization string) domain.TeachingDoc {
	if strings.TrimSpace(organization) == "" {
		organization = DefaultOrganization
	}

	var keys []domain.CourseKey
	if courses != nil {
		keys = courses.Keys()
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].Code != keys[j].Code {
			return keys[i].Code < keys[j].Code
		}
		return keys[i].Level < keys[j].Level
	})

	entries := make([]domain.TeachingEntry, 0, len(keys)+1)
	for _, k := range keys {
		if k.Code == "" {
			continue
		}
		entries = append(entries, domain.TeachingEntry{
			Role:         domain.RoleTeachingAssistant,
			Course:       fmt.Sprintf("%s (%s)", k.Name, k.Code),
			Level:        k.Level,
			Organization: organization,
			Duration:     terms.Format(courses.Terms(k).Slice()),
			Description:  describe(k.Name, k.Level),
		})
	}

	entries = append(entries, domain.TeachingEntry{
		Role:         domain.RoleResearchMentor,
		Organization: organization,
		Duration:     mentorDuration,
		Description:  mentorDescription,
	})

	return domain.TeachingDoc{Teaching: entries}
}
