package internal

import (
	"github.com/oviohub/airbridge"
)

var defaultValidRoles = []string{
	"Developer",
	"Project Lead",
	"System Architect",
	"QA",
	"Designer",
}

var defaultValidTypes = []string{
	"Mentoring Organizations",
	"Mentoring Students",
	"Volunteering - Project Based",
	"Volunteering - Task Based",
}

// defaultCauseLabels translates the form's cause labels to the canonical
// names used by the Causes table. Entries 16 and 17 carry a ":" after the
// ordinal where 1-15 carry a "."; the table columns do too.
var defaultCauseLabels = map[string]string{
	"No Poverty":                            "1. No Poverty",
	"Zero Hunger":                           "2. Zero Hunger",
	"Good Health & Well-Being":              "3. Good Health and Well-being",
	"Quality Education":                     "4. Quality Education",
	"Gender Equality":                       "5. Gender Equality",
	"Clean Water & Sanitation":              "6. Clean Water and Sanitation",
	"Affordable & Clean Energy":             "7. Affordable and Clean Energy",
	"Decent Work & Economic Growth":         "8. Decent Work and Economic Growth",
	"Industry Innovation & Infrastructure":  "9. Industry Innovation and Infrastructure",
	"Reducing Inequality":                   "10. Reduced Inequalities",
	"Sustainable Cities & Communities":      "11. Sustainable Cities and Communities",
	"Responsible Consumption & Production":  "12. Responsible Consumption and Production",
	"Climate Action":                        "13. Climate Action",
	"Life below Water":                      "14. Life below Water",
	"Life on Land":                          "15. Life on Land",
	"Peace, Justice, & Strong Institutions": "16: Peace, Justice and Strong Institutions",
	"Partnerships to Achieve the Goal":      "17: Partnerships to achieve the Goal",
}

// DefaultVocabulary returns the compiled-in volunteer vocabulary.
func DefaultVocabulary() Vocabulary {
	labels := make(map[string]string, len(defaultCauseLabels))
	for label, canonical := range defaultCauseLabels {
		labels[label] = canonical
	}
	return Vocabulary{
		ValidRoles:  append([]string(nil), defaultValidRoles...),
		ValidTypes:  append([]string(nil), defaultValidTypes...),
		CauseLabels: labels,
	}
}

// NewVolunteerMapper builds the mapping table of the volunteer sign-up
// form. Destination field names must match the remote table's column names
// byte for byte, including the double space after "If yes," and the space
// before the "?" in "Other causes ?".
func NewVolunteerMapper(vocab Vocabulary, skills, causes airbridge.Resolver) *airbridge.RowMapper {
	roles := airbridge.FromList("roles[]")
	types := airbridge.FromList("types[]")
	skillNames := airbridge.FromList("skills[]")
	causeNames := airbridge.Remap(airbridge.FromList("causes[]"), vocab.CauseLabels)

	return airbridge.NewMapperBuilder().
		Rename("Name", "name").
		Rename("Email", "email").
		MapWith("Country & City of residence", airbridge.JoinKeys(", ", "city", "country")).
		Rename("LinkedIn", "linked-in").
		Rename("GitHub", "github").
		Rename("Have you ever volunteered for a nonprofit before? If yes,  please specify.", "non-profit-experience").
		MapWith("How many years of technical experience do you have?", airbridge.PositiveInt("tech-exp")).
		MapWith("Are you a student?", airbridge.Checkbox("student")).
		MapWith("Are you interested in mentoring?", airbridge.Checkbox("mentor")).
		MapWith("What role would you be most interested in playing?", airbridge.FilterIn(roles, vocab.ValidRoles)).
		MapWith("volunteering_type", airbridge.FilterIn(types, vocab.ValidTypes)).
		MapWith("other_roles", airbridge.JoinList(airbridge.FilterNotIn(roles, vocab.ValidRoles), ", ")).
		MapWith("What amazing skills are you bringing?", airbridge.ResolveIDs(skillNames, skills)).
		MapWith("Which causes are you most motivated by?", airbridge.ResolveIDs(causeNames, causes)).
		MapWith("How many hours can you commit weekly?", airbridge.PositiveInt("hours")).
		Rename("Are you interested in a specific project?", "project").
		Rename("Is there anything else we should know about you?", "other").
		Rename("Would you like to recommend other impactful projects or organizations that should be featured on the hub?", "recommendations").
		MapWith("Other causes ?", airbridge.JoinList(airbridge.Unresolved(causeNames, causes), ", ")).
		Rename("Company or University", "org").
		MapWith("Other skills?", airbridge.JoinList(airbridge.Unresolved(skillNames, skills), ", ")).
		Build()
}
