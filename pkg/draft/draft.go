package draft

import (
	"math"
	"strconv"
	"strings"
)

// CompetencyLevel is the ordinal proficiency scale used by competence
// categories. It is distinct from the 1-5 rating scale.
type CompetencyLevel string

const (
	LevelNA           CompetencyLevel = "NA"
	LevelDebutant     CompetencyLevel = "DEBUTANT"
	LevelAutonome     CompetencyLevel = "AUTONOME"
	LevelAutonomePlus CompetencyLevel = "AUTONOME_PLUS"
)

// Levels returns the closed set of competency levels in ascending order.
func Levels() []CompetencyLevel {
	return []CompetencyLevel{LevelNA, LevelDebutant, LevelAutonome, LevelAutonomePlus}
}

// Valid reports whether the level is a member of the closed enumeration.
func (l CompetencyLevel) Valid() bool {
	switch l {
	case LevelNA, LevelDebutant, LevelAutonome, LevelAutonomePlus:
		return true
	}
	return false
}

// GlobalAssessment carries the three rated dimensions plus a free-text
// remark. Ratings are 0 (unset) or 1..5.
type GlobalAssessment struct {
	Involvement       int
	Openness          int
	ProductionQuality int
	Observations      string
}

// IndividualCompetencies groups the six personal competency axes and their
// numeric grade (string, clamped to [0,20]).
type IndividualCompetencies struct {
	Analysis        CompetencyLevel
	Methods         CompetencyLevel
	Stakeholders    CompetencyLevel
	International   CompetencyLevel
	SelfEvaluation  CompetencyLevel
	ComplexProblems CompetencyLevel
	Grade           string
}

// CompanyAxes rates how the intern engaged with the host company.
type CompanyAxes struct {
	CompanyAnalysis     CompetencyLevel
	ProjectApproach     CompetencyLevel
	EnvironmentalPolicy CompetencyLevel
	InformationResearch CompetencyLevel
}

// TechnicalAxes rates scientific/technical competencies.
type TechnicalAxes struct {
	PreliminaryDesign CompetencyLevel
}

// CompanyCompetencies groups the optional company and technical sections.
// A nil section is omitted from the submitted record entirely.
type CompanyCompetencies struct {
	Company        *CompanyAxes
	Technical      *TechnicalAxes
	CompanyGrade   string
	TechnicalGrade string
}

// SpecificCompetency is a tutor-defined competency. Entries with an empty
// name are ignored at submission time.
type SpecificCompetency struct {
	Name  string
	Level CompetencyLevel
}

// GeneralAssessment is the closing free-form section.
type GeneralAssessment struct {
	Strengths           string
	AreasForImprovement string
	OverallComment      string
	OverallRating       int
}

// SpecificSlots is how many tutor-defined competency rows a draft carries.
const SpecificSlots = 5

// Draft is the full in-progress evaluation. Identity IDs stay 0 until the
// corresponding CIN resolves against the catalog.
type Draft struct {
	StagiaireCIN string
	StudentName  string
	StagiaireID  int

	TuteurCIN string
	TutorName string
	TuteurID  int

	CompanyName  string
	StartDate    string
	EndDate      string
	ProjectTheme string
	Objectives   string

	Global     GlobalAssessment
	Individual IndividualCompetencies
	Company    CompanyCompetencies
	Specific   []SpecificCompetency
	General    GeneralAssessment
}

// New returns the initial draft: ratings unset, the fixed competency axes
// at NA, and five empty specific slots preset to DEBUTANT.
func New() Draft {
	specific := make([]SpecificCompetency, SpecificSlots)
	for i := range specific {
		specific[i] = SpecificCompetency{Level: LevelDebutant}
	}
	return Draft{
		Individual: IndividualCompetencies{
			Analysis:        LevelNA,
			Methods:         LevelNA,
			Stakeholders:    LevelNA,
			International:   LevelNA,
			SelfEvaluation:  LevelNA,
			ComplexProblems: LevelNA,
		},
		Company: CompanyCompetencies{
			Company: &CompanyAxes{
				CompanyAnalysis:     LevelNA,
				ProjectApproach:     LevelNA,
				EnvironmentalPolicy: LevelNA,
				InformationResearch: LevelNA,
			},
			Technical: &TechnicalAxes{PreliminaryDesign: LevelNA},
		},
		Specific: specific,
	}
}

// Clone returns a deep copy; mutating the copy never affects the receiver.
func (d Draft) Clone() Draft {
	out := d
	out.Specific = append([]SpecificCompetency(nil), d.Specific...)
	if d.Company.Company != nil {
		axes := *d.Company.Company
		out.Company.Company = &axes
	}
	if d.Company.Technical != nil {
		axes := *d.Company.Technical
		out.Company.Technical = &axes
	}
	return out
}

// ClampGrade coerces a grade entry to the closed interval [0,20]. Values
// above 20 store "20", below 0 store "0", and anything non-numeric stores
// the empty string. Parsable inputs keep their original spelling.
func ClampGrade(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) {
		return ""
	}
	if value < 0 {
		return "0"
	}
	if value > 20 {
		return "20"
	}
	return trimmed
}

// GradeValue parses a stored grade, returning 0 for empty or unparsable
// entries. Submission payloads use this for the competence `note` field.
func GradeValue(grade string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(grade), 64)
	if err != nil {
		return 0
	}
	return value
}
