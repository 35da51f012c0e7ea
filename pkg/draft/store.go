package draft

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Store owns one Draft for the lifetime of a wizard session. Updates run
// under a mutex and every write passes through normalization: grades are
// clamped, free text is stripped of markup, and competency levels outside
// the enumeration fall back to NA.
type Store struct {
	mu     sync.Mutex
	draft  Draft
	policy *bluemonday.Policy
}

// NewStore returns a store seeded with the initial draft.
func NewStore() *Store {
	return &Store{
		draft:  New(),
		policy: bluemonday.StrictPolicy(),
	}
}

// Draft returns a deep copy of the current draft.
func (s *Store) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// Update applies a partial mutation to the draft and re-normalizes the
// result. Step pages call this with only the fields they own.
func (s *Store) Update(fn func(*Draft)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.draft)
	s.normalize()
}

// Reset discards the draft and returns the store to its initial state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = New()
}

func (s *Store) normalize() {
	d := &s.draft

	d.StagiaireCIN = strings.TrimSpace(d.StagiaireCIN)
	d.TuteurCIN = strings.TrimSpace(d.TuteurCIN)
	d.StartDate = strings.TrimSpace(d.StartDate)
	d.EndDate = strings.TrimSpace(d.EndDate)

	d.StudentName = s.text(d.StudentName)
	d.TutorName = s.text(d.TutorName)
	d.CompanyName = s.text(d.CompanyName)
	d.ProjectTheme = s.text(d.ProjectTheme)
	d.Objectives = s.text(d.Objectives)

	d.Global.Observations = s.text(d.Global.Observations)
	d.General.Strengths = s.text(d.General.Strengths)
	d.General.AreasForImprovement = s.text(d.General.AreasForImprovement)
	d.General.OverallComment = s.text(d.General.OverallComment)

	d.Individual.Grade = ClampGrade(d.Individual.Grade)
	d.Company.CompanyGrade = ClampGrade(d.Company.CompanyGrade)
	d.Company.TechnicalGrade = ClampGrade(d.Company.TechnicalGrade)

	normalizeLevel(&d.Individual.Analysis)
	normalizeLevel(&d.Individual.Methods)
	normalizeLevel(&d.Individual.Stakeholders)
	normalizeLevel(&d.Individual.International)
	normalizeLevel(&d.Individual.SelfEvaluation)
	normalizeLevel(&d.Individual.ComplexProblems)
	if d.Company.Company != nil {
		normalizeLevel(&d.Company.Company.CompanyAnalysis)
		normalizeLevel(&d.Company.Company.ProjectApproach)
		normalizeLevel(&d.Company.Company.EnvironmentalPolicy)
		normalizeLevel(&d.Company.Company.InformationResearch)
	}
	if d.Company.Technical != nil {
		normalizeLevel(&d.Company.Technical.PreliminaryDesign)
	}
	for i := range d.Specific {
		d.Specific[i].Name = s.text(d.Specific[i].Name)
		normalizeLevel(&d.Specific[i].Level)
	}
}

// text strips markup from a free-text field. Sanitize entity-escapes what
// it keeps, so the escaping is undone: the draft stores the typed characters
// and the wire payloads carry them verbatim.
func (s *Store) text(value string) string {
	return html.UnescapeString(s.policy.Sanitize(value))
}

func normalizeLevel(level *CompetencyLevel) {
	if !level.Valid() {
		*level = LevelNA
	}
}
