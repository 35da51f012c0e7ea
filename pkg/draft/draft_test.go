package draft_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goliatone/go-stageval/pkg/draft"
)

func TestClampGrade(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"within range", "15", "15"},
		{"lower bound", "0", "0"},
		{"upper bound", "20", "20"},
		{"above range", "25", "20"},
		{"below range", "-5", "0"},
		{"decimal kept", "12.5", "12.5"},
		{"decimal above", "20.5", "20"},
		{"non numeric", "abc", ""},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := draft.ClampGrade(tc.input); got != tc.want {
				t.Fatalf("ClampGrade(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestGradeValue(t *testing.T) {
	if got := draft.GradeValue("14.5"); got != 14.5 {
		t.Fatalf("GradeValue(14.5) = %v", got)
	}
	if got := draft.GradeValue(""); got != 0 {
		t.Fatalf("GradeValue(empty) = %v, want 0", got)
	}
	if got := draft.GradeValue("oops"); got != 0 {
		t.Fatalf("GradeValue(oops) = %v, want 0", got)
	}
}

func TestNewDraftDefaults(t *testing.T) {
	d := draft.New()
	if d.Global.Involvement != 0 || d.Global.Openness != 0 || d.Global.ProductionQuality != 0 {
		t.Fatal("new draft must start with unset ratings")
	}
	if d.Individual.Analysis != draft.LevelNA {
		t.Fatalf("individual axes default = %q, want NA", d.Individual.Analysis)
	}
	if len(d.Specific) != draft.SpecificSlots {
		t.Fatalf("specific slots = %d, want %d", len(d.Specific), draft.SpecificSlots)
	}
	for i, slot := range d.Specific {
		if slot.Name != "" || slot.Level != draft.LevelDebutant {
			t.Fatalf("slot %d = %+v, want empty name and DEBUTANT", i, slot)
		}
	}
	if d.Company.Company == nil || d.Company.Technical == nil {
		t.Fatal("company sections must start present")
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := draft.New()
	clone := d.Clone()
	clone.Specific[0].Name = "Kubernetes"
	clone.Company.Company.CompanyAnalysis = draft.LevelAutonome
	if d.Specific[0].Name != "" {
		t.Fatal("clone shares specific slice with original")
	}
	if d.Company.Company.CompanyAnalysis != draft.LevelNA {
		t.Fatal("clone shares company axes with original")
	}
}

func TestCompetencyLevelValid(t *testing.T) {
	for _, level := range draft.Levels() {
		if !level.Valid() {
			t.Fatalf("level %q should be valid", level)
		}
	}
	if draft.CompetencyLevel("EXPERT").Valid() {
		t.Fatal("EXPERT is not a member of the enumeration")
	}
}

func TestStoreUpdateNormalizes(t *testing.T) {
	store := draft.NewStore()
	store.Update(func(d *draft.Draft) {
		d.StagiaireCIN = "  A123456 "
		d.Individual.Grade = "25"
		d.Company.CompanyGrade = "-3"
		d.Company.TechnicalGrade = "quinze"
		d.Global.Observations = "<script>alert(1)</script>solid work"
		d.Specific[0] = draft.SpecificCompetency{Name: "Docker", Level: "WIZARD"}
	})
	d := store.Draft()
	if d.StagiaireCIN != "A123456" {
		t.Fatalf("cin = %q, want trimmed", d.StagiaireCIN)
	}
	if d.Individual.Grade != "20" {
		t.Fatalf("grade = %q, want clamped to 20", d.Individual.Grade)
	}
	if d.Company.CompanyGrade != "0" {
		t.Fatalf("company grade = %q, want clamped to 0", d.Company.CompanyGrade)
	}
	if d.Company.TechnicalGrade != "" {
		t.Fatalf("technical grade = %q, want empty for non-numeric", d.Company.TechnicalGrade)
	}
	if d.Global.Observations != "solid work" {
		t.Fatalf("observations = %q, want markup stripped", d.Global.Observations)
	}
	if d.Specific[0].Level != draft.LevelNA {
		t.Fatalf("unknown level = %q, want NA", d.Specific[0].Level)
	}
}

func TestStoreKeepsTypedCharacters(t *testing.T) {
	store := draft.NewStore()
	store.Update(func(d *draft.Draft) {
		d.CompanyName = "Johnson & Johnson"
		d.Objectives = "ship v2 <fast> & cheap"
		d.General.OverallComment = `said "well done"`
	})
	d := store.Draft()
	if d.CompanyName != "Johnson & Johnson" {
		t.Fatalf("company = %q, ampersand must survive normalization", d.CompanyName)
	}
	if d.Objectives != "ship v2  & cheap" {
		t.Fatalf("objectives = %q, want markup gone but text unescaped", d.Objectives)
	}
	if d.General.OverallComment != `said "well done"` {
		t.Fatalf("comment = %q, quotes must survive normalization", d.General.OverallComment)
	}
}

func TestStoreDraftReturnsCopy(t *testing.T) {
	store := draft.NewStore()
	copy1 := store.Draft()
	copy1.CompanyName = "ACME"
	copy1.Specific[1].Name = "Terraform"
	if diff := cmp.Diff(draft.New(), store.Draft()); diff != "" {
		t.Fatalf("store mutated through returned copy (-want +got):\n%s", diff)
	}
}

func TestStoreReset(t *testing.T) {
	store := draft.NewStore()
	store.Update(func(d *draft.Draft) {
		d.CompanyName = "ACME"
		d.Global.Involvement = 4
	})
	store.Reset()
	if diff := cmp.Diff(draft.New(), store.Draft()); diff != "" {
		t.Fatalf("reset did not restore initial draft (-want +got):\n%s", diff)
	}
}
