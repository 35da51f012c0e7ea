package submit

import (
	"strings"

	"github.com/google/uuid"
	"github.com/goliatone/go-stageval/pkg/draft"
)

// journal is the in-memory saga log for one logical submission. It survives
// failed attempts so a retry resumes after the last completed step instead
// of creating a second stage or periode. It is discarded on success, or when
// the draft fields feeding the stage/periode change between attempts.
type journal struct {
	AttemptID   uuid.UUID
	Fingerprint string

	StagiaireID int
	TuteurID    int
	StageID     int
	PeriodeDone bool
}

func newJournal(fingerprint string) *journal {
	return &journal{AttemptID: uuid.New(), Fingerprint: fingerprint}
}

// fingerprint captures every draft field that shapes the stage and periode
// resources. A resumed attempt must be creating the same resources it
// started creating.
func fingerprint(d draft.Draft) string {
	return strings.Join([]string{
		d.StagiaireCIN,
		d.TuteurCIN,
		d.CompanyName,
		d.StartDate,
		d.EndDate,
		d.ProjectTheme,
		d.Objectives,
	}, "\x1f")
}
